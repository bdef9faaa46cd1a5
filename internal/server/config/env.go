package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// dotEnvFile is loaded into the process environment when it exists.
// Variables already set in the environment win over the file.
var dotEnvFile = ".env"

// parseEnv overlays Config with environment variables:
//
//	PORT                 bind port or address (":5000", "5000")
//	DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME, DB_SSLMODE
//	SUPABASE_HOST, SUPABASE_PORT, SUPABASE_USER, SUPABASE_PASSWORD,
//	SUPABASE_DATABASE    fallbacks for the matching DB_* keys
//	VAPID_PUBLIC_KEY, VAPID_PRIVATE_KEY
//	TRUSTED_PROXY_HOPS
//	DB_MIGRATE           "true" to apply migrations on start
//
// It panics when the .env file is unreadable or a numeric value is malformed.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v, ok := os.LookupEnv("PORT"); ok && v != "" {
		cfg.ListenAddr = listenAddr(v)
	}
	setString(&cfg.DBHost, "DB_HOST", "SUPABASE_HOST")
	setInt(&cfg.DBPort, "DB_PORT", "SUPABASE_PORT")
	setString(&cfg.DBUser, "DB_USER", "SUPABASE_USER")
	setString(&cfg.DBPassword, "DB_PASSWORD", "SUPABASE_PASSWORD")
	setString(&cfg.DBName, "DB_NAME", "SUPABASE_DATABASE")
	setString(&cfg.DBSSLMode, "DB_SSLMODE")
	setString(&cfg.VAPIDPublicKey, "VAPID_PUBLIC_KEY")
	setString(&cfg.VAPIDPrivateKey, "VAPID_PRIVATE_KEY")
	setInt(&cfg.TrustedProxyHops, "TRUSTED_PROXY_HOPS")

	if v, ok := os.LookupEnv("DB_MIGRATE"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(err)
		}
		cfg.Migrate = b
	}
}

// listenAddr accepts a bare port as hosting platforms provide it.
func listenAddr(v string) string {
	if strings.Contains(v, ":") {
		return v
	}
	return ":" + v
}

// lookup returns the first non-empty value among keys.
func lookup(keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

func setString(dst *string, keys ...string) {
	if v, ok := lookup(keys...); ok {
		*dst = v
	}
}

func setInt(dst *int, keys ...string) {
	v, ok := lookup(keys...)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(err)
	}
	*dst = n
}
