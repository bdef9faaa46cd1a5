// Package config handles configuration for the moderation API server,
// including defaults, a JSON overlay, environment variables and flags.
package config

import (
	"net"
	"net/url"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/dmitrijs2005/teamadmin/internal/server/push"
)

// Config holds runtime settings for the teamadmin server.
//
// Fields:
//   - ListenAddr: bind address of the HTTP API.
//   - DBHost / DBPort / DBUser / DBPassword / DBName / DBSSLMode: PostgreSQL
//     connection settings (pgx).
//   - VAPIDPublicKey / VAPIDPrivateKey: web-push credentials. Required at
//     startup even though nothing sends notifications yet.
//   - TrustedProxyHops: how many reverse proxies sit in front of the API;
//     the client address is read that many entries from the right of
//     X-Forwarded-For.
//   - Migrate: apply the embedded schema migrations on start.
//   - ReadTimeout / WriteTimeout / ShutdownTimeout: HTTP server limits.
type Config struct {
	ListenAddr       string
	DBHost           string
	DBPort           int
	DBUser           string
	DBPassword       string
	DBName           string
	DBSSLMode        string
	VAPIDPublicKey   string
	VAPIDPrivateKey  string
	TrustedProxyHops int
	Migrate          bool
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
}

// LoadDefaults populates Config with development defaults.
// VAPID keys have no default on purpose.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":5000"
	c.DBHost = "localhost"
	c.DBPort = 5432
	c.DBUser = "postgres"
	c.DBPassword = "postgres"
	c.DBName = "teamadmin"
	c.DBSSLMode = "require"
	c.TrustedProxyHops = 1
	c.Migrate = false
	c.ReadTimeout = 10 * time.Second
	c.WriteTimeout = 10 * time.Second
	c.ShutdownTimeout = 5 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment (including a .env file) and
// finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

var sslModes = []any{"disable", "allow", "prefer", "require", "verify-ca", "verify-full"}

// Validate reports every setting the server cannot start without.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ListenAddr, validation.Required),
		validation.Field(&c.DBHost, validation.Required, is.Host),
		validation.Field(&c.DBPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.DBUser, validation.Required),
		validation.Field(&c.DBName, validation.Required),
		validation.Field(&c.DBSSLMode, validation.In(sslModes...)),
		validation.Field(&c.VAPIDPublicKey, validation.Required.Error("VAPID public key is missing")),
		validation.Field(&c.VAPIDPrivateKey, validation.Required.Error("VAPID private key is missing")),
		validation.Field(&c.TrustedProxyHops, validation.Min(0)),
	)
}

// DSN renders the pgx connection URL.
func (c *Config) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort)),
		Path:   "/" + c.DBName,
	}
	if c.DBSSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {c.DBSSLMode}}.Encode()
	}
	return u.String()
}

// PushKeys returns the VAPID pair for the push capability.
func (c *Config) PushKeys() push.Keys {
	return push.Keys{PublicKey: c.VAPIDPublicKey, PrivateKey: c.VAPIDPrivateKey}
}
