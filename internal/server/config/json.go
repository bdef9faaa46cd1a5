package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/teamadmin/internal/flagx"
	"github.com/dmitrijs2005/teamadmin/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration. Durations use
// timex.Duration so they may be written as "10s" or integer nanoseconds.
type JsonConfig struct {
	ListenAddr       string         `json:"listen_addr"`
	DBHost           string         `json:"db_host"`
	DBPort           int            `json:"db_port"`
	DBUser           string         `json:"db_user"`
	DBPassword       string         `json:"db_password"`
	DBName           string         `json:"db_name"`
	DBSSLMode        string         `json:"db_sslmode"`
	VAPIDPublicKey   string         `json:"vapid_public_key"`
	VAPIDPrivateKey  string         `json:"vapid_private_key"`
	TrustedProxyHops *int           `json:"trusted_proxy_hops"`
	Migrate          *bool          `json:"migrate"`
	ReadTimeout      timex.Duration `json:"read_timeout"`
	WriteTimeout     timex.Duration `json:"write_timeout"`
	ShutdownTimeout  timex.Duration `json:"shutdown_timeout"`
}

// parseJson loads the file named by -c/-config and overlays every field it
// sets onto config. Without the flag nothing happens. Unreadable or invalid
// JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	overlayString(&config.ListenAddr, c.ListenAddr)
	overlayString(&config.DBHost, c.DBHost)
	if c.DBPort != 0 {
		config.DBPort = c.DBPort
	}
	overlayString(&config.DBUser, c.DBUser)
	overlayString(&config.DBPassword, c.DBPassword)
	overlayString(&config.DBName, c.DBName)
	overlayString(&config.DBSSLMode, c.DBSSLMode)
	overlayString(&config.VAPIDPublicKey, c.VAPIDPublicKey)
	overlayString(&config.VAPIDPrivateKey, c.VAPIDPrivateKey)
	if c.TrustedProxyHops != nil {
		config.TrustedProxyHops = *c.TrustedProxyHops
	}
	if c.Migrate != nil {
		config.Migrate = *c.Migrate
	}
	if c.ReadTimeout.Duration != 0 {
		config.ReadTimeout = c.ReadTimeout.Duration
	}
	if c.WriteTimeout.Duration != 0 {
		config.WriteTimeout = c.WriteTimeout.Duration
	}
	if c.ShutdownTimeout.Duration != 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}

func overlayString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
