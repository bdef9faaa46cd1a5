package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/teamadmin/internal/flagx"
	"github.com/dmitrijs2005/teamadmin/internal/timex"
)

// JsonConfig is the on-disk shape of the console configuration.
type JsonConfig struct {
	ServerURL      string         `json:"server_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	NoticeDuration timex.Duration `json:"notice_duration"`
}

// parseJson overlays cfg with the file named by -c/-config. Fields missing
// from the file keep their current value. Read and decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.NoticeDuration.Duration != 0 {
		cfg.NoticeDuration = jc.NoticeDuration.Duration
	}
}
