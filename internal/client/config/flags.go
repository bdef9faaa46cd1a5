package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/teamadmin/internal/flagx"
)

// parseFlags populates Config from -a, -t and -d. Other arguments are ignored.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the moderation API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	notice := fs.Int("d", int(cfg.NoticeDuration.Seconds()), "notice display time (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	cfg.NoticeDuration = time.Duration(*notice) * time.Second
}
