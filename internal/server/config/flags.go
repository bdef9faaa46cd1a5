package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/teamadmin/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":5000")
//	-H string   database host
//	-P int      database port
//	-U string   database user
//	-W string   database password
//	-N string   database name
//	-S string   database sslmode
//	-k string   VAPID public key
//	-K string   VAPID private key
//	-x int      trusted reverse-proxy hops
//	-m          apply schema migrations on start
func parseFlags(config *Config) {
	args := flagx.FilterArgsWithBools(os.Args[1:],
		[]string{"-a", "-H", "-P", "-U", "-W", "-N", "-S", "-k", "-K", "-x"},
		[]string{"-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to run server")
	fs.StringVar(&config.DBHost, "H", config.DBHost, "database host")
	fs.IntVar(&config.DBPort, "P", config.DBPort, "database port")
	fs.StringVar(&config.DBUser, "U", config.DBUser, "database user")
	fs.StringVar(&config.DBPassword, "W", config.DBPassword, "database password")
	fs.StringVar(&config.DBName, "N", config.DBName, "database name")
	fs.StringVar(&config.DBSSLMode, "S", config.DBSSLMode, "database sslmode")
	fs.StringVar(&config.VAPIDPublicKey, "k", config.VAPIDPublicKey, "VAPID public key")
	fs.StringVar(&config.VAPIDPrivateKey, "K", config.VAPIDPrivateKey, "VAPID private key")
	fs.IntVar(&config.TrustedProxyHops, "x", config.TrustedProxyHops, "trusted reverse-proxy hops")
	fs.BoolVar(&config.Migrate, "m", config.Migrate, "apply schema migrations on start")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
