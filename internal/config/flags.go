package config

import (
	"flag"

	"github.com/azarovs/parkd/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   PostgreSQL DSN
//	-l string   log level (debug, info, warn, error)
//
// Args are filtered through flagx.FilterArgs first so flags owned by other
// components (such as the -c config path) do not trip the parser.
func parseFlags(config *Config, args []string) {
	filtered := flagx.FilterArgs(args, []string{"-d", "-l"})

	fs := flag.NewFlagSet("config", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(filtered); err != nil {
		panic(err)
	}
}
