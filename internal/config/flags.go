package config

import (
	"flag"
	"os"
	"time"

	"github.com/olehkhomyk/feedline/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   durable storage backend: bbolt or sqlite
//	-f string   durable storage file path
//	-k string   session token signing secret
//	-t int      session token validity in minutes
//
// Note: the function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-f", "-k", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorageBackend, "b", cfg.StorageBackend, "durable storage backend (bbolt|sqlite)")
	fs.StringVar(&cfg.StoragePath, "f", cfg.StoragePath, "durable storage file path")
	fs.StringVar(&cfg.SessionSecret, "k", cfg.SessionSecret, "session token signing secret")
	validity := fs.Int("t", int(cfg.SessionValidity.Minutes()), "session token validity (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Overwrite the validity only when -t was actually set; re-deriving it
	// from minutes would truncate a sub-minute value configured via JSON.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.SessionValidity = time.Duration(*validity) * time.Minute
		}
	})
}
