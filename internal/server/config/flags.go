package config

import (
	"flag"
	"os"
	"time"

	"github.com/taskvault/taskvault/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-o string   allowed CORS origin
//	-b string   store backend: memory, postgres, or dynamo
//	-d string   PostgreSQL DSN
//	-s string   static JWT HMAC secret key
//	-n string   SSM parameter name holding the secret
//	-t int      session token validity, minutes
//	-w int      bcrypt cost
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-o", "-b", "-d", "-s", "-n", "-t", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to run server")
	fs.StringVar(&cfg.CORSOrigin, "o", cfg.CORSOrigin, "allowed CORS origin")
	fs.StringVar(&cfg.StoreBackend, "b", cfg.StoreBackend, "store backend (memory|postgres|dynamo)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "static signing secret")
	fs.StringVar(&cfg.SSMParameterName, "n", cfg.SSMParameterName, "SSM parameter name for the signing secret")

	tokenValidity := fs.Int("t", int(cfg.TokenValidity.Minutes()), "token validity (in minutes)")
	bcryptCost := fs.Int("w", cfg.BcryptCost, "bcrypt cost")

	if err := fs.Parse(args); err != nil {
		return
	}

	cfg.TokenValidity = time.Duration(*tokenValidity) * time.Minute
	cfg.BcryptCost = *bcryptCost

	if cfg.SSMParameterName != "" {
		cfg.SecretSource = SecretSourceSSM
	}
}
