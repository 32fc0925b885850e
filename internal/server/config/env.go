package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays configuration from environment variables. PORT,
// AWS_REGION, and PARAM_JWT_SECRET_PATH keep the names the deployment
// already uses; everything else is TASKVAULT_-prefixed.
func parseEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Addr = ":" + v
	}
	if v := os.Getenv("TASKVAULT_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("TASKVAULT_CORS_ORIGIN"); v != "" {
		cfg.CORSOrigin = v
	}
	if v := os.Getenv("TASKVAULT_STORE_BACKEND"); v != "" {
		cfg.StoreBackend = v
	}
	if v := os.Getenv("TASKVAULT_DATABASE_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("TASKVAULT_ACCOUNTS_TABLE"); v != "" {
		cfg.AccountsTable = v
	}
	if v := os.Getenv("TASKVAULT_TASKS_TABLE"); v != "" {
		cfg.TasksTable = v
	}
	if v := os.Getenv("AWS_REGION"); v != "" {
		cfg.AWSRegion = v
	}
	if v := os.Getenv("TASKVAULT_AWS_ENDPOINT"); v != "" {
		cfg.AWSEndpoint = v
	}
	if v := os.Getenv("TASKVAULT_AWS_ACCESS_KEY_ID"); v != "" {
		cfg.AWSAccessKeyID = v
	}
	if v := os.Getenv("TASKVAULT_AWS_SECRET_ACCESS_KEY"); v != "" {
		cfg.AWSSecretAccessKey = v
	}
	if v := os.Getenv("PARAM_JWT_SECRET_PATH"); v != "" {
		cfg.SSMParameterName = v
		cfg.SecretSource = SecretSourceSSM
	}
	if v := os.Getenv("TASKVAULT_SECRET_KEY"); v != "" {
		cfg.SecretKey = v
	}
	if v := os.Getenv("TASKVAULT_TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.TokenValidity = d
		}
	}
	if v := os.Getenv("TASKVAULT_BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.BcryptCost = n
		}
	}
}
