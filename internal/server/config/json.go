package config

import (
	"encoding/json"
	"os"

	"github.com/taskvault/taskvault/internal/flagx"
	"github.com/taskvault/taskvault/internal/timex"
)

// jsonConfig is an intermediate DTO used only for reading JSON configuration
// files. It uses timex.Duration for lifetime fields, which accepts both
// string values such as "1h" and integer nanoseconds. After unmarshalling,
// non-empty fields are copied into the runtime Config.
type jsonConfig struct {
	Addr               string         `json:"addr"`
	CORSOrigin         string         `json:"cors_origin"`
	StoreBackend       string         `json:"store_backend"`
	DatabaseDSN        string         `json:"database_dsn"`
	AccountsTable      string         `json:"accounts_table"`
	TasksTable         string         `json:"tasks_table"`
	AWSRegion          string         `json:"aws_region"`
	AWSEndpoint        string         `json:"aws_endpoint"`
	AWSAccessKeyID     string         `json:"aws_access_key_id"`
	AWSSecretAccessKey string         `json:"aws_secret_access_key"`
	SecretSource       string         `json:"secret_source"`
	SSMParameterName   string         `json:"ssm_parameter_name"`
	SecretKey          string         `json:"secret_key"`
	TokenValidity      timex.Duration `json:"token_validity"`
	BcryptCost         int            `json:"bcrypt_cost"`
}

// parseJSON loads configuration values from the JSON file given via the
// -c/-config flags into cfg. When no file is specified nothing happens;
// an unreadable or malformed file is a startup error and panics.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigPath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Addr != "" {
		cfg.Addr = jc.Addr
	}
	if jc.CORSOrigin != "" {
		cfg.CORSOrigin = jc.CORSOrigin
	}
	if jc.StoreBackend != "" {
		cfg.StoreBackend = jc.StoreBackend
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.AccountsTable != "" {
		cfg.AccountsTable = jc.AccountsTable
	}
	if jc.TasksTable != "" {
		cfg.TasksTable = jc.TasksTable
	}
	if jc.AWSRegion != "" {
		cfg.AWSRegion = jc.AWSRegion
	}
	if jc.AWSEndpoint != "" {
		cfg.AWSEndpoint = jc.AWSEndpoint
	}
	if jc.AWSAccessKeyID != "" {
		cfg.AWSAccessKeyID = jc.AWSAccessKeyID
	}
	if jc.AWSSecretAccessKey != "" {
		cfg.AWSSecretAccessKey = jc.AWSSecretAccessKey
	}
	if jc.SecretSource != "" {
		cfg.SecretSource = jc.SecretSource
	}
	if jc.SSMParameterName != "" {
		cfg.SSMParameterName = jc.SSMParameterName
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.TokenValidity.Duration != 0 {
		cfg.TokenValidity = jc.TokenValidity.Duration
	}
	if jc.BcryptCost != 0 {
		cfg.BcryptCost = jc.BcryptCost
	}
}
