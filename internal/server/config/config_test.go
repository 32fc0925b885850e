package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if cfg.Addr != ":3000" {
		t.Fatalf("Addr default = %q", cfg.Addr)
	}
	if cfg.StoreBackend != BackendMemory {
		t.Fatalf("StoreBackend default = %q", cfg.StoreBackend)
	}
	if cfg.TokenValidity != time.Hour {
		t.Fatalf("TokenValidity default = %v", cfg.TokenValidity)
	}
	if cfg.BcryptCost != 10 {
		t.Fatalf("BcryptCost default = %d", cfg.BcryptCost)
	}
	if cfg.SecretSource != SecretSourceStatic {
		t.Fatalf("SecretSource default = %q", cfg.SecretSource)
	}
}

func TestParseEnv_Overlays(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	t.Setenv("PORT", "8081")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("PARAM_JWT_SECRET_PATH", "/taskvault/jwt-secret")
	t.Setenv("TASKVAULT_STORE_BACKEND", BackendDynamo)
	t.Setenv("TASKVAULT_TOKEN_VALIDITY", "30m")

	parseEnv(cfg)

	if cfg.Addr != ":8081" {
		t.Fatalf("Addr = %q", cfg.Addr)
	}
	if cfg.AWSRegion != "eu-west-1" {
		t.Fatalf("AWSRegion = %q", cfg.AWSRegion)
	}
	if cfg.SSMParameterName != "/taskvault/jwt-secret" {
		t.Fatalf("SSMParameterName = %q", cfg.SSMParameterName)
	}
	if cfg.SecretSource != SecretSourceSSM {
		t.Fatalf("SecretSource = %q, setting the SSM path should select the ssm source", cfg.SecretSource)
	}
	if cfg.StoreBackend != BackendDynamo {
		t.Fatalf("StoreBackend = %q", cfg.StoreBackend)
	}
	if cfg.TokenValidity != 30*time.Minute {
		t.Fatalf("TokenValidity = %v", cfg.TokenValidity)
	}
}

func TestParseEnv_IgnoresInvalidValues(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	t.Setenv("TASKVAULT_TOKEN_VALIDITY", "not-a-duration")
	t.Setenv("TASKVAULT_BCRYPT_COST", "plenty")

	parseEnv(cfg)

	if cfg.TokenValidity != time.Hour {
		t.Fatalf("TokenValidity = %v, want default kept", cfg.TokenValidity)
	}
	if cfg.BcryptCost != 10 {
		t.Fatalf("BcryptCost = %d, want default kept", cfg.BcryptCost)
	}
}
