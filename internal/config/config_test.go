package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		ServerPort:   "8000",
		DatabaseURL:  "postgres://localhost/calc",
		JWTSecret:    "secret",
		JWTAlgorithm: "HS256",
		TokenTTL:     time.Hour,
		AppEnv:       "development",
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateRejectsWrongAlgorithm(t *testing.T) {
	cfg := validConfig()
	cfg.JWTAlgorithm = "none"
	require.Error(t, cfg.Validate())

	cfg.JWTAlgorithm = "RS256"
	require.Error(t, cfg.Validate())
}

func TestValidateRequiresSecretInProduction(t *testing.T) {
	cfg := validConfig()
	cfg.AppEnv = "production"
	cfg.JWTSecret = ""
	require.Error(t, cfg.Validate())
}

func TestValidateFallsBackToDevSecret(t *testing.T) {
	cfg := validConfig()
	cfg.JWTSecret = ""
	require.NoError(t, cfg.Validate())
	require.Equal(t, insecureDevSecret, cfg.JWTSecret)
}

func TestValidateRequiresDatabaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.DatabaseURL = ""
	require.Error(t, cfg.Validate())
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/calc")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8000", cfg.ServerPort)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.Equal(t, 12, cfg.BcryptCost)
	require.Equal(t, 3, cfg.UsernameMinLength)
	require.Equal(t, "HS256", cfg.JWTAlgorithm)
}

func TestLoadTokenTTLMinutes(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/calc")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("TOKEN_TTL_MINUTES", "15")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 15*time.Minute, cfg.TokenTTL)
}
