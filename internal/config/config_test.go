package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			"Development with defaults",
			Config{
				Env:           "development",
				Port:          "5001",
				SessionSecret: "dev-secret-key-change-in-production",
				DBPassword:    "postgres",
			},
			false,
		},
		{
			"Missing port",
			Config{
				Env:           "development",
				SessionSecret: "dev-secret-key-change-in-production",
			},
			true,
		},
		{
			"Missing session secret",
			Config{
				Env:  "development",
				Port: "5001",
			},
			true,
		},
		{
			"Production with default session secret",
			Config{
				Env:           "production",
				Port:          "5001",
				SessionSecret: "dev-secret-key-change-in-production",
				DBPassword:    "strong-password",
			},
			true,
		},
		{
			"Production with short session secret",
			Config{
				Env:           "production",
				Port:          "5001",
				SessionSecret: "short",
				DBPassword:    "strong-password",
			},
			true,
		},
		{
			"Production with default database password",
			Config{
				Env:           "production",
				Port:          "5001",
				SessionSecret: "secure-secret-at-least-32-chars-long",
				DBPassword:    "postgres",
			},
			true,
		},
		{
			"Production fully configured",
			Config{
				Env:           "production",
				Port:          "5001",
				SessionSecret: "secure-secret-at-least-32-chars-long",
				DBPassword:    "strong-password",
				DBSSLMode:     "require",
			},
			false,
		},
		{
			"Prod alias fully configured",
			Config{
				Env:           "prod",
				Port:          "5001",
				SessionSecret: "secure-secret-at-least-32-chars-long",
				DBPassword:    "strong-password",
				DBSSLMode:     "verify-full",
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")

	c, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5001", c.Port)
	assert.Equal(t, "localhost", c.DBHost)
	assert.Equal(t, "5432", c.DBPort)
	assert.Equal(t, "caregiver_platform", c.DBName)
	assert.Equal(t, "disable", c.DBSSLMode)
	assert.Equal(t, 25, c.DBMaxOpenConns)
	assert.Equal(t, 5, c.DBMaxIdleConns)
	assert.Equal(t, 5, c.DBConnMaxLifetimeMinutes)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer os.Unsetenv("PORT")
	defer os.Unsetenv("DB_NAME")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")
	os.Setenv("PORT", "9090")
	os.Setenv("DB_NAME", "caregiver_test")

	c, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, "caregiver_test", c.DBName)
}
