// AngelaMos | 2026
// config_test.go

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.NotEmpty(t, cfg.Database.URL)
	assert.Equal(t, "secret", cfg.Admin.Token)
	assert.Equal(t, time.Hour, cfg.Auth.ResetTokenTTL)
	assert.True(t, cfg.Auth.ExposeResetToken)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:3000", cfg.Server.Address())
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yml := `
server:
  port: 9090
admin:
  token: from-file
auth:
  reset_token_ttl: 30m
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	t.Setenv("PORT", "7070")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "from-file", cfg.Admin.Token)
	assert.Equal(t, 30*time.Minute, cfg.Auth.ResetTokenTTL)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingFileIsIgnored(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "secret")

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
}

func TestLoad_LegacyAdminPasswordEnv(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "admin123")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "admin123", cfg.Admin.Token)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App:      AppConfig{Environment: "development"},
			Server:   ServerConfig{ReadTimeout: time.Second, WriteTimeout: time.Second},
			Database: DatabaseConfig{Driver: DriverSQLite, URL: "file:test.db"},
			Admin:    AdminConfig{Token: "secret"},
			Auth:     AuthConfig{ResetTokenTTL: time.Hour},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing admin token",
			mutate:  func(c *Config) { c.Admin.Token = "" },
			wantErr: "ADMIN_TOKEN",
		},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.Database.Driver = "mysql" },
			wantErr: "database.driver",
		},
		{
			name:    "missing database url",
			mutate:  func(c *Config) { c.Database.URL = "" },
			wantErr: "DATABASE_URL",
		},
		{
			name:    "non-positive ttl",
			mutate:  func(c *Config) { c.Auth.ResetTokenTTL = 0 },
			wantErr: "reset_token_ttl",
		},
		{
			name: "cors wildcard with credentials",
			mutate: func(c *Config) {
				c.CORS.AllowCredentials = true
				c.CORS.AllowedOrigins = []string{"*"}
			},
			wantErr: "wildcard",
		},
		{
			name: "exposed reset token in production",
			mutate: func(c *Config) {
				c.App.Environment = "production"
				c.Auth.ExposeResetToken = true
			},
			wantErr: "EXPOSE_RESET_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)

			err := validate(c)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
