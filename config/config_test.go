package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":8080", cfg.ListenAddr())
}

func TestLoadHCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokerhands.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
server {
  address          = "127.0.0.1"
  port             = 9090
  log_level        = "debug"
  release          = true
  shutdown_timeout = "3s"
}

cors {
  allow_origins = ["https://a.example", "https://b.example"]
}
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.ListenAddr())
	assert.Equal(t, log.DebugLevel, cfg.Level())
	assert.True(t, cfg.Release)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestLoadPartialHCLKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokerhands.hcl")
	require.NoError(t, os.WriteFile(path, []byte("server {\n  port = 7000\n}\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.AllowOrigins)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadInvalidHCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.hcl")
	require.NoError(t, os.WriteFile(path, []byte("server {"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadInvalidDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.hcl")
	require.NoError(t, os.WriteFile(path, []byte("server {\n  shutdown_timeout = \"soon\"\n}\n"), 0o600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "shutdown_timeout")
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{
		EnvPort:            "3000",
		EnvAddress:         "0.0.0.0",
		EnvLogLevel:        "warn",
		EnvProd:            "true",
		EnvCORSOrigins:     "https://a.example, https://b.example,",
		EnvShutdownTimeout: "250ms",
	}))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:3000", cfg.ListenAddr())
	assert.Equal(t, log.WarnLevel, cfg.Level())
	assert.True(t, cfg.Release)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowOrigins)
	assert.Equal(t, 250*time.Millisecond, cfg.ShutdownTimeout)
}

func TestApplyEnvEmptyLeavesConfig(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(envMap(nil)))
	assert.Equal(t, Default(), cfg)
}

func TestApplyEnvInvalid(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.ApplyEnv(envMap(map[string]string{EnvPort: "eighty"})))

	cfg = Default()
	assert.Error(t, cfg.ApplyEnv(envMap(map[string]string{EnvShutdownTimeout: "later"})))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"port zero", func(c *Config) { c.Port = 0 }, true},
		{"port too high", func(c *Config) { c.Port = 70000 }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"zero shutdown timeout", func(c *Config) { c.ShutdownTimeout = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("POKERHANDS_TEST_VAR=from-dotenv\n"), 0o600))
	t.Setenv("POKERHANDS_TEST_VAR", "")
	require.NoError(t, os.Unsetenv("POKERHANDS_TEST_VAR"))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-dotenv", os.Getenv("POKERHANDS_TEST_VAR"))

	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}
