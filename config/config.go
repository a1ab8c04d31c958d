package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"
)

// DefaultConfigFile is read when no --config flag is given.
const DefaultConfigFile = "pokerhands.hcl"

// Environment variables read by ApplyEnv
const (
	EnvPort            = "PORT"
	EnvAddress         = "ADDRESS"
	EnvLogLevel        = "LOG_LEVEL"
	EnvProd            = "PROD"
	EnvCORSOrigins     = "CORS_ORIGINS"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)

// Config is the resolved server configuration.
type Config struct {
	Address         string
	Port            int
	LogLevel        string
	Release         bool
	AllowOrigins    []string
	ShutdownTimeout time.Duration
}

// fileConfig mirrors the HCL layout:
//
//	server {
//	  address          = "0.0.0.0"
//	  port             = 8080
//	  log_level        = "info"
//	  release          = true
//	  shutdown_timeout = "10s"
//	}
//	cors {
//	  allow_origins = ["https://example.com"]
//	}
type fileConfig struct {
	Server *serverBlock `hcl:"server,block"`
	CORS   *corsBlock   `hcl:"cors,block"`
}

type serverBlock struct {
	Address         string `hcl:"address,optional"`
	Port            int    `hcl:"port,optional"`
	LogLevel        string `hcl:"log_level,optional"`
	Release         bool   `hcl:"release,optional"`
	ShutdownTimeout string `hcl:"shutdown_timeout,optional"`
}

type corsBlock struct {
	AllowOrigins []string `hcl:"allow_origins,optional"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Address:         "",
		Port:            8080,
		LogLevel:        "info",
		AllowOrigins:    []string{"*"},
		ShutdownTimeout: 10 * time.Second,
	}
}

// LoadDotEnv loads variables from .env files into the environment. Missing
// files are not an error; variables already set are left untouched.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// Load reads filename over the defaults. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if s := fc.Server; s != nil {
		if s.Address != "" {
			cfg.Address = s.Address
		}
		if s.Port != 0 {
			cfg.Port = s.Port
		}
		if s.LogLevel != "" {
			cfg.LogLevel = s.LogLevel
		}
		cfg.Release = s.Release
		if s.ShutdownTimeout != "" {
			d, err := time.ParseDuration(s.ShutdownTimeout)
			if err != nil {
				return nil, fmt.Errorf("invalid shutdown_timeout: %w", err)
			}
			cfg.ShutdownTimeout = d
		}
	}
	if fc.CORS != nil && len(fc.CORS.AllowOrigins) > 0 {
		cfg.AllowOrigins = fc.CORS.AllowOrigins
	}

	return cfg, nil
}

// ApplyEnv overrides the configuration with environment variables. getenv
// is usually os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvPort, err)
		}
		c.Port = port
	}
	if v := getenv(EnvAddress); v != "" {
		c.Address = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if getenv(EnvProd) == "true" {
		c.Release = true
	}
	if v := getenv(EnvCORSOrigins); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.AllowOrigins = origins
	}
	if v := getenv(EnvShutdownTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvShutdownTimeout, err)
		}
		c.ShutdownTimeout = d
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

// ListenAddr returns the host:port the server binds to.
func (c *Config) ListenAddr() string {
	return net.JoinHostPort(c.Address, strconv.Itoa(c.Port))
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
