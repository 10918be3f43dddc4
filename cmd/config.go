package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"mybalancer/domain"

	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envHTTPPort   = "SERVICE_PORT_HTTP"
	envConfigPath = "CONFIG_PATH"
	envRedisAddr  = "REDIS_ADDR"
)

// Config holds the full balancer configuration loaded by LoadConfig from environment variables
// and the YAML file. HTTPPort is the status endpoint port (from SERVICE_PORT_HTTP); RedisAddr
// the optional redis URL for the remote stats sink (from REDIS_ADDR); DiscovererURL,
// RefreshInterval, Expiry and ApertureWidth come from YAML.
type Config struct {
	HTTPPort        int
	RedisAddr       string
	DiscovererURL   string
	RefreshInterval time.Duration
	Expiry          domain.ExpiryConfig
	ApertureWidth   int
}

// yamlConfig is the root struct for YAML unmarshalling; contains discoverer, expiry and aperture.
type yamlConfig struct {
	Discoverer yamlDiscoverer `yaml:"discoverer"`
	Expiry     yamlExpiry     `yaml:"expiry"`
	Aperture   yamlAperture   `yaml:"aperture"`
}

// yamlDiscoverer holds the discoverer base URL and refresh interval in milliseconds.
type yamlDiscoverer struct {
	URL               string `yaml:"url"`
	RefreshIntervalMs int    `yaml:"refresh_interval_ms"`
}

// yamlExpiry holds the idle threshold and optional sweep interval in milliseconds
// (sweep defaults to half the threshold when omitted).
type yamlExpiry struct {
	IdleThresholdMs int `yaml:"idle_threshold_ms"`
	SweepIntervalMs int `yaml:"sweep_interval_ms"`
}

// yamlAperture holds the initial window width in nodes.
type yamlAperture struct {
	InitialWidth int `yaml:"initial_width"`
}

// loadYAMLConfig reads the YAML file at path and unmarshals it into yamlConfig.
//
// Parameter path — absolute path to the file (LoadConfig converts CONFIG_PATH to absolute via filepath.Abs).
//
// Returns: (*yamlConfig, nil) on successful read and yaml.Unmarshal; (nil, error) on os.ReadFile or yaml.Unmarshal error.
//
// Called only from LoadConfig.
func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadConfig builds balancer config from environment variables and YAML at CONFIG_PATH.
// Reads SERVICE_PORT_HTTP (required, 1–65535), CONFIG_PATH (required), REDIS_ADDR (optional).
// CONFIG_PATH is converted to absolute; YAML is loaded via loadYAMLConfig; discoverer.url and
// positive discoverer.refresh_interval_ms and expiry.idle_threshold_ms are required;
// expiry.sweep_interval_ms must not be negative (0 means threshold/2); aperture.initial_width
// defaults to 1.
//
// Parameters: none (source — os.Getenv and file at CONFIG_PATH).
//
// Returns: (*Config, nil) on success; (nil, error) on invalid port, missing CONFIG_PATH,
// YAML load/parse error or invalid discoverer/expiry/aperture values.
//
// Called only from main at startup.
func LoadConfig() (*Config, error) {
	httpPortStr := os.Getenv(envHTTPPort)
	httpPort, err := strconv.Atoi(httpPortStr)
	if err != nil || httpPortStr == "" {
		return nil, fmt.Errorf("%s must be a valid port (1-65535)", envHTTPPort)
	}
	if httpPort <= 0 || httpPort > 65535 {
		return nil, fmt.Errorf("%s must be 1-65535, got %d", envHTTPPort, httpPort)
	}
	configPath := strings.TrimSpace(os.Getenv(envConfigPath))
	if configPath == "" {
		return nil, fmt.Errorf("%s is required", envConfigPath)
	}
	if !filepath.IsAbs(configPath) {
		abs, absErr := filepath.Abs(configPath)
		if absErr != nil {
			return nil, absErr
		}
		configPath = abs
	}
	raw, err := loadYAMLConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", configPath, err)
	}

	discovererURL := strings.TrimSpace(raw.Discoverer.URL)
	if discovererURL == "" {
		return nil, fmt.Errorf("discoverer.url is required")
	}
	if raw.Discoverer.RefreshIntervalMs <= 0 {
		return nil, fmt.Errorf("discoverer.refresh_interval_ms must be positive")
	}
	if raw.Expiry.IdleThresholdMs <= 0 {
		return nil, fmt.Errorf("expiry.idle_threshold_ms must be positive")
	}
	if raw.Expiry.SweepIntervalMs < 0 {
		return nil, fmt.Errorf("expiry.sweep_interval_ms must not be negative")
	}
	width := raw.Aperture.InitialWidth
	if width < 0 {
		return nil, fmt.Errorf("aperture.initial_width must not be negative")
	}
	if width == 0 {
		width = 1
	}
	return &Config{
		HTTPPort:        httpPort,
		RedisAddr:       strings.TrimSpace(os.Getenv(envRedisAddr)),
		DiscovererURL:   discovererURL,
		RefreshInterval: time.Duration(raw.Discoverer.RefreshIntervalMs) * time.Millisecond,
		Expiry: domain.ExpiryConfig{
			IdleThreshold: time.Duration(raw.Expiry.IdleThresholdMs) * time.Millisecond,
			SweepInterval: time.Duration(raw.Expiry.SweepIntervalMs) * time.Millisecond,
		},
		ApertureWidth: width,
	}, nil
}
