package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all narrow configuration.
type Config struct {
	Relay   RelayConfig   `yaml:"relay"`
	Logging LoggingConfig `yaml:"logging"`
}

// RelayConfig configures the Kafka relay.
type RelayConfig struct {
	Brokers          []string `yaml:"brokers"`
	RequestTopic     string   `yaml:"request_topic"`
	ReportTopic      string   `yaml:"report_topic"`
	GroupID          string   `yaml:"group_id"`
	ToProduceBufSize int      `yaml:"to_produce_buf_size"`
	ToConsumeBufSize int      `yaml:"to_consume_buf_size"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Relay: RelayConfig{
			Brokers:      []string{"localhost:9092"},
			RequestTopic: "narrow.requests",
			ReportTopic:  "narrow.reports",
			GroupID:      "narrow-relay",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. An empty path loads defaults and environment
// only.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("NARROW_BROKERS"); v != "" {
		c.Relay.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("NARROW_REQUEST_TOPIC"); v != "" {
		c.Relay.RequestTopic = v
	}
	if v := os.Getenv("NARROW_REPORT_TOPIC"); v != "" {
		c.Relay.ReportTopic = v
	}
	if v := os.Getenv("NARROW_GROUP_ID"); v != "" {
		c.Relay.GroupID = v
	}
	if v := os.Getenv("NARROW_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the settings the relay cannot run without.
func (c *Config) Validate() error {
	if len(c.Relay.Brokers) == 0 {
		return fmt.Errorf("relay.brokers is required")
	}
	if c.Relay.RequestTopic == "" {
		return fmt.Errorf("relay.request_topic is required")
	}
	if c.Relay.ReportTopic == "" {
		return fmt.Errorf("relay.report_topic is required")
	}
	if c.Relay.RequestTopic == c.Relay.ReportTopic {
		return fmt.Errorf("relay.request_topic and relay.report_topic must differ")
	}
	return nil
}
