package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"db"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Jobs   JobsConfig   `mapstructure:"jobs"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type DBConfig struct {
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}

type AuthConfig struct {
	// RestockToken protects the updateLowStockProducts mutation. Empty means
	// the mutation is open.
	RestockToken string `mapstructure:"restockToken"`
}

type JobsConfig struct {
	Endpoint             string `mapstructure:"endpoint"`
	Token                string `mapstructure:"token"`
	RestockLog           string `mapstructure:"restockLog"`
	ReminderLog          string `mapstructure:"reminderLog"`
	HeartbeatLog         string `mapstructure:"heartbeatLog"`
	ReminderLookbackDays int    `mapstructure:"reminderLookbackDays"`
}

// LoadConfig loads configuration from config.yaml and environment variables
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.gocrm/")
	v.AddConfigPath("/etc/gocrm/")

	// Enable environment variable override with GOCRM_ prefix
	v.SetEnvPrefix("GOCRM")
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8000")
	v.SetDefault("db.maxOpenConns", 10)
	v.SetDefault("jobs.endpoint", "http://localhost:8000/graphql")
	v.SetDefault("jobs.restockLog", "/tmp/low_stock_updates_log.txt")
	v.SetDefault("jobs.reminderLog", "/tmp/order_reminders_log.txt")
	v.SetDefault("jobs.heartbeatLog", "/tmp/crm_heartbeat_log.txt")
	v.SetDefault("jobs.reminderLookbackDays", 7)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
