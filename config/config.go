package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Database struct {
		Host     string `yaml:"host"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		DBName   string `yaml:"dbname"`
		Port     string `yaml:"port"`
		SSLMode  string `yaml:"sslmode"`
	} `yaml:"database"`
	Chat struct {
		APIKey         string `yaml:"api_key"`
		BaseURL        string `yaml:"base_url"`
		Model          string `yaml:"model"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"chat"`
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
}

// GlobalConfig is the global configuration instance
var GlobalConfig Config

// DSN generates the PostgreSQL DSN from database config
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Database.Host,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.Port,
		c.Database.SSLMode,
	)
}

// LoadConfig reads and parses the YAML configuration file into
// GlobalConfig. OPENROUTER_API_KEY in the environment overrides
// chat.api_key so the secret can stay out of the file.
func LoadConfig(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, &GlobalConfig); err != nil {
		return err
	}

	if key := os.Getenv("OPENROUTER_API_KEY"); key != "" {
		GlobalConfig.Chat.APIKey = key
	}
	if GlobalConfig.Chat.Model == "" {
		GlobalConfig.Chat.Model = "mistralai/mistral-7b-instruct:free"
	}
	if GlobalConfig.Chat.TimeoutSeconds == 0 {
		GlobalConfig.Chat.TimeoutSeconds = 10
	}

	// Validate required fields
	if GlobalConfig.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if GlobalConfig.Database.User == "" {
		return fmt.Errorf("database.user is required")
	}
	if GlobalConfig.Database.Password == "" {
		return fmt.Errorf("database.password is required")
	}
	if GlobalConfig.Database.DBName == "" {
		return fmt.Errorf("database.dbname is required")
	}
	if GlobalConfig.Database.Port == "" {
		return fmt.Errorf("database.port is required")
	}
	if GlobalConfig.Database.SSLMode == "" {
		return fmt.Errorf("database.sslmode is required")
	}
	if GlobalConfig.Chat.APIKey == "" {
		return fmt.Errorf("chat.api_key or OPENROUTER_API_KEY is required")
	}
	if GlobalConfig.Server.Port < 1 || GlobalConfig.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}

	return nil
}
