package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	JWT        JWTConfig        `yaml:"jwt"`
	Cloudinary CloudinaryConfig `yaml:"cloudinary"`
	Email      EmailConfig      `yaml:"email"`
	CORS       CORSConfig       `yaml:"cors"`
}

type ServerConfig struct {
	Host string    `yaml:"host"`
	Port string    `yaml:"port"`
	TLS  TLSConfig `yaml:"tls"`
}

type TLSConfig struct {
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type JWTConfig struct {
	SecretKey string `yaml:"secret_key"`
	Expiry    string `yaml:"expiry"`
}

type CloudinaryConfig struct {
	CloudName     string `yaml:"cloud_name"`
	APIKey        string `yaml:"api_key"`
	APISecret     string `yaml:"api_secret"`
	DefaultFolder string `yaml:"default_folder"`
}

type EmailConfig struct {
	APIKey     string `yaml:"api_key"`
	Sender     string `yaml:"sender"`
	AdminEmail string `yaml:"admin_email"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Host == "" {
		return fmt.Errorf("server host is required")
	}
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("database dsn is required")
	}

	if c.JWT.SecretKey == "" || containsPlaceholder(c.JWT.SecretKey) {
		return fmt.Errorf("jwt secret_key must be set (no placeholders allowed)")
	}
	if c.JWT.Expiry != "" {
		if _, err := time.ParseDuration(c.JWT.Expiry); err != nil {
			return fmt.Errorf("jwt expiry is not a valid duration: %w", err)
		}
	}

	if c.Cloudinary.CloudName == "" {
		return fmt.Errorf("cloudinary cloud_name is required")
	}
	if c.Cloudinary.APIKey == "" || containsPlaceholder(c.Cloudinary.APIKey) {
		return fmt.Errorf("cloudinary api_key must be set (no placeholders allowed)")
	}
	if c.Cloudinary.APISecret == "" || containsPlaceholder(c.Cloudinary.APISecret) {
		return fmt.Errorf("cloudinary api_secret must be set (no placeholders allowed)")
	}

	if c.Email.APIKey != "" && c.Email.Sender == "" {
		return fmt.Errorf("email sender is required when email api_key is set")
	}

	return nil
}

// GetJWTExpiry returns the configured token lifetime, defaulting to 24h.
func (c *Config) GetJWTExpiry() (time.Duration, error) {
	if c.JWT.Expiry == "" {
		return 24 * time.Hour, nil
	}
	return time.ParseDuration(c.JWT.Expiry)
}

// GetUploadFolder returns the default folder for signed uploads.
func (c *Config) GetUploadFolder() string {
	if c.Cloudinary.DefaultFolder == "" {
		return "uploads"
	}
	return c.Cloudinary.DefaultFolder
}

func containsPlaceholder(s string) bool {
	upper := strings.ToUpper(s)
	for _, p := range []string{"CHANGE_ME", "CHANGEME", "YOUR_VALUE_HERE", "PLACEHOLDER"} {
		if strings.Contains(upper, p) {
			return true
		}
	}
	return false
}
