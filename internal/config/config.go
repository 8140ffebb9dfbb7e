package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Server struct {
		Port        int      `yaml:"port"`
		CORSOrigins []string `yaml:"corsOrigins"`
		RateLimit   struct {
			Capacity   int `yaml:"capacity"`
			RefillRate int `yaml:"refillRate"` // tokens per second
		} `yaml:"rateLimit"`
	} `yaml:"server"`

	Database struct {
		Driver   string `yaml:"driver"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
		SSLMode  string `yaml:"sslMode"`
	} `yaml:"database"`

	Minio struct {
		Enabled    bool          `yaml:"enabled"`
		Endpoint   string        `yaml:"endpoint"`
		AccessKey  string        `yaml:"accessKey"`
		SecretKey  string        `yaml:"secretKey"`
		BucketName string        `yaml:"bucketName"`
		Region     string        `yaml:"region"`
		UseSSL     bool          `yaml:"useSSL"`
		PresignTTL time.Duration `yaml:"presignTTL"`
	} `yaml:"minio"`

	OpenAI struct {
		APIKey  string `yaml:"apiKey"`
		Model   string `yaml:"model"`
		BaseURL string `yaml:"baseURL"`
	} `yaml:"openai"`

	Report struct {
		Currency string `yaml:"currency"`
	} `yaml:"report"`

	Log struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"log"`
}

// Default returns a config that runs locally without external services
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load baca file config.yaml, lalu isi default untuk field yang kosong
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"*"}
	}
	if c.Server.RateLimit.Capacity == 0 {
		c.Server.RateLimit.Capacity = 10
	}
	if c.Server.RateLimit.RefillRate == 0 {
		c.Server.RateLimit.RefillRate = 1
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverMemory
	}
	if c.Database.Port == 0 {
		switch c.Database.Driver {
		case DriverMySQL:
			c.Database.Port = 3306
		case DriverPostgres:
			c.Database.Port = 5432
		}
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Minio.BucketName == "" {
		c.Minio.BucketName = "roi-reports"
	}
	if c.Report.Currency == "" {
		c.Report.Currency = "$"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate rejects configs the server cannot start with
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	switch c.Database.Driver {
	case DriverMemory:
	case DriverMySQL, DriverPostgres:
		if c.Database.Host == "" || c.Database.Name == "" {
			errs = append(errs, fmt.Errorf("database.host and database.name are required for %s", c.Database.Driver))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown database.driver %q", c.Database.Driver))
	}
	if c.Minio.Enabled && c.Minio.Endpoint == "" {
		errs = append(errs, errors.New("minio.endpoint is required when minio is enabled"))
	}
	return errors.Join(errs...)
}

// Helper untuk build DSN MySQL
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}

// Helper untuk build DSN Postgres (URL form, lib/pq)
func (c *Config) PostgresDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port),
		Path:     "/" + c.Database.Name,
		RawQuery: url.Values{"sslmode": {c.Database.SSLMode}}.Encode(),
	}
	return u.String()
}
