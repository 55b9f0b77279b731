package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

type Config struct {
	Storage    StorageConfig    `yaml:"storage"`
	Agent      AgentConfig      `yaml:"agent"`
	Generation GenerationConfig `yaml:"generation"`
	Export     ExportConfig     `yaml:"export"`
	LogLevel   string           `yaml:"log_level"`
	SampleMode bool             `yaml:"sample_mode"`
}

type StorageConfig struct {
	Driver   string         `yaml:"driver"`
	Slot     string         `yaml:"slot"`
	Dir      string         `yaml:"dir"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type AgentConfig struct {
	BaseURL          string        `yaml:"base_url"`
	APIKey           string        `yaml:"api_key"`
	ContentAgentID   string        `yaml:"content_agent_id"`
	ThumbnailAgentID string        `yaml:"thumbnail_agent_id"`
	Timeout          time.Duration `yaml:"timeout"`
	Retry            RetryConfig   `yaml:"retry"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

type GenerationConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	Phases       []string      `yaml:"phases"`
}

type ExportConfig struct {
	Clipboard bool           `yaml:"clipboard"`
	FileDir   string         `yaml:"file_dir"`
	RabbitMQ  RabbitMQConfig `yaml:"rabbitmq"`
}

// RabbitMQConfig enables the broker sink when URL is set.
type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

// Load reads a YAML config file, expanding ${VAR} references from the
// environment and an optional .env file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Storage.Driver == "" {
		c.Storage.Driver = DriverFile
	}
	if c.Storage.Slot == "" {
		c.Storage.Slot = "shorts_studio_content"
	}
	if c.Storage.Dir == "" {
		c.Storage.Dir = "data"
	}
	if c.Storage.Database.Port == 0 {
		c.Storage.Database.Port = 5432
	}
	if c.Storage.Database.SSLMode == "" {
		c.Storage.Database.SSLMode = "disable"
	}
	if c.Storage.Redis.Address == "" {
		c.Storage.Redis.Address = "localhost:6379"
	}
	if c.Agent.Retry.MaxAttempts == 0 {
		c.Agent.Retry.MaxAttempts = 3
	}
	if c.Agent.Retry.InitialBackoff == 0 {
		c.Agent.Retry.InitialBackoff = 1 * time.Second
	}
	if c.Agent.Retry.MaxBackoff == 0 {
		c.Agent.Retry.MaxBackoff = 30 * time.Second
	}
	if c.Generation.TickInterval == 0 {
		c.Generation.TickInterval = 2500 * time.Millisecond
	}
	if c.Export.RabbitMQ.Exchange == "" {
		c.Export.RabbitMQ.Exchange = "shorts_studio"
	}
	if c.Export.RabbitMQ.RoutingKey == "" {
		c.Export.RabbitMQ.RoutingKey = "exports"
	}
	if c.Export.RabbitMQ.QueueName == "" {
		c.Export.RabbitMQ.QueueName = "content_exports"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverFile, DriverPostgres, DriverRedis:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Agent.Retry.MaxAttempts < 0 {
		return fmt.Errorf("agent.retry.max_attempts must be positive, got %d", c.Agent.Retry.MaxAttempts)
	}
	return nil
}
