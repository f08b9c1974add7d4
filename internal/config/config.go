package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	CoinCap   CoinCapConfig   `yaml:"coincap"`
	Staging   DatabaseConfig  `yaml:"staging"`
	Warehouse DatabaseConfig  `yaml:"warehouse"`
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Logging   LoggingConfig   `yaml:"logging"`
	Api       ApiConfig       `yaml:"api"`
	Archive   ArchiveConfig   `yaml:"archive"`
}

type CoinCapConfig struct {
	BaseURL string        `yaml:"base_url"`
	ApiKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

type PipelineConfig struct {
	Name string `yaml:"name"`
	// Incremental restricts transform to staging rows newer than the
	// last checkpoint. When false every staging row is reprocessed.
	Incremental bool  `yaml:"incremental"`
	LockKey     int64 `yaml:"lock_key"`
}

type SchedulerConfig struct {
	Interval   time.Duration `yaml:"interval"`
	Retries    int           `yaml:"retries"`
	RetryDelay time.Duration `yaml:"retry_delay"`
	RunOnStart bool          `yaml:"run_on_start"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
	MaxAge int    `yaml:"max_age"`
}

type ApiConfig struct {
	Port int `yaml:"port"`
}

type ArchiveConfig struct {
	Enabled bool   `yaml:"enabled"`
	Bucket  string `yaml:"bucket"`
	Region  string `yaml:"region"`
	Prefix  string `yaml:"prefix"`
	// Endpoint points at an S3 compatible store such as MinIO
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

// DSN builds a lib/pq connection string
func (c DatabaseConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, sslMode,
	)
}

func Default() Config {
	return Config{
		CoinCap: CoinCapConfig{
			BaseURL: "https://rest.coincap.io/v3/assets",
			Timeout: 30 * time.Second,
		},
		Staging: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Name:     "staging",
			SSLMode:  "disable",
		},
		Warehouse: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Name:     "warehouse",
			SSLMode:  "disable",
		},
		Pipeline: PipelineConfig{
			Name:        "crypto_etl",
			Incremental: true,
			LockKey:     727274,
		},
		Scheduler: SchedulerConfig{
			Interval:   5 * time.Minute,
			Retries:    1,
			RetryDelay: 2 * time.Minute,
			RunOnStart: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		Api: ApiConfig{
			Port: 5001,
		},
		Archive: ArchiveConfig{
			Region: "us-east-1",
			Prefix: "coincap/assets",
		},
	}
}

// Load reads the optional yaml file at path on top of the defaults, then
// applies environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.CoinCap.BaseURL) == "" {
		return errors.New("coincap base url is required")
	}
	if c.CoinCap.Timeout < 0 {
		return errors.New("coincap timeout cannot be negative")
	}
	if c.Pipeline.Name == "" {
		return errors.New("pipeline name is required")
	}
	if c.Scheduler.Interval <= 0 {
		return errors.New("scheduler interval must be positive")
	}
	if c.Scheduler.Retries < 0 {
		return errors.New("scheduler retries cannot be negative")
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format '%s'", c.Logging.Format)
	}
	if c.Archive.Enabled && c.Archive.Bucket == "" {
		return errors.New("archive bucket is required when archive is enabled")
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.CoinCap.BaseURL, "COINCAP_API_URL")
	setString(&cfg.CoinCap.ApiKey, "COINCAP_API_KEY")

	// MYSQL_* are the names the staging area was first configured with
	setString(&cfg.Staging.Host, "MYSQL_HOST", "STAGING_DB_HOST")
	setString(&cfg.Staging.User, "MYSQL_USER", "STAGING_DB_USER")
	setString(&cfg.Staging.Password, "MYSQL_PASSWORD", "STAGING_DB_PASSWORD")
	setString(&cfg.Staging.Name, "MYSQL_DB", "STAGING_DB_NAME")
	setString(&cfg.Staging.SSLMode, "STAGING_DB_SSLMODE")
	if err := setInt(&cfg.Staging.Port, "MYSQL_PORT", "STAGING_DB_PORT"); err != nil {
		return err
	}

	setString(&cfg.Warehouse.Host, "DW_DB_HOST")
	setString(&cfg.Warehouse.User, "DW_DB_USER")
	setString(&cfg.Warehouse.Password, "DW_DB_PASSWORD")
	setString(&cfg.Warehouse.Name, "DW_DB_NAME")
	setString(&cfg.Warehouse.SSLMode, "DW_DB_SSLMODE")
	if err := setInt(&cfg.Warehouse.Port, "DW_DB_PORT"); err != nil {
		return err
	}

	setString(&cfg.Logging.Level, "LOG_LEVEL")
	setString(&cfg.Logging.Format, "LOG_FORMAT")
	setString(&cfg.Logging.Output, "LOG_OUTPUT")
	if err := setInt(&cfg.Api.Port, "API_PORT"); err != nil {
		return err
	}

	setString(&cfg.Archive.Bucket, "ARCHIVE_BUCKET")
	setString(&cfg.Archive.Region, "AWS_REGION")
	setString(&cfg.Archive.Endpoint, "ARCHIVE_ENDPOINT")
	setString(&cfg.Archive.AccessKeyID, "AWS_ACCESS_KEY_ID")
	setString(&cfg.Archive.SecretAccessKey, "AWS_SECRET_ACCESS_KEY")
	if cfg.Archive.Bucket != "" && os.Getenv("ARCHIVE_BUCKET") != "" {
		cfg.Archive.Enabled = true
	}

	if v := strings.TrimSpace(os.Getenv("PIPELINE_INCREMENTAL")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid PIPELINE_INCREMENTAL '%s': %w", v, err)
		}
		cfg.Pipeline.Incremental = b
	}
	if v := strings.TrimSpace(os.Getenv("SCHEDULER_INTERVAL")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid SCHEDULER_INTERVAL '%s': %w", v, err)
		}
		cfg.Scheduler.Interval = d
	}

	return nil
}

// setString applies the last non-empty variable in names
func setString(dest *string, names ...string) {
	for _, name := range names {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			*dest = v
		}
	}
}

func setInt(dest *int, names ...string) error {
	for _, name := range names {
		v := strings.TrimSpace(os.Getenv(name))
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s '%s': %w", name, v, err)
		}
		*dest = n
	}
	return nil
}
