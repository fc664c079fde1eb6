package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"

	"github.com/jwalitptl/health-indicators/pkg/validator"
)

type Config struct {
	Generator GeneratorConfig `mapstructure:"generator"`
	Output    OutputConfig    `mapstructure:"output"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Log       LogConfig       `mapstructure:"log"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Cache     CacheConfig     `mapstructure:"cache"`
}

type GeneratorConfig struct {
	RecordsPerBarangay int   `mapstructure:"records_per_barangay" validate:"min=0"`
	CSVLookbackDays    int   `mapstructure:"csv_lookback_days" validate:"min=0"`
	SampleLookbackDays int   `mapstructure:"sample_lookback_days" validate:"min=0"`
	Seed               int64 `mapstructure:"seed"`
}

type OutputConfig struct {
	SamplePath string `mapstructure:"sample_path" validate:"required"`
}

// DatabaseConfig is only consulted when statements are applied or residents are linked.
type DatabaseConfig struct {
	Host     string `mapstructure:"host" envconfig:"host"`
	Port     int    `mapstructure:"port" envconfig:"port" validate:"min=1,max=65535"`
	User     string `mapstructure:"user" envconfig:"user"`
	Password string `mapstructure:"password" envconfig:"password"`
	Name     string `mapstructure:"name" envconfig:"name"`
	SSLMode  string `mapstructure:"sslmode" envconfig:"sslmode" validate:"oneof=disable allow prefer require verify-ca verify-full"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

type MetricsConfig struct {
	File string `mapstructure:"file"`
}

type CacheConfig struct {
	ResidentTTL time.Duration `mapstructure:"resident_ttl"`
}

// DSN renders the lib/pq connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.Name,
		c.SSLMode,
	)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("generator.records_per_barangay", 3)
	v.SetDefault("generator.csv_lookback_days", 90)
	v.SetDefault("generator.sample_lookback_days", 365)
	v.SetDefault("generator.seed", 0)

	v.SetDefault("output.sample_path", "HEALTH_INDICATORS_SAMPLE_DATA.sql")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "postgres")
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("log.level", "info")
	v.SetDefault("metrics.file", "")
	v.SetDefault("cache.resident_ttl", 10*time.Minute)
}

// LoadConfig reads the yaml config (explicit path, or "config.yaml" in . and ./config),
// applies SEEDER_* and DB_* environment overrides and validates the result.
// A missing config file is not an error unless path was given explicitly.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("seeder")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Override with DB_* environment variables if present
	if err := envconfig.Process("db", &config.Database); err != nil {
		return nil, fmt.Errorf("failed to read database environment: %w", err)
	}

	if err := validator.New().Validate(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}
