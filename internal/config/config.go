package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Config holds the service configuration. Values come from the environment
// (optionally preloaded from .env.local) or, when CONFIG_PATH is set, from a
// YAML file whose values the environment still overrides.
type Config struct {
	HTTPAddr string `yaml:"http_addr" env:"HTTP_ADDR" env-default:":8080"`

	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`

	// CORSAllowOrigins lists the web client origins allowed to call the API.
	CORSAllowOrigins []string `yaml:"cors_allow_origins" env:"CORS_ALLOW_ORIGINS" env-separator:"," env-default:"http://localhost:3000"`

	// AutoMigrate runs gorm AutoMigrate on startup. Intended for sqlite and
	// local development; deployments use cmd/migrate.
	AutoMigrate bool `yaml:"auto_migrate" env:"AUTO_MIGRATE" env-default:"false"`

	// SeedData loads the reference dataset into an empty database on startup.
	SeedData bool `yaml:"seed_data" env:"SEED_DATA" env-default:"false"`
}

// DatabaseConfig selects and addresses the database.
type DatabaseConfig struct {
	Driver   string `yaml:"driver" env:"DB_DRIVER" env-default:"postgres"`
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"DB_PORT"`
	User     string `yaml:"user" env:"DB_USER"`
	Password string `yaml:"-" env:"DB_PASSWORD"` // secret, env only
	Name     string `yaml:"name" env:"DB_NAME"`
	SSLMode  string `yaml:"ssl_mode" env:"DB_SSLMODE" env-default:"disable"`
	Timezone string `yaml:"timezone" env:"DB_TIMEZONE" env-default:"UTC"`

	// Path is the database file for the sqlite driver.
	Path string `yaml:"path" env:"DB_PATH" env-default:"nonresidential_fund.db"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Load reads the configuration and validates the database section.
func Load() (*Config, error) {
	// .env.local is a development convenience; missing is fine.
	_ = godotenv.Load(".env.local")

	cfg := &Config{}
	var err error
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.Database.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the fields the selected driver needs are present.
func (c *DatabaseConfig) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.Path == "" {
			return fmt.Errorf("database: DB_PATH is required for the sqlite driver")
		}
		return nil
	case DriverPostgres, DriverMySQL:
		if c.Host == "" || c.Port == "" || c.User == "" || c.Name == "" {
			return fmt.Errorf("database: DB_HOST, DB_PORT, DB_USER and DB_NAME are required for the %s driver", c.Driver)
		}
		return nil
	default:
		return fmt.Errorf("database: unsupported driver %q", c.Driver)
	}
}

// DSN returns the connection string in the selected driver's format.
func (c *DatabaseConfig) DSN() string {
	switch c.Driver {
	case DriverMySQL:
		// Param values must be query-escaped; zone names contain a slash.
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=%s",
			c.User, c.Password, c.Host, c.Port, c.Name, url.QueryEscape(c.Timezone))
	case DriverSQLite:
		return c.Path
	default:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode, c.Timezone)
	}
}
