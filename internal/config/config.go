package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// User delete modes
const (
	// DeleteModeStrict rolls back the task purge when the user does not exist.
	DeleteModeStrict = "strict"
	// DeleteModeLegacy commits the task purge even when the user does not exist.
	DeleteModeLegacy = "legacy"
)

type Config struct {
	DBDriver          string        `yaml:"db_driver" env:"DB_DRIVER" env-default:"sqlite"`
	DBPath            string        `yaml:"db_path" env:"DB_PATH" env-default:"taskmanager.db"`
	DBHost            string        `yaml:"db_host" env:"DB_HOST" env-default:"localhost"`
	DBPort            string        `yaml:"db_port" env:"DB_PORT" env-default:"5432"`
	DBUser            string        `yaml:"db_user" env:"DB_USER" env-default:"taskuser"`
	DBPassword        string        `yaml:"db_password" env:"DB_PASSWORD" env-default:"taskpassword"`
	DBName            string        `yaml:"db_name" env:"DB_NAME" env-default:"taskmanager"`
	DBMaxOpenConns    int           `yaml:"db_max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"10"`
	DBMaxIdleConns    int           `yaml:"db_max_idle_conns" env:"DB_MAX_IDLE_CONNS" env-default:"5"`
	DBConnMaxLifetime time.Duration `yaml:"db_conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"30m"`
	DBLogLevel        string        `yaml:"db_log_level" env:"DB_LOG_LEVEL" env-default:"warn"`

	ServerHost      string        `yaml:"server_host" env:"SERVER_HOST" env-default:"127.0.0.1"`
	ServerPort      string        `yaml:"server_port" env:"SERVER_PORT" env-default:"8000"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
	GinMode         string        `yaml:"gin_mode" env:"GIN_MODE" env-default:"debug"`
	LogLevel        string        `yaml:"log_level" env:"LOG_LEVEL" env-default:"INFO"`

	TaskSlugUnique bool   `yaml:"task_slug_unique" env:"TASK_SLUG_UNIQUE" env-default:"false"`
	UserDeleteMode string `yaml:"user_delete_mode" env:"USER_DELETE_MODE" env-default:"strict"`
}

// Load reads .env, then an optional YAML file named by CONFIG_PATH, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			var pe *os.PathError
			if !errors.As(err, &pe) {
				return nil, fmt.Errorf("read config %q: %w", path, err)
			}
			log.Printf("Config file %q not found, using environment only", path)
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				return nil, fmt.Errorf("read env: %w", err)
			}
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverSQLite, DriverPostgres, DriverMySQL:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	switch c.UserDeleteMode {
	case DeleteModeStrict, DeleteModeLegacy:
	default:
		return fmt.Errorf("unsupported USER_DELETE_MODE %q", c.UserDeleteMode)
	}

	return nil
}

// Address returns the HTTP listen address.
func (c *Config) Address() string {
	return c.ServerHost + ":" + c.ServerPort
}
