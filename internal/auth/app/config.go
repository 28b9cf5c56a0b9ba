package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// envFileVar names the optional dotenv file loaded before the environment is read.
const envFileVar = "AUTH_ENV_FILE"

type Config struct {
	TokenSecret string        `envconfig:"AUTH_TOKEN_SECRET" validate:"required,min=32"`
	TokenLeeway time.Duration `envconfig:"AUTH_TOKEN_LEEWAY" default:"0s" validate:"min=0s"`

	StoreDriver  string        `envconfig:"AUTH_STORE_DRIVER" default:"sqlite" validate:"oneof=sqlite postgres"`
	DatabaseFile string        `envconfig:"AUTH_DATABASE_FILE" default:"auth.db" validate:"required_if=StoreDriver sqlite"`
	DatabaseURL  string        `envconfig:"AUTH_DATABASE_URL" validate:"required_if=StoreDriver postgres"`
	StoreTimeout time.Duration `envconfig:"AUTH_STORE_TIMEOUT" default:"5s" validate:"min=1ms"`

	MaxConcurrentHashes int `envconfig:"AUTH_MAX_CONCURRENT_HASHES" default:"0" validate:"min=0"` // 0 means NumCPU

	Env                 string        `envconfig:"ENV" default:"dev"`
	LogLevel            string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	LogFormat           string        `envconfig:"LOG_FORMAT" default:"json" validate:"oneof=json text"`
	Port                int           `envconfig:"PORT" default:"8080" validate:"min=1,max=65535"`
	ShutdownGracePeriod time.Duration `envconfig:"SHUTDOWN_GRACE_PERIOD" default:"10s" validate:"min=0s"`

	// Never read from the environment. Stored hashes carry no iteration
	// count and issued tokens promise a 30 day lifetime, so only tests may
	// change these. Zero means the package defaults.
	TokenTTL       time.Duration `ignored:"true" validate:"min=0s"`
	HashIterations int           `ignored:"true" validate:"min=0"`
}

// LoadConfig reads an optional dotenv file, then the environment, and
// validates the result. Variables already set in the environment win over
// the file.
func LoadConfig() (*Config, error) {
	envFile := os.Getenv(envFileVar)
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints. The secret is never included in the
// returned error.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field()+" ("+fe.Tag()+")")
			}
			return fmt.Errorf("invalid configuration: %v", fields)
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsDevelopment reports whether the service runs in the dev environment.
func (c *Config) IsDevelopment() bool {
	return c != nil && c.Env == "dev"
}
