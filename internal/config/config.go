package config

import (
	"fmt"
	"time"

	"go-ims/pkg/validator"

	"github.com/spf13/viper"
)

// Config holds every setting the server and the admin CLI read from the environment.
type Config struct {
	AppEnv   string `mapstructure:"APP_ENV" validate:"required"`
	LogLevel string `mapstructure:"LOG_LEVEL" validate:"required,oneof=trace debug info warn error"`
	HTTPPort string `mapstructure:"HTTP_PORT" validate:"required,numeric"`

	DBDriver    string `mapstructure:"DB_DRIVER" validate:"required,oneof=sqlite postgres"`
	DBPath      string `mapstructure:"DB_PATH" validate:"required_if=DBDriver sqlite"`
	DatabaseURL string `mapstructure:"DATABASE_URL" validate:"required_if=DBDriver postgres"`

	StaticDir string `mapstructure:"STATIC_DIR"`
	BillDir   string `mapstructure:"BILL_DIR" validate:"required"`

	BackupDir         string        `mapstructure:"BACKUP_DIR" validate:"required"`
	BackupShell       string        `mapstructure:"BACKUP_SHELL" validate:"required"`
	PredictPython     string        `mapstructure:"PREDICT_PYTHON" validate:"required"`
	BackupStepTimeout time.Duration `mapstructure:"BACKUP_STEP_TIMEOUT" validate:"gte=0"`
}

var defaults = map[string]any{
	"APP_ENV":             "development",
	"LOG_LEVEL":           "info",
	"HTTP_PORT":           "4000",
	"DB_DRIVER":           "sqlite",
	"DB_PATH":             "ims.db",
	"DATABASE_URL":        "",
	"STATIC_DIR":          "",
	"BILL_DIR":            "bill",
	"BACKUP_DIR":          "backup",
	"BACKUP_SHELL":        "powershell",
	"PREDICT_PYTHON":      "python",
	"BACKUP_STEP_TIMEOUT": "0s",
}

// Load reads the configuration from the process environment. The .env file, if any,
// is expected to be loaded by the caller beforehand.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := validator.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
