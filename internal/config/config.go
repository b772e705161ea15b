// Package config loads user settings from the YAML config file, CADENCE_*
// environment variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/keyring"
	"github.com/julianstephens/cadence/internal/models"
	"github.com/julianstephens/cadence/internal/storage"
	"github.com/julianstephens/cadence/internal/utils"
)

// ErrEmbeddedCredentials is returned when a PostgreSQL DSN in the config or
// environment carries a password. Such DSNs belong in the keyring.
var ErrEmbeddedCredentials = errors.New("connection strings with embedded passwords must be stored with 'cadence keyring set'")

type Config struct {
	// Database is a SQLite path, a PostgreSQL DSN or "keyring".
	Database string `mapstructure:"database" yaml:"database"`
	Owner    string `mapstructure:"owner" yaml:"owner"`
	Timezone string `mapstructure:"timezone" yaml:"timezone"`
	Debug    bool   `mapstructure:"debug" yaml:"debug"`
	LogDir   string `mapstructure:"log_dir" yaml:"log_dir"`
	// RemindAt is the HH:MM time the remind command sends its digest.
	RemindAt string `mapstructure:"remind_at" yaml:"remind_at"`
}

// DefaultOwner is the OS account name, used when no owner is configured.
func DefaultOwner() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

// DefaultLogDir returns ~/.config/cadence/logs.
func DefaultLogDir() string {
	return filepath.Join(filepath.Dir(utils.ExpandHome(constants.DefaultConfigPath)), "logs")
}

// Load reads path (missing files are fine), layering environment variables
// over file values over defaults. A .env file in the working directory is
// loaded first and never overrides variables already set.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(utils.ExpandHome(path))
	v.SetConfigType("yaml")
	v.SetEnvPrefix(strings.ToUpper(constants.AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("database", constants.DefaultDatabase)
	v.SetDefault("owner", DefaultOwner())
	v.SetDefault("timezone", constants.DefaultTimezone)
	v.SetDefault("debug", false)
	v.SetDefault("log_dir", DefaultLogDir())
	v.SetDefault("remind_at", constants.DefaultRemindAt)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.LogDir = utils.ExpandHome(cfg.LogDir)
	cfg.Owner = strings.TrimSpace(cfg.Owner)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if !utils.ValidateTimezone(c.Timezone) {
		return fmt.Errorf("invalid timezone %q", c.Timezone)
	}
	if err := models.ValidateTime(c.RemindAt); err != nil {
		return fmt.Errorf("remind_at: %w", err)
	}
	return nil
}

// DatabaseDSN resolves the configured database to a SQLite path or a
// PostgreSQL connection string, reading it from the keyring when asked to.
func (c *Config) DatabaseDSN() (string, error) {
	if c.Database == constants.KeyringDatabase {
		dsn, err := keyring.GetDatabase()
		if err != nil {
			return "", err
		}
		return dsn, nil
	}

	if storage.IsPostgres(c.Database) || strings.Contains(c.Database, "host=") {
		if storage.HasEmbeddedCredentials(c.Database) {
			return "", ErrEmbeddedCredentials
		}
		return c.Database, nil
	}
	return utils.ExpandHome(c.Database), nil
}
