package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the complete application configuration
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Billing  BillingConfig  `mapstructure:"billing"`
	UI       UIConfig       `mapstructure:"ui"`
}

// DatabaseConfig defines the sqlite storage settings
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// RedisConfig defines the local timer store connection
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LoggingConfig defines logging behavior
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// BillingConfig defines billing behavior
type BillingConfig struct {
	// TickInterval is how often running timers are recomputed, e.g. "1s"
	TickInterval string `mapstructure:"tick_interval"`
}

// UIConfig defines dashboard settings
type UIConfig struct {
	// PIN gates the dashboard. Compared client-side, not a security boundary.
	PIN string `mapstructure:"pin"`
}

// Load reads configuration from the given file (optional), the environment
// and built-in defaults, in that order of increasing precedence for env.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("TMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// An explicitly named file must exist; only the no-flag default path
	// falls back to env and defaults.
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", defaultDatabasePath())
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("billing.tick_interval", "1s")
	v.SetDefault("ui.pin", "0000")
}

func defaultDatabasePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "games.db"
	}
	return filepath.Join(homeDir, ".tms", "games.db")
}
