// Package config loads runtime settings with viper. Values are read once at
// startup and handed to constructors by value.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"glassjoke/internal/container"
	"glassjoke/internal/work"

	"github.com/spf13/viper"
)

const envPrefix = "GLASSJOKE"

// Limits are the construction guards of the core model.
type Limits struct {
	MaxCapacity       int           `mapstructure:"max_capacity"`
	MaxInterval       time.Duration `mapstructure:"max_interval"`
	DefaultEntityName string        `mapstructure:"default_entity_name"`
}

// Container converts to container.Limits.
func (l Limits) Container() container.Limits {
	return container.Limits{MaxCapacity: l.MaxCapacity}
}

// Work converts to work.Limits.
func (l Limits) Work() work.Limits {
	return work.Limits{MaxIntervalDuration: l.MaxInterval}
}

// Day holds the defaults of a simulated day. Requests override them field by field.
type Day struct {
	Employee         string        `mapstructure:"employee"`
	Start            string        `mapstructure:"start"`
	End              string        `mapstructure:"end"`
	BreakStart       string        `mapstructure:"break_start"`
	NoBreak          bool          `mapstructure:"no_break"`
	Step             time.Duration `mapstructure:"step"`
	ContainerType    string        `mapstructure:"container_type"`
	Capacity         int           `mapstructure:"capacity"`
	InitialKind      string        `mapstructure:"initial_kind"`
	InitialAmount    int           `mapstructure:"initial_amount"`
	RefillKind       string        `mapstructure:"refill_kind"`
	RoomTemperatureC float64       `mapstructure:"room_temperature_c"`
	WorkIntensity    int           `mapstructure:"work_intensity"`
	Seed             uint64        `mapstructure:"seed"`
}

type DB struct {
	Path string `mapstructure:"path"`
}

// Auth configures operator tokens. An empty SecretHash disables auth.
type Auth struct {
	SigningKey string        `mapstructure:"signing_key"`
	SecretHash string        `mapstructure:"secret_hash"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
}

type Server struct {
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

type Config struct {
	Port     string `mapstructure:"port"`
	LogLevel string `mapstructure:"log_level"`
	Limits   Limits `mapstructure:"limits"`
	Day      Day    `mapstructure:"day"`
	DB       DB     `mapstructure:"db"`
	Auth     Auth   `mapstructure:"auth"`
	Server   Server `mapstructure:"server"`
}

// SetDefaults registers a default for every key so env overrides work
// without a config file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")

	v.SetDefault("limits.max_capacity", container.DefaultMaxCapacity)
	v.SetDefault("limits.max_interval", work.DefaultMaxIntervalDuration)
	v.SetDefault("limits.default_entity_name", "unknown")

	v.SetDefault("day.employee", "")
	v.SetDefault("day.start", "09:00")
	v.SetDefault("day.end", "17:00")
	v.SetDefault("day.break_start", "12:00")
	v.SetDefault("day.no_break", false)
	v.SetDefault("day.step", time.Hour)
	v.SetDefault("day.container_type", string(container.Glass))
	v.SetDefault("day.capacity", 500)
	v.SetDefault("day.initial_kind", string(container.Water))
	v.SetDefault("day.initial_amount", 500)
	v.SetDefault("day.refill_kind", string(container.Water))
	v.SetDefault("day.room_temperature_c", 24.0)
	v.SetDefault("day.work_intensity", 50000)
	v.SetDefault("day.seed", 0)

	v.SetDefault("db.path", "glassjoke.db")

	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.secret_hash", "")
	v.SetDefault("auth.token_ttl", time.Hour)

	v.SetDefault("server.read_header_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
}

// NewViper returns a viper instance with defaults and env binding.
// A non-empty path selects an explicit config file, otherwise
// configs/config.yml is looked up if present.
func NewViper(path string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("configs")
		v.SetConfigName("config")
	}
	return v
}

// Read reads the config file into v. A missing default file is not an error.
func Read(v *viper.Viper) error {
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// FromViper decodes v into a Config and validates it.
func FromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load is NewViper + Read + FromViper.
func Load(path string) (Config, error) {
	v := NewViper(path)
	if err := Read(v); err != nil {
		return Config{}, err
	}
	return FromViper(v)
}

// Validate rejects limits the core model cannot honour.
func (c Config) Validate() error {
	var errs []error
	if c.Limits.MaxCapacity < 0 {
		errs = append(errs, fmt.Errorf("limits.max_capacity must be >= 0, got %d", c.Limits.MaxCapacity))
	}
	if c.Limits.MaxInterval < 0 {
		errs = append(errs, fmt.Errorf("limits.max_interval must be >= 0, got %s", c.Limits.MaxInterval))
	}
	if c.Day.Step <= 0 {
		errs = append(errs, fmt.Errorf("day.step must be positive, got %s", c.Day.Step))
	}
	if c.Auth.SecretHash != "" && c.Auth.SigningKey == "" {
		errs = append(errs, errors.New("auth.signing_key is required when auth.secret_hash is set"))
	}
	return errors.Join(errs...)
}
