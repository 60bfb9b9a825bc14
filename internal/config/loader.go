package config

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/juristech/prazo/pkg/errors"
)

// envPrefix namespaces the engine's environment variables, e.g.
// PRAZO_CALENDAR_TTL=12h overrides calendar.ttl.
const envPrefix = "PRAZO"

// Loader reads, validates and watches the configuration.
type Loader struct {
	v *viper.Viper
}

// NewLoader prepares a viper instance with the engine's search paths and
// environment binding.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigName("prazo")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("/etc/prazo")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return &Loader{v: v}
}

// Load reads the configuration from path (or the search paths when path is
// empty), applies defaults and validates.  A missing file is tolerated when
// no explicit path was given; environment variables alone can then carry the
// configuration.
func (l *Loader) Load(path string) (*Config, error) {
	if path != "" {
		l.v.SetConfigFile(path)
	}
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && stderrors.As(err, &notFound) {
			// Env-only operation.
		} else {
			return nil, errors.Wrap(err, errors.ErrCodeValidation, "config file read failed")
		}
	}
	return l.decode()
}

func (l *Loader) decode() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeValidation, "config decode failed")
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Watch re-decodes the configuration on every file change and invokes
// onChange with the new value.  Invalid updates are dropped and reported via
// onError; the previously loaded configuration stays in effect.
func (l *Loader) Watch(onChange func(*Config), onError func(error)) {
	l.v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := l.decode()
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		onChange(cfg)
	})
	l.v.WatchConfig()
}

// Load is the package-level convenience for one-shot loading.
func Load(path string) (*Config, error) {
	return NewLoader().Load(path)
}

// MustLoad loads or panics.  Intended for main() only.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return cfg
}

//Personal.AI order the ending
