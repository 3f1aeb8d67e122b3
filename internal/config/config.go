// Package config resolves runtime settings from defaults, an optional YAML
// file, SPIRALOGIC_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix namespaces environment overrides, e.g. SPIRALOGIC_DB.
const EnvPrefix = "SPIRALOGIC"

// Keys understood in config files, environment and flag bindings.
const (
	KeyDB               = "db"
	KeyLexiconFile      = "lexicon_file"
	KeyLogLevel         = "log_level"
	KeyStore            = "store"
	KeySupabaseURL      = "supabase_url"
	KeySupabaseKey      = "supabase_key"
	KeyAPIBaseURL       = "api_base_url"
	KeyRequestTimeoutMs = "request_timeout_ms"
	KeyAnalytics        = "analytics"
	KeyResultCount      = "result_count"
	KeyListenAddr       = "listen_addr"
)

// StoreMode selects where the primary prompt tier reads from.
type StoreMode string

const (
	StoreLocal  StoreMode = "local"
	StoreRemote StoreMode = "remote"
)

// AnalyticsMode selects where suggestion events are recorded.
type AnalyticsMode string

const (
	AnalyticsOff    AnalyticsMode = "off"
	AnalyticsLocal  AnalyticsMode = "local"
	AnalyticsRemote AnalyticsMode = "remote"
)

type Config struct {
	DBPath           string        `mapstructure:"db"`
	LexiconFile      string        `mapstructure:"lexicon_file"`
	LogLevel         string        `mapstructure:"log_level"`
	Store            StoreMode     `mapstructure:"store"`
	SupabaseURL      string        `mapstructure:"supabase_url"`
	SupabaseKey      string        `mapstructure:"supabase_key"`
	APIBaseURL       string        `mapstructure:"api_base_url"`
	RequestTimeoutMs int           `mapstructure:"request_timeout_ms"`
	Analytics        AnalyticsMode `mapstructure:"analytics"`
	ResultCount      int           `mapstructure:"result_count"`
	ListenAddr       string        `mapstructure:"listen_addr"`
}

// Dir returns the per-user spiralogic directory, ~/.spiralogic.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".spiralogic"
	}
	return filepath.Join(home, ".spiralogic")
}

// DefaultConfig returns a local-only configuration: SQLite prompts and
// events, no remote tiers.
func DefaultConfig() Config {
	return Config{
		DBPath:           filepath.Join(Dir(), "spiralogic.db"),
		LogLevel:         "warn",
		Store:            StoreLocal,
		RequestTimeoutMs: 5000,
		Analytics:        AnalyticsLocal,
		ResultCount:      3,
		ListenAddr:       "127.0.0.1:8080",
	}
}

// NewViper returns a viper instance seeded with defaults and env bindings.
func NewViper() *viper.Viper {
	v := viper.New()
	def := DefaultConfig()
	defaults := map[string]any{
		KeyDB:               def.DBPath,
		KeyLexiconFile:      def.LexiconFile,
		KeyLogLevel:         def.LogLevel,
		KeyStore:            string(def.Store),
		KeySupabaseURL:      def.SupabaseURL,
		KeySupabaseKey:      def.SupabaseKey,
		KeyAPIBaseURL:       def.APIBaseURL,
		KeyRequestTimeoutMs: def.RequestTimeoutMs,
		KeyAnalytics:        string(def.Analytics),
		KeyResultCount:      def.ResultCount,
		KeyListenAddr:       def.ListenAddr,
	}
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds config keys to the flags in fs that carry them. flags maps
// config key to flag name; flags missing from fs are skipped.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet, flags map[string]string) error {
	for key, name := range flags {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}
	return nil
}

// Load reads the config file, if any, and resolves the final Config. An
// explicit file must exist; the default ~/.spiralogic/config.yaml is optional.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", file, err)
		}
	} else {
		v.AddConfigPath(Dir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Store = StoreMode(strings.ToLower(string(cfg.Store)))
	cfg.Analytics = AnalyticsMode(strings.ToLower(string(cfg.Analytics)))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	switch c.Store {
	case StoreLocal:
	case StoreRemote:
		if c.SupabaseURL == "" {
			return fmt.Errorf("store=remote requires %s", KeySupabaseURL)
		}
	default:
		return fmt.Errorf("invalid %s %q (want local or remote)", KeyStore, c.Store)
	}
	switch c.Analytics {
	case AnalyticsOff, AnalyticsLocal:
	case AnalyticsRemote:
		if c.SupabaseURL == "" {
			return fmt.Errorf("analytics=remote requires %s", KeySupabaseURL)
		}
	default:
		return fmt.Errorf("invalid %s %q (want off, local or remote)", KeyAnalytics, c.Analytics)
	}
	if c.RequestTimeoutMs <= 0 {
		return fmt.Errorf("%s must be positive, got %d", KeyRequestTimeoutMs, c.RequestTimeoutMs)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid %s: %w", KeyLogLevel, err)
	}
	return nil
}

// RequestTimeout is the per-call bound for remote stores and sinks.
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMs) * time.Millisecond
}

