// Package config loads application configuration from YAML files with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."

	defaultHistoryMaxEntries = 20
	defaultFavouritesLimit   = 5
	defaultExportAppName     = "OrderPad"
	defaultTheme             = "dark"
	defaultStoragePath       = "./data"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Storage configuration for the durable local key-value store
	Storage StorageConfig `json:"storage" yaml:"storage"`

	// Seed configuration for the one-time default catalog import
	Seed *SeedConfig `json:"seed" yaml:"seed"`

	// History configuration for the order log
	History HistoryConfig `json:"history" yaml:"history"`

	// Favourites configuration for the usage ranking
	Favourites FavouritesConfig `json:"favourites" yaml:"favourites"`

	// Export configuration for CSV downloads
	Export ExportConfig `json:"export" yaml:"export"`

	// Theme configuration for the display preference
	Theme ThemeConfig `json:"theme" yaml:"theme"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines where the local key-value store lives on disk
type StorageConfig struct {
	Path string `json:"path" yaml:"path"`
}

// SeedConfig defines where the default catalog document comes from.
// URL takes precedence over Path when both are set.
type SeedConfig struct {
	URL     string        `json:"url" yaml:"url"`
	Path    string        `json:"path" yaml:"path"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// HistoryConfig defines order log limits
type HistoryConfig struct {
	// MaxEntries caps the log; older entries are pruned on save. Zero
	// disables pruning.
	MaxEntries int `json:"maxEntries" yaml:"maxEntries"`
}

// FavouritesConfig defines the usage ranking size
type FavouritesConfig struct {
	Limit int `json:"limit" yaml:"limit"`
}

// ExportConfig defines CSV export settings
type ExportConfig struct {
	// AppName prefixes exported file names: <AppName>_History_<month>-<year>.csv
	AppName string `json:"appName" yaml:"appName"`
}

// ThemeConfig defines the display preference defaults
type ThemeConfig struct {
	Default string `json:"default" yaml:"default"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: HISTORY_MAXENTRIES -> history.maxEntries (not history.maxentries)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.History.MaxEntries == 0 {
		cfg.History.MaxEntries = defaultHistoryMaxEntries
	}
	if cfg.Favourites.Limit == 0 {
		cfg.Favourites.Limit = defaultFavouritesLimit
	}
	if strings.TrimSpace(cfg.Export.AppName) == "" {
		cfg.Export.AppName = defaultExportAppName
	}
	if strings.TrimSpace(cfg.Theme.Default) == "" {
		cfg.Theme.Default = defaultTheme
	}
	if strings.TrimSpace(cfg.Storage.Path) == "" {
		cfg.Storage.Path = defaultStoragePath
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
