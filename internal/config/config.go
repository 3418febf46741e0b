// Package config loads gemini-cli settings from an optional config file and
// GEMINI_CLI_* environment variables, and resolves the API key.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// APIKeyEnv is the environment variable read when no --api-key override
	// is given.
	APIKeyEnv = "GEMINI_API_KEY"
	// ConfigEnv names an explicit config file.
	ConfigEnv = "GEMINI_CLI_CONFIG"

	// DefaultModel is tried first.
	DefaultModel = "gemini-2.0-flash-exp"
	// DefaultFallbackModel is used when DefaultModel is unavailable.
	DefaultFallbackModel = "gemini-1.5-flash"

	// APIKeyURL is where users can obtain a key.
	APIKeyURL = "https://makersuite.google.com/app/apikey"

	configName = ".gemini-cli"
	envPrefix  = "GEMINI_CLI"
)

// ErrNoAPIKey is returned when neither the override nor APIKeyEnv yields a
// non-empty key.
var ErrNoAPIKey = errors.New("No API key provided. Set " + APIKeyEnv + " environment variable or pass --api-key")

// Settings holds the resolved runtime configuration.
type Settings struct {
	Model         string
	FallbackModel string
	// BaseURL overrides the Gemini API endpoint. Empty uses the library default.
	BaseURL  string
	Debug    bool
	Markdown bool
	Spinner  bool
}

// setDefaults registers defaults for every key Load reads.
func setDefaults() {
	viper.SetDefault("model", DefaultModel)
	viper.SetDefault("fallback-model", DefaultFallbackModel)
	viper.SetDefault("base-url", "")
	viper.SetDefault("debug", false)
	viper.SetDefault("markdown", false)
	viper.SetDefault("spinner", false)
}

// Init prepares viper. configFile, or GEMINI_CLI_CONFIG when configFile is
// empty, names an explicit file; otherwise .gemini-cli.{yml,yaml,json} is
// searched for in the current directory and then the home directory. A
// missing file is not an error. It returns the path of the file loaded, if any.
func Init(configFile string) (string, error) {
	setDefaults()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if configFile == "" {
		configFile = os.Getenv(ConfigEnv)
	}
	if configFile != "" {
		if err := LoadFile(configFile); err != nil {
			return "", err
		}
		return configFile, nil
	}

	// Current directory has higher priority than home directory.
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetConfigName(configName)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("error reading config file: %w", err)
	}

	path := viper.ConfigFileUsed()
	if err := LoadFile(path); err != nil {
		return "", err
	}
	return path, nil
}

// LoadFile reads path, expands ${env://VAR} references and merges the result
// into viper.
func LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	content, err := ExpandEnv(string(raw), os.Getenv)
	if err != nil {
		return fmt.Errorf("error reading config file '%s': %w", path, err)
	}

	configType := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".json") {
		configType = "json"
	}
	viper.SetConfigType(configType)
	if err := viper.ReadConfig(strings.NewReader(content)); err != nil {
		return fmt.Errorf("error parsing config file '%s': %w", path, err)
	}
	return nil
}

// Load returns the current settings.
func Load() Settings {
	s := Settings{
		Model:         viper.GetString("model"),
		FallbackModel: viper.GetString("fallback-model"),
		BaseURL:       viper.GetString("base-url"),
		Debug:         viper.GetBool("debug"),
		Markdown:      viper.GetBool("markdown"),
		Spinner:       viper.GetBool("spinner"),
	}
	if s.Model == "" {
		s.Model = DefaultModel
	}
	if s.FallbackModel == "" {
		s.FallbackModel = DefaultFallbackModel
	}
	return s
}

// ResolveAPIKey returns override when it is non-empty, otherwise the value of
// APIKeyEnv as reported by getenv. It returns ErrNoAPIKey when both are empty.
func ResolveAPIKey(override string, getenv func(string) string) (string, error) {
	if override != "" {
		return override, nil
	}
	if key := getenv(APIKeyEnv); key != "" {
		return key, nil
	}
	return "", ErrNoAPIKey
}
