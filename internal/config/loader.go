package config

import (
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"

	fverrors "github.com/fleetver-tech/fleetver/internal/errors"
)

// envVarPattern matches ${VAR} or ${VAR:-default} syntax. Compiled once at
// package initialization.
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// Loader handles configuration loading.
type Loader struct {
	v           *viper.Viper
	configPath  string
	searchPaths []string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix("FLEETVER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return &Loader{
		v:           v,
		searchPaths: []string{"."},
	}
}

// WithConfigPath sets an explicit config file path.
func (l *Loader) WithConfigPath(path string) *Loader {
	l.configPath = path
	return l
}

// WithSearchPaths adds directories to search for config files.
func (l *Loader) WithSearchPaths(paths ...string) *Loader {
	l.searchPaths = append(l.searchPaths, paths...)
	return l
}

// Load loads the configuration.
func (l *Loader) Load() (*Config, error) {
	const op = "config.Load"

	l.setDefaults()

	if err := l.loadConfigFile(); err != nil {
		return nil, fverrors.ConfigWrap(err, op, "failed to load config file")
	}

	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fverrors.ConfigWrap(err, op, "failed to unmarshal config")
	}

	cfg.GitHub.Token = expandEnvVars(cfg.GitHub.Token)
	return cfg, nil
}

// setDefaults sets default values using Viper.
func (l *Loader) setDefaults() {
	defaults := DefaultConfig()

	l.v.SetDefault("fleet.state_file", defaults.Fleet.StateFile)
	l.v.SetDefault("github.token", defaults.GitHub.Token)
	l.v.SetDefault("github.base_branch", defaults.GitHub.BaseBranch)
	l.v.SetDefault("github.page_size", defaults.GitHub.PageSize)
	l.v.SetDefault("github.commit_window", defaults.GitHub.CommitWindow)
	l.v.SetDefault("github.override_marker", defaults.GitHub.OverrideMarker)
	l.v.SetDefault("output.verbose", defaults.Output.Verbose)
	l.v.SetDefault("output.json", defaults.Output.JSON)
	l.v.SetDefault("output.no_color", defaults.Output.NoColor)
}

// loadConfigFile reads the config file. An explicit path must exist; the
// default search tolerates a missing file and runs on defaults.
func (l *Loader) loadConfigFile() error {
	if l.configPath != "" {
		l.v.SetConfigFile(l.configPath)
		return l.v.ReadInConfig()
	}

	l.v.SetConfigName("fleetver")
	l.v.SetConfigType("yaml")
	for _, path := range l.searchPaths {
		l.v.AddConfigPath(path)
	}

	if err := l.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}
	return nil
}

// expandEnvVars expands ${VAR} and ${VAR:-default} references in a value.
// An unset variable without a default expands to the empty string.
func expandEnvVars(value string) string {
	return envVarPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		if v, ok := os.LookupEnv(groups[1]); ok {
			return v
		}
		return groups[2]
	})
}
