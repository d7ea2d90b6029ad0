// Package config provides configuration management for fleetver.
package config

// Config is the root configuration for fleetver.
type Config struct {
	// Fleet configures the service fleet and state persistence.
	Fleet FleetConfig `mapstructure:"fleet" json:"fleet"`
	// GitHub configures the GitHub collaborators.
	GitHub GitHubConfig `mapstructure:"github" json:"github"`
	// Output configures output settings.
	Output OutputConfig `mapstructure:"output" json:"output"`
}

// FleetConfig configures the service fleet and state persistence.
type FleetConfig struct {
	// StateFile is the path of the persisted fleet state.
	StateFile string `mapstructure:"state_file" json:"state_file"`
	// Services is the ordered list of fleet members. Evaluation order is
	// this order.
	Services []ServiceConfig `mapstructure:"services" json:"services"`
}

// ServiceConfig is one configured fleet member.
type ServiceConfig struct {
	// Name is the unique service name used in the state manifest.
	Name string `mapstructure:"name" json:"name"`
	// Repository is the "owner/name" repository identifier.
	Repository string `mapstructure:"repository" json:"repository"`
	// Tier is the service importance tier (1=critical, 2=important,
	// 3=supporting).
	Tier int `mapstructure:"tier" json:"tier"`
}

// GitHubConfig configures the GitHub collaborators.
type GitHubConfig struct {
	// Token is the API token; supports ${VAR} expansion.
	Token string `mapstructure:"token" json:"token,omitempty"`
	// APIURL points at a GitHub Enterprise instance when set.
	APIURL string `mapstructure:"api_url" json:"api_url,omitempty"`
	// BaseBranch is the fixed target branch pull requests are filtered to.
	BaseBranch string `mapstructure:"base_branch" json:"base_branch"`
	// PageSize is the fixed pull-request page size.
	PageSize int `mapstructure:"page_size" json:"page_size"`
	// CommitWindow is how many recent commits the priority-override check
	// inspects per service.
	CommitWindow int `mapstructure:"commit_window" json:"commit_window"`
	// OverrideMarker is the literal commit-message token that forces an
	// unconditional major bump. Matched case-insensitively.
	OverrideMarker string `mapstructure:"override_marker" json:"override_marker"`
}

// OutputConfig configures output settings.
type OutputConfig struct {
	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose" json:"verbose"`
	// JSON prints results as JSON.
	JSON bool `mapstructure:"json" json:"json"`
	// NoColor disables colored output.
	NoColor bool `mapstructure:"no_color" json:"no_color"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Fleet: FleetConfig{
			StateFile: ".fleetver/state.json",
		},
		GitHub: GitHubConfig{
			Token:          "${GITHUB_TOKEN}",
			BaseBranch:     "main",
			PageSize:       50,
			CommitWindow:   10,
			OverrideMarker: "[priority-release]",
		},
	}
}
