package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fleetver-tech/fleetver/internal/domain/fleet"
	"github.com/fleetver-tech/fleetver/internal/domain/version"
	"github.com/fleetver-tech/fleetver/internal/infrastructure/state"
)

var (
	initVersion string
	initForce   bool
)

func init() {
	initCmd.Flags().StringVar(&initVersion, "version", "0.1.0", "initial fleet version")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing files")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Seed a starter config file and fleet state",
	RunE:  runInit,
}

// seedConfig mirrors the config schema with yaml tags for the starter file.
type seedConfig struct {
	Fleet struct {
		StateFile string        `yaml:"state_file"`
		Services  []seedService `yaml:"services"`
	} `yaml:"fleet"`
	GitHub struct {
		Token          string `yaml:"token"`
		BaseBranch     string `yaml:"base_branch"`
		PageSize       int    `yaml:"page_size"`
		CommitWindow   int    `yaml:"commit_window"`
		OverrideMarker string `yaml:"override_marker"`
	} `yaml:"github"`
}

type seedService struct {
	Name       string `yaml:"name"`
	Repository string `yaml:"repository"`
	Tier       int    `yaml:"tier"`
}

func runInit(cmd *cobra.Command, args []string) error {
	seed, err := version.Parse(initVersion)
	if err != nil {
		return err
	}

	const configFile = "fleetver.yaml"
	if _, err := os.Stat(configFile); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configFile)
	}

	var sc seedConfig
	sc.Fleet.StateFile = ".fleetver/state.json"
	sc.Fleet.Services = []seedService{
		{Name: "example-service", Repository: "your-org/example-service", Tier: 1},
	}
	sc.GitHub.Token = "${GITHUB_TOKEN}"
	sc.GitHub.BaseBranch = "main"
	sc.GitHub.PageSize = 50
	sc.GitHub.CommitWindow = 10
	sc.GitHub.OverrideMarker = "[priority-release]"

	data, err := yaml.Marshal(&sc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(configFile, data, 0o644); err != nil {
		return err
	}
	cmd.Println(styles.Success.Render("created " + configFile))

	stateFile := sc.Fleet.StateFile
	if _, err := os.Stat(stateFile); err == nil && !initForce {
		cmd.Println(styles.Subtle.Render(stateFile + " already exists, leaving it untouched"))
		return nil
	}

	now := time.Now().UTC()
	store := state.NewFileStore(stateFile)
	if err := store.Save(cmd.Context(), &fleet.State{
		Current:          seed,
		Previous:         seed,
		BumpType:         version.LevelNone,
		BumpReason:       "initial seed",
		LastUpdated:      now,
		LastAggregatedAt: now,
		Services:         map[string]string{},
	}); err != nil {
		return err
	}
	cmd.Println(styles.Success.Render("created " + stateFile))
	cmd.Println(styles.Subtle.Render("edit fleetver.yaml to list your services, then run 'fleetver aggregate'"))
	return nil
}
