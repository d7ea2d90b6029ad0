package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fleetver-tech/fleetver/internal/application/aggregate"
	"github.com/fleetver-tech/fleetver/internal/domain/version"
	"github.com/fleetver-tech/fleetver/internal/infrastructure/github"
	"github.com/fleetver-tech/fleetver/internal/infrastructure/state"
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Evaluate the fleet and advance the fleet version",
	Long: `Aggregate evaluates every configured service in order, combines the
release-tag delta and pull-request label signals under the tier caps, and
persists the resulting fleet version together with a fresh anchor.

With --dry-run the decision is computed and printed but the state file is
left untouched.`,
	RunE: runAggregate,
}

func runAggregate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	services, err := cfg.FleetServices()
	if err != nil {
		return err
	}

	client, err := github.NewClient(ctx, github.Options{
		Token:      cfg.GitHub.Token,
		BaseURL:    cfg.GitHub.APIURL,
		BaseBranch: cfg.GitHub.BaseBranch,
	})
	if err != nil {
		return err
	}

	store := state.NewFileStore(cfg.Fleet.StateFile)
	uc := aggregate.New(
		services,
		client,
		aggregate.NewOverrideDetector(client, cfg.GitHub.OverrideMarker, cfg.GitHub.CommitWindow),
		aggregate.NewCollector(client, cfg.GitHub.PageSize),
		store,
	)

	out, err := uc.Execute(ctx, aggregate.Input{DryRun: dryRun})
	if err != nil {
		return err
	}

	if cfg.Output.JSON {
		return printAggregateJSON(cmd, out)
	}
	printAggregate(cmd, out)
	return nil
}

func printAggregate(cmd *cobra.Command, out *aggregate.Output) {
	st := out.State

	cmd.Println(styles.Title.Render("Fleet version aggregation"))
	if dryRun {
		cmd.Println(styles.Warning.Render("dry run: state file not updated"))
	}
	if out.Overridden {
		cmd.Println(styles.Error.Render(
			fmt.Sprintf("PRIORITY OVERRIDE (%s): forced major bump", out.OverrideService)))
	}

	bumpLine := fmt.Sprintf("bump: %s", strings.ToUpper(st.BumpType.String()))
	if st.BumpType == version.LevelNone {
		cmd.Println(styles.Subtle.Render(bumpLine))
	} else {
		cmd.Println(styles.Success.Render(bumpLine))
	}
	cmd.Printf("version: %s -> %s\n",
		st.Previous.String(), styles.Bold.Render(st.Current.String()))
	cmd.Printf("reason: %s\n", st.BumpReason)
	cmd.Printf("anchor: %s\n", st.LastAggregatedAt.Format("2006-01-02 15:04:05 MST"))

	names := make([]string, 0, len(st.Services))
	for name := range st.Services {
		names = append(names, name)
	}
	sort.Strings(names)

	cmd.Println(styles.Subtle.Render("services:"))
	for _, name := range names {
		cmd.Printf("  %s: %s\n", name, st.Services[name])
	}
}

func printAggregateJSON(cmd *cobra.Command, out *aggregate.Output) error {
	st := out.State
	payload := map[string]any{
		"bossVersion":      st.Current.String(),
		"previousVersion":  st.Previous.String(),
		"bumpType":         st.BumpType.String(),
		"bumpReason":       st.BumpReason,
		"lastAggregatedAt": st.LastAggregatedAt,
		"runId":            st.RunID,
		"services":         st.Services,
		"overridden":       out.Overridden,
		"dryRun":           dryRun,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(data))
	return nil
}
