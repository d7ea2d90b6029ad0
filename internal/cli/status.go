package cli

import (
	"encoding/json"
	"sort"

	"github.com/spf13/cobra"

	"github.com/fleetver-tech/fleetver/internal/infrastructure/state"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the persisted fleet version and manifest",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	store := state.NewFileStore(cfg.Fleet.StateFile)
	st, err := store.Load(cmd.Context())
	if err != nil {
		return err
	}

	if cfg.Output.JSON {
		payload := map[string]any{
			"bossVersion":      st.Current.String(),
			"previousVersion":  st.Previous.String(),
			"bumpType":         st.BumpType.String(),
			"bumpReason":       st.BumpReason,
			"lastUpdated":      st.LastUpdated,
			"lastAggregatedAt": st.LastAggregatedAt,
			"runId":            st.RunID,
			"services":         st.Services,
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(styles.Title.Render("Fleet status"))
	cmd.Printf("version: %s\n", styles.Bold.Render(st.Current.String()))
	cmd.Printf("last bump: %s (%s)\n", st.BumpType.String(), st.BumpReason)
	cmd.Printf("anchor: %s\n", st.Anchor().Format("2006-01-02 15:04:05 MST"))

	names := make([]string, 0, len(st.Services))
	for name := range st.Services {
		names = append(names, name)
	}
	sort.Strings(names)

	cmd.Println(styles.Subtle.Render("services:"))
	for _, name := range names {
		cmd.Printf("  %s: %s\n", name, st.Services[name])
	}
	return nil
}
