package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/spiralogic/internal/cli/formatter"
	"github.com/alexanderramin/spiralogic/internal/domain"
	"github.com/alexanderramin/spiralogic/internal/repository"
	"github.com/spf13/cobra"
)

func newEventsCmd(app *App) *cobra.Command {
	var (
		limit   int
		byPhase bool
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Show recorded suggestion events",
		Long: `Show suggestion events recorded by the local analytics sink. Events are
only stored when analytics is set to "local".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive, got %d", limit)
			}
			out := cmd.OutOrStdout()

			if byPhase {
				counts, err := app.Events.PhaseCounts(cmd.Context())
				if err != nil {
					return err
				}
				if asJSON {
					if counts == nil {
						counts = []repository.PhaseCount{}
					}
					return encodeJSON(cmd, counts)
				}
				writeLine(out, formatter.FormatPhaseCounts(counts))
				return nil
			}

			events, err := app.Events.ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if asJSON {
				if events == nil {
					events = []*domain.SuggestionEvent{}
				}
				return encodeJSON(cmd, events)
			}
			if len(events) == 0 {
				writeLine(out, formatter.Dim("No events recorded."))
				return nil
			}
			writeLine(out, formatter.FormatEventList(events, time.Now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of events to show")
	cmd.Flags().BoolVar(&byPhase, "by-phase", false, "count events per detected phase")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}

func encodeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
