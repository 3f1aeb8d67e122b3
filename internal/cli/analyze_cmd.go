package cli

import (
	"encoding/json"

	"github.com/alexanderramin/spiralogic/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(a *App) *cobra.Command {
	var (
		file   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [ENTRY...]",
		Short: "Show the phase, tones and themes detected in an entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readEntry(cmd, a, args, file)
			if err != nil {
				return err
			}

			res := a.Suggestions.Analyze(cmd.Context(), text)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatAnalysis(res))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", `read the entry from a file ("-" for stdin)`)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the analysis as JSON")

	return cmd
}
