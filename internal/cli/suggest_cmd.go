package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexanderramin/spiralogic/internal/app"
	"github.com/alexanderramin/spiralogic/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func defaultUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "anonymous"
}

func newSuggestCmd(a *App) *cobra.Command {
	var (
		file       string
		userID     string
		count      int
		asJSON     bool
		noAnalysis bool
		explain    bool
	)

	cmd := &cobra.Command{
		Use:   "suggest [ENTRY...]",
		Short: "Suggest journal prompts for an entry",
		Long: `Suggest journal prompts for an entry given as arguments, read from --file,
typed into an interactive form, or piped on stdin.`,
		Example: `  spiralogic suggest "I feel stuck and restless, searching for something new"
  echo "grounded and steady today" | spiralogic suggest --json
  spiralogic suggest --file today.md --explain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readEntry(cmd, a, args, file)
			if err != nil {
				return err
			}

			req := app.NewSuggestRequest(userID, text)
			req.IncludeAnalysis = !noAnalysis
			if a.ResultCount > 0 {
				req.ResultCount = a.ResultCount
			}
			if cmd.Flags().Changed("count") {
				if count <= 0 {
					return fmt.Errorf("--count must be positive, got %d", count)
				}
				req.ResultCount = count
			}

			var stop func()
			if a.Interactive && !asJSON {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Reading the elements...")
			}
			res := a.Suggestions.AnalyzeAndSuggest(cmd.Context(), req)
			if stop != nil {
				stop()
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatSuggestions(res, explain))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", `read the entry from a file ("-" for stdin)`)
	cmd.Flags().StringVar(&userID, "user", defaultUser(), "user ID recorded with the suggestion")
	cmd.Flags().IntVarP(&count, "count", "n", 3, "number of prompts to suggest")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&noAnalysis, "no-analysis", false, "omit the entry analysis")
	cmd.Flags().BoolVar(&explain, "explain", false, "show why each prompt was chosen")

	return cmd
}
