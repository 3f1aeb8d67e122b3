package cli

import (
	"github.com/alexanderramin/spiralogic/internal/cli/formatter"
	"github.com/alexanderramin/spiralogic/internal/lexicon"
	"github.com/spf13/cobra"
)

func newLexiconCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Inspect the phase and tone lexicons",
	}

	var asYAML bool
	show := &cobra.Command{
		Use:   "show",
		Short: "Show the active lexicons",
		Long: `Show the active lexicons. With --yaml the output is a lexicon file that
can be edited and passed back with --lexicon.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lex := app.Lexicons
			if lex.Phases == nil {
				lex = lexicon.Default()
			}
			if asYAML {
				data, err := lexicon.Marshal(lex)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatLexicons(lex))
			return nil
		},
	}
	show.Flags().BoolVar(&asYAML, "yaml", false, "print the lexicons as YAML")

	cmd.AddCommand(show)
	return cmd
}
