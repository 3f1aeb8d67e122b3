package cli

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/spiralogic/internal/cli/formatter"
	"github.com/alexanderramin/spiralogic/internal/domain"
	"github.com/spf13/cobra"
)

func newPromptCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "prompt",
		Aliases: []string{"prompts"},
		Short:   "Manage the local prompt catalogue",
	}

	cmd.AddCommand(
		newPromptAddCmd(app),
		newPromptListCmd(app),
		newPromptRemoveCmd(app),
		newPromptImportCmd(app),
	)

	return cmd
}

func newPromptAddCmd(app *App) *cobra.Command {
	var (
		text  string
		phase string
		tags  []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a prompt to the catalogue",
		Example: `  spiralogic prompt add --phase water --text "What are you ready to feel?" --tags grief,release`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Prompt{
				Text:        text,
				Phase:       phase,
				ContextTags: tags,
			}
			if err := app.Prompts.Add(cmd.Context(), p); err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), fmt.Sprintf("%s %s %s %s",
				formatter.StyleGreen.Render("✔ Added"),
				formatter.PhaseBadge(p.Phase),
				formatter.Dim(formatter.TruncID(p.ID)),
				p.Text,
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "prompt text")
	cmd.Flags().StringVar(&phase, "phase", "", "elemental phase")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "comma-separated context tags")
	_ = cmd.MarkFlagRequired("text")
	_ = cmd.MarkFlagRequired("phase")

	return cmd
}

func newPromptListCmd(app *App) *cobra.Command {
	var (
		phase  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List catalogue prompts",
		RunE: func(cmd *cobra.Command, args []string) error {
			prompts, err := app.Prompts.List(cmd.Context(), phase)
			if err != nil {
				return err
			}

			if asJSON {
				if prompts == nil {
					prompts = []*domain.Prompt{}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(prompts)
			}
			if len(prompts) == 0 {
				writeLine(cmd.OutOrStdout(), formatter.Dim("No prompts found."))
				return nil
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatPromptList(prompts))
			return nil
		},
	}

	cmd.Flags().StringVar(&phase, "phase", "", "only list prompts for this phase")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print prompts as JSON")

	return cmd
}

func newPromptRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Remove a prompt from the catalogue",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Prompts.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.StyleGreen.Render("✔ Removed ")+args[0])
			return nil
		},
	}
}

func newPromptImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import prompts from a YAML catalogue",
		Long: `Import prompts from a YAML catalogue. Every entry is validated first and
nothing is written unless the whole file is valid.`,
		Example: `  spiralogic prompt import prompts.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Prompts.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatImportResult(res))
			return nil
		},
	}
}
