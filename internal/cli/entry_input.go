package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/spiralogic/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// spiralogicHuhTheme returns a huh theme using the formatter palette.
func spiralogicHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// entryForm asks for a journal entry in a multi-line text area.
func entryForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Journal Entry").
				Description("Write freely. Submit with Enter; alt+enter adds a line.").
				Placeholder("What is alive in you today?").
				CharLimit(10000).
				Value(value),
		),
	).WithTheme(spiralogicHuhTheme()).WithShowHelp(false)
}

// readEntry resolves the entry text from, in order: positional args, the
// --file flag ("-" for stdin), the interactive form, or piped stdin.
func readEntry(cmd *cobra.Command, app *App, args []string, file string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	switch {
	case file == "-":
		return readAll(cmd.InOrStdin())
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading entry file: %w", err)
		}
		return string(data), nil
	case app.Interactive:
		var text string
		if err := entryForm(&text).Run(); err != nil {
			return "", fmt.Errorf("reading entry: %w", err)
		}
		return text, nil
	default:
		return readAll(cmd.InOrStdin())
	}
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading entry from stdin: %w", err)
	}
	return string(data), nil
}
