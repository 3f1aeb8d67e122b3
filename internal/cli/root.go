package cli

import (
	"context"
	"errors"
	"io"

	"github.com/alexanderramin/spiralogic/internal/lexicon"
	"github.com/alexanderramin/spiralogic/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the services used by CLI commands.
type App struct {
	Suggestions service.SuggestionService
	Prompts     service.PromptService
	Events      service.EventService
	Lexicons    lexicon.Lexicons

	// Serve runs the HTTP API until ctx is done.
	Serve       func(ctx context.Context, addr string) error
	ListenAddr  string
	ResultCount int

	// Interactive reports whether stdin is a terminal, enabling the entry form.
	Interactive bool

	closers []func(context.Context) error
}

// OnShutdown registers fn to run when the CLI exits. Closers run in
// reverse registration order.
func (a *App) OnShutdown(fn func(context.Context) error) {
	a.closers = append(a.closers, fn)
}

// Shutdown runs the registered closers and joins their errors.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Bootstrap populates app from the parsed command line before any
// subcommand runs.
type Bootstrap func(cmd *cobra.Command, app *App) error

// Persistent flag names shared with config binding.
const (
	FlagConfig    = "config"
	FlagDB        = "db"
	FlagLogLevel  = "log-level"
	FlagStore     = "store"
	FlagAnalytics = "analytics"
	FlagLexicon   = "lexicon"
)

// NewRootCmd creates the top-level "spiralogic" command and registers all
// subcommands against app. boot may be nil when app is already wired.
func NewRootCmd(app *App, boot Bootstrap) *cobra.Command {
	root := &cobra.Command{
		Use:   "spiralogic",
		Short: "Elemental journal prompt suggestions",
		Long: `spiralogic reads a journal entry, classifies it into an elemental phase
(Fire, Earth, Air, Water, Aether), detects emotional tones and key themes,
and suggests the prompts from its catalogue that best fit the entry.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if boot == nil {
				return nil
			}
			return boot(cmd, app)
		},
	}

	pf := root.PersistentFlags()
	pf.String(FlagConfig, "", "config file (default is $HOME/.spiralogic/config.yaml)")
	pf.String(FlagDB, "", "SQLite database path (or set SPIRALOGIC_DB)")
	pf.String(FlagLogLevel, "", "log level: debug, info, warn, error")
	pf.String(FlagStore, "", "primary prompt store: local or remote")
	pf.String(FlagAnalytics, "", "analytics sink: off, local or remote")
	pf.String(FlagLexicon, "", "YAML lexicon file overriding the built-in lexicons")

	root.AddCommand(
		newSuggestCmd(app),
		newAnalyzeCmd(app),
		newPromptCmd(app),
		newEventsCmd(app),
		newServeCmd(app),
		newLexiconCmd(app),
	)

	return root
}

func writeLine(w io.Writer, s string) {
	_, _ = io.WriteString(w, s+"\n")
}
