package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/spiralogic/internal/analysis"
	"github.com/alexanderramin/spiralogic/internal/analytics"
	"github.com/alexanderramin/spiralogic/internal/cli"
	"github.com/alexanderramin/spiralogic/internal/config"
	"github.com/alexanderramin/spiralogic/internal/db"
	"github.com/alexanderramin/spiralogic/internal/lexicon"
	"github.com/alexanderramin/spiralogic/internal/logging"
	"github.com/alexanderramin/spiralogic/internal/promptstore"
	"github.com/alexanderramin/spiralogic/internal/ranker"
	"github.com/alexanderramin/spiralogic/internal/repository"
	"github.com/alexanderramin/spiralogic/internal/server"
	"github.com/alexanderramin/spiralogic/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// shutdownTimeout bounds how long pending analytics deliveries may delay exit.
const shutdownTimeout = 10 * time.Second

func main() {
	app := &cli.App{}
	root := cli.NewRootCmd(app, bootstrap)
	execErr := root.Execute()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: shutting down: %v\n", err)
		os.Exit(1)
	}
	if execErr != nil {
		os.Exit(1)
	}
}

// bootstrap resolves configuration and wires the services into app.
func bootstrap(cmd *cobra.Command, app *cli.App) error {
	flags := cmd.Root().PersistentFlags()

	v := config.NewViper()
	if err := config.BindFlags(v, flags, map[string]string{
		config.KeyDB:          cli.FlagDB,
		config.KeyLogLevel:    cli.FlagLogLevel,
		config.KeyStore:       cli.FlagStore,
		config.KeyAnalytics:   cli.FlagAnalytics,
		config.KeyLexiconFile: cli.FlagLexicon,
	}); err != nil {
		return err
	}
	file, err := flags.GetString(cli.FlagConfig)
	if err != nil {
		return err
	}
	cfg, err := config.Load(v, file)
	if err != nil {
		return err
	}

	logger, err := logging.ForStderr(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	app.OnShutdown(func(context.Context) error {
		_ = logger.Sync()
		return nil
	})

	lex := lexicon.Default()
	if cfg.LexiconFile != "" {
		if lex, err = lexicon.LoadFile(cfg.LexiconFile); err != nil {
			return err
		}
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	app.OnShutdown(func(context.Context) error { return database.Close() })

	promptRepo := repository.NewSQLitePromptRepo(database)
	eventRepo := repository.NewSQLiteEventRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	storeCfg := promptstore.Config{
		BaseURL: cfg.SupabaseURL,
		APIKey:  cfg.SupabaseKey,
		Timeout: cfg.RequestTimeout(),
	}
	primary, secondary := promptSources(cfg, storeCfg, promptRepo, logger)

	sink, err := analyticsSink(cfg, storeCfg, eventRepo, app)
	if err != nil {
		return err
	}
	recorder := analytics.NewRecorder(sink, logger.Named("analytics"), cfg.RequestTimeout())
	app.OnShutdown(recorder.Close)

	observer := service.NewLogUseCaseObserver(logger)
	suggestions := service.NewSuggestionService(
		analysis.NewAnalyzer(lex),
		ranker.New(primary, secondary, logger.Named("ranker")),
		recorder,
		observer,
	)
	prompts := service.NewPromptService(promptRepo, lex.Phases, uow)

	app.Suggestions = suggestions
	app.Prompts = prompts
	app.Events = service.NewEventService(eventRepo)
	app.Lexicons = lex
	app.ResultCount = cfg.ResultCount
	app.ListenAddr = cfg.ListenAddr
	app.Interactive = logging.IsTerminal(os.Stdin)
	app.Serve = server.New(suggestions, prompts, logger.Named("http"), cfg.ResultCount).ListenAndServe

	logger.Debug("configured",
		zap.String("db", cfg.DBPath),
		zap.String("store", string(cfg.Store)),
		zap.String("analytics", string(cfg.Analytics)),
		zap.Bool("secondary", secondary != nil),
	)
	return nil
}

// promptSources picks the primary and secondary retrieval tiers. The
// configured API takes the secondary slot; otherwise a remote primary falls
// back to the local catalogue.
func promptSources(cfg config.Config, storeCfg promptstore.Config, local *repository.SQLitePromptRepo, logger *zap.Logger) (primary, secondary ranker.PromptSource) {
	observer := promptstore.NewLogObserver(logger.Named("promptstore"))

	primary = local
	if cfg.Store == config.StoreRemote {
		primary = promptstore.NewRESTStore(storeCfg, observer)
		secondary = local
	}
	if cfg.APIBaseURL != "" {
		apiCfg := promptstore.Config{BaseURL: cfg.APIBaseURL, Timeout: storeCfg.Timeout}
		secondary = promptstore.NewAPIStore(apiCfg, observer)
	}
	return primary, secondary
}

func analyticsSink(cfg config.Config, storeCfg promptstore.Config, events repository.EventRepo, app *cli.App) (analytics.Sink, error) {
	switch cfg.Analytics {
	case config.AnalyticsOff:
		return analytics.NoopSink{}, nil
	case config.AnalyticsLocal:
		return analytics.NewStoreSink(events), nil
	case config.AnalyticsRemote:
		sink := analytics.NewRESTSink(storeCfg)
		app.OnShutdown(func(context.Context) error { return sink.Close() })
		return sink, nil
	default:
		return nil, fmt.Errorf("unknown analytics mode %q", cfg.Analytics)
	}
}
