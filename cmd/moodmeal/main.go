package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/athulvp5125/Mood-Meal/internal/catalog"
	"github.com/athulvp5125/Mood-Meal/internal/cli"
	"github.com/athulvp5125/Mood-Meal/internal/config"
	"github.com/athulvp5125/Mood-Meal/internal/db"
	"github.com/athulvp5125/Mood-Meal/internal/logging"
	"github.com/athulvp5125/Mood-Meal/internal/mood"
	"github.com/athulvp5125/Mood-Meal/internal/recommend"
	"github.com/athulvp5125/Mood-Meal/internal/repository"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// --config has to be known before the command tree exists.
	pre := pflag.NewFlagSet("moodmeal", pflag.ContinueOnError)
	pre.ParseErrorsWhitelist.UnknownFlags = true
	pre.Usage = func() {}
	pre.SetOutput(io.Discard)
	configPath := pre.String("config", "", "")
	_ = pre.Parse(os.Args[1:])

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	interactive := func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	tui := pre.NArg() == 0 && interactive() && !helpRequested(os.Args[1:])

	logCfg := logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: os.Stderr}
	if tui {
		path := cfg.Log.File
		if path == "" {
			path = logging.DefaultFilePath()
		}
		f, err := logging.OpenFile(path)
		if err != nil {
			return err
		}
		defer f.Close()
		logCfg.Output = f
	}
	logging.Init(logCfg)
	log := logging.Component("main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, conn, err := openCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	if conn != nil {
		defer conn.Close()
	}

	simOpts := []mood.Option{mood.WithObserver(mood.NewLogObserver(logging.Logger()))}
	if cfg.Random.Seed != 0 {
		simOpts = append(simOpts, mood.WithRand(rand.New(rand.NewPCG(uint64(cfg.Random.Seed), 0)))) //nolint:gosec // simulated output
	}
	simulator := mood.NewSimulator(mood.Latencies{
		Image: cfg.Latency.Image,
		Text:  cfg.Latency.Text,
		Voice: cfg.Latency.Voice,
	}, simOpts...)

	recipes := recommend.NewService(source, recommend.Latencies{
		Recommend: cfg.Latency.Recommend,
		Lookup:    cfg.Latency.Lookup,
	}, logging.Logger())

	app := &cli.App{
		Mood:          simulator,
		Recipes:       recipes,
		Catalog:       source,
		Logger:        logging.Logger(),
		DBPath:        cfg.Catalog.DB,
		Version:       version,
		IsInteractive: interactive,
	}

	log.Debug().Bool("tui", tui).Str("version", version).Msg("starting")
	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

// openCatalog picks the recipe source: a SQLite database when catalog.db is
// set, a YAML file when catalog.path is set, the built-in recipes otherwise.
// An empty database is seeded with the built-in recipes on first use.
func openCatalog(ctx context.Context, cfg *config.Config) (catalog.Source, *sql.DB, error) {
	switch {
	case cfg.Catalog.DB != "":
		conn, err := db.OpenDB(cfg.Catalog.DB)
		if err != nil {
			return nil, nil, err
		}
		var repo repository.RecipeRepo = repository.NewSQLiteRecipeRepo(conn)
		n, err := repo.Count(ctx)
		if err != nil {
			conn.Close()
			return nil, nil, err
		}
		if n == 0 {
			builtin, err := catalog.Builtin().List(ctx)
			if err != nil {
				conn.Close()
				return nil, nil, err
			}
			if err := repository.SeedCatalog(ctx, db.NewSQLiteUnitOfWork(conn), builtin, "builtin", time.Now()); err != nil {
				conn.Close()
				return nil, nil, err
			}
			log := logging.Component("catalog")
			log.Info().Str("db", cfg.Catalog.DB).Msg("seeded empty catalog database")
		}
		return repo, conn, nil

	case cfg.Catalog.Path != "":
		file, err := catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			return nil, nil, err
		}
		return file, nil, nil
	}
	return catalog.Builtin(), nil, nil
}

func helpRequested(args []string) bool {
	for _, a := range args {
		if a == "-h" || a == "--help" {
			return true
		}
	}
	return false
}
