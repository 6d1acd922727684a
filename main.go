package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskline/internal/commands"
	"github.com/colonyops/taskline/internal/core/config"
	"github.com/colonyops/taskline/internal/core/styles"
	"github.com/colonyops/taskline/internal/store/taskfile"
	"github.com/colonyops/taskline/internal/tracker"
	"github.com/colonyops/taskline/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		trackApp  = &tracker.App{}
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "taskline",
		Usage:     "Track tasks from the command line",
		UsageText: "taskline [global options] command [command options]",
		Description: `Taskline records tasks with a description and lifecycle status,
persisted to a tasks.json file in the working directory.

The whole store is loaded at startup and rewritten after any mutating
command; read-only commands never touch the file.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr)",
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			logLevel := flags.LogLevel
			if logLevel == "" {
				logLevel = cfg.LogLevel
			}

			logger, closer, err := logutils.New(logLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			// Apply configured theme (validation ensures name is valid)
			palette, _ := styles.GetPalette(cfg.Theme)
			styles.SetTheme(palette)

			// Load the whole store up front. A corrupt store aborts
			// before any command runs.
			store := taskfile.NewStore(cfg.Store)
			tasks, err := store.Load()
			if err != nil {
				return ctx, err
			}

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*trackApp = *tracker.NewApp(tasks, store, cfg)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			// Rewrite the store only if a mutating command ran.
			if trackApp.Store != nil {
				if err := trackApp.Flush(); err != nil {
					log.Error().Err(err).Msg("failed to save task store")
					return err
				}
			}

			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	app = commands.NewAddCmd(flags, trackApp).Register(app)
	app = commands.NewUpdateCmd(flags, trackApp).Register(app)
	app = commands.NewDeleteCmd(flags, trackApp).Register(app)
	app = commands.NewListCmd(flags, trackApp).Register(app)
	app = commands.NewMarkCmd(flags, trackApp).Register(app)

	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'taskline --help' for usage", c.Args().First())
		}
		return cli.ShowSubcommandHelp(c)
	}

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Println()
		fmt.Println(err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
