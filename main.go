package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tuikit/internal/commands"
	"github.com/colonyops/tuikit/internal/core/config"
	"github.com/colonyops/tuikit/internal/core/styles"
	"github.com/colonyops/tuikit/internal/printer"
	"github.com/colonyops/tuikit/pkg/logutils"
	"github.com/colonyops/tuikit/pkg/utils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() reads
	// them from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// ldflags aren't set by `go install module@version`, so fall back to
	// the module version and VCS metadata Go records in the binary.
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
	ctx := printer.NewContext(context.Background(), printer.New(os.Stdout))

	var (
		logCloser = func() {}
		console   = &utils.DeferredWriter{}
	)

	flags := &commands.Flags{}
	gallery := commands.NewGalleryCmd(flags)

	app := &cli.Command{
		Name:      "tuikit",
		Usage:     "Terminal widgets: date ranges, selects, collapses and carousels",
		UsageText: "tuikit [global options] command [command options]",
		Description: `tuikit hosts a set of interactive terminal widgets. Each widget command
runs one widget and prints its result, so it can be used from scripts.

Run 'tuikit' with no arguments to open the gallery of every widget.
Run 'tuikit config validate' to check the configuration file.`,
		Version: build(),
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic); overrides log.level",
				Sources:     cli.EnvVars("TUIKIT_LOG_LEVEL"),
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file; overrides log.file (logs go to stderr on exit when unset)",
				Sources:     cli.EnvVars("TUIKIT_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TUIKIT_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "theme",
				Usage:       "color theme; overrides the theme in the config file",
				Sources:     cli.EnvVars("TUIKIT_THEME"),
				Destination: &flags.Theme,
			},
			&cli.StringFlag{
				Name:        "now",
				Usage:       "fix today's date (YYYY-MM-DD) for reproducible output",
				Sources:     cli.EnvVars("TUIKIT_NOW"),
				Destination: &flags.Now,
			},
		}, gallery.Flags()...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			level := cfg.Log.Level
			if flags.LogLevel != "" {
				level = flags.LogLevel
			}
			file := cfg.Log.File
			if flags.LogFile != "" {
				file = flags.LogFile
			}

			logger, closer, err := logutils.New(level, file, console)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			flags.Warnings = cfg.Sanitize(log.Logger)

			if flags.Theme != "" {
				if _, ok := styles.GetPalette(flags.Theme); !ok {
					return ctx, fmt.Errorf("unknown theme %q, want one of %v", flags.Theme, styles.ThemeNames())
				}
				cfg.Theme = flags.Theme
			}
			palette, _ := styles.GetPalette(cfg.Theme)
			styles.SetTheme(palette)

			flags.Config = cfg
			log.Debug().Str("config", flags.ConfigPath).Str("theme", cfg.Theme).Msg("config loaded")
			return ctx, nil
		},
		// Exit codes are handled below so buffered logs are released first.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Action:         gallery.Run,
	}

	app = commands.NewConfigCmd(flags).Register(app)
	app = commands.NewDateRangeCmd(flags).Register(app)
	app = commands.NewSelectCmd(flags).Register(app)
	app = commands.NewFormCmd(flags).Register(app)
	app = gallery.Register(app)

	exitCode := 0
	err := app.Run(ctx, os.Args)
	_ = console.Release(os.Stderr)

	var exitErr cli.ExitCoder
	switch {
	case errors.As(err, &exitErr):
		exitCode = exitErr.ExitCode()
		if msg := exitErr.Error(); msg != "" {
			_, _ = fmt.Fprintln(os.Stderr, msg)
		}
	case err != nil:
		_, _ = fmt.Fprintln(os.Stderr)
		log.Err(err).Msg("failed to run")
		exitCode = 1
	}

	logCloser()
	os.Exit(exitCode)
}
