package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/surajcm/gqlpojo/internal/commands"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func generationFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to the project file (default: search gqlpojo.yaml upwards)",
		},
		&cli.StringFlag{
			Name:  "schema",
			Usage: "GraphQL schema file",
		},
		&cli.StringFlag{
			Name:  "output",
			Usage: "source root the package directories are created under",
		},
		&cli.StringFlag{
			Name:    "package",
			Aliases: []string{"p"},
			Usage:   "target package, e.g. com.example.generated",
		},
		&cli.StringFlag{
			Name:  "language",
			Usage: "target language (java, go)",
		},
		&cli.StringFlag{
			Name:  "parser",
			Usage: "schema parser backend (graphql-go-tools, gqlparser)",
		},
		&cli.StringSliceFlag{
			Name:  "scalar",
			Usage: "extra scalar mapping NAME=TYPE, repeatable",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "concurrent renderers (default: GOMAXPROCS)",
		},
		&cli.BoolFlag{
			Name:  "interfaces",
			Usage: "also generate a class per interface type",
		},
	}
}

func main() {
	ctrl := &commands.Controller{
		Flags: &commands.Flags{},
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// bind copies the parsed flags into the controller before an action runs
	bind := func(c *cli.Command) {
		ctrl.Flags.ConfigPath = c.String("config")
		ctrl.Flags.Schema = c.String("schema")
		ctrl.Flags.Output = c.String("output")
		ctrl.Flags.Package = c.String("package")
		ctrl.Flags.Language = c.String("language")
		ctrl.Flags.Parser = c.String("parser")
		ctrl.Flags.Scalars = c.StringSlice("scalar")
		ctrl.Flags.Workers = int(c.Int("workers"))
		ctrl.Flags.Interfaces = c.Bool("interfaces")
		ctrl.Flags.DryRun = c.Bool("dry-run")
	}

	app := &cli.Command{
		Name:    "gqlpojo",
		Usage:   "Generate Java POJOs and enums (or Go structs) from a GraphQL schema",
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("GQLPOJO_LOG_LEVEL"),
				Value:   "warn",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return ctx, fmt.Errorf("failed to parse log level: %w", err)
			}

			log.Logger = log.Level(level)
			ctrl.Flags.LogLevel = level.String()
			ctrl.Logger = log.Logger

			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Generate one source file per object, input and enum type",
				Flags: append(generationFlags(), &cli.BoolFlag{
					Name:  "dry-run",
					Usage: "render everything and list the files without writing",
				}),
				Action: func(ctx context.Context, c *cli.Command) error {
					bind(c)
					return ctrl.Generate(ctx)
				},
			},
			{
				Name:  "watch",
				Usage: "Regenerate whenever the schema or project file changes",
				Flags: generationFlags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					bind(c)
					return ctrl.Watch(ctx)
				},
			},
			{
				Name:  "init",
				Usage: "Create a gqlpojo.yaml project file and a starter schema",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Init(ctx)
				},
			},
			{
				Name:  "languages",
				Usage: "List the supported target languages and schema parsers",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Languages(ctx)
				},
			},
		},
	}

	ctx := context.Background()

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run gqlpojo")
	}
}
