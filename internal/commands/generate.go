package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/surajcm/gqlpojo/internal/generate"
)

// Runner runs one generation
type Runner interface {
	Run(ctx context.Context, opts generate.Options) (*generate.Result, error)
}

// GenerateDependencies for the generate command
type GenerateDependencies struct {
	ConfigLoader ConfigLoader
	Runner       Runner
	Output       Output
}

// GenerateCommand encapsulates the generate logic with injected dependencies
type GenerateCommand struct {
	flags *Flags
	deps  GenerateDependencies
}

// NewGenerateCommand creates a generate command with default dependencies
func NewGenerateCommand(flags *Flags, logger zerolog.Logger) *GenerateCommand {
	return &GenerateCommand{
		flags: flags,
		deps: GenerateDependencies{
			ConfigLoader: &defaultConfigLoader{},
			Runner:       generate.New(nil, logger),
			Output:       &defaultOutput{},
		},
	}
}

// WithDependencies allows injecting custom dependencies for testing
func (gc *GenerateCommand) WithDependencies(deps GenerateDependencies) *GenerateCommand {
	gc.deps = deps
	return gc
}

// Execute loads the project file, applies flags and runs generation once
func (gc *GenerateCommand) Execute(ctx context.Context) error {
	cfg, projectRoot, err := gc.deps.ConfigLoader.LoadConfig(gc.configPath())
	if err != nil {
		return fmt.Errorf("failed to load project config: %w", err)
	}

	opts, _, err := resolveOptions(cfg, projectRoot, gc.flags)
	if err != nil {
		return err
	}

	result, err := gc.deps.Runner.Run(ctx, opts)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	gc.report(opts, result)
	return nil
}

func (gc *GenerateCommand) report(opts generate.Options, result *generate.Result) {
	if opts.DryRun {
		gc.deps.Output.Printf("Dry run: %d types would be generated in %s\n", len(result.Units), opts.OutputRoot)
		for _, unit := range result.Units {
			gc.deps.Output.Printf("  %s\n", unit.Path(opts.OutputRoot))
		}
		return
	}
	gc.deps.Output.Printf("✅ Generated %d files for package %s in %s\n", len(result.Written), opts.Namespace, opts.OutputRoot)
}

func (gc *GenerateCommand) configPath() string {
	if gc.flags == nil {
		return ""
	}
	return gc.flags.ConfigPath
}

// Generate runs the generate command
func (c *Controller) Generate(ctx context.Context) error {
	return NewGenerateCommand(c.Flags, c.Logger).Execute(ctx)
}
