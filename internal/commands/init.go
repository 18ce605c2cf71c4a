package commands

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/surajcm/gqlpojo/internal/config"
	"github.com/surajcm/gqlpojo/internal/generate"
)

//go:embed templates/*
var templatesFS embed.FS

const starterSchema = "templates/schema.graphqls"

type InitOptions struct {
	Package  string
	Language string
	Schema   string
	Output   string
}

type FileSystem interface {
	Stat(name string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	WriteFile(name string, data []byte, perm os.FileMode) error
}

type osFileSystem struct{}

func (fs *osFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (fs *osFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (fs *osFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

type InitCommand struct {
	dir         string
	filesystem  FileSystem
	templatesFS fs.FS
	output      Output
	// For testing: if set, skip prompting
	testOptions *InitOptions
}

func NewInitCommand(dir string) *InitCommand {
	return &InitCommand{
		dir:         dir,
		filesystem:  &osFileSystem{},
		templatesFS: templatesFS,
		output:      &defaultOutput{},
	}
}

func (c *Controller) Init(ctx context.Context) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	return NewInitCommand(wd).Run(ctx)
}

func (ic *InitCommand) Run(ctx context.Context) error {
	return ic.RunWithOptions(ctx)
}

func (ic *InitCommand) RunWithOptions(ctx context.Context, opts ...tea.ProgramOption) error {
	for _, name := range config.FileNames {
		if _, err := ic.filesystem.Stat(filepath.Join(ic.dir, name)); err == nil {
			return fmt.Errorf("project file %s already exists in %s", name, ic.dir)
		}
	}

	var options *InitOptions
	var err error

	// For testing: use provided options instead of prompting
	if ic.testOptions != nil {
		options = ic.testOptions
	} else {
		options, err = ic.promptInitOptions(opts...)
		if err != nil {
			return fmt.Errorf("failed to get init options: %w", err)
		}
	}

	cfg := config.Default()
	cfg.Package = options.Package
	if options.Language != "" {
		cfg.Language = options.Language
	}
	if options.Schema != "" {
		cfg.Schema = options.Schema
	}
	if options.Output != "" {
		cfg.Output = options.Output
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := generate.ValidateNamespace(cfg.Package); err != nil {
		return err
	}

	configPath := filepath.Join(ic.dir, config.FileNames[0])
	data, err := cfg.Marshal(configPath)
	if err != nil {
		return err
	}
	if err := ic.filesystem.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}

	schemaPath := cfg.Resolve(ic.dir).Schema
	if _, err := ic.filesystem.Stat(schemaPath); err != nil {
		if err := ic.writeStarterSchema(schemaPath); err != nil {
			return fmt.Errorf("failed to create starter schema: %w", err)
		}
		ic.output.Printf("📝 Created starter schema %s\n", schemaPath)
	}

	ic.output.Printf("✅ Created %s for package %s (%s)\n", configPath, cfg.Package, cfg.Language)
	return nil
}

func (ic *InitCommand) writeStarterSchema(path string) error {
	data, err := fs.ReadFile(ic.templatesFS, starterSchema)
	if err != nil {
		return err
	}
	if err := ic.filesystem.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return ic.filesystem.WriteFile(path, data, 0o644)
}

func (ic *InitCommand) promptInitOptions(opts ...tea.ProgramOption) (*InitOptions, error) {
	options := &InitOptions{
		Language: config.DefaultLanguage,
		Schema:   config.DefaultSchema,
		Output:   config.DefaultOutput,
	}

	form := ic.createInitForm(options)

	if len(opts) > 0 {
		// For testing: run with provided options
		program := tea.NewProgram(form, opts...)
		if _, err := program.Run(); err != nil {
			return nil, err
		}
	} else {
		// Normal execution
		if err := form.Run(); err != nil {
			return nil, err
		}
	}

	return options, nil
}

func (ic *InitCommand) createInitForm(options *InitOptions) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Package").
				Description("Target package for generated types, e.g. com.example.generated").
				Value(&options.Package).
				Validate(generate.ValidateNamespace),

			huh.NewSelect[string]().
				Title("Language").
				Description("Language of the generated sources").
				Options(
					huh.NewOption("Java", "java"),
					huh.NewOption("Go", "go"),
				).
				Value(&options.Language),

			huh.NewInput().
				Title("Schema").
				Description("Path of the GraphQL schema").
				Value(&options.Schema).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("schema path cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Title("Output").
				Description("Source root the package directories are created under").
				Value(&options.Output),
		),
	)
}
