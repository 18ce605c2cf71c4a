// Package generate runs the schema-to-source pipeline: validate, prepare the
// output location, parse, extract, emit and write.
package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/surajcm/gqlpojo/internal/codegen"
	"github.com/surajcm/gqlpojo/internal/codegen/source"
	"github.com/surajcm/gqlpojo/internal/extract"
	"github.com/surajcm/gqlpojo/internal/model"
	"github.com/surajcm/gqlpojo/internal/schema"
)

// DefaultLanguage is used when Options.Language is empty
const DefaultLanguage = "java"

// Options configures one generation run
type Options struct {
	// SchemaPath is the schema file to read
	SchemaPath string

	// OutputRoot is the source root; units land under <OutputRoot>/<Namespace as path>
	OutputRoot string

	// Namespace is the target package, e.g. com.example.generated
	Namespace string

	// Language selects the emitter; defaults to java
	Language string

	// Parser selects the schema parser backend; defaults to graphql-go-tools
	Parser string

	// Scalars maps extra schema scalars to qualified target types
	Scalars map[string]string

	// Workers bounds concurrent rendering; zero or less uses GOMAXPROCS
	Workers int

	// IncludeInterfaces also emits a value class per interface type
	IncludeInterfaces bool

	// DryRun renders everything but writes nothing
	DryRun bool
}

// Result is the outcome of a run
type Result struct {
	// Units are the rendered units in emission order: objects, inputs,
	// interfaces, enums
	Units []*source.Unit

	// Written are the file paths saved, in the same order; empty on a dry run
	Written []string
}

// Generator drives generation runs against a language registry
type Generator struct {
	registry *codegen.Registry
	logger   zerolog.Logger
}

// New creates a Generator. A nil registry uses codegen.DefaultRegistry.
func New(registry *codegen.Registry, logger zerolog.Logger) *Generator {
	if registry == nil {
		registry = codegen.DefaultRegistry
	}
	return &Generator{
		registry: registry,
		logger:   logger,
	}
}

// Run executes the whole pipeline for opts. Units are written in emission
// order; a failure stops the run but leaves earlier files in place.
func (g *Generator) Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()

	if err := ValidateInputs(opts.SchemaPath, opts.OutputRoot, opts.Namespace); err != nil {
		return nil, err
	}
	parse, gen, err := g.resolve(opts)
	if err != nil {
		return nil, err
	}

	if !opts.DryRun {
		if err := PrepareOutputLocation(opts.OutputRoot, opts.Namespace); err != nil {
			return nil, err
		}
	}

	content, err := os.ReadFile(opts.SchemaPath)
	if err != nil {
		return nil, &IOError{Op: "read", Path: opts.SchemaPath, Err: err}
	}

	g.logger.Debug().
		Str("path", opts.SchemaPath).
		Int("size", len(content)).
		Msg("read schema file")

	units, err := g.render(ctx, parse, gen, string(content), opts, opts.SchemaPath)
	if err != nil {
		return nil, err
	}

	result := &Result{Units: units}
	if opts.DryRun {
		g.logger.Info().
			Int("units", len(units)).
			Dur("elapsed", time.Since(start)).
			Msg("dry run complete")
		return result, nil
	}

	for _, unit := range units {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		path, err := unit.Save(opts.OutputRoot)
		if err != nil {
			return result, &IOError{Op: "write", Path: unit.Path(opts.OutputRoot), Err: err}
		}
		result.Written = append(result.Written, path)
		g.logger.Debug().Str("path", path).Msg("wrote unit")
	}

	g.logger.Info().
		Int("files", len(result.Written)).
		Str("package", opts.Namespace).
		Str("language", languageOf(opts)).
		Dur("elapsed", time.Since(start)).
		Msg("generation complete")

	return result, nil
}

// GenerateSource runs parse, extract and emit over schema text without
// touching the filesystem. An empty namespace is allowed here.
func (g *Generator) GenerateSource(ctx context.Context, text string, opts Options) ([]*source.Unit, error) {
	if opts.Namespace != "" {
		if err := ValidateNamespace(opts.Namespace); err != nil {
			return nil, err
		}
	}
	parse, gen, err := g.resolve(opts)
	if err != nil {
		return nil, err
	}
	return g.render(ctx, parse, gen, text, opts, "")
}

// resolve checks the parser, scalar and language options and returns the
// parser and emitter they select. It touches nothing on disk.
func (g *Generator) resolve(opts Options) (schema.ParseFunc, codegen.Generator, error) {
	parse, err := schema.LookupParser(opts.Parser)
	if err != nil {
		return nil, nil, &ValidationError{Field: "parser", Value: opts.Parser, Reason: "unknown parser", Err: err}
	}

	if err := validateScalars(opts.Scalars); err != nil {
		return nil, nil, err
	}

	gen, err := g.registry.Get(languageOf(opts), codegen.Options{
		Namespace: opts.Namespace,
		Scalars:   opts.Scalars,
	})
	if err != nil {
		return nil, nil, &ValidationError{Field: "language", Value: languageOf(opts), Reason: "unsupported language", Err: err}
	}
	return parse, gen, nil
}

func (g *Generator) render(ctx context.Context, parse schema.ParseFunc, gen codegen.Generator, text string, opts Options, path string) ([]*source.Unit, error) {
	reg, err := parse(text)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	descs := collect(reg, opts.IncludeInterfaces)
	if err := checkDeclarations(gen, descs); err != nil {
		return nil, err
	}
	g.logger.Debug().
		Int("types", len(descs)).
		Str("language", gen.Language()).
		Msg("extracted types")

	units := make([]*source.Unit, len(descs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workersOf(opts))
	for i, d := range descs {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			unit, err := emit(gen, d, opts.Namespace)
			if err != nil {
				return classify(d, err)
			}
			units[i] = unit
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return units, nil
}

// collect extracts descriptors in emission order.
func collect(reg *schema.Registry, includeInterfaces bool) []model.Descriptor {
	ex := extract.NewExtractor()

	var descs []model.Descriptor
	for _, t := range ex.ExtractObjectTypes(reg) {
		descs = append(descs, t)
	}
	for _, t := range ex.ExtractInputTypes(reg) {
		descs = append(descs, t)
	}
	if includeInterfaces {
		for _, t := range ex.ExtractInterfaceTypes(reg) {
			descs = append(descs, t)
		}
	}
	for _, e := range ex.ExtractEnumTypes(reg) {
		descs = append(descs, e)
	}
	return descs
}

func emit(gen codegen.Generator, d model.Descriptor, namespace string) (*source.Unit, error) {
	switch d := d.(type) {
	case *model.TypeDescriptor:
		return gen.EmitType(d, namespace)
	case *model.EnumDescriptor:
		return gen.EmitEnum(d, namespace)
	default:
		return nil, fmt.Errorf("unsupported descriptor %T", d)
	}
}

// checkDeclarations rejects two units that would declare the same top-level
// identifier in one package. Only generators that share such a scope
// implement codegen.Declarer.
func checkDeclarations(gen codegen.Generator, descs []model.Descriptor) error {
	declarer, ok := gen.(codegen.Declarer)
	if !ok {
		return nil
	}

	owners := make(map[string]model.Descriptor)
	for _, d := range descs {
		for _, name := range declarer.Declarations(d) {
			if prev, seen := owners[name]; seen {
				return &ValidationError{
					Field:  "type",
					Value:  d.Name(),
					Reason: fmt.Sprintf("declares %s, already declared by %s %s", name, kindName(prev), prev.Name()),
				}
			}
			owners[name] = d
		}
	}
	return nil
}

func kindName(d model.Descriptor) string {
	if d.Kind() == model.Enum {
		return "enum"
	}
	return "type"
}

// classify turns emitter name rejections into validation errors.
func classify(d model.Descriptor, err error) error {
	var idErr *source.IdentifierError
	if errors.As(err, &idErr) {
		return &ValidationError{Field: idErr.Kind, Value: idErr.Name, Reason: idErr.Error(), Err: err}
	}
	return fmt.Errorf("emit %s %s: %w", d.Kind(), d.Name(), err)
}

func validateScalars(scalars map[string]string) error {
	names := make([]string, 0, len(scalars))
	for name := range scalars {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if name == "" {
			return &ValidationError{Field: "scalar", Value: name, Reason: "scalar name is required"}
		}
		target := strings.TrimSpace(scalars[name])
		if target == "" || target[len(target)-1] == '.' {
			return &ValidationError{Field: "scalar", Value: name, Reason: "target type is required"}
		}
	}
	return nil
}

func languageOf(opts Options) string {
	if opts.Language == "" {
		return DefaultLanguage
	}
	return opts.Language
}

func workersOf(opts Options) int {
	if opts.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return opts.Workers
}
