package commands

import (
	"fmt"
	"maps"
	"path/filepath"
	"strings"

	"github.com/surajcm/gqlpojo/internal/config"
	"github.com/surajcm/gqlpojo/internal/generate"
)

func dirOf(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Dir(path)
	}
	return filepath.Dir(abs)
}

// applyFlags returns a copy of cfg with every set flag applied
func applyFlags(cfg *config.Config, flags *Flags) (*config.Config, error) {
	out := *cfg
	out.Scalars = maps.Clone(cfg.Scalars)
	if flags == nil {
		return &out, nil
	}

	if flags.Schema != "" {
		out.Schema = flags.Schema
	}
	if flags.Output != "" {
		out.Output = flags.Output
	}
	if flags.Package != "" {
		out.Package = flags.Package
	}
	if flags.Language != "" {
		out.Language = flags.Language
	}
	if flags.Parser != "" {
		out.Parser = flags.Parser
	}
	if flags.Workers > 0 {
		out.Workers = flags.Workers
	}
	if flags.Interfaces {
		out.Interfaces = true
	}

	scalars, err := parseScalarFlags(flags.Scalars)
	if err != nil {
		return nil, err
	}
	if len(scalars) > 0 && out.Scalars == nil {
		out.Scalars = make(map[string]string, len(scalars))
	}
	maps.Copy(out.Scalars, scalars)

	return &out, nil
}

// parseScalarFlags parses NAME=TYPE pairs
func parseScalarFlags(values []string) (map[string]string, error) {
	scalars := make(map[string]string, len(values))
	for _, v := range values {
		name, target, ok := strings.Cut(v, "=")
		name, target = strings.TrimSpace(name), strings.TrimSpace(target)
		if !ok || name == "" || target == "" {
			return nil, fmt.Errorf("invalid scalar mapping %q, expected NAME=TYPE", v)
		}
		scalars[name] = target
	}
	return scalars, nil
}

// resolveOptions merges the project file and flags into run options, with
// relative paths resolved against dir.
func resolveOptions(cfg *config.Config, dir string, flags *Flags) (generate.Options, *config.Config, error) {
	merged, err := applyFlags(cfg, flags)
	if err != nil {
		return generate.Options{}, nil, err
	}
	if err := merged.Validate(); err != nil {
		return generate.Options{}, nil, err
	}
	merged = merged.Resolve(dir)

	opts := generate.Options{
		SchemaPath:        merged.Schema,
		OutputRoot:        merged.Output,
		Namespace:         merged.Package,
		Language:          merged.Language,
		Parser:            merged.Parser,
		Scalars:           merged.Scalars,
		Workers:           merged.Workers,
		IncludeInterfaces: merged.Interfaces,
	}
	if flags != nil {
		opts.DryRun = flags.DryRun
	}
	return opts, merged, nil
}
