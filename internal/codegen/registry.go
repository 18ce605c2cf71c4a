package codegen

import (
	"errors"
	"fmt"
	"slices"

	"github.com/surajcm/gqlpojo/internal/mapper"
)

// ErrUnknownLanguage is returned when no generator is registered for a language
var ErrUnknownLanguage = errors.New("unsupported language")

// Registry manages available code generators
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates a new generator registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a generator factory to the registry
func (r *Registry) Register(language string, factory Factory) {
	r.factories[language] = factory
}

// Get returns a generator for the language backed by a fresh mapper
// configured from opts. Each call gets its own mapper, so generators from
// separate calls never share configuration.
func (r *Registry) Get(language string, opts Options) (Generator, error) {
	m, factory, err := r.newMapper(language, opts)
	if err != nil {
		return nil, err
	}
	return factory.New(m), nil
}

func (r *Registry) newMapper(language string, opts Options) (*mapper.Mapper, Factory, error) {
	factory, exists := r.factories[language]
	if !exists {
		return nil, Factory{}, fmt.Errorf("%w: %s", ErrUnknownLanguage, language)
	}

	var table mapper.Table
	if factory.Scalars != nil {
		table = factory.Scalars()
	}
	m := mapper.New(table)
	m.SetTargetNamespace(opts.Namespace)

	names := make([]string, 0, len(opts.Scalars))
	for name := range opts.Scalars {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		m.AddScalarMapping(name, mapper.ParseTargetType(opts.Scalars[name]))
	}

	return m, factory, nil
}

// Languages returns the supported languages in sorted order
func (r *Registry) Languages() []string {
	languages := make([]string, 0, len(r.factories))
	for lang := range r.factories {
		languages = append(languages, lang)
	}
	slices.Sort(languages)
	return languages
}
