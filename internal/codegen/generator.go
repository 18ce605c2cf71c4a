package codegen

import (
	"github.com/surajcm/gqlpojo/internal/codegen/source"
	"github.com/surajcm/gqlpojo/internal/mapper"
	"github.com/surajcm/gqlpojo/internal/model"
)

// Generator is the interface that all language-specific emitters implement.
// Emission is deterministic: the same descriptor, namespace and mapper
// configuration always produce byte-identical units.
type Generator interface {
	// EmitType renders a value class for an object, input or interface type
	EmitType(t *model.TypeDescriptor, namespace string) (*source.Unit, error)

	// EmitEnum renders an enumeration
	EmitEnum(e *model.EnumDescriptor, namespace string) (*source.Unit, error)

	// Language returns the name of the target language (e.g., "java", "go")
	Language() string

	// FileExtension returns the file extension for generated files (e.g., ".java")
	FileExtension() string
}

// Declarer is implemented by generators whose units share one scope of
// top-level identifiers per namespace, such as Go packages.
type Declarer interface {
	// Declarations lists the top-level identifiers the unit for d declares
	Declarations(d model.Descriptor) []string
}

// Factory builds a Generator for one language
type Factory struct {
	// Scalars returns the language's built-in scalar table
	Scalars func() mapper.Table

	// New creates a generator that resolves field types through m
	New func(m *mapper.Mapper) Generator
}

// Options contains the per-run settings used to configure a generator
type Options struct {
	// Namespace is the target package for generated types
	Namespace string

	// Scalars maps extra schema scalar names to qualified target types,
	// e.g. "DateTime" -> "java.time.OffsetDateTime"
	Scalars map[string]string
}
