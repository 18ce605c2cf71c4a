// Package mapper resolves schema type names to target-language types.
package mapper

import (
	"maps"

	"github.com/surajcm/gqlpojo/internal/model"
)

// Table maps schema scalar names to target types.
type Table map[string]TargetType

// JavaScalars returns the built-in scalar table for Java output.
func JavaScalars() Table {
	return Table{
		"String":     Scalar("String", "java.lang"),
		"Int":        Scalar("Integer", "java.lang"),
		"Float":      Scalar("Double", "java.lang"),
		"Boolean":    Scalar("Boolean", "java.lang"),
		"ID":         Scalar("String", "java.lang"),
		"Long":       Scalar("Long", "java.lang"),
		"Short":      Scalar("Short", "java.lang"),
		"Byte":       Scalar("Byte", "java.lang"),
		"BigDecimal": Scalar("BigDecimal", "java.math"),
		"BigInteger": Scalar("BigInteger", "java.math"),
	}
}

// GoScalars returns the built-in scalar table for Go output.
func GoScalars() Table {
	return Table{
		"String":     Scalar("string", ""),
		"Int":        Scalar("int32", ""),
		"Float":      Scalar("float64", ""),
		"Boolean":    Scalar("bool", ""),
		"ID":         Scalar("string", ""),
		"Long":       Scalar("int64", ""),
		"Short":      Scalar("int16", ""),
		"Byte":       Scalar("int8", ""),
		"BigDecimal": Scalar("Float", "math/big"),
		"BigInteger": Scalar("Int", "math/big"),
	}
}

// Mapper resolves field types for one generation run. Configure it with
// SetTargetNamespace and AddScalarMapping before mapping; changes apply to
// later calls only. A Mapper is not safe for concurrent configuration, but
// concurrent Map* calls on a configured Mapper are fine.
type Mapper struct {
	scalars   Table
	namespace string
}

// New creates a Mapper seeded with a copy of table.
func New(table Table) *Mapper {
	return &Mapper{scalars: maps.Clone(table)}
}

// SetTargetNamespace sets the namespace used for user-defined type references.
func (m *Mapper) SetTargetNamespace(ns string) {
	m.namespace = ns
}

// TargetNamespace returns the configured namespace.
func (m *Mapper) TargetNamespace() string {
	return m.namespace
}

// AddScalarMapping adds or replaces the mapping for a scalar name. It takes
// precedence over the built-in table and over reference resolution.
func (m *Mapper) AddScalarMapping(name string, target TargetType) {
	if m.scalars == nil {
		m.scalars = Table{}
	}
	m.scalars[name] = target
}

// IsScalarType reports whether name has a scalar mapping.
func (m *Mapper) IsScalarType(name string) bool {
	_, ok := m.scalars[name]
	return ok
}

// MapBaseType resolves a schema type name: a scalar mapping wins, otherwise
// the name becomes a reference into the target namespace (which may be empty).
func (m *Mapper) MapBaseType(name string) TargetType {
	if t, ok := m.scalars[name]; ok {
		return t
	}
	return Reference(name, m.namespace)
}

// MapFieldType maps the field's base type and wraps it in a list when the
// field is a list. IsRequired does not change the result.
func (m *Mapper) MapFieldType(field model.FieldDescriptor) TargetType {
	base := m.MapBaseType(field.DeclaredTypeName)
	if field.IsList {
		return ListOf(base)
	}
	return base
}

// Clone returns an independent copy, for handing a configured mapper to
// another run.
func (m *Mapper) Clone() *Mapper {
	return &Mapper{scalars: maps.Clone(m.scalars), namespace: m.namespace}
}
