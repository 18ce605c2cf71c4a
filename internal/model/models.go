// Package model holds the intermediate type model that sits between a parsed
// schema registry and emitted source.
package model

//go:generate go tool stringer -type=TypeKind -linecomment -output=typekind_string.go

// TypeKind tags the schema construct a descriptor was extracted from.
type TypeKind int

const (
	Object      TypeKind = iota // OBJECT
	InputObject                 // INPUT_OBJECT
	Enum                        // ENUM
	Interface                   // INTERFACE
)

// UnknownTypeName is used when a field's type reference cannot be resolved to
// a named type.
const UnknownTypeName = "Unknown"

// Descriptor is either a *TypeDescriptor or an *EnumDescriptor.
type Descriptor interface {
	Name() string
	Kind() TypeKind
	descriptor()
}

// FieldDescriptor describes one field of a field-bearing type.
type FieldDescriptor struct {
	Name             string
	DeclaredTypeName string
	IsList           bool
	IsRequired       bool
	Description      string
}

// TypeDescriptor is an object, input object or interface type with its fields
// in declaration order.
type TypeDescriptor struct {
	name   string
	kind   TypeKind
	fields []FieldDescriptor
	doc    string
}

// NewTypeDescriptor copies fields so later changes to the caller's slice are
// not observed. It panics if kind is Enum; enums use NewEnumDescriptor.
func NewTypeDescriptor(name string, kind TypeKind, fields []FieldDescriptor) *TypeDescriptor {
	if kind == Enum {
		panic("model: enum kind used for a field-bearing type " + name)
	}
	copied := make([]FieldDescriptor, len(fields))
	copy(copied, fields)
	return &TypeDescriptor{name: name, kind: kind, fields: copied}
}

// WithDescription returns a copy of t carrying the schema description.
func (t *TypeDescriptor) WithDescription(doc string) *TypeDescriptor {
	c := *t
	c.doc = doc
	return &c
}

func (t *TypeDescriptor) Name() string        { return t.name }
func (t *TypeDescriptor) Kind() TypeKind      { return t.kind }
func (t *TypeDescriptor) Description() string { return t.doc }
func (t *TypeDescriptor) Len() int            { return len(t.fields) }

// Fields returns a copy of the fields in declaration order.
func (t *TypeDescriptor) Fields() []FieldDescriptor {
	out := make([]FieldDescriptor, len(t.fields))
	copy(out, t.fields)
	return out
}

func (t *TypeDescriptor) descriptor() {}

// EnumDescriptor is an enum type with its values in declaration order.
// Duplicate values are kept as declared.
type EnumDescriptor struct {
	name   string
	values []string
	doc    string
}

func NewEnumDescriptor(name string, values []string) *EnumDescriptor {
	copied := make([]string, len(values))
	copy(copied, values)
	return &EnumDescriptor{name: name, values: copied}
}

// WithDescription returns a copy of e carrying the schema description.
func (e *EnumDescriptor) WithDescription(doc string) *EnumDescriptor {
	c := *e
	c.doc = doc
	return &c
}

func (e *EnumDescriptor) Name() string        { return e.name }
func (e *EnumDescriptor) Kind() TypeKind      { return Enum }
func (e *EnumDescriptor) Description() string { return e.doc }

// Values returns a copy of the enum values.
func (e *EnumDescriptor) Values() []string {
	out := make([]string, len(e.values))
	copy(out, e.values)
	return out
}

func (e *EnumDescriptor) descriptor() {}
