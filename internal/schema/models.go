package schema

// Registry is the parser-independent view of the type declarations found in
// a schema document. Each list keeps declaration order.
type Registry struct {
	Objects    []TypeDefinition `json:"objects"`
	Inputs     []TypeDefinition `json:"inputs"`
	Interfaces []TypeDefinition `json:"interfaces"`
	Enums      []EnumDefinition `json:"enums"`
}

// TypeDefinition represents a "type", "input" or "interface" block
type TypeDefinition struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Fields      []FieldDefinition `json:"fields"`
}

// FieldDefinition represents a field of an object or interface, or an input value
type FieldDefinition struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        *TypeRef `json:"type"`
}

// EnumDefinition represents an enum definition
type EnumDefinition struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Values      []EnumValue `json:"values"`
}

// EnumValue represents a single value inside an enum
type EnumValue struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TypeRefKind distinguishes the three shapes a type reference can take.
type TypeRefKind int

const (
	TypeRefNamed TypeRefKind = iota
	TypeRefList
	TypeRefNonNull
)

// TypeRef is a field's declared type as written, e.g. [User!]! is
// NonNull(List(NonNull(Named User))).
type TypeRef struct {
	Kind   TypeRefKind `json:"kind"`
	Name   string      `json:"name,omitempty"`
	OfType *TypeRef    `json:"ofType,omitempty"`
}

// Named returns a reference to the named type.
func Named(name string) *TypeRef {
	return &TypeRef{Kind: TypeRefNamed, Name: name}
}

// ListOf wraps of in a list.
func ListOf(of *TypeRef) *TypeRef {
	return &TypeRef{Kind: TypeRefList, OfType: of}
}

// NonNull wraps of in a non-null marker.
func NonNull(of *TypeRef) *TypeRef {
	return &TypeRef{Kind: TypeRefNonNull, OfType: of}
}

// String renders the reference in SDL notation.
func (t *TypeRef) String() string {
	if t == nil {
		return ""
	}
	switch t.Kind {
	case TypeRefNamed:
		return t.Name
	case TypeRefList:
		return "[" + t.OfType.String() + "]"
	case TypeRefNonNull:
		return t.OfType.String() + "!"
	}
	return ""
}
