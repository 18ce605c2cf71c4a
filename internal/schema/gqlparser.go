package schema

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// ParseSchemaGQLParser parses GraphQL SDL with gqlparser. Only the syntax is
// checked; the document is not validated against the built-in prelude, so
// references to undeclared types are kept as written.
func ParseSchemaGQLParser(input string) (*Registry, error) {
	doc, err := parser.ParseSchema(&ast.Source{Name: "schema", Input: input})
	if err != nil {
		return nil, fmt.Errorf("failed to parse GraphQL: %w", err)
	}

	reg := &Registry{
		Objects:    []TypeDefinition{},
		Inputs:     []TypeDefinition{},
		Interfaces: []TypeDefinition{},
		Enums:      []EnumDefinition{},
	}

	for _, def := range doc.Definitions {
		switch def.Kind {
		case ast.Object:
			reg.Objects = append(reg.Objects, fromGQLDefinition(def))
		case ast.InputObject:
			reg.Inputs = append(reg.Inputs, fromGQLDefinition(def))
		case ast.Interface:
			reg.Interfaces = append(reg.Interfaces, fromGQLDefinition(def))
		case ast.Enum:
			enum := EnumDefinition{
				Name:        def.Name,
				Description: strings.TrimSpace(def.Description),
				Values:      make([]EnumValue, 0, len(def.EnumValues)),
			}
			for _, v := range def.EnumValues {
				enum.Values = append(enum.Values, EnumValue{Name: v.Name, Description: strings.TrimSpace(v.Description)})
			}
			reg.Enums = append(reg.Enums, enum)
		}
	}

	return reg, nil
}

func fromGQLDefinition(def *ast.Definition) TypeDefinition {
	td := TypeDefinition{
		Name:        def.Name,
		Description: strings.TrimSpace(def.Description),
		Fields:      make([]FieldDefinition, 0, len(def.Fields)),
	}
	for _, f := range def.Fields {
		td.Fields = append(td.Fields, FieldDefinition{
			Name:        f.Name,
			Description: strings.TrimSpace(f.Description),
			Type:        fromGQLType(f.Type),
		})
	}
	return td
}

// gqlparser folds non-null into a flag on each node; split it back out into
// its own wrapper.
func fromGQLType(t *ast.Type) *TypeRef {
	if t == nil {
		return nil
	}

	var ref *TypeRef
	switch {
	case t.Elem != nil:
		ref = ListOf(fromGQLType(t.Elem))
	case t.NamedType != "":
		ref = Named(t.NamedType)
	default:
		return nil
	}

	if t.NonNull {
		return NonNull(ref)
	}
	return ref
}
