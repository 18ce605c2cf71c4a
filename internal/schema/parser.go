package schema

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/wundergraph/graphql-go-tools/v2/pkg/ast"
	"github.com/wundergraph/graphql-go-tools/v2/pkg/astparser"
)

// ParseFunc turns schema text into a Registry.
type ParseFunc func(input string) (*Registry, error)

const (
	// ParserGraphQLGoTools is the default parser backend.
	ParserGraphQLGoTools = "graphql-go-tools"
	// ParserGQLParser uses github.com/vektah/gqlparser.
	ParserGQLParser = "gqlparser"
)

// ErrUnknownParser is returned by LookupParser for unregistered names.
var ErrUnknownParser = errors.New("unknown schema parser")

var parsers = map[string]ParseFunc{
	ParserGraphQLGoTools: ParseSchema,
	ParserGQLParser:      ParseSchemaGQLParser,
}

// LookupParser returns the parser registered under name. An empty name selects
// the default backend.
func LookupParser(name string) (ParseFunc, error) {
	if name == "" {
		name = ParserGraphQLGoTools
	}
	p, ok := parsers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownParser, name)
	}
	return p, nil
}

// Parsers returns the registered backend names in sorted order.
func Parsers() []string {
	names := make([]string, 0, len(parsers))
	for name := range parsers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ParseSchema parses GraphQL SDL with graphql-go-tools into a Registry
func ParseSchema(input string) (*Registry, error) {
	doc, report := astparser.ParseGraphqlDocumentString(input)
	if report.HasErrors() {
		return nil, fmt.Errorf("failed to parse GraphQL: %v", report)
	}

	reg := &Registry{
		Objects:    []TypeDefinition{},
		Inputs:     []TypeDefinition{},
		Interfaces: []TypeDefinition{},
		Enums:      []EnumDefinition{},
	}

	// Walk through definitions; extensions and schema blocks are skipped
	for i := range doc.RootNodes {
		node := doc.RootNodes[i]
		switch node.Kind {
		case ast.NodeKindObjectTypeDefinition:
			def := doc.ObjectTypeDefinitions[node.Ref]
			reg.Objects = append(reg.Objects, TypeDefinition{
				Name:        doc.Input.ByteSliceString(def.Name),
				Description: getDescription(&doc, def.Description),
				Fields:      parseFieldDefinitions(&doc, def.FieldsDefinition.Refs),
			})
		case ast.NodeKindInputObjectTypeDefinition:
			def := doc.InputObjectTypeDefinitions[node.Ref]
			reg.Inputs = append(reg.Inputs, TypeDefinition{
				Name:        doc.Input.ByteSliceString(def.Name),
				Description: getDescription(&doc, def.Description),
				Fields:      parseInputValueDefinitions(&doc, def.InputFieldsDefinition.Refs),
			})
		case ast.NodeKindInterfaceTypeDefinition:
			def := doc.InterfaceTypeDefinitions[node.Ref]
			reg.Interfaces = append(reg.Interfaces, TypeDefinition{
				Name:        doc.Input.ByteSliceString(def.Name),
				Description: getDescription(&doc, def.Description),
				Fields:      parseFieldDefinitions(&doc, def.FieldsDefinition.Refs),
			})
		case ast.NodeKindEnumTypeDefinition:
			reg.Enums = append(reg.Enums, parseEnumType(&doc, node.Ref))
		}
	}

	return reg, nil
}

func parseFieldDefinitions(doc *ast.Document, refs []int) []FieldDefinition {
	fields := make([]FieldDefinition, 0, len(refs))
	for _, ref := range refs {
		def := doc.FieldDefinitions[ref]
		fields = append(fields, FieldDefinition{
			Name:        doc.Input.ByteSliceString(def.Name),
			Description: getDescription(doc, def.Description),
			Type:        parseType(doc, def.Type),
		})
	}
	return fields
}

func parseInputValueDefinitions(doc *ast.Document, refs []int) []FieldDefinition {
	fields := make([]FieldDefinition, 0, len(refs))
	for _, ref := range refs {
		def := doc.InputValueDefinitions[ref]
		fields = append(fields, FieldDefinition{
			Name:        doc.Input.ByteSliceString(def.Name),
			Description: getDescription(doc, def.Description),
			Type:        parseType(doc, def.Type),
		})
	}
	return fields
}

func parseEnumType(doc *ast.Document, ref int) EnumDefinition {
	enumDef := doc.EnumTypeDefinitions[ref]

	enumType := EnumDefinition{
		Name:        doc.Input.ByteSliceString(enumDef.Name),
		Description: getDescription(doc, enumDef.Description),
		Values:      []EnumValue{},
	}

	for _, valueRef := range enumDef.EnumValuesDefinition.Refs {
		valueDef := doc.EnumValueDefinitions[valueRef]
		enumType.Values = append(enumType.Values, EnumValue{
			Name:        doc.Input.ByteSliceString(valueDef.EnumValue),
			Description: getDescription(doc, valueDef.Description),
		})
	}

	return enumType
}

// parseType converts the document's type node into a TypeRef. Nodes the
// document cannot describe come back as nil.
func parseType(doc *ast.Document, typeRef int) *TypeRef {
	if typeRef < 0 || typeRef >= len(doc.Types) {
		return nil
	}

	node := doc.Types[typeRef]
	switch node.TypeKind {
	case ast.TypeKindNamed:
		return Named(doc.Input.ByteSliceString(node.Name))
	case ast.TypeKindList:
		return ListOf(parseType(doc, node.OfType))
	case ast.TypeKindNonNull:
		return NonNull(parseType(doc, node.OfType))
	}

	return nil
}

func getDescription(doc *ast.Document, desc ast.Description) string {
	if !desc.IsDefined {
		return ""
	}

	return strings.TrimSpace(doc.Input.ByteSliceString(desc.Content))
}
