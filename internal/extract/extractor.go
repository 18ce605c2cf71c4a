// Package extract turns a parsed schema Registry into model descriptors.
package extract

import (
	"github.com/surajcm/gqlpojo/internal/model"
	"github.com/surajcm/gqlpojo/internal/schema"
)

// rootOperationTypes are entry points, not data shapes.
var rootOperationTypes = map[string]bool{
	"Query":        true,
	"Mutation":     true,
	"Subscription": true,
}

// IsRootOperationType reports whether name is one of the reserved root
// operation type names.
func IsRootOperationType(name string) bool {
	return rootOperationTypes[name]
}

// Extractor reads descriptors out of a Registry. It never modifies the
// registry, so repeated calls on the same registry return equal results.
type Extractor struct{}

// NewExtractor creates an Extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractObjectTypes returns every object type except the root operation types.
func (e *Extractor) ExtractObjectTypes(reg *schema.Registry) []*model.TypeDescriptor {
	types := []*model.TypeDescriptor{}
	for _, def := range reg.Objects {
		if IsRootOperationType(def.Name) {
			continue
		}
		types = append(types, toTypeDescriptor(def, model.Object))
	}
	return types
}

// ExtractInputTypes returns every input object type.
func (e *Extractor) ExtractInputTypes(reg *schema.Registry) []*model.TypeDescriptor {
	return toTypeDescriptors(reg.Inputs, model.InputObject)
}

// ExtractInterfaceTypes returns every interface type.
func (e *Extractor) ExtractInterfaceTypes(reg *schema.Registry) []*model.TypeDescriptor {
	return toTypeDescriptors(reg.Interfaces, model.Interface)
}

// ExtractEnumTypes returns every enum with its values in declaration order.
func (e *Extractor) ExtractEnumTypes(reg *schema.Registry) []*model.EnumDescriptor {
	enums := make([]*model.EnumDescriptor, 0, len(reg.Enums))
	for _, def := range reg.Enums {
		values := make([]string, 0, len(def.Values))
		for _, v := range def.Values {
			values = append(values, v.Name)
		}
		enums = append(enums, model.NewEnumDescriptor(def.Name, values).WithDescription(def.Description))
	}
	return enums
}

// ExtractAllTypes returns object, input and interface types, in that order.
func (e *Extractor) ExtractAllTypes(reg *schema.Registry) []*model.TypeDescriptor {
	var all []*model.TypeDescriptor
	all = append(all, e.ExtractObjectTypes(reg)...)
	all = append(all, e.ExtractInputTypes(reg)...)
	all = append(all, e.ExtractInterfaceTypes(reg)...)
	return all
}

func toTypeDescriptors(defs []schema.TypeDefinition, kind model.TypeKind) []*model.TypeDescriptor {
	types := make([]*model.TypeDescriptor, 0, len(defs))
	for _, def := range defs {
		types = append(types, toTypeDescriptor(def, kind))
	}
	return types
}

func toTypeDescriptor(def schema.TypeDefinition, kind model.TypeKind) *model.TypeDescriptor {
	fields := make([]model.FieldDescriptor, 0, len(def.Fields))
	for _, f := range def.Fields {
		name, isList, isRequired := ResolveTypeRef(f.Type)
		fields = append(fields, model.FieldDescriptor{
			Name:             f.Name,
			DeclaredTypeName: name,
			IsList:           isList,
			IsRequired:       isRequired,
			Description:      f.Description,
		})
	}
	return model.NewTypeDescriptor(def.Name, kind, fields).WithDescription(def.Description)
}

// ResolveTypeRef strips at most one outer non-null, one list and one inner
// non-null wrapper and returns the named type underneath. Only the outer
// non-null sets isRequired; element nullability inside a list is not tracked.
// Anything that is not a named type after unwrapping, such as a nested list,
// resolves to model.UnknownTypeName.
func ResolveTypeRef(ref *schema.TypeRef) (name string, isList, isRequired bool) {
	current := ref

	if current != nil && current.Kind == schema.TypeRefNonNull {
		isRequired = true
		current = current.OfType
	}

	if current != nil && current.Kind == schema.TypeRefList {
		isList = true
		current = current.OfType

		if current != nil && current.Kind == schema.TypeRefNonNull {
			current = current.OfType
		}
	}

	if current != nil && current.Kind == schema.TypeRefNamed && current.Name != "" {
		return current.Name, isList, isRequired
	}

	return model.UnknownTypeName, isList, isRequired
}
