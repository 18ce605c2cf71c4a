package java

import (
	"unicode"
	"unicode/utf8"

	"github.com/surajcm/gqlpojo/internal/codegen/source"
)

var keywords = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true, "byte": true,
	"case": true, "catch": true, "char": true, "class": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extends": true, "final": true, "finally": true, "float": true,
	"for": true, "goto": true, "if": true, "implements": true, "import": true,
	"instanceof": true, "int": true, "interface": true, "long": true, "native": true,
	"new": true, "package": true, "private": true, "protected": true, "public": true,
	"return": true, "short": true, "static": true, "strictfp": true, "super": true,
	"switch": true, "synchronized": true, "this": true, "throw": true, "throws": true,
	"transient": true, "try": true, "void": true, "volatile": true, "while": true,
	"true": true, "false": true, "null": true, "_": true,
}

// Contextual keywords that are legal for variables but not for type names.
var restrictedTypeNames = map[string]bool{
	"var": true, "yield": true, "record": true, "sealed": true, "permits": true,
}

// implicitTypeNames are java.lang types every generated class names without
// qualification. A type of the same name in the package would shadow them.
var implicitTypeNames = map[string]bool{
	"Object": true, "Override": true, "String": true,
}

func checkTypeName(name string) error {
	if keywords[name] || restrictedTypeNames[name] {
		return &source.IdentifierError{Language: "java", Kind: "type", Name: name}
	}
	if implicitTypeNames[name] {
		return &source.IdentifierError{
			Language: "java",
			Kind:     "type",
			Name:     name,
			Reason:   "would shadow java.lang." + name + " in generated classes",
		}
	}
	return nil
}

func checkMemberName(kind, name, owner string) error {
	if keywords[name] {
		return &source.IdentifierError{Language: "java", Kind: kind, Name: name, Owner: owner}
	}
	return nil
}

// capitalize upper-cases the first character only: episode_id -> Episode_id.
func capitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// GetterName returns the accessor used to read field name.
func GetterName(name string) string {
	return "get" + capitalize(name)
}

// SetterName returns the accessor used to write field name.
func SetterName(name string) string {
	return "set" + capitalize(name)
}
