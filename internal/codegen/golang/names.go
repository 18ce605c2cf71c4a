package golang

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/surajcm/gqlpojo/internal/codegen/source"
)

// predeclared identifiers that would shadow a type when used as a parameter
var predeclared = map[string]bool{
	"any": true, "bool": true, "byte": true, "comparable": true, "complex64": true,
	"complex128": true, "error": true, "float32": true, "float64": true, "int": true,
	"int8": true, "int16": true, "int32": true, "int64": true, "rune": true,
	"string": true, "uint": true, "uint8": true, "uint16": true, "uint32": true,
	"uint64": true, "uintptr": true, "true": true, "false": true, "iota": true,
	"nil": true, "append": true, "cap": true, "clear": true, "close": true,
	"complex": true, "copy": true, "delete": true, "imag": true, "len": true,
	"make": true, "max": true, "min": true, "new": true, "panic": true,
	"print": true, "println": true, "real": true, "recover": true,
}

func upperFirst(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

func lowerFirst(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}

// fieldIdent is the unexported struct field for a schema field.
func fieldIdent(name string) string {
	return lowerFirst(name)
}

// paramIdent names the constructor parameter for a field.
func paramIdent(ident string) string {
	if predeclared[ident] {
		return ident + "Value"
	}
	return ident
}

// receiverName picks a receiver that cannot collide with the setter
// parameter or the Equal argument.
func receiverName(typeName string) string {
	r, _ := utf8.DecodeRuneInString(typeName)
	if !unicode.IsLetter(r) {
		return "x"
	}
	name := string(unicode.ToLower(r))
	if name == "v" {
		return "x"
	}
	return name
}

// packageName derives the Go package from the last namespace segment.
func packageName(namespace string) (string, error) {
	segments := strings.Split(namespace, ".")
	name := strings.ToLower(strings.TrimSpace(segments[len(segments)-1]))
	if name == "" {
		return "model", nil
	}
	if token.IsKeyword(name) || !token.IsIdentifier(name) {
		return "", &source.IdentifierError{
			Language: "go",
			Kind:     "package",
			Name:     name,
			Reason:   "is not a valid Go package name",
		}
	}
	return name, nil
}

func checkTypeName(name string) error {
	if token.IsKeyword(name) {
		return &source.IdentifierError{Language: "go", Kind: "type", Name: name}
	}
	if name == "_" {
		return &source.IdentifierError{Language: "go", Kind: "type", Name: name, Reason: "cannot name a Go type"}
	}
	return nil
}

// checkFields rejects keywords and names that fold onto the same struct field.
func checkFields(owner string, names []string) error {
	seen := make(map[string]string, len(names))
	for _, name := range names {
		ident := fieldIdent(name)
		if token.IsKeyword(ident) {
			return &source.IdentifierError{Language: "go", Kind: "field", Name: name, Owner: owner}
		}
		if ident == "_" {
			return &source.IdentifierError{Language: "go", Kind: "field", Name: name, Owner: owner, Reason: "cannot name a Go field"}
		}
		if prev, ok := seen[ident]; ok {
			return &source.IdentifierError{
				Language: "go",
				Kind:     "field",
				Name:     name,
				Owner:    owner,
				Reason:   "collides with field " + prev,
			}
		}
		seen[ident] = name
	}
	return nil
}
