package source

import "fmt"

// IdentifierError reports a schema name that cannot be used as an
// identifier in the target language.
type IdentifierError struct {
	Language string
	Kind     string // "type", "field", "enum value" or "package"
	Name     string
	Owner    string // enclosing type, empty for type and package names
	Reason   string // defaults to "is a reserved word in <Language>"
}

func (e *IdentifierError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "is a reserved word in " + e.Language
	}
	if e.Owner != "" {
		return fmt.Sprintf("%s %q of %s %s", e.Kind, e.Name, e.Owner, reason)
	}
	return fmt.Sprintf("%s %q %s", e.Kind, e.Name, reason)
}
