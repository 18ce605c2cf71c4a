package generate

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/surajcm/gqlpojo/internal/codegen/source"
)

// ValidateInputs checks that the schema is a readable non-empty file, the
// output root is an existing directory and the namespace is a dotted name.
func ValidateInputs(schemaPath, outputRoot, namespace string) error {
	if err := validateSchemaPath(schemaPath); err != nil {
		return err
	}
	if err := validateOutputRoot(outputRoot); err != nil {
		return err
	}
	return ValidateNamespace(namespace)
}

func validateSchemaPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return &ValidationError{Field: "schema", Value: path, Reason: "path is required"}
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &ValidationError{Field: "schema", Value: path, Reason: "file does not exist", Err: err}
	}
	if err != nil {
		return &IOError{Op: "stat", Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return &ValidationError{Field: "schema", Value: path, Reason: "not a regular file"}
	}
	if info.Size() == 0 {
		return &ValidationError{Field: "schema", Value: path, Reason: "file is empty"}
	}
	return nil
}

func validateOutputRoot(path string) error {
	if strings.TrimSpace(path) == "" {
		return &ValidationError{Field: "output", Value: path, Reason: "path is required"}
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &ValidationError{Field: "output", Value: path, Reason: "directory does not exist", Err: err}
	}
	if err != nil {
		return &IOError{Op: "stat", Path: path, Err: err}
	}
	if !info.IsDir() {
		return &ValidationError{Field: "output", Value: path, Reason: "not a directory"}
	}
	return nil
}

// ValidateNamespace accepts dotted names such as com.example.generated whose
// segments are identifiers.
func ValidateNamespace(namespace string) error {
	if strings.TrimSpace(namespace) == "" {
		return &ValidationError{Field: "package", Value: namespace, Reason: "package name is required"}
	}
	for _, seg := range strings.Split(namespace, ".") {
		if seg == "" {
			return &ValidationError{Field: "package", Value: namespace, Reason: "empty package segment"}
		}
		if !isIdentifier(seg) {
			return &ValidationError{Field: "package", Value: namespace, Reason: "segment " + seg + " is not an identifier"}
		}
	}
	return nil
}

func isIdentifier(s string) bool {
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return s != ""
}

// PrepareOutputLocation makes sure <outputRoot>/<namespace path> exists and
// holds no stale files. Regular files directly inside it are removed;
// subdirectories belong to other packages and are left alone.
func PrepareOutputLocation(outputRoot, namespace string) error {
	dir := filepath.Join(outputRoot, source.NamespaceDir(namespace))

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &IOError{Op: "create", Path: dir, Err: err}
		}
		return nil
	}
	if err != nil {
		return &IOError{Op: "read", Path: dir, Err: err}
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil {
			return &IOError{Op: "remove", Path: path, Err: err}
		}
	}
	return nil
}
