// Package source holds emitted source units and writes them to disk.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Unit is one emitted type: its namespace, type name and full text.
type Unit struct {
	Namespace string
	TypeName  string
	Extension string
	Content   []byte
}

// FileName returns the unit's file name, e.g. "User.java".
func (u *Unit) FileName() string {
	return u.TypeName + u.Extension
}

// Path returns where the unit lives under root:
// <root>/<namespace segments>/<TypeName><ext>.
func (u *Unit) Path(root string) string {
	return filepath.Join(root, NamespaceDir(u.Namespace), u.FileName())
}

// Save writes the unit under root and returns the file path. Content goes to a
// temporary file in the target directory first and is renamed into place, so
// a failed write never leaves a partial file behind.
func (u *Unit) Save(root string) (string, error) {
	path := u.Path(root)
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+u.FileName()+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(u.Content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("rename into %s: %w", path, err)
	}

	return path, nil
}

// NamespaceDir converts a dotted namespace into a relative directory,
// skipping empty segments.
func NamespaceDir(namespace string) string {
	var parts []string
	for _, seg := range strings.Split(namespace, ".") {
		if seg = strings.TrimSpace(seg); seg != "" {
			parts = append(parts, seg)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return filepath.Join(parts...)
}
