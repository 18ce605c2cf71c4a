package java

import (
	"slices"

	"github.com/surajcm/gqlpojo/internal/mapper"
)

const (
	langPackage = "java.lang"
	utilPackage = "java.util"
)

// importSet tracks every type a unit refers to. A simple name used from more
// than one namespace, or clashing with the unit's own type, is written fully
// qualified everywhere instead of being imported.
type importSet struct {
	namespace string
	seen      map[string][]string // simple name -> namespaces, first use first
}

func newImportSet(namespace, self string) *importSet {
	s := &importSet{namespace: namespace, seen: make(map[string][]string)}
	s.use(namespace, self)
	return s
}

func (s *importSet) use(ns, name string) {
	if !slices.Contains(s.seen[name], ns) {
		s.seen[name] = append(s.seen[name], ns)
	}
}

func (s *importSet) useType(t mapper.TargetType) {
	t.Walk(func(tt mapper.TargetType) {
		if tt.Kind == mapper.KindList {
			s.use(utilPackage, "List")
			return
		}
		s.use(tt.Namespace, tt.Name)
	})
}

func (s *importSet) qualified(ns, name string) bool {
	return ns != "" && len(s.seen[name]) > 1
}

// ref returns how the type is spelled in the unit body.
func (s *importSet) ref(ns, name string) string {
	if s.qualified(ns, name) {
		return ns + "." + name
	}
	return name
}

// typeName renders t as Java source, e.g. List<Integer>.
func (s *importSet) typeName(t mapper.TargetType) string {
	if t.Kind == mapper.KindList {
		elem := "Object"
		if t.Elem != nil {
			elem = s.typeName(*t.Elem)
		}
		return s.ref(utilPackage, "List") + "<" + elem + ">"
	}
	return s.ref(t.Namespace, t.Name)
}

// lines returns the sorted import declarations.
func (s *importSet) lines() []string {
	var out []string
	for name, namespaces := range s.seen {
		for _, ns := range namespaces {
			if ns == "" || ns == langPackage || ns == s.namespace || s.qualified(ns, name) {
				continue
			}
			out = append(out, ns+"."+name)
		}
	}
	slices.Sort(out)
	return out
}
