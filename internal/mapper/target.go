package mapper

import "strings"

// TargetKind distinguishes the three shapes of a TargetType.
type TargetKind int

const (
	KindScalar TargetKind = iota
	KindReference
	KindList
)

// TargetType is a resolved target-language type. Scalars and references carry
// a name and an optional namespace; lists carry their element type.
type TargetType struct {
	Kind      TargetKind
	Name      string
	Namespace string
	Elem      *TargetType
}

// Scalar is a built-in or configured scalar type.
func Scalar(name, namespace string) TargetType {
	return TargetType{Kind: KindScalar, Name: name, Namespace: namespace}
}

// Reference is a user-defined type living in namespace.
func Reference(name, namespace string) TargetType {
	return TargetType{Kind: KindReference, Name: name, Namespace: namespace}
}

// ListOf wraps elem in a list.
func ListOf(elem TargetType) TargetType {
	return TargetType{Kind: KindList, Elem: &elem}
}

// ParseTargetType splits a qualified type name at its last dot, so
// "java.time.OffsetDateTime" and "github.com/shopspring/decimal.Decimal" both
// become a namespace plus a simple name. A name without a dot has no namespace.
func ParseTargetType(qualified string) TargetType {
	qualified = strings.TrimSpace(qualified)
	idx := strings.LastIndex(qualified, ".")
	if idx < 0 {
		return Scalar(qualified, "")
	}
	return Scalar(qualified[idx+1:], qualified[:idx])
}

// Qualified renders the type with its namespace, using <> for lists.
func (t TargetType) Qualified() string {
	if t.Kind == KindList {
		if t.Elem == nil {
			return "List<>"
		}
		return "List<" + t.Elem.Qualified() + ">"
	}
	if t.Namespace == "" {
		return t.Name
	}
	return t.Namespace + "." + t.Name
}

func (t TargetType) String() string {
	return t.Qualified()
}

// Equal compares two types structurally, following list elements.
func (t TargetType) Equal(o TargetType) bool {
	if t.Kind != o.Kind || t.Name != o.Name || t.Namespace != o.Namespace {
		return false
	}
	if t.Elem == nil || o.Elem == nil {
		return t.Elem == o.Elem
	}
	return t.Elem.Equal(*o.Elem)
}

// Walk calls fn for t and every nested element type, outermost first.
func (t TargetType) Walk(fn func(TargetType)) {
	fn(t)
	if t.Kind == KindList && t.Elem != nil {
		t.Elem.Walk(fn)
	}
}
