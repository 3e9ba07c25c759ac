package valueobject

import "fmt"

// Kind identifies the shape of a task
type Kind string

const (
	KindToDo     Kind = "todo"
	KindDeadline Kind = "deadline"
	KindEvent    Kind = "event"
)

// ParseKind converts a stored kind name to a Kind
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid task kind: %q", s)
	}
	return k, nil
}

// IsValid reports whether the kind is one of the known shapes
func (k Kind) IsValid() bool {
	switch k {
	case KindToDo, KindDeadline, KindEvent:
		return true
	}
	return false
}

// Marker returns the single-letter tag shown in task listings
func (k Kind) Marker() string {
	switch k {
	case KindToDo:
		return "T"
	case KindDeadline:
		return "D"
	case KindEvent:
		return "E"
	}
	return "?"
}

// String returns the kind name
func (k Kind) String() string {
	return string(k)
}
