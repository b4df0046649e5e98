package cxx

import "fmt"

// UnsupportedError is returned when a type annotation, primitive name or
// default value reaches a dispatch point that has no mapping for it.
type UnsupportedError struct {
	Kind  string
	Value string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf(`unsupported %s "%s"`, e.Kind, e.Value)
}

func unsupported(kind string, value any) *UnsupportedError {
	return &UnsupportedError{
		Kind:  kind,
		Value: fmt.Sprint(value),
	}
}

// MissingDefaultError is returned when an enum prop has no default to render.
type MissingDefaultError struct {
	Prop string
}

func (e *MissingDefaultError) Error() string {
	return fmt.Sprintf(`a default value is required for enum prop "%s"`, e.Prop)
}
