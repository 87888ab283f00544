package plib

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	UnknownKind Kind = "UNKNOWN"

	// TypeKind is reported when a coordinate is not an integer.
	TypeKind Kind = "TYPE"

	// ComparisonNotSupportedKind is reported when a Point is compared against
	// a value that is not a Point.
	ComparisonNotSupportedKind Kind = "COMPARISON_NOT_SUPPORTED"

	// MalformedDataKind is reported when JSON input does not describe a Point.
	MalformedDataKind Kind = "MALFORMED_DATA"
)

// Sentinels for errors.Is. Any *Error of the same Kind matches.
var (
	ErrType                   = &Error{Kind: TypeKind}
	ErrComparisonNotSupported = &Error{Kind: ComparisonNotSupportedKind}
	ErrMalformedData          = &Error{Kind: MalformedDataKind}
)

// Error describes a failed Point operation.
type Error struct {
	Kind Kind
	// Op is the operation that failed: "new", "eq" or "from_json".
	Op string
	// Arg names the offending argument or JSON field, if any.
	Arg string
	// Type is the Go type of the offending value, if known.
	Type string
	Err  error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case TypeKind:
		msg = "coordinate is not an integer"
		if e.Arg != "" {
			msg = fmt.Sprintf("argument %s has type %s, want integer", e.Arg, e.Type)
		}
	case ComparisonNotSupportedKind:
		msg = "comparison not supported"
		if e.Type != "" {
			msg = fmt.Sprintf("cannot compare Point with %s", e.Type)
		}
	case MalformedDataKind:
		msg = "malformed point data"
		if e.Arg != "" {
			msg += " in field " + e.Arg
		}
	default:
		msg = string(e.Kind)
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return "plib: " + msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Kind == e.Kind
}

// GetKind extracts the Kind from any error.
// Returns UnknownKind if err is not a plib error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return UnknownKind
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	return GetKind(err) == kind
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
