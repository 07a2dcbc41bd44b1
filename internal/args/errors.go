package args

import (
	"fmt"
	"strings"
)

// Kind classifies a validation failure.
type Kind int

const (
	// UnknownArgument reports a flag token naming an argument outside the
	// catalog.
	UnknownArgument Kind = iota
	// ConflictingArgument reports two mutually exclusive arguments supplied
	// together.
	ConflictingArgument
	// MissingDependency reports an argument whose required companion was
	// not supplied.
	MissingDependency
	// MissingValue reports a value-taking argument with no value token.
	MissingValue
	// UnexpectedToken reports a bare token where none was expected, such as
	// a value spanning two tokens or a value handed to a flag-only argument.
	UnexpectedToken
	// InvalidEnumValue reports a value outside the argument's allowed set.
	InvalidEnumValue
	// MissingRequiredArgument reports a required argument with no default
	// that was omitted from the invocation.
	MissingRequiredArgument
)

func (k Kind) String() string {
	switch k {
	case UnknownArgument:
		return "UnknownArgument"
	case ConflictingArgument:
		return "ConflictingArgument"
	case MissingDependency:
		return "MissingDependency"
	case MissingValue:
		return "MissingValue"
	case UnexpectedToken:
		return "UnexpectedToken"
	case InvalidEnumValue:
		return "InvalidEnumValue"
	case MissingRequiredArgument:
		return "MissingRequiredArgument"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error describes a single validation failure. The scan is fail-fast, so at
// most one Error is ever produced per invocation.
type Error struct {
	Kind Kind
	// Arg is the argument name involved in the failure, without dashes.
	// For MissingDependency it names the missing companion, and for
	// ConflictingArgument the conflicting argument.
	Arg string
	// Value is the offending token or value, when one is involved.
	Value string
	// Allowed is the permitted value set for InvalidEnumValue failures.
	Allowed []string
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnknownArgument, ConflictingArgument:
		return fmt.Sprintf("found argument '%s' which wasn't expected, or isn't valid in this context", e.Arg)
	case UnexpectedToken:
		return fmt.Sprintf("found argument '%s' which wasn't expected, or isn't valid in this context", e.Value)
	case MissingDependency, MissingRequiredArgument:
		return fmt.Sprintf("argument '%s' required, but not found", e.Arg)
	case MissingValue:
		return fmt.Sprintf("argument '%s' takes a value, but none was supplied", e.Arg)
	case InvalidEnumValue:
		return fmt.Sprintf("'%s' isn't a valid value for '%s'; must be one of %s", e.Value, e.Arg, strings.Join(e.Allowed, ", "))
	default:
		return fmt.Sprintf("invalid argument '%s'", e.Arg)
	}
}
