package args

// Spec describes a single recognized argument and the constraints the
// validator enforces for it. Specs are built once at startup and never
// mutated afterwards.
type Spec struct {
	// Name identifies the argument, without the leading dashes. It must be
	// unique within a Registry.
	Name string

	// Required marks arguments that must resolve to a value. A required
	// spec with no Default fails validation when its flag is omitted.
	Required bool

	// ConflictsWith names another spec in the same registry that must not
	// appear in the same invocation.
	ConflictsWith string

	// Requires names another spec in the same registry that must also be
	// supplied whenever this one is. Enforcement is one-directional: A
	// requiring B does not make B require A.
	Requires string

	// TakesValue is true when the flag consumes the token following it as
	// its value. Flag-only arguments resolve to the empty string.
	TakesValue bool

	// Default is stored for a value-taking argument whose flag was omitted.
	Default string

	// AllowedValues, when non-nil, restricts the values the argument
	// accepts. Nil means unrestricted.
	AllowedValues []string

	// Help is the display text rendered in help mode.
	Help string

	// Trailing marks the pseudo-argument that documents verbatim trailing
	// content. It shows up in help output but is not addressable as a flag
	// token; its content is the tokens after the bare "--" separator.
	Trailing bool
}

func (s *Spec) allowsValue(v string) bool {
	if s.AllowedValues == nil {
		return true
	}
	for _, allowed := range s.AllowedValues {
		if v == allowed {
			return true
		}
	}
	return false
}
