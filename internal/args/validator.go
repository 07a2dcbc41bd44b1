package args

import "strings"

// Validate scans one tokenized invocation against the registry and resolves
// it into Values. The scan is a single left-to-right pass over the validated
// region with no backtracking; the first constraint violation aborts the
// whole invocation and is returned as an *Error.
func Validate(reg *Registry, inv *Invocation) (*Values, error) {
	vals := newValues()
	tokens := inv.tokens

	for i, tok := range tokens {
		if !isFlag(tok) {
			continue
		}
		name := strings.TrimPrefix(tok, flagPrefix)

		spec, ok := reg.Lookup(name)
		if !ok {
			return nil, &Error{Kind: UnknownArgument, Arg: name}
		}
		if spec.ConflictsWith != "" && inv.Has(spec.ConflictsWith) {
			return nil, &Error{Kind: ConflictingArgument, Arg: spec.ConflictsWith}
		}
		if spec.Requires != "" && !inv.Has(spec.Requires) {
			return nil, &Error{Kind: MissingDependency, Arg: spec.Requires}
		}

		if spec.TakesValue {
			if i+1 >= len(tokens) || isFlag(tokens[i+1]) {
				return nil, &Error{Kind: MissingValue, Arg: name}
			}
			// A bare token right after the value means the value would span
			// multiple tokens.
			if i+2 < len(tokens) && !isFlag(tokens[i+2]) {
				return nil, &Error{Kind: UnexpectedToken, Arg: name, Value: tokens[i+2]}
			}
			value := tokens[i+1]
			if !spec.allowsValue(value) {
				return nil, &Error{Kind: InvalidEnumValue, Arg: name, Value: value, Allowed: spec.AllowedValues}
			}
			vals.set(name, value)
			continue
		}

		if i+1 < len(tokens) && !isFlag(tokens[i+1]) {
			return nil, &Error{Kind: UnexpectedToken, Arg: name, Value: tokens[i+1]}
		}
		vals.set(name, "")
	}

	// Finalizing pass: fill in defaults for omitted arguments, then enforce
	// the required ones.
	for _, spec := range reg.Specs() {
		if spec.Trailing || vals.Has(spec.Name) {
			continue
		}
		switch {
		case spec.TakesValue && spec.Default != "":
			vals.set(spec.Name, spec.Default)
		case spec.Required:
			return nil, &Error{Kind: MissingRequiredArgument, Arg: spec.Name}
		}
	}

	vals.extra = inv.Extra()
	return vals, nil
}
