package args

import (
	"fmt"
	"strings"
)

// Registry is the ordered collection of argument specs for one executable.
// It is the single source of truth for which argument names exist: the
// validator derives its set of known names from the registry instead of
// keeping a separate list that could drift out of sync.
type Registry struct {
	specs  []*Spec
	byName map[string]*Spec
}

// NewRegistry builds a registry from specs, preserving their order. The
// catalog itself is validated at construction: names must be unique,
// ConflictsWith and Requires must reference registered specs, a default only
// makes sense on a value-taking argument, and at most one spec may be marked
// Trailing. A broken catalog is a programmer error; all problems found are
// reported in a single joined error.
func NewRegistry(specs ...*Spec) (*Registry, error) {
	r := &Registry{
		specs:  specs,
		byName: make(map[string]*Spec, len(specs)),
	}

	var errs []string
	for _, s := range specs {
		if _, dup := r.byName[s.Name]; dup {
			errs = append(errs, fmt.Sprintf("argument %q is registered twice", s.Name))
			continue
		}
		r.byName[s.Name] = s
	}

	trailing := 0
	for _, s := range specs {
		if s.ConflictsWith != "" {
			if _, ok := r.byName[s.ConflictsWith]; !ok {
				errs = append(errs, fmt.Sprintf("argument %q conflicts with unregistered argument %q", s.Name, s.ConflictsWith))
			}
		}
		if s.Requires != "" {
			if _, ok := r.byName[s.Requires]; !ok {
				errs = append(errs, fmt.Sprintf("argument %q requires unregistered argument %q", s.Name, s.Requires))
			}
		}
		if s.Default != "" && !s.TakesValue {
			errs = append(errs, fmt.Sprintf("argument %q has a default value but takes no value", s.Name))
		}
		if s.Trailing {
			trailing++
		}
	}
	if trailing > 1 {
		errs = append(errs, "more than one argument is marked as trailing")
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid argument catalog:\n- %s", strings.Join(errs, "\n- "))
	}
	return r, nil
}

// Lookup returns the spec registered under name. Trailing specs are not
// addressable as flags and are reported as unknown.
func (r *Registry) Lookup(name string) (*Spec, bool) {
	s, ok := r.byName[name]
	if !ok || s.Trailing {
		return nil, false
	}
	return s, true
}

// Specs returns the registered specs in registration order. The returned
// slice must not be modified.
func (r *Registry) Specs() []*Spec {
	return r.specs
}
