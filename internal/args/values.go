package args

// Values is the resolved name-to-value mapping produced by a successful
// validation pass. Flag-only arguments that were supplied map to the empty
// string; omitted optional arguments are simply absent. Values is populated
// once during the scan and treated as read-only afterwards.
type Values struct {
	resolved map[string]string
	extra    []string
}

func newValues() *Values {
	return &Values{resolved: make(map[string]string)}
}

func (v *Values) set(name, value string) {
	v.resolved[name] = value
}

// Get returns the resolved value for name, or the empty string when the
// argument is absent. Use Lookup when absence matters: supplied flag-only
// arguments also resolve to the empty string.
func (v *Values) Get(name string) string {
	return v.resolved[name]
}

// Lookup returns the resolved value for name and whether it is present.
func (v *Values) Lookup(name string) (string, bool) {
	value, ok := v.resolved[name]
	return value, ok
}

// Has reports whether name resolved to anything, including the flag-only
// empty-string sentinel.
func (v *Values) Has(name string) bool {
	_, ok := v.resolved[name]
	return ok
}

// Len returns the number of resolved arguments.
func (v *Values) Len() int {
	return len(v.resolved)
}

// Extra returns the verbatim trailing segment of the invocation, untouched
// by validation.
func (v *Values) Extra() []string {
	return v.extra
}
