package args

import "strings"

const (
	flagPrefix = "--"
	separator  = "--"
)

// isFlag reports whether tok is flag-shaped: it carries the two-dash prefix
// and is not the bare separator itself.
func isFlag(tok string) bool {
	return strings.HasPrefix(tok, flagPrefix) && tok != separator
}

// Invocation is the tokenized form of one raw argument vector. The first
// bare "--" token ends the validated region; every token after it is copied
// verbatim into the trailing segment and never inspected again, even when
// the separator is the only token or appears mid-sequence.
type Invocation struct {
	tokens []string
	extra  []string
	names  map[string]struct{}
}

// Tokenize splits a raw argument vector (program name excluded) at the first
// bare "--" separator and records which flag names appear before it.
func Tokenize(argv []string) *Invocation {
	inv := &Invocation{tokens: argv}
	for i, tok := range argv {
		if tok == separator {
			inv.tokens = argv[:i]
			inv.extra = argv[i+1:]
			break
		}
	}

	inv.names = make(map[string]struct{}, len(inv.tokens))
	for _, tok := range inv.tokens {
		if isFlag(tok) {
			inv.names[strings.TrimPrefix(tok, flagPrefix)] = struct{}{}
		}
	}
	return inv
}

// Has reports whether a flag named name appears in the validated region.
func (inv *Invocation) Has(name string) bool {
	_, ok := inv.names[name]
	return ok
}

// Extra returns the verbatim trailing segment. It is nil when the
// invocation carried no separator.
func (inv *Invocation) Extra() []string {
	return inv.extra
}
