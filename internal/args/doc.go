// Package args implements the declarative argument model and the invocation
// scanner for the launcher executable.
//
// A Registry holds an ordered catalog of Spec values, each describing one
// recognized argument and its constraints: required or optional, mutual
// exclusion, dependency on another argument, value-taking or flag-only,
// default value, and restricted value sets. Tokenize splits a raw argument
// vector into flag tokens and the verbatim trailing segment, and Validate
// walks the tokens left to right against the registry, producing the
// resolved Values mapping or a typed *Error naming the first violation.
//
// The package only validates the shape of an invocation. It never opens the
// paths it resolves or acts on the values in any other way; that is the
// caller's business.
package args
