// Package ident generates stable identifiers for graph entities.
//
// Every node, section, and item in a converted graph gets its id from
// [Make], so the same input document always produces the same ids and
// edge references can be computed independently of node construction.
package ident

import "strings"

// Make builds an identifier of the form "<prefix>_<sanitized name>".
//
// The name is sanitized with [Sanitize]; the prefix is used verbatim.
// Make is pure: equal inputs always yield equal outputs, and ids carry
// no randomness or global state.
func Make(prefix, name string) string {
	return prefix + "_" + Sanitize(name)
}

// Sanitize replaces every character outside [A-Za-z0-9] with an
// underscore. Characters already legal are preserved, so sanitizing is
// idempotent.
func Sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r
		case r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, name)
}
