// Package regex implements a small Thompson-construction regex core:
// infix regexes are translated to postfix, compiled to an NFA, and matched
// against input by simulating every live state at once.
//
// The four operations are pure and independent of each other except by
// composition: ToPostfix and FromPostfix convert between the infix and
// postfix forms of the same grammar (see FromPostfix for where they differ),
// BuildNFA compiles a postfix-translated regex into a graph, and Matches
// runs BuildNFA followed by simulation. None of them touch a filesystem,
// a clock, or any package-level state, so a single *NFA produced by
// BuildNFA can be shared across goroutines for concurrent Matches-style
// simulation as long as each call uses its own frontier (which it does —
// see match.go).
package regex
