// Package format provides output formatting utilities for CLI display.
//
// Centralises formatting logic so that command implementations focus on
// business logic while this package handles presentation concerns like
// column alignment and code-point listings.
package format

import (
	"fmt"
	"io"
)

// KeyedName pairs a name with its equivalence key.
type KeyedName struct {
	Name string `json:"name"`
	Key  string `json:"key"`
}

// Keys prints name/key pairs with the keys aligned.
func Keys(w io.Writer, pairs []KeyedName) {
	maxKey := 3 // minimum "KEY"
	for _, p := range pairs {
		if len(p.Key) > maxKey {
			maxKey = len(p.Key)
		}
	}
	for _, p := range pairs {
		fmt.Fprintf(w, "%-*s  %s\n", maxKey, p.Key, p.Name)
	}
}

// MatchResult records whether one candidate matched the compiled name.
type MatchResult struct {
	Candidate string `json:"candidate"`
	Matched   bool   `json:"matched"`
}

// Matches prints one line per candidate: "match" or "no match" followed by
// the candidate spelling.
func Matches(w io.Writer, results []MatchResult) {
	for _, r := range results {
		verdict := "no match"
		if r.Matched {
			verdict = "match"
		}
		fmt.Fprintf(w, "%-8s  %s\n", verdict, r.Candidate)
	}
}

// Groups prints duplicate groups as blank-line separated blocks, each
// spelling on its own line.
func Groups(w io.Writer, groups [][]string) {
	for i, group := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		for _, name := range group {
			fmt.Fprintln(w, name)
		}
	}
}

// CodePoints returns a line-per-code-point listing of s, in the form
// "U+0041 A". Invalid UTF-8 bytes appear as the replacement character,
// which keeps the listing total over any input.
func CodePoints(s string) string {
	var b []byte
	for _, r := range s {
		b = fmt.Appendf(b, "U+%04X %c\n", r, r)
	}
	return string(b)
}
