// normalizer.go implements the comparison-key side of the engine.
//
// The canonical-form and case-fold steps are composed as an x/text
// transformer chain built once per profile. Fold casers carry internal
// buffers and are not safe for concurrent use, so chains are pooled rather
// than shared; Normalize itself is safe from any number of goroutines.

package equiv

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer produces equivalence keys and compiled matchers for one
// profile. Stateless beyond the profile; a single instance serves a whole
// file system, and both names of a comparison must go through the same
// instance.
type Normalizer struct {
	profile Profile

	// pool of transformer chains; nil for the byte-exact profile.
	chains *sync.Pool
}

// New returns a Normalizer for the given profile.
func New(p Profile) *Normalizer {
	n := &Normalizer{profile: p}
	if p.form != formNone || p.fold != foldNone {
		n.chains = &sync.Pool{
			New: func() any { return newChain(p) },
		}
	}
	return n
}

// Profile returns the profile this normalizer was built from.
func (n *Normalizer) Profile() Profile {
	return n.profile
}

// newChain builds the transformer pipeline for a profile. The canonical-form
// step must precede the fold step: ASCII-only folding can only see base
// letters that decomposition has already separated from their marks.
func newChain(p Profile) transform.Transformer {
	var ts []transform.Transformer
	switch p.form {
	case formNFC:
		ts = append(ts, norm.NFC)
	case formNFD:
		ts = append(ts, norm.NFD)
	}
	switch p.fold {
	case foldFull:
		ts = append(ts, cases.Fold())
	case foldASCII:
		ts = append(ts, runes.Map(foldASCIIRune))
	}
	if len(ts) == 1 {
		return ts[0]
	}
	return transform.Chain(ts...)
}

// Normalize returns the equivalence key for name. Two names are equivalent
// under the profile exactly when their keys are byte-equal. Total over any
// input: invalid UTF-8 passes through untransformed rather than failing.
func (n *Normalizer) Normalize(name string) string {
	if n.chains == nil {
		return name
	}

	// ASCII never composes, decomposes, or folds outside a-z.
	if isASCII(name) {
		if n.profile.fold == foldNone {
			return name
		}
		return strings.Map(foldASCIIRune, name)
	}

	tr := n.chains.Get().(transform.Transformer)
	tr.Reset()
	out, _, err := transform.String(tr, name)
	n.chains.Put(tr)
	if err != nil {
		return name
	}
	return out
}

// foldASCIIRune lowercases the ASCII uppercase letters and nothing else.
func foldASCIIRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
