// pattern.go implements the matcher side of the engine.
//
// A compiled pattern accepts exactly the names that share the literal's
// equivalence key, so matching agrees with Normalize on every profile and
// is symmetric by construction. The earlier regex-flag approach (canonical
// equivalence and case-insensitivity as engine flags) drifted from key
// equality under the composed-form ASCII-fold profile; compiling against
// the key removes that drift.

package equiv

// Pattern is an immutable matcher bound to one literal name and one
// profile. Patterns are cheap to compile and safe for concurrent use; cache
// them only when matching the same literal against many candidates.
type Pattern struct {
	n       *Normalizer
	literal string
	key     string
}

// CompilePattern builds a matcher for the literal name. The literal is
// data, not an expression: no escaping is required and compilation cannot
// fail. The literal itself is retained un-normalised; its key is computed
// once here so Matches costs one candidate transform.
func (n *Normalizer) CompilePattern(name string) *Pattern {
	return &Pattern{n: n, literal: name, key: n.Normalize(name)}
}

// Matches reports whether candidate is equivalent to the pattern's literal
// under the profile. For any two names a and b,
// CompilePattern(a).Matches(b) == CompilePattern(b).Matches(a).
func (p *Pattern) Matches(candidate string) bool {
	return p.n.Normalize(candidate) == p.key
}

// String returns the literal the pattern was compiled from.
func (p *Pattern) String() string {
	return p.literal
}
