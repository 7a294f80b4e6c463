package equiv

import "testing"

// assertMatch checks the pattern compiled from either side matches the other.
func assertMatch(t *testing.T, n *Normalizer, a, b string) {
	t.Helper()
	if !n.CompilePattern(a).Matches(b) {
		t.Errorf("[%v] pattern %q does not match %q", n.Profile(), a, b)
	}
	if !n.CompilePattern(b).Matches(a) {
		t.Errorf("[%v] pattern %q does not match %q", n.Profile(), b, a)
	}
}

func assertNoMatch(t *testing.T, n *Normalizer, a, b string) {
	t.Helper()
	if n.CompilePattern(a).Matches(b) {
		t.Errorf("[%v] pattern %q should not match %q", n.Profile(), a, b)
	}
	if n.CompilePattern(b).Matches(a) {
		t.Errorf("[%v] pattern %q should not match %q", n.Profile(), b, a)
	}
}

func TestExactPattern(t *testing.T) {
	n := New(None())
	assertMatch(t, n, "foo", "foo")
	assertNoMatch(t, n, "foo", "FOO")
	assertNoMatch(t, n, "Amélie", "Amélie")
}

func TestCaseFoldPattern(t *testing.T) {
	n := mustNormalizer(t, FoldUnicode)
	assertMatch(t, n, "foo", "foo")
	assertMatch(t, n, "foo", "FOO")
	assertMatch(t, n, "Amélie", "AMÉLIE")
	assertMatch(t, n, "Amélie", "AMÉLIE")

	// Folding alone never bridges composed and decomposed spellings:
	// canonical equivalence is a separate knob.
	assertNoMatch(t, n, "Amélie", "Amélie")
	assertNoMatch(t, n, "AMÉLIE", "AMÉLIE")
	assertNoMatch(t, n, "Amélie", "AMÉLIE")
}

func TestCaseFoldASCIIPattern(t *testing.T) {
	n := mustNormalizer(t, FoldASCII)
	assertMatch(t, n, "foo", "foo")
	assertMatch(t, n, "foo", "FOO")
	assertMatch(t, n, "Amélie", "AMÉLIE")

	assertNoMatch(t, n, "Amélie", "AMÉLIE")
	assertNoMatch(t, n, "Amélie", "Amélie")
	assertNoMatch(t, n, "AMÉLIE", "AMÉLIE")
	assertNoMatch(t, n, "Amélie", "AMÉLIE")
}

func TestNFCPattern(t *testing.T) {
	n := mustNormalizer(t, NFC)
	assertMatch(t, n, "foo", "foo")
	assertNoMatch(t, n, "foo", "FOO")
	assertMatch(t, n, "Amélie", "Amélie")
	assertNoMatch(t, n, "Amélie", "AMÉLIE")
}

func TestNFDPattern(t *testing.T) {
	n := mustNormalizer(t, NFD)
	assertMatch(t, n, "foo", "foo")
	assertNoMatch(t, n, "foo", "FOO")
	assertMatch(t, n, "Amélie", "Amélie")
	assertNoMatch(t, n, "Amélie", "AMÉLIE")
}

func TestNFCCaseFoldPattern(t *testing.T) {
	n := mustNormalizer(t, NFC, FoldUnicode)
	assertMatch(t, n, "foo", "FOO")
	assertMatch(t, n, "Amélie", "AMÉLIE")
	assertMatch(t, n, "Amélie", "Amélie")
	assertMatch(t, n, "AMÉLIE", "AMÉLIE")
	assertMatch(t, n, "Amélie", "AMÉLIE")
}

func TestNFDCaseFoldPattern(t *testing.T) {
	n := mustNormalizer(t, NFD, FoldUnicode)
	assertMatch(t, n, "foo", "FOO")
	assertMatch(t, n, "Amélie", "AMÉLIE")
	assertMatch(t, n, "Amélie", "Amélie")
	assertMatch(t, n, "AMÉLIE", "AMÉLIE")
	assertMatch(t, n, "Amélie", "AMÉLIE")
}

func TestNFCCaseFoldASCIIPattern(t *testing.T) {
	n := mustNormalizer(t, NFC, FoldASCII)
	assertMatch(t, n, "foo", "FOO")

	// Composition runs first, so the accented letters are single non-ASCII
	// code points by the time the ASCII fold sees them: case variants of é
	// stay distinct, while composed/decomposed spellings of the same-case
	// name unify.
	assertMatch(t, n, "Amélie", "Amélie")
	assertMatch(t, n, "AMÉLIE", "AMÉLIE")
	assertNoMatch(t, n, "Amélie", "AMÉLIE")
	assertNoMatch(t, n, "Amélie", "AMÉLIE")
	assertNoMatch(t, n, "Amélie", "AMÉLIE")
}

func TestNFDCaseFoldASCIIPattern(t *testing.T) {
	n := mustNormalizer(t, NFD, FoldASCII)
	assertMatch(t, n, "foo", "FOO")

	// Decomposition exposes the base letters, so all four spellings of the
	// name collapse to one key.
	assertMatch(t, n, "Amélie", "AMÉLIE")
	assertMatch(t, n, "Amélie", "Amélie")
	assertMatch(t, n, "Amélie", "AMÉLIE")
	assertMatch(t, n, "AMÉLIE", "AMÉLIE")
}

// TestPatternAgreesWithNormalize checks, for every profile and every pair
// drawn from a mixed sample, that matching in either direction equals key
// equality. This is the engine's central contract.
func TestPatternAgreesWithNormalize(t *testing.T) {
	samples := []string{
		"",
		"foo", "FOO", "fOo",
		"Amélie", "AMÉLIE", "Amélie", "AMÉLIE",
		"Å", "å", "Å", "Å",
		"weiß", "weiss", "WEISS", "WEIẞ",
		"eﬃcient", "efficient",
		"στιγμας", "ΣΤΙΓΜΑΣ",
		string([]byte{0xff, 'x'}),
	}

	for _, opts := range allProfileOptions() {
		n := mustNormalizer(t, opts...)
		for _, a := range samples {
			pa := n.CompilePattern(a)
			for _, b := range samples {
				keysEqual := n.Normalize(a) == n.Normalize(b)
				if got := pa.Matches(b); got != keysEqual {
					t.Errorf("[%v] pattern %q matches %q = %v, key equality = %v",
						n.Profile(), a, b, got, keysEqual)
				}
				if got := n.CompilePattern(b).Matches(a); got != keysEqual {
					t.Errorf("[%v] pattern %q matches %q = %v, key equality = %v",
						n.Profile(), b, a, got, keysEqual)
				}
			}
		}
	}
}

func TestPatternRetainsLiteral(t *testing.T) {
	n := mustNormalizer(t, NFD, FoldUnicode)
	p := n.CompilePattern("Amélie")
	if p.String() != "Amélie" {
		t.Errorf("pattern literal = %q, want the un-normalised input", p.String())
	}
}
