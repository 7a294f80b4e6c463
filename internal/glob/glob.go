// Package glob provides glob pattern matching over logical entry paths.
//
// Extends filepath.Match with ** support for matching any path segments,
// and runs both pattern and path through an equivalence normalizer first so
// literal pattern text matches entry names under the store's profile (e.g.
// "docs/README" finds "docs/readme" under a folding profile). Glob
// metacharacters are ASCII punctuation, which no canonical form or fold
// touches; letters inside character classes are normalised like any other
// literal text, so write classes in folded form under folding profiles.
package glob

import (
	"path/filepath"
	"strings"

	"github.com/jpl-au/pathnorm/internal/equiv"
)

// Match reports whether path matches the glob pattern under the given
// normalizer. Supports standard glob patterns (*, ?) plus ** for matching
// any path segments. Returns an error if the pattern is malformed. A
// byte-exact normalizer gives plain glob matching.
func Match(pattern, path string, n *equiv.Normalizer) (bool, error) {
	// Normalise both sides to equivalence keys; matching is then literal.
	pattern = n.Normalize(filepath.ToSlash(pattern))
	path = n.Normalize(path)

	// Handle ** (match any path segments)
	if strings.Contains(pattern, "**") {
		parts := strings.Split(pattern, "**")
		if len(parts) == 2 {
			prefix := strings.TrimSuffix(parts[0], "/")
			suffix := strings.TrimPrefix(parts[1], "/")

			if prefix != "" && !strings.HasPrefix(path, prefix) {
				return false, nil
			}
			if suffix == "" {
				return true, nil
			}
			// Match suffix as a glob pattern against all path segments
			segments := strings.Split(path, "/")
			for i := range segments {
				tail := strings.Join(segments[i:], "/")
				m, err := filepath.Match(suffix, tail)
				if err != nil {
					return false, err
				}
				if m {
					return true, nil
				}
				// Also try matching just the segment itself
				m, err = filepath.Match(suffix, segments[i])
				if err != nil {
					return false, err
				}
				if m {
					return true, nil
				}
			}
			return false, nil
		}
	}

	// Use filepath.Match for simple patterns
	matched, err := filepath.Match(pattern, path)
	if err != nil {
		return false, err
	}
	if matched {
		return true, nil
	}

	// Try matching just the filename
	matched, err = filepath.Match(pattern, filepath.Base(path))
	return matched, err
}
