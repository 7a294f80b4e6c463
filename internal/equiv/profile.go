// Package equiv decides whether two file or directory names refer to the
// same entry.
//
// Equivalence is configured per store through a Profile: an optional Unicode
// canonical form (compose or decompose) combined with an optional case fold
// (full Unicode or ASCII-only). A Normalizer built from a profile produces
// stable comparison keys for name maps, and compiles matchers that test a
// candidate name against a stored one without normalising the stored side
// up front.
//
// Ordering matters: the canonical-form step always runs before the case-fold
// step. Under ASCII-only folding this is observable - decomposition exposes
// the base letter of an accented character to the fold, while composition
// keeps it as a single non-ASCII code point the fold must leave alone.
package equiv

import "fmt"

// Option is a symbolic profile option. Options are combined by NewProfile;
// at most one canonical form and at most one case fold may be selected.
type Option int

const (
	// NFC selects Unicode canonical composition as the canonical form.
	NFC Option = iota
	// NFD selects Unicode canonical decomposition as the canonical form.
	NFD
	// FoldUnicode selects full Unicode default case folding, including
	// multi-character and positional mappings.
	FoldUnicode
	// FoldASCII restricts case folding to the 26 ASCII uppercase letters.
	FoldASCII
)

// String returns the option's name as it appears in config files and flags.
func (o Option) String() string {
	switch o {
	case NFC:
		return "nfc"
	case NFD:
		return "nfd"
	case FoldUnicode:
		return "fold"
	case FoldASCII:
		return "fold-ascii"
	}
	return fmt.Sprintf("option(%d)", int(o))
}

// form selects the canonical-form step.
type form int

const (
	formNone form = iota
	formNFC
	formNFD
)

// fold selects the case-fold step.
type fold int

const (
	foldNone fold = iota
	foldFull
	foldASCII
)

// Profile is an immutable, validated equivalence configuration. The zero
// value is the byte-exact, case-sensitive profile. Profiles are plain values
// and safe to share between any number of goroutines.
type Profile struct {
	form form
	fold fold
}

// NewProfile validates the given options and returns the profile they
// describe. Selecting both canonical forms, or both case folds, is a
// configuration error; duplicated options are harmless.
func NewProfile(opts ...Option) (Profile, error) {
	var p Profile
	for _, o := range opts {
		switch o {
		case NFC, NFD:
			f := formNFC
			if o == NFD {
				f = formNFD
			}
			if p.form != formNone && p.form != f {
				return Profile{}, fmt.Errorf("%w: nfc and nfd", ErrConflictingForm)
			}
			p.form = f
		case FoldUnicode, FoldASCII:
			f := foldFull
			if o == FoldASCII {
				f = foldASCII
			}
			if p.fold != foldNone && p.fold != f {
				return Profile{}, fmt.Errorf("%w: fold and fold-ascii", ErrConflictingFold)
			}
			p.fold = f
		default:
			return Profile{}, fmt.Errorf("%w: %v", ErrUnknownOption, o)
		}
	}
	return p, nil
}

// None returns the byte-exact, case-sensitive profile.
func None() Profile {
	return Profile{}
}

// Options returns the symbolic options this profile was built from, in
// canonical order (form first, then fold). Empty for the byte-exact profile.
func (p Profile) Options() []Option {
	var opts []Option
	switch p.form {
	case formNFC:
		opts = append(opts, NFC)
	case formNFD:
		opts = append(opts, NFD)
	}
	switch p.fold {
	case foldFull:
		opts = append(opts, FoldUnicode)
	case foldASCII:
		opts = append(opts, FoldASCII)
	}
	return opts
}

// String returns a short display form such as "nfd+fold-ascii" or "exact".
func (p Profile) String() string {
	opts := p.Options()
	if len(opts) == 0 {
		return "exact"
	}
	s := opts[0].String()
	for _, o := range opts[1:] {
		s += "+" + o.String()
	}
	return s
}
