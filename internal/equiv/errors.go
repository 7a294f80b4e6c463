// errors.go defines sentinel errors for profile validation failures.
//
// These are the only errors this package produces: a well-formed profile
// never fails afterwards. Checked with errors.Is; detail is added by
// wrapping with fmt.Errorf at the point of failure.

package equiv

import "errors"

var (
	ErrConflictingForm = errors.New("conflicting canonical forms")
	ErrConflictingFold = errors.New("conflicting case folds")
	ErrUnknownOption   = errors.New("unknown profile option")
)
