package subst

import "errors"

// Sentinel errors for engine construction.
var (
	// ErrPattern is returned when a variable-name pattern fails to
	// compile.
	ErrPattern = errors.New("invalid variable pattern")
)
