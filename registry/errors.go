package registry

import "errors"

// Error kinds, ordered by ascending severity.
var (
	// ErrUnknownToken is returned by the Get* lookups when no descriptor is
	// bound to the requested token. Recoverable by the caller.
	ErrUnknownToken = errors.New("registry: unknown token")

	// ErrRegistrationConflict is returned when a token is already bound to
	// a structurally different descriptor.
	ErrRegistrationConflict = errors.New("registry: token already bound to an incompatible descriptor")

	// ErrAssumptionFailure is raised for violated internal invariants, e.g.
	// Unregister called with a kind outside the four descriptor kinds.
	ErrAssumptionFailure = errors.New("registry: internal invariant violated")
)
