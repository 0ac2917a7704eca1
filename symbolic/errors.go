package symbolic

import "errors"

// Sentinel errors for the symbolic package.
//
// Callers MUST use errors.Is to branch on these; messages are not a stable
// contract, the sentinel identities are.
var (
	// ErrEmpty indicates a constructor received an empty collection where
	// a non-empty one is required (Clause, CNF).
	ErrEmpty = errors.New("symbolic: empty collection")

	// ErrZeroValue indicates an Int literal or Variable of value zero was
	// requested; zero is not a valid variable id. Lit also wraps it when
	// given a value of a type it cannot build a Literal from.
	ErrZeroValue = errors.New("symbolic: zero is not a valid variable/literal value")

	// ErrNegativeVar indicates a Variable below 1 was requested.
	ErrNegativeVar = errors.New("symbolic: variable must be >= 1")
)
