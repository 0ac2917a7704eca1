package satoracle

import "errors"

// ErrOracleFailed indicates an external oracle (subprocess or library)
// could not produce a verdict for a formula.
var ErrOracleFailed = errors.New("satoracle: oracle failed to produce a verdict")
