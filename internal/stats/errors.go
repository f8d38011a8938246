package stats

import "errors"

// ErrAmbiguousDimension is raised when a performance line and its match
// reference disagree about the line's dimension value. It signals a
// data-integrity fault in the input datasets, never a user error.
var ErrAmbiguousDimension = errors.New("performance row maps to conflicting dimension values")

// ErrDivisionGuard is the panic value of the raw division helper. Every
// metric must reach division through a guarded path; hitting this means a
// bug in this package.
var ErrDivisionGuard = errors.New("unguarded zero-divisor arithmetic")
