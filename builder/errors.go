// File: errors.go
// Role: sentinel errors for the builder package.

package builder

import "errors"

var (
	// ErrTooFewVertices is returned when a topology's size parameter is
	// below the minimum the topology requires (e.g. a cycle needs at
	// least 3 vertices, a prism at least 3 per rim).
	ErrTooFewVertices = errors.New("builder: size parameter too small")
	// ErrNilConstructor is returned by Build when one of the supplied
	// constructors is nil.
	ErrNilConstructor = errors.New("builder: nil constructor")
)
