package pointset

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned, wrapped, when a required point or rectangle is missing or malformed.
// Nothing is mutated or computed when it is returned.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	errNilPoint = fmt.Errorf("%w: point is nil", ErrInvalidArgument)
	errNaNPoint = fmt.Errorf("%w: point has a NaN coordinate", ErrInvalidArgument)
	errNilRect  = fmt.Errorf("%w: rectangle is nil", ErrInvalidArgument)
)
