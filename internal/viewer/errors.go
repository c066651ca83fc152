package viewer

import "errors"

var (
	// ErrInvalidViewport is returned for a viewport with a non-positive side.
	ErrInvalidViewport = errors.New("viewer: viewport must have positive width and height")

	// ErrInvalidRate is returned by RunHeadless for a non-positive tick rate.
	ErrInvalidRate = errors.New("viewer: tick rate must be positive")
)
