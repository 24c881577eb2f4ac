package canvas

import "errors"

var (
	// ErrIndexSize is returned when a requested pixel region has a zero
	// width or height.
	ErrIndexSize = errors.New("canvas: source width or height is zero")

	// ErrSecurity is returned when reading pixels from a context whose
	// bitmap is tainted by cross-origin content.
	ErrSecurity = errors.New("canvas: bitmap origin is not clean")

	// ErrDetachedBuffer is returned when an ImageData whose pixel buffer
	// has been detached is passed to a pixel operation.
	ErrDetachedBuffer = errors.New("canvas: image data buffer is detached")

	// ErrSurfaceAllocation is returned when the backing surface for the
	// canvas cannot be allocated.
	ErrSurfaceAllocation = errors.New("canvas: unable to allocate backing surface")
)
