package glabs

import "errors"

var (
	// ErrInvalidArgument reports a malformed call, e.g. a vertex count that is
	// not a multiple of three.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfBounds reports a range that does not fit the buffers it addresses.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrDegenerateGeometry reports a triangle with a zero-length edge or
	// collinear points, whose normal is undefined.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrNoGeometry is returned by a Renderer asked to draw before Upload.
	ErrNoGeometry = errors.New("no geometry uploaded")

	// ErrNoFrame is returned when drawing outside a Begin/End pair.
	ErrNoFrame = errors.New("no frame in progress")

	// ErrUnknownLab is returned by NewLab and Config.Validate for a lab name
	// that is not registered.
	ErrUnknownLab = errors.New("unknown lab")
)
