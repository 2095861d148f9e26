package svgicon

import "errors"

// Every failure the engine can produce is a distinct sentinel so callers
// can classify with errors.Is. Context (file path, offending token) is
// wrapped on top with fmt.Errorf("%w").
var (
	ErrMissingViewBox   = errors.New("missing viewBox attribute")
	ErrNonSquareViewBox = errors.New("non-square viewBox")
	ErrOffsetViewBox    = errors.New("viewBox has a non-zero offset")
	ErrUnhandledShape   = errors.New("no conversion rule for shape")
	ErrUnknownCommand   = errors.New("unknown path command")
	ErrParamMismatch    = errors.New("param count mismatch")
	ErrRelativeStart    = errors.New("path starts with a relative command")
	ErrInvalidPolygon   = errors.New("invalid polygon point list")
	ErrMissingAttribute = errors.New("missing required attribute")
	ErrInvalidAttribute = errors.New("malformed attribute value")
)
