package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	ErrInvalidRecord       = errors.New("invalid tee time record")
	ErrInvalidRetention    = errors.New("invalid retention window")
	ErrUnknownReferenceTZ  = errors.New("unknown reference timezone")
	ErrCourseRequestExists = errors.New("course already requested")
)
