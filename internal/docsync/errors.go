package docsync

import "errors"

var (
	ErrInvalidDocument = errors.New("invalid document")
	ErrUpdatePanicked  = errors.New("document update panicked")
	ErrUnexpectedLoad  = errors.New("unexpected load result")
	ErrUnexpectedSave  = errors.New("unexpected save result")
	ErrNotSaved        = errors.New("pending edit was not saved")
)
