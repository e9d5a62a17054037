package milestone

import "errors"

var (
	ErrInvalidInput            = errors.New("invalid generation input")
	ErrValidation              = errors.New("validation error")
	ErrNotFound                = errors.New("milestone not found")
	ErrNoDraft                 = errors.New("no open draft for milestone")
	ErrSaveInFlight            = errors.New("save already in flight")
	ErrSaveFailed              = errors.New("save failed")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrInvalidMove             = errors.New("move index out of range")
)
