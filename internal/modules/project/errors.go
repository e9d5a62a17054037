package project

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("project not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInspectionRequired = errors.New("site inspection must be completed first")
)
