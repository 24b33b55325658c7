package models

import (
	"errors"
)

var (
	ErrValidation = errors.New("validation error")

	ErrEmptyInput      = errors.New("empty input")
	ErrUnknownSubject  = errors.New("unknown subject")
	ErrRequestPending  = errors.New("a request is already in progress")
	ErrNothingToExport = errors.New("nothing to export")
	ErrBinaryInput     = errors.New("input file looks binary")
)
