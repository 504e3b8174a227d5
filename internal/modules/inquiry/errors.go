package inquiry

import "errors"

var (
	ErrValidation  = errors.New("validation error")
	ErrInvalidType = errors.New("invalid inquiry type")
)
