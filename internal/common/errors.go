package common

import "errors"

var (
	ErrorNotFound   = errors.New("not found")
	ErrorValidation = errors.New("validation error")
)
