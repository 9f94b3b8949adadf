package apperror

import "errors"

var (
	ErrOutOfBounds    = errors.New("cell is out of bounds")
	ErrUnknownAction  = errors.New("unknown action")
	ErrGameNotFound   = errors.New("game not found")
	ErrInvalidSession = errors.New("invalid session id")
)
