package datastructure

import "errors"

var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrOutOfRange          = errors.New("vertex index out of range")
	ErrDuplicateEdge       = errors.New("duplicate edge")
	ErrFormatInconsistency = errors.New("declared edge count does not match edges read")
	ErrMalformedInput      = errors.New("malformed graph input")
)
