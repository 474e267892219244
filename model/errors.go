package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned when a grid is built with a non-positive width or height
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrOutOfBounds is returned for coordinates outside the grid
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidArgument is returned for a fill probability outside [0, 1]
	ErrInvalidArgument = errors.New("invalid argument")
)
