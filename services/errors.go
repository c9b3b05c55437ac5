package services

import "errors"

var (
	// ErrNotFound means the requested year, team or pair is absent from
	// the dataset.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput means the selection itself is malformed.
	ErrInvalidInput = errors.New("invalid input")
)
