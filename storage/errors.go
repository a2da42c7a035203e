package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no favorite has the requested symbol.
	ErrNotFound = errors.New("symbol not found")

	// ErrDuplicateSymbol is returned when adding a symbol that is
	// already in the list.
	ErrDuplicateSymbol = errors.New("symbol already in favorites")

	// ErrInvalidEntry is returned when input validation fails.
	ErrInvalidEntry = errors.New("invalid entry")
)

// ParseError reports malformed content in the persisted favorites file.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s: line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
