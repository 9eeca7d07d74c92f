package etris

import "errors"

var (
	// ErrMissingHook is returned by New when a hook is nil.
	ErrMissingHook = errors.New("etris: draw and score hooks are required")

	// ErrFieldTooSmall is returned by New for fields under MinWidth x MinHeight.
	ErrFieldTooSmall = errors.New("etris: field too small")

	// ErrInvalidBorder is returned by New for a negative border.
	ErrInvalidBorder = errors.New("etris: border must not be negative")

	// ErrOutOfMemory is returned when the grid cannot be allocated.
	ErrOutOfMemory = errors.New("etris: out of memory")

	// ErrInvalidAction is returned by Input for unknown action codes.
	ErrInvalidAction = errors.New("etris: invalid action")
)
