package prefs

import "errors"

var (
	// ErrMalformedDocument is returned when the stored document cannot be decoded.
	ErrMalformedDocument = errors.New("malformed preferences document")

	// ErrNoSelector is returned by removals when the store has no Selector.
	ErrNoSelector = errors.New("no selection dialog configured")

	// ErrSelectionOutOfRange is returned when a Selector picks an index outside the offered labels.
	ErrSelectionOutOfRange = errors.New("selection out of range")
)
