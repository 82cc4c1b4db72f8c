package ziptype

import "errors"

// Sentinel errors for archive construction.
var (
	// ErrSizeOverflow is returned when a byte count exceeds the 32-bit
	// limits of the zip format.
	ErrSizeOverflow = errors.New("mtzip: size overflow")

	// ErrTooManyEntries is returned when an archive exceeds the 16-bit
	// entry count limit.
	ErrTooManyEntries = errors.New("mtzip: too many entries")

	// ErrInvalidLevel is returned for compression levels outside 0-9.
	ErrInvalidLevel = errors.New("mtzip: invalid compression level")
)
