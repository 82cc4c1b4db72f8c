package mtzip

import (
	"github.com/LK/mtzip/internal/extra"
	"github.com/LK/mtzip/internal/ziptype"
)

// Errors re-exported from internal packages.
var (
	// ErrSizeOverflow is returned when a byte count exceeds the 32-bit
	// limits of the zip format.
	ErrSizeOverflow = ziptype.ErrSizeOverflow

	// ErrTooManyEntries is returned when an archive exceeds the 16-bit
	// entry count limit.
	ErrTooManyEntries = ziptype.ErrTooManyEntries

	// ErrInvalidLevel is returned for compression levels outside 0-9.
	ErrInvalidLevel = ziptype.ErrInvalidLevel

	// ErrExtraFieldsTooLarge is returned when an entry's encoded extra
	// fields exceed the header's 16-bit length limit.
	ErrExtraFieldsTooLarge = extra.ErrTooLarge
)
