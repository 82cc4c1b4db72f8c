// Package ziptype defines shared types used across the mtzip package and its
// internal packages. This avoids circular imports between mtzip and internal/job.
package ziptype

import "fmt"

// Method identifies the compression method used for an entry's payload.
// Values match the zip wire format.
type Method uint16

const (
	Stored   Method = 0
	Deflated Method = 8
)

func (m Method) String() string {
	switch m {
	case Stored:
		return "stored"
	case Deflated:
		return "deflated"
	default:
		return "unknown"
	}
}

// Level is a compression level on the deflate 0-9 scale.
// It is ignored when the method is Stored.
type Level uint8

const (
	LevelNone    Level = 0
	LevelFastest Level = 1
	LevelDefault Level = 6
	LevelBest    Level = 9
)

// NewLevel validates n as a compression level.
func NewLevel(n int) (Level, error) {
	if n < 0 || n > 9 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLevel, n)
	}
	return Level(n), nil
}

// Flate translates the level to the deflate encoder's numeric scale.
func (l Level) Flate() int {
	return int(l)
}
