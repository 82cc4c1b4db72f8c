// Package sizing provides safe size conversions for the zip format's
// fixed-width wire fields.
package sizing

import "math"

// ToUint32 converts n to uint32, returning overflowErr if it doesn't fit.
func ToUint32(n uint64, overflowErr error) (uint32, error) {
	if n > math.MaxUint32 {
		return 0, overflowErr
	}
	return uint32(n), nil
}

// ToUint16 converts n to uint16, returning overflowErr if it doesn't fit.
func ToUint16(n int, overflowErr error) (uint16, error) {
	if n < 0 || n > math.MaxUint16 {
		return 0, overflowErr
	}
	return uint16(n), nil
}

// ToInt64 converts n to int64, returning overflowErr if it doesn't fit.
func ToInt64(n uint64, overflowErr error) (int64, error) {
	if n > uint64(math.MaxInt64) {
		return 0, overflowErr
	}
	return int64(n), nil
}
