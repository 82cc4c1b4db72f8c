// Package extra implements zip extra-field records: typed auxiliary
// metadata attached to an entry's local and central headers.
package extra

import (
	"encoding/binary"
	"errors"
	"math"
)

// ErrTooLarge is returned when encoded fields exceed the header's 16-bit
// extra-field length limit.
var ErrTooLarge = errors.New("mtzip: extra fields exceed size limit")

// Field is a single extra-field record. The local and central headers may
// carry different encodings of the same record.
type Field interface {
	// ID is the record's zip header ID.
	ID() uint16

	localData() []byte
	centralData() []byte
}

// Fields is an ordered collection of records. Order is preserved and
// duplicate IDs are allowed.
type Fields []Field

// Merge appends other after f, preserving the order of both.
func (f Fields) Merge(other Fields) Fields {
	return append(f, other...)
}

// EncodeLocal encodes the fields for a local file header.
func (f Fields) EncodeLocal() ([]byte, error) {
	return f.encode(Field.localData)
}

// EncodeCentral encodes the fields for a central directory header.
func (f Fields) EncodeCentral() ([]byte, error) {
	return f.encode(Field.centralData)
}

func (f Fields) encode(data func(Field) []byte) ([]byte, error) {
	var buf []byte
	for _, field := range f {
		d := data(field)
		if d == nil {
			continue
		}
		if len(d) > math.MaxUint16 {
			return nil, ErrTooLarge
		}
		buf = binary.LittleEndian.AppendUint16(buf, field.ID())
		buf = binary.LittleEndian.AppendUint16(buf, uint16(len(d)))
		buf = append(buf, d...)
	}
	if len(buf) > math.MaxUint16 {
		return nil, ErrTooLarge
	}
	return buf, nil
}
