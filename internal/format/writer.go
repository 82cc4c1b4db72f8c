// Package format serializes finished entries into the zip container
// layout: local file headers followed by the central directory and the
// end-of-central-directory record.
package format

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/LK/mtzip/internal/sizing"
	"github.com/LK/mtzip/internal/ziptype"
)

const (
	localHeaderSignature      = 0x04034b50
	centralDirectorySignature = 0x02014b50
	endOfCentralDirSignature  = 0x06054b50

	versionNeeded = 20     // deflate support
	versionMadeBy = 0x033F // unix, spec 6.3

	flagUTF8 = 0x800
)

// Writer lays entries out sequentially and tracks the central directory
// records needed to finish the archive. Entries appear in the archive in
// the order they are written.
type Writer struct {
	w       *countingWriter
	records []centralRecord
}

type centralRecord struct {
	entry  ziptype.Entry
	extra  []byte
	offset uint32
}

// NewWriter creates a Writer serializing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: &countingWriter{w: w}}
}

// WriteEntry writes e's local header and payload and queues its central
// directory record.
func (w *Writer) WriteEntry(e ziptype.Entry) error {
	offset, err := sizing.ToUint32(w.w.n, ziptype.ErrSizeOverflow)
	if err != nil {
		return err
	}
	nameLen, err := sizing.ToUint16(len(e.Path), ziptype.ErrSizeOverflow)
	if err != nil {
		return fmt.Errorf("entry name %q: %w", e.Path, err)
	}
	compressedSize, err := sizing.ToUint32(uint64(len(e.Data)), ziptype.ErrSizeOverflow)
	if err != nil {
		return fmt.Errorf("entry %q: %w", e.Path, err)
	}

	localExtra, err := e.Extra.EncodeLocal()
	if err != nil {
		return fmt.Errorf("entry %q: %w", e.Path, err)
	}
	centralExtra, err := e.Extra.EncodeCentral()
	if err != nil {
		return fmt.Errorf("entry %q: %w", e.Path, err)
	}

	buf := make([]byte, 0, 30+len(e.Path)+len(localExtra))
	buf = binary.LittleEndian.AppendUint32(buf, localHeaderSignature)
	buf = binary.LittleEndian.AppendUint16(buf, versionNeeded)
	buf = binary.LittleEndian.AppendUint16(buf, flags(e))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(e.Method))
	buf = binary.LittleEndian.AppendUint16(buf, 0) // mod time, carried in extra fields
	buf = binary.LittleEndian.AppendUint16(buf, 0) // mod date
	buf = binary.LittleEndian.AppendUint32(buf, e.CRC32)
	buf = binary.LittleEndian.AppendUint32(buf, compressedSize)
	buf = binary.LittleEndian.AppendUint32(buf, e.UncompressedSize)
	buf = binary.LittleEndian.AppendUint16(buf, nameLen)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(localExtra)))
	buf = append(buf, e.Path...)
	buf = append(buf, localExtra...)

	if _, err := w.w.Write(buf); err != nil {
		return err
	}
	if _, err := w.w.Write(e.Data); err != nil {
		return err
	}

	w.records = append(w.records, centralRecord{entry: e, extra: centralExtra, offset: offset})
	return nil
}

// Finish writes the central directory and the end-of-central-directory
// record with the archive comment.
func (w *Writer) Finish(comment string) error {
	dirOffset, err := sizing.ToUint32(w.w.n, ziptype.ErrSizeOverflow)
	if err != nil {
		return err
	}
	count, err := sizing.ToUint16(len(w.records), ziptype.ErrTooManyEntries)
	if err != nil {
		return err
	}

	for _, rec := range w.records {
		if err := w.writeCentralHeader(rec); err != nil {
			return err
		}
	}

	dirEnd, err := sizing.ToUint32(w.w.n, ziptype.ErrSizeOverflow)
	if err != nil {
		return err
	}
	commentLen, err := sizing.ToUint16(len(comment), ziptype.ErrSizeOverflow)
	if err != nil {
		return fmt.Errorf("archive comment: %w", err)
	}

	buf := make([]byte, 0, 22+len(comment))
	buf = binary.LittleEndian.AppendUint32(buf, endOfCentralDirSignature)
	buf = binary.LittleEndian.AppendUint16(buf, 0) // disk number
	buf = binary.LittleEndian.AppendUint16(buf, 0) // central directory start disk
	buf = binary.LittleEndian.AppendUint16(buf, count)
	buf = binary.LittleEndian.AppendUint16(buf, count)
	buf = binary.LittleEndian.AppendUint32(buf, dirEnd-dirOffset)
	buf = binary.LittleEndian.AppendUint32(buf, dirOffset)
	buf = binary.LittleEndian.AppendUint16(buf, commentLen)
	buf = append(buf, comment...)

	_, err = w.w.Write(buf)
	return err
}

func (w *Writer) writeCentralHeader(rec centralRecord) error {
	e := rec.entry
	nameLen, err := sizing.ToUint16(len(e.Path), ziptype.ErrSizeOverflow)
	if err != nil {
		return fmt.Errorf("entry name %q: %w", e.Path, err)
	}
	commentLen, err := sizing.ToUint16(len(e.Comment), ziptype.ErrSizeOverflow)
	if err != nil {
		return fmt.Errorf("entry comment %q: %w", e.Path, err)
	}
	compressedSize := uint32(len(e.Data)) // checked in WriteEntry

	buf := make([]byte, 0, 46+len(e.Path)+len(rec.extra)+len(e.Comment))
	buf = binary.LittleEndian.AppendUint32(buf, centralDirectorySignature)
	buf = binary.LittleEndian.AppendUint16(buf, versionMadeBy)
	buf = binary.LittleEndian.AppendUint16(buf, versionNeeded)
	buf = binary.LittleEndian.AppendUint16(buf, flags(e))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(e.Method))
	buf = binary.LittleEndian.AppendUint16(buf, 0) // mod time
	buf = binary.LittleEndian.AppendUint16(buf, 0) // mod date
	buf = binary.LittleEndian.AppendUint32(buf, e.CRC32)
	buf = binary.LittleEndian.AppendUint32(buf, compressedSize)
	buf = binary.LittleEndian.AppendUint32(buf, e.UncompressedSize)
	buf = binary.LittleEndian.AppendUint16(buf, nameLen)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(rec.extra)))
	buf = binary.LittleEndian.AppendUint16(buf, commentLen)
	buf = binary.LittleEndian.AppendUint16(buf, 0) // disk number start
	buf = binary.LittleEndian.AppendUint16(buf, 0) // internal attributes
	buf = binary.LittleEndian.AppendUint32(buf, e.ExternalAttributes)
	buf = binary.LittleEndian.AppendUint32(buf, rec.offset)
	buf = append(buf, e.Path...)
	buf = append(buf, rec.extra...)
	buf = append(buf, e.Comment...)

	_, err = w.w.Write(buf)
	return err
}

// flags returns the general purpose bit flags for e: the UTF-8 flag when
// the name or comment needs it.
func flags(e ziptype.Entry) uint16 {
	if needsUTF8(e.Path) || needsUTF8(e.Comment) {
		return flagUTF8
	}
	return 0
}

func needsUTF8(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return true
		}
	}
	return false
}

// countingWriter tracks how many bytes have been written, giving the
// header offsets.
type countingWriter struct {
	w io.Writer
	n uint64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += uint64(n)
	return n, err
}
