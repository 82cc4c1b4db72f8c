package ziptype

import "github.com/LK/mtzip/internal/extra"

// Default external attributes for platforms without a native attribute
// model, and for entries added without explicit attributes.
const (
	DefaultFileAttributes uint16 = 0o100644
	DefaultDirAttributes  uint16 = 0o40755
)

// Entry is a finished archive member: header metadata plus the payload
// bytes, ready for the container serializer.
type Entry struct {
	// Method is the compression method actually applied to Data.
	Method Method

	// CRC32 is the IEEE checksum of the uncompressed content.
	CRC32 uint32

	// UncompressedSize is the exact original content length.
	UncompressedSize uint32

	// Path is the entry's name inside the archive. Directories carry a
	// trailing slash.
	Path string

	// ExternalAttributes holds the platform attribute word shifted into
	// the high 16 bits. The low 16 bits are reserved for the MS-DOS
	// attribute byte, managed by the serializer.
	ExternalAttributes uint32

	// Extra holds the entry's auxiliary records in encoding order.
	Extra extra.Fields

	// Comment is the optional per-entry comment.
	Comment string

	// Data is the payload, compressed per Method.
	Data []byte
}
