// Package job converts entry descriptions into finished archive entries:
// it drains the origin's bytes through compression and checksumming, maps
// platform metadata to external attributes, and assembles the header.
package job

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/LK/mtzip/internal/extra"
	"github.com/LK/mtzip/internal/sizing"
	"github.com/LK/mtzip/internal/ziptype"
)

// Origin identifies where an entry's bytes come from. It is a sealed
// interface with exactly four implementations.
type Origin interface {
	isOrigin()
}

// Directory is an entry with no content.
type Directory struct{}

// Filesystem reads the entry's content from a path, resolved when the job
// is converted.
type Filesystem struct {
	Path string
}

// RawData reads the entry's content from an in-memory buffer.
type RawData struct {
	Data []byte
}

// Reader reads the entry's content from an arbitrary byte source. The job
// owns the reader; it may be drained from any goroutine and is simply
// left un-drained if the job is abandoned.
type Reader struct {
	R io.Reader
}

func (Directory) isOrigin()  {}
func (Filesystem) isOrigin() {}
func (RawData) isOrigin()    {}
func (Reader) isOrigin()     {}

// Job describes one entry to be converted. A Job is single-use: Convert
// consumes the origin.
type Job struct {
	Origin Origin

	// ArchivePath is the entry's name inside the archive, already
	// normalized by the caller.
	ArchivePath string

	// Extra holds caller-supplied auxiliary records. Filesystem jobs
	// prepend metadata-derived records to these.
	Extra extra.Fields

	Comment string

	// Attributes is the external attribute word. Ignored for Filesystem
	// jobs, which derive attributes from the file's metadata.
	Attributes uint16

	// Method and Level select the compression applied to the payload.
	// Ignored for Directory jobs. Filesystem jobs always deflate.
	Method ziptype.Method
	Level  ziptype.Level
}

// Convert dispatches on the job's origin and produces the finished entry.
// IO failures and size overflows are returned to the caller; a failed job
// has no effect on any other job.
func (j Job) Convert(ctx context.Context) (ziptype.Entry, error) {
	switch o := j.Origin.(type) {
	case Directory:
		path := j.ArchivePath
		if !strings.HasSuffix(path, "/") {
			path += "/"
		}
		return ziptype.Entry{
			Method:             ziptype.Stored,
			Path:               path,
			ExternalAttributes: uint32(j.Attributes) << 16,
			Extra:              j.Extra,
			Comment:            j.Comment,
		}, nil

	case Filesystem:
		return j.convertFilesystem(ctx, o.Path)

	case RawData:
		hint, err := sizing.ToUint32(uint64(len(o.Data)), ziptype.ErrSizeOverflow)
		if err != nil {
			return ziptype.Entry{}, err
		}
		d, err := compress(ctx, bytes.NewReader(o.Data), hint, j.Method, j.Level)
		if err != nil {
			return ziptype.Entry{}, err
		}
		return j.assemble(d, j.Method, j.Attributes, j.Extra), nil

	case Reader:
		d, err := compress(ctx, o.R, 0, j.Method, j.Level)
		if err != nil {
			return ziptype.Entry{}, err
		}
		return j.assemble(d, j.Method, j.Attributes, j.Extra), nil

	default:
		return ziptype.Entry{}, fmt.Errorf("mtzip: job %q has no origin", j.ArchivePath)
	}
}

// convertFilesystem opens and digests a file. The file's length pre-sizes
// the output buffer, its metadata supplies the external attributes and
// leading extra fields, and the payload is always deflated regardless of
// the requested method.
func (j Job) convertFilesystem(ctx context.Context, path string) (ziptype.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return ziptype.Entry{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return ziptype.Entry{}, fmt.Errorf("stat %s: %w", path, err)
	}
	hint, err := sizing.ToUint32(uint64(info.Size()), ziptype.ErrSizeOverflow)
	if err != nil {
		return ziptype.Entry{}, fmt.Errorf("%s: %w", path, err)
	}

	d, err := compress(ctx, f, hint, ziptype.Deflated, j.Level)
	if err != nil {
		return ziptype.Entry{}, fmt.Errorf("%s: %w", path, err)
	}

	attrs := attributesFromFileInfo(info)
	fields := extra.FromFileInfo(info).Merge(j.Extra)
	return j.assemble(d, ziptype.Deflated, attrs, fields), nil
}

// assemble merges a digest with the job's remaining metadata. The
// attribute word is shifted into the high half; the low 16 bits are left
// for the serializer's MS-DOS byte.
func (j Job) assemble(d digest, method ziptype.Method, attrs uint16, fields extra.Fields) ziptype.Entry {
	return ziptype.Entry{
		Method:             method,
		CRC32:              d.crc,
		UncompressedSize:   d.uncompressedSize,
		Path:               j.ArchivePath,
		ExternalAttributes: uint32(attrs) << 16,
		Extra:              fields,
		Comment:            j.Comment,
		Data:               d.data,
	}
}
