package job

import (
	"bytes"
	"context"
	"fmt"
	"hash/crc32"
	"io"
	"math"

	"github.com/klauspost/compress/flate"

	"github.com/LK/mtzip/internal/sizing"
	"github.com/LK/mtzip/internal/ziptype"
)

// digest is the result of draining an origin's byte source: the payload
// bytes, the exact uncompressed length, and the checksum of the
// uncompressed stream.
type digest struct {
	data             []byte
	uncompressedSize uint32
	crc              uint32
}

// crcReader wraps a source with a running CRC-32 and a checked byte count.
// The count is validated against the 32-bit limit on every read, so an
// oversized source fails mid-stream instead of wrapping silently.
type crcReader struct {
	src io.Reader
	crc uint32
	n   uint64
}

func (r *crcReader) Read(p []byte) (int, error) {
	n, err := r.src.Read(p)
	if n > 0 {
		r.crc = crc32.Update(r.crc, crc32.IEEETable, p[:n])
		r.n += uint64(n)
		if r.n > math.MaxUint32 {
			return n, ziptype.ErrSizeOverflow
		}
	}
	return n, err
}

// compress drains src through a checksum accumulator and, for Deflated,
// through a deflate encoder at the given level. sizeHint pre-sizes the
// output buffer and is not correctness-bearing. Partial results are
// discarded on any error.
func compress(ctx context.Context, src io.Reader, sizeHint uint32, method ziptype.Method, level ziptype.Level) (digest, error) {
	cr := &crcReader{src: src}
	buf := bytes.NewBuffer(make([]byte, 0, sizeHint))

	var dst io.Writer = buf
	var enc *flate.Writer
	if method == ziptype.Deflated {
		var err error
		enc, err = flate.NewWriter(buf, level.Flate())
		if err != nil {
			return digest{}, fmt.Errorf("deflate encoder: %w", err)
		}
		dst = enc
	}

	if _, err := copyWithContext(ctx, dst, cr); err != nil {
		return digest{}, err
	}
	if enc != nil {
		if err := enc.Close(); err != nil {
			return digest{}, fmt.Errorf("deflate flush: %w", err)
		}
	}

	size, err := sizing.ToUint32(cr.n, ziptype.ErrSizeOverflow)
	if err != nil {
		return digest{}, err
	}

	// Drop the slack a generous hint or the buffer's growth left behind.
	data := buf.Bytes()
	if cap(data) > len(data) {
		data = append(make([]byte, 0, len(data)), data...)
	}

	return digest{
		data:             data,
		uncompressedSize: size,
		crc:              cr.crc,
	}, nil
}

// copyWithContext copies from src to dst until EOF or error, checking for
// context cancellation between reads.
func copyWithContext(ctx context.Context, dst io.Writer, src io.Reader) (uint64, error) {
	buf := make([]byte, 32*1024)
	var written uint64
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		nr, er := src.Read(buf)
		if nr > 0 {
			nw, ew := dst.Write(buf[:nr])
			if nw > 0 {
				written += uint64(nw)
			}
			if ew != nil {
				return written, ew
			}
			if nw != nr {
				return written, io.ErrShortWrite
			}
		}
		if er != nil {
			if er == io.EOF {
				return written, nil
			}
			return written, er
		}
	}
}
