package job

import (
	"bytes"
	"context"
	"errors"
	"hash/crc32"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/klauspost/compress/flate"

	"github.com/LK/mtzip/internal/ziptype"
)

func TestCompress_Stored(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "short", input: "hello"},
		{name: "empty", input: ""},
		{name: "binary", input: string([]byte{0, 1, 2, 0xFF, 0xFE})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := compress(context.Background(), strings.NewReader(tt.input), 0, ziptype.Stored, ziptype.LevelDefault)
			if err != nil {
				t.Fatalf("compress() unexpected error: %v", err)
			}
			if !bytes.Equal(d.data, []byte(tt.input)) {
				t.Errorf("stored payload = %q, want %q", d.data, tt.input)
			}
			if d.uncompressedSize != uint32(len(tt.input)) {
				t.Errorf("uncompressedSize = %d, want %d", d.uncompressedSize, len(tt.input))
			}
			if want := crc32.ChecksumIEEE([]byte(tt.input)); d.crc != want {
				t.Errorf("crc = %#x, want %#x", d.crc, want)
			}
		})
	}
}

func TestCompress_Deflate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		level ziptype.Level
	}{
		{name: "repetitive", input: strings.Repeat("mtzip ", 1000), level: ziptype.LevelDefault},
		{name: "empty", input: "", level: ziptype.LevelDefault},
		{name: "fastest", input: "some content worth deflating, repeated repeated repeated", level: ziptype.LevelFastest},
		{name: "best", input: strings.Repeat("x", 4096), level: ziptype.LevelBest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := compress(context.Background(), strings.NewReader(tt.input), 0, ziptype.Deflated, tt.level)
			if err != nil {
				t.Fatalf("compress() unexpected error: %v", err)
			}
			if d.uncompressedSize != uint32(len(tt.input)) {
				t.Errorf("uncompressedSize = %d, want %d", d.uncompressedSize, len(tt.input))
			}
			if want := crc32.ChecksumIEEE([]byte(tt.input)); d.crc != want {
				t.Errorf("crc = %#x, want %#x", d.crc, want)
			}

			fr := flate.NewReader(bytes.NewReader(d.data))
			decompressed, err := io.ReadAll(fr)
			if err != nil {
				t.Fatalf("inflate: %v", err)
			}
			if !bytes.Equal(decompressed, []byte(tt.input)) {
				t.Errorf("decompressed payload differs from input (%d vs %d bytes)", len(decompressed), len(tt.input))
			}
		})
	}
}

func TestCompress_SizeHintDoesNotAffectResult(t *testing.T) {
	t.Parallel()

	input := "size hints are an optimization only"
	withHint, err := compress(context.Background(), strings.NewReader(input), 1024, ziptype.Stored, ziptype.LevelDefault)
	if err != nil {
		t.Fatalf("compress() with hint: %v", err)
	}
	withoutHint, err := compress(context.Background(), strings.NewReader(input), 0, ziptype.Stored, ziptype.LevelDefault)
	if err != nil {
		t.Fatalf("compress() without hint: %v", err)
	}
	if !bytes.Equal(withHint.data, withoutHint.data) {
		t.Error("payload differs depending on size hint")
	}
	if cap(withHint.data) > len(withHint.data) {
		t.Errorf("payload retains %d bytes of excess capacity", cap(withHint.data)-len(withHint.data))
	}
}

type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestCompress_ReadError(t *testing.T) {
	t.Parallel()

	readErr := errors.New("device gone")
	src := &failingReader{data: []byte("partial"), err: readErr}

	_, err := compress(context.Background(), src, 0, ziptype.Deflated, ziptype.LevelDefault)
	if !errors.Is(err, readErr) {
		t.Fatalf("compress() error = %v, want %v", err, readErr)
	}
}

func TestCompress_ContextCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := compress(ctx, strings.NewReader("never read"), 0, ziptype.Stored, ziptype.LevelDefault)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("compress() error = %v, want %v", err, context.Canceled)
	}
}

func TestCrcReader_Overflow(t *testing.T) {
	t.Parallel()

	// Seed the running count near the limit so a short read trips it.
	cr := &crcReader{src: bytes.NewReader(make([]byte, 16)), n: math.MaxUint32 - 4}
	buf := make([]byte, 16)

	_, err := cr.Read(buf)
	if !errors.Is(err, ziptype.ErrSizeOverflow) {
		t.Fatalf("Read() error = %v, want %v", err, ziptype.ErrSizeOverflow)
	}
}

func TestCrcReader_CountAndChecksum(t *testing.T) {
	t.Parallel()

	input := []byte("checksummed while counted")
	cr := &crcReader{src: bytes.NewReader(input)}
	got, err := io.ReadAll(cr)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(got, input) {
		t.Error("crcReader altered the stream")
	}
	if cr.n != uint64(len(input)) {
		t.Errorf("count = %d, want %d", cr.n, len(input))
	}
	if want := crc32.ChecksumIEEE(input); cr.crc != want {
		t.Errorf("crc = %#x, want %#x", cr.crc, want)
	}
}
