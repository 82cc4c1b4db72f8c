package mtzip

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/LK/mtzip/internal/format"
	"github.com/LK/mtzip/internal/job"
	"github.com/LK/mtzip/internal/ziptype"
)

// Archive is a queue of entries to be compressed and serialized. Entries
// may be added from multiple goroutines; Write drains the queue.
type Archive struct {
	cfg archiveConfig

	mu   sync.Mutex
	jobs []job.Job
}

// New creates an empty Archive.
func New(opts ...Option) *Archive {
	a := &Archive{}
	for _, opt := range opts {
		opt(&a.cfg)
	}
	return a
}

// AddFile queues the file at src as archivePath. The file is opened and
// read when the archive is written; its platform attributes and
// timestamps are recorded, and its content is always deflate-compressed.
func (a *Archive) AddFile(src, archivePath string, opts ...EntryOption) {
	cfg := newEntryConfig(opts)
	a.add(job.Job{
		Origin:      job.Filesystem{Path: src},
		ArchivePath: archivePath,
		Extra:       cfg.extra,
		Comment:     cfg.comment,
		Method:      cfg.method,
		Level:       cfg.level,
	})
}

// AddFileFromMemory queues data as archivePath.
func (a *Archive) AddFileFromMemory(data []byte, archivePath string, opts ...EntryOption) {
	cfg := newEntryConfig(opts)
	a.add(job.Job{
		Origin:      job.RawData{Data: data},
		ArchivePath: archivePath,
		Extra:       cfg.extra,
		Comment:     cfg.comment,
		Attributes:  cfg.attributes(ziptype.DefaultFileAttributes),
		Method:      cfg.method,
		Level:       cfg.level,
	})
}

// AddFileFromReader queues r's content as archivePath. The archive takes
// ownership of r: it is drained, possibly on another goroutine, when the
// archive is written, and left un-drained if an earlier entry fails.
func (a *Archive) AddFileFromReader(r io.Reader, archivePath string, opts ...EntryOption) {
	cfg := newEntryConfig(opts)
	a.add(job.Job{
		Origin:      job.Reader{R: r},
		ArchivePath: archivePath,
		Extra:       cfg.extra,
		Comment:     cfg.comment,
		Attributes:  cfg.attributes(ziptype.DefaultFileAttributes),
		Method:      cfg.method,
		Level:       cfg.level,
	})
}

// AddDirectory queues a directory entry named archivePath. A trailing
// slash is appended if absent.
func (a *Archive) AddDirectory(archivePath string, opts ...EntryOption) {
	cfg := newEntryConfig(opts)
	a.add(job.Job{
		Origin:      job.Directory{},
		ArchivePath: archivePath,
		Extra:       cfg.extra,
		Comment:     cfg.comment,
		Attributes:  cfg.attributes(ziptype.DefaultDirAttributes),
	})
}

func (a *Archive) add(j job.Job) {
	a.mu.Lock()
	a.jobs = append(a.jobs, j)
	a.mu.Unlock()
}

// Write converts the queued entries concurrently and serializes the
// archive to w in submission order. The queue is consumed: a second Write
// produces an empty archive unless entries were added in between.
//
// The first conversion error cancels the remaining conversions and is
// returned; nothing is written to w in that case. Each entry is converted
// in isolation, so a failed entry cannot corrupt another's result.
func (a *Archive) Write(ctx context.Context, w io.Writer) error {
	a.mu.Lock()
	jobs := a.jobs
	a.jobs = nil
	a.mu.Unlock()

	entries := make([]ziptype.Entry, len(jobs))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(a.workers())
	for i, jb := range jobs {
		eg.Go(func() error {
			entry, err := jb.Convert(gctx)
			if err != nil {
				return fmt.Errorf("entry %q: %w", jb.ArchivePath, err)
			}
			a.log().Debug("entry converted",
				"path", entry.Path,
				"method", entry.Method.String(),
				"uncompressed_size", entry.UncompressedSize,
				"compressed_size", len(entry.Data))
			entries[i] = entry
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	fw := format.NewWriter(w)
	for _, e := range entries {
		if err := fw.WriteEntry(e); err != nil {
			return err
		}
	}
	if err := fw.Finish(a.cfg.comment); err != nil {
		return err
	}

	a.log().Info("archive written", "entries", len(entries))
	return nil
}

func (a *Archive) workers() int {
	if a.cfg.workers > 0 {
		return a.cfg.workers
	}
	return runtime.GOMAXPROCS(0)
}

// log returns the logger, falling back to a discard logger if nil.
func (a *Archive) log() *slog.Logger {
	if a.cfg.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.cfg.logger
}
