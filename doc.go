// Package mtzip builds zip archives with parallel per-entry compression.
//
// Entries are queued on an [Archive] and converted concurrently when the
// archive is written: each entry's bytes are read, checksummed and
// compressed independently, then the container is serialized in
// submission order.
//
// # Quick Start
//
//	archive := mtzip.New()
//	archive.AddFile("./config.json", "config.json")
//	archive.AddFileFromMemory([]byte("hello"), "hello.txt")
//	archive.AddDirectory("logs/")
//
//	f, err := os.Create("out.zip")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//	return archive.Write(ctx, f)
//
// Entries added from the filesystem record the file's platform attributes
// and timestamps and are always deflate-compressed. Other entries honor
// the requested method and level, Deflate at default level if
// unspecified.
//
// For per-entry control without the queue, build a [Job] directly and
// call [Job.Convert]; its typed errors let callers skip a failed entry
// instead of aborting the archive.
package mtzip
