package mtzip

import (
	"github.com/LK/mtzip/internal/extra"
	"github.com/LK/mtzip/internal/job"
	"github.com/LK/mtzip/internal/ziptype"
)

// --- Re-exports from internal/ziptype ---

// Method identifies the compression method used for an entry's payload.
type Method = ziptype.Method

// Compression methods.
const (
	Stored   = ziptype.Stored
	Deflated = ziptype.Deflated
)

// Level is a compression level on the deflate 0-9 scale.
type Level = ziptype.Level

// Compression levels.
const (
	LevelNone    = ziptype.LevelNone
	LevelFastest = ziptype.LevelFastest
	LevelDefault = ziptype.LevelDefault
	LevelBest    = ziptype.LevelBest
)

// NewLevel validates n as a compression level.
var NewLevel = ziptype.NewLevel

// Entry is a finished archive member, produced by [Job.Convert].
type Entry = ziptype.Entry

// Default external attributes used when an entry carries none.
const (
	DefaultFileAttributes = ziptype.DefaultFileAttributes
	DefaultDirAttributes  = ziptype.DefaultDirAttributes
)

// --- Re-exports from internal/job ---

// Job describes one entry to be converted. See [Job.Convert].
type Job = job.Job

// Origin identifies where an entry's bytes come from.
type Origin = job.Origin

// Directory is an entry with no content.
type Directory = job.Directory

// Filesystem reads the entry's content from a path at conversion time.
type Filesystem = job.Filesystem

// RawData reads the entry's content from an in-memory buffer.
type RawData = job.RawData

// Reader reads the entry's content from an arbitrary byte source.
type Reader = job.Reader

// --- Re-exports from internal/extra ---

// ExtraField is a single auxiliary record on an entry's headers.
type ExtraField = extra.Field

// ExtraFields is an ordered collection of auxiliary records.
type ExtraFields = extra.Fields

// NTFSTimes is the NTFS times extra field (ID 0x000A).
type NTFSTimes = extra.NTFSTimes

// UnixTimestamp is the extended timestamp extra field (ID 0x5455).
type UnixTimestamp = extra.UnixTimestamp

// UnixOwner is the Info-ZIP unix ownership extra field (ID 0x7875).
type UnixOwner = extra.UnixOwner
