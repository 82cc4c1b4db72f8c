//go:build unix

package extra

import (
	"io/fs"
	"syscall"
)

// FromFileInfo derives the extra fields recorded for a filesystem entry:
// an extended timestamp, plus unix ownership when the platform exposes it.
func FromFileInfo(info fs.FileInfo) Fields {
	fields := Fields{UnixTimestamp{MTime: info.ModTime()}}
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		fields = append(fields, UnixOwner{UID: stat.Uid, GID: stat.Gid})
	}
	return fields
}
