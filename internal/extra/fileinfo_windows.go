//go:build windows

package extra

import (
	"io/fs"
	"syscall"
	"time"
)

// FromFileInfo derives the extra fields recorded for a filesystem entry:
// NTFS times at FILETIME precision when the platform exposes them.
func FromFileInfo(info fs.FileInfo) Fields {
	if d, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		return Fields{NTFSTimes{
			MTime: time.Unix(0, d.LastWriteTime.Nanoseconds()),
			ATime: time.Unix(0, d.LastAccessTime.Nanoseconds()),
			CTime: time.Unix(0, d.CreationTime.Nanoseconds()),
		}}
	}
	return Fields{NTFSTimes{MTime: info.ModTime()}}
}
