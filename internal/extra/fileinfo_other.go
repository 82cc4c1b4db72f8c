//go:build !unix && !windows

package extra

import "io/fs"

// FromFileInfo derives the extra fields recorded for a filesystem entry.
func FromFileInfo(info fs.FileInfo) Fields {
	return Fields{UnixTimestamp{MTime: info.ModTime()}}
}
