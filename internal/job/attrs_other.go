//go:build !unix && !windows

package job

import (
	"io/fs"

	"github.com/LK/mtzip/internal/ziptype"
)

// attributesFromFileInfo maps file metadata to the external attribute
// word. Platforms without a native attribute model get fixed unix-style
// defaults.
func attributesFromFileInfo(info fs.FileInfo) uint16 {
	if info.IsDir() {
		return ziptype.DefaultDirAttributes
	}
	return ziptype.DefaultFileAttributes
}
