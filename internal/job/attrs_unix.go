//go:build unix && !linux

package job

import (
	"io/fs"
	"syscall"

	"github.com/LK/mtzip/internal/ziptype"
)

// attributesFromFileInfo maps file metadata to the external attribute
// word. On the BSD family this is the stat mode word, truncated to 16
// bits.
func attributesFromFileInfo(info fs.FileInfo) uint16 {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return uint16(stat.Mode) & 0xFFFF
	}
	if info.IsDir() {
		return ziptype.DefaultDirAttributes
	}
	return ziptype.DefaultFileAttributes
}
