//go:build windows

package job

import (
	"io/fs"
	"syscall"

	"github.com/LK/mtzip/internal/ziptype"
)

// attributesFromFileInfo maps file metadata to the external attribute
// word. On Windows this is the native file attribute bits, truncated to
// 16 bits.
func attributesFromFileInfo(info fs.FileInfo) uint16 {
	if d, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		return uint16(d.FileAttributes & 0xFFFF)
	}
	if info.IsDir() {
		return ziptype.DefaultDirAttributes
	}
	return ziptype.DefaultFileAttributes
}
