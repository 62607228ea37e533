package space

import (
	"io/fs"
	"os"
	"path/filepath"
)

// PathSizeKB measures a file or directory tree in kilobytes. A missing
// path measures zero: callers use that for the after-deletion probe.
func PathSizeKB(path string) int64 {
	info, err := os.Lstat(path)
	if err != nil {
		return 0
	}
	if !info.IsDir() {
		return info.Size() / 1024
	}
	return DirSizeKB(path)
}

// DirSizeKB sums the regular files under root in kilobytes. Unreadable
// entries are skipped rather than failing the measurement; a cache dir
// with a few permission-denied subtrees should still produce a number.
func DirSizeKB(root string) int64 {
	var bytes int64
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			if info, err := d.Info(); err == nil {
				bytes += info.Size()
			}
		}
		return nil
	})
	return bytes / 1024
}
