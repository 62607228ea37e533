package space

import (
	"github.com/costaindustries-source/mac-cleaner/pkg/errors"
	"github.com/costaindustries-source/mac-cleaner/pkg/types"
	"golang.org/x/sys/unix"
)

// statfs is a function field so tests can fake the syscall.
var statfs = unix.Statfs

// Usage measures total and free space on the volume holding path.
func Usage(path string) (types.DiskUsage, error) {
	var st unix.Statfs_t
	if err := statfs(path, &st); err != nil {
		return types.DiskUsage{}, errors.Wrapf(err, errors.ErrInternal, "statfs %s failed", path)
	}

	blockKB := int64(st.Bsize)
	return types.DiskUsage{
		TotalKB: int64(st.Blocks) * blockKB / 1024,
		// Bavail counts blocks available to unprivileged users, which is
		// what the preflight threshold is about
		FreeKB: int64(st.Bavail) * blockKB / 1024,
	}, nil
}
