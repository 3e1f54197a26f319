//go:build !windows
// +build !windows

package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"

	"github.com/nmeilick/oabutils/common"
	"golang.org/x/sys/unix"
)

// Owner gets the owner and group of path, following symlinks.
func (f *FS) Owner(path string) (Ownership, error) {
	info, err := f.fs.Stat(path)
	if err != nil {
		return Ownership{}, fmt.Errorf("%w: error getting owner ids for %s: %w", common.ErrIO, path, err)
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return Ownership{}, fmt.Errorf("%w: error getting owner ids for %s: no stat information", common.ErrIO, path)
	}

	return Ownership{UID: stat.Uid, GID: stat.Gid}, nil
}

// IsAdmin returns true if the process runs with an effective uid of 0
func IsAdmin() bool {
	return unix.Geteuid() == 0
}

// ownerChangeKind maps a failed chown to the error kind reported to callers.
func ownerChangeKind(err error) error {
	switch {
	case errors.Is(err, unix.EPERM), errors.Is(err, unix.EACCES), errors.Is(err, fs.ErrPermission):
		return common.ErrPermissionDenied
	default:
		return common.ErrOperationFailed
	}
}
