package platform

import (
	"fmt"

	"github.com/nmeilick/oabutils/common"
)

// SetOwner changes the owner and group of path. The call is always issued,
// even when path already has the requested ids. The caller needs root or
// CAP_CHOWN for anything but a no-op change.
func (f *FS) SetOwner(path string, uid, gid uint32) error {
	if err := f.fs.Chown(path, int(uid), int(gid)); err != nil {
		return fmt.Errorf("%w: unable to change owner of %s to %d:%d: %w", ownerChangeKind(err), path, uid, gid, err)
	}
	return nil
}

// SetMode applies mode to path unless the current bits already satisfy it.
// It reports whether a change was made.
func (f *FS) SetMode(path string, mode uint32) (bool, error) {
	mode &= ModeMask

	current, err := f.PermissionBits(path)
	if err != nil {
		return false, err
	}
	if ModeSatisfied(current, mode) {
		return false, nil
	}

	if err := f.fs.Chmod(path, FileMode(mode)); err != nil {
		return false, fmt.Errorf("%w: unable to set mode %o on path %s: %w", common.ErrIO, mode, path, err)
	}
	return true, nil
}
