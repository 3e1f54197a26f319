package platform

import (
	"fmt"
	"io/fs"

	"github.com/nmeilick/oabutils/common"
)

// Octal permission masks.
const (
	PermMask    uint32 = 0o777
	SpecialMask uint32 = 0o7000
	ModeMask           = PermMask | SpecialMask
)

// ModeBits converts a FileMode into octal notation (setuid = 0o4000 etc.).
func ModeBits(m fs.FileMode) uint32 {
	bits := uint32(m.Perm())
	if m&fs.ModeSetuid != 0 {
		bits |= 0o4000
	}
	if m&fs.ModeSetgid != 0 {
		bits |= 0o2000
	}
	if m&fs.ModeSticky != 0 {
		bits |= 0o1000
	}
	return bits
}

// FileMode converts octal notation into a FileMode. Bits above 0o7777 are
// dropped.
func FileMode(bits uint32) fs.FileMode {
	m := fs.FileMode(bits & PermMask)
	if bits&0o4000 != 0 {
		m |= fs.ModeSetuid
	}
	if bits&0o2000 != 0 {
		m |= fs.ModeSetgid
	}
	if bits&0o1000 != 0 {
		m |= fs.ModeSticky
	}
	return m
}

// PermissionBits returns the permission bits of path in octal notation.
// Symlinks are followed.
func (f *FS) PermissionBits(path string) (uint32, error) {
	info, err := f.fs.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("%w: error getting permissions for %s: %w", common.ErrIO, path, err)
	}
	return ModeBits(info.Mode()), nil
}

// ModeSatisfied reports whether current already carries mode: the rwx bits
// must match exactly, special bits only when mode asks for them.
func ModeSatisfied(current, mode uint32) bool {
	return current&(PermMask|mode&SpecialMask) == mode
}
