//go:build windows
// +build windows

package platform

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/nmeilick/oabutils/common"
)

// Owner is not supported on Windows
func (f *FS) Owner(path string) (Ownership, error) {
	return Ownership{}, fmt.Errorf("%w: ownership ids are not supported on Windows", common.ErrOperationFailed)
}

// IsAdmin always returns false on Windows
func IsAdmin() bool {
	return false
}

func ownerChangeKind(err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return common.ErrPermissionDenied
	}
	return common.ErrOperationFailed
}
