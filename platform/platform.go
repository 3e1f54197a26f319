// Package platform reads and changes ownership and permission bits of
// filesystem paths.
package platform

import (
	"fmt"
	"io/fs"

	"github.com/nmeilick/oabutils/common"
	"github.com/spf13/afero"
)

// Ownership is the owning uid and gid of a path at the time it was read.
type Ownership struct {
	UID uint32
	GID uint32
}

// FS performs metadata reads and mutations on top of an afero.Fs. Every
// call goes to the filesystem; nothing is cached between calls.
type FS struct {
	fs afero.Fs
}

// New wraps fs.
func New(fs afero.Fs) *FS {
	return &FS{fs: fs}
}

// NewOS returns an FS operating on the host filesystem.
func NewOS() *FS {
	return New(afero.NewOsFs())
}

// Stat returns the metadata of path, following symlinks.
func (f *FS) Stat(path string) (fs.FileInfo, error) {
	info, err := f.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %w", common.ErrIO, path, err)
	}
	return info, nil
}
