// Package platformtest provides an afero.Fs wrapper that records mutating
// metadata calls.
package platformtest

import (
	"os"
	"sync"

	"github.com/spf13/afero"
)

// ChownCall is one recorded Chown.
type ChownCall struct {
	Name     string
	UID, GID int
}

// ChmodCall is one recorded Chmod.
type ChmodCall struct {
	Name string
	Mode os.FileMode
}

// RecordingFs forwards to the wrapped Fs and records Chown and Chmod calls.
// Set ChownErr to fail every Chown without touching the filesystem.
type RecordingFs struct {
	afero.Fs

	ChownErr error

	mu     sync.Mutex
	chowns []ChownCall
	chmods []ChmodCall
}

// Wrap returns a RecordingFs around fs.
func Wrap(fs afero.Fs) *RecordingFs {
	return &RecordingFs{Fs: fs}
}

func (r *RecordingFs) Chown(name string, uid, gid int) error {
	r.mu.Lock()
	r.chowns = append(r.chowns, ChownCall{Name: name, UID: uid, GID: gid})
	r.mu.Unlock()

	if r.ChownErr != nil {
		return &os.PathError{Op: "chown", Path: name, Err: r.ChownErr}
	}
	return r.Fs.Chown(name, uid, gid)
}

func (r *RecordingFs) Chmod(name string, mode os.FileMode) error {
	r.mu.Lock()
	r.chmods = append(r.chmods, ChmodCall{Name: name, Mode: mode})
	r.mu.Unlock()

	return r.Fs.Chmod(name, mode)
}

// Chowns returns the recorded Chown calls.
func (r *RecordingFs) Chowns() []ChownCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ChownCall(nil), r.chowns...)
}

// Chmods returns the recorded Chmod calls.
func (r *RecordingFs) Chmods() []ChmodCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ChmodCall(nil), r.chmods...)
}
