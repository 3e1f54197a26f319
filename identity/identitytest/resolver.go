// Package identitytest provides an in-memory identity.Resolver for tests.
package identitytest

import (
	"fmt"
	"sync"

	"github.com/nmeilick/oabutils/common"
)

// Resolver answers lookups from fixed tables and records every name it was
// asked about.
type Resolver struct {
	Users  map[string]uint32
	Groups map[string]uint32

	mu      sync.Mutex
	Lookups []string
}

// New returns a resolver with the given user and group tables.
func New(users, groups map[string]uint32) *Resolver {
	return &Resolver{Users: users, Groups: groups}
}

func (r *Resolver) record(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Lookups = append(r.Lookups, s)
}

func (r *Resolver) LookupUser(name string) (uint32, error) {
	r.record("user:" + name)
	if uid, ok := r.Users[name]; ok {
		return uid, nil
	}
	return 0, fmt.Errorf("no uid found for user %q: %w", name, common.ErrNotFound)
}

func (r *Resolver) LookupGroup(name string) (uint32, error) {
	r.record("group:" + name)
	if gid, ok := r.Groups[name]; ok {
		return gid, nil
	}
	return 0, fmt.Errorf("no gid found for group %q: %w", name, common.ErrNotFound)
}

func (r *Resolver) UserName(uid uint32) (string, error) {
	for name, id := range r.Users {
		if id == uid {
			return name, nil
		}
	}
	return "", fmt.Errorf("no user found for uid %d: %w", uid, common.ErrNotFound)
}

func (r *Resolver) GroupName(gid uint32) (string, error) {
	for name, id := range r.Groups {
		if id == gid {
			return name, nil
		}
	}
	return "", fmt.Errorf("no group found for gid %d: %w", gid, common.ErrNotFound)
}
