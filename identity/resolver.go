// Package identity turns user and group references into numeric ids using
// the system identity databases.
package identity

import (
	"errors"
	"fmt"
	"os/user"
	"strconv"
	"strings"

	"github.com/nmeilick/oabutils/common"
)

// Resolver looks up names in the user and group databases.
type Resolver interface {
	// LookupUser returns the uid of the named user.
	LookupUser(name string) (uint32, error)
	// LookupGroup returns the gid of the named group.
	LookupGroup(name string) (uint32, error)
	// UserName returns the login name for uid.
	UserName(uid uint32) (string, error)
	// GroupName returns the group name for gid.
	GroupName(gid uint32) (string, error)
}

// System resolves names through os/user, which uses the reentrant libc
// lookups when cgo is available and parses /etc/passwd and /etc/group
// otherwise. Results are never cached.
type System struct{}

// NewSystem returns the resolver backed by the host databases.
func NewSystem() *System {
	return &System{}
}

// LookupUser implements Resolver.
func (System) LookupUser(name string) (uint32, error) {
	if err := checkName(name); err != nil {
		return 0, fmt.Errorf("no uid found for user %q: %w", name, err)
	}

	u, err := user.Lookup(name)
	if err != nil {
		return 0, lookupError("uid", "user", name, err)
	}

	uid, err := parseID(u.Uid)
	if err != nil {
		return 0, fmt.Errorf("user %q has unusable uid %q: %w", name, u.Uid, err)
	}
	return uid, nil
}

// LookupGroup implements Resolver.
func (System) LookupGroup(name string) (uint32, error) {
	if err := checkName(name); err != nil {
		return 0, fmt.Errorf("no gid found for group %q: %w", name, err)
	}

	g, err := user.LookupGroup(name)
	if err != nil {
		return 0, lookupError("gid", "group", name, err)
	}

	gid, err := parseID(g.Gid)
	if err != nil {
		return 0, fmt.Errorf("group %q has unusable gid %q: %w", name, g.Gid, err)
	}
	return gid, nil
}

// UserName implements Resolver.
func (System) UserName(uid uint32) (string, error) {
	u, err := user.LookupId(strconv.FormatUint(uint64(uid), 10))
	if err != nil {
		return "", lookupError("user", "uid", strconv.FormatUint(uint64(uid), 10), err)
	}
	return u.Username, nil
}

// GroupName implements Resolver.
func (System) GroupName(gid uint32) (string, error) {
	g, err := user.LookupGroupId(strconv.FormatUint(uint64(gid), 10))
	if err != nil {
		return "", lookupError("group", "gid", strconv.FormatUint(uint64(gid), 10), err)
	}
	return g.Name, nil
}

// checkName rejects names that can never match a database entry. os/user
// hands the name to libc as a C string, so an embedded NUL would silently
// truncate it.
func checkName(name string) error {
	if name == "" {
		return common.ErrNotFound
	}
	if strings.IndexByte(name, 0) >= 0 {
		return fmt.Errorf("%w: name contains a NUL byte", common.ErrInvalidInput)
	}
	return nil
}

func lookupError(what, kind, key string, err error) error {
	var (
		unknownUser    user.UnknownUserError
		unknownUserID  user.UnknownUserIdError
		unknownGroup   user.UnknownGroupError
		unknownGroupID user.UnknownGroupIdError
	)
	switch {
	case errors.As(err, &unknownUser), errors.As(err, &unknownUserID),
		errors.As(err, &unknownGroup), errors.As(err, &unknownGroupID):
		return fmt.Errorf("no %s found for %s %q: %w", what, kind, key, common.ErrNotFound)
	default:
		// The database could not be consulted at all; there is still no
		// entry to hand back.
		return fmt.Errorf("no %s found for %s %q: %w: %w", what, kind, key, common.ErrNotFound, err)
	}
}

// parseID parses a base-10 unsigned 32-bit id.
func parseID(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}
