package identity

import (
	"fmt"
	"strings"

	"github.com/nmeilick/oabutils/common"
)

const idSeparator = ":"

// Pair is a resolved owner specification. HasGID is false when the input
// named only a user, meaning the current group should be kept.
type Pair struct {
	UID    uint32
	GID    uint32
	HasGID bool
}

// String formats the pair the way it is accepted on the command line.
func (p Pair) String() string {
	if !p.HasGID {
		return fmt.Sprintf("%d", p.UID)
	}
	return fmt.Sprintf("%d:%d", p.UID, p.GID)
}

// ParseInput resolves "uid", "name", or "user:group" where each side is
// either a decimal id or a name. Numeric parsing always wins, so a user
// literally called "1000" cannot be addressed by name.
func ParseInput(r Resolver, token string) (Pair, error) {
	userPart, groupPart, hasGroup := strings.Cut(token, idSeparator)

	uid, err := resolveSide(userPart, r.LookupUser)
	if err != nil {
		return Pair{}, fmt.Errorf("%w: %w", common.ErrInvalidInput, err)
	}
	if !hasGroup {
		return Pair{UID: uid}, nil
	}

	gid, err := resolveSide(groupPart, r.LookupGroup)
	if err != nil {
		return Pair{}, fmt.Errorf("%w: %w", common.ErrInvalidInput, err)
	}
	return Pair{UID: uid, GID: gid, HasGID: true}, nil
}

func resolveSide(s string, lookup func(string) (uint32, error)) (uint32, error) {
	if id, err := parseID(s); err == nil {
		return id, nil
	}
	return lookup(s)
}
