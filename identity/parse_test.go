package identity_test

import (
	"strconv"
	"testing"

	"github.com/nmeilick/oabutils/common"
	"github.com/nmeilick/oabutils/identity"
	"github.com/nmeilick/oabutils/identity/identitytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver() *identitytest.Resolver {
	return identitytest.New(
		map[string]uint32{"alice": 1000, "bob": 1001},
		map[string]uint32{"staff": 50, "wheel": 0},
	)
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  identity.Pair
	}{
		{"numeric uid", "1000", identity.Pair{UID: 1000}},
		{"zero uid", "0", identity.Pair{UID: 0}},
		{"max uid", "4294967295", identity.Pair{UID: 4294967295}},
		{"user name", "alice", identity.Pair{UID: 1000}},
		{"numeric pair", "1000:50", identity.Pair{UID: 1000, GID: 50, HasGID: true}},
		{"uid and group name", "1000:staff", identity.Pair{UID: 1000, GID: 50, HasGID: true}},
		{"user name and gid", "bob:7", identity.Pair{UID: 1001, GID: 7, HasGID: true}},
		{"names", "alice:wheel", identity.Pair{UID: 1000, GID: 0, HasGID: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := identity.ParseInput(newResolver(), tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInputNumericSkipsLookup(t *testing.T) {
	r := newResolver()
	for _, n := range []uint64{0, 1, 65534, 1 << 31, 1<<32 - 1} {
		got, err := identity.ParseInput(r, strconv.FormatUint(n, 10))
		require.NoError(t, err)
		assert.Equal(t, identity.Pair{UID: uint32(n)}, got)
	}
	assert.Empty(t, r.Lookups)
}

func TestParseInputSplitsOnFirstSeparator(t *testing.T) {
	r := newResolver()
	_, err := identity.ParseInput(r, "1000:staff:extra")
	require.Error(t, err)
	assert.Equal(t, []string{"group:staff:extra"}, r.Lookups)
}

func TestParseInputErrors(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"unknown user", "nonexistentuser"},
		{"unknown group", "1000:nogroup"},
		{"unknown user with group", "nobody-here:staff"},
		{"empty token", ""},
		{"empty user", ":50"},
		{"empty group", "1000:"},
		{"uid out of range", "4294967296"},
		{"negative uid", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := identity.ParseInput(newResolver(), tt.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidInput)
			assert.ErrorIs(t, err, common.ErrNotFound)
		})
	}
}

func TestParseInputStopsAfterUserFailure(t *testing.T) {
	r := newResolver()
	_, err := identity.ParseInput(r, "ghost:staff")
	require.Error(t, err)
	assert.Equal(t, []string{"user:ghost"}, r.Lookups)
}

func TestPairString(t *testing.T) {
	assert.Equal(t, "1000", identity.Pair{UID: 1000}.String())
	assert.Equal(t, "1000:50", identity.Pair{UID: 1000, GID: 50, HasGID: true}.String())
}
