package duration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := map[string]time.Duration{
		"":      0,
		"30d":   30 * 24 * time.Hour,
		"1w2d":  9 * 24 * time.Hour,
		"1h30m": 90 * time.Minute,
	}
	for in, want := range tests {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := Parse("whenever")
	assert.ErrorContains(t, err, "invalid duration format")
}

func TestDays(t *testing.T) {
	assert.Equal(t, 0, Days(0))
	assert.Equal(t, 0, Days(-time.Hour))
	assert.Equal(t, 1, Days(time.Minute))
	assert.Equal(t, 30, Days(30*24*time.Hour))
	assert.Equal(t, 31, Days(30*24*time.Hour+time.Second))
}

func TestString(t *testing.T) {
	assert.Equal(t, "1 week", String(7*24*time.Hour))
	assert.Equal(t, "1 hour 30 minutes", String(90*time.Minute))
}
