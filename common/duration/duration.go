package duration

import (
	"fmt"
	"math"
	"time"

	"github.com/hako/durafmt"
	"github.com/xhit/go-str2duration/v2"
)

// Parse parses a duration string with fallbacks to multiple formats
func Parse(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}

	// Try str2duration parsing first (handles "30d", "1w2d" etc.)
	d, err := str2duration.ParseDuration(s)
	if err == nil {
		return d, nil
	}

	// Try durafmt as fallback for more human-readable formats
	duration, err := durafmt.ParseString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %w", err)
	}

	return duration.Duration(), nil
}

// Days converts d to whole days, rounding up. Anything below zero yields 0.
func Days(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Hours() / 24))
}

// String formats d for log output, e.g. "4 weeks 2 days".
func String(d time.Duration) string {
	return durafmt.Parse(d).String()
}
