package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wesleyorama2/go-kairosdb/builder"
)

// parseRelative parses a relative time like "30s", "5m", "2h", "7d", "1w",
// "3mo", or "1y" into a value and KairosDB time unit.
func parseRelative(s string) (int, builder.TimeUnit, error) {
	suffixes := []struct {
		suffix string
		unit   builder.TimeUnit
	}{
		{"ms", builder.Milliseconds},
		{"mo", builder.Months},
		{"s", builder.Seconds},
		{"m", builder.Minutes},
		{"h", builder.Hours},
		{"d", builder.Days},
		{"w", builder.Weeks},
		{"y", builder.Years},
	}

	for _, entry := range suffixes {
		if !strings.HasSuffix(s, entry.suffix) {
			continue
		}
		value, err := strconv.Atoi(strings.TrimSuffix(s, entry.suffix))
		if err != nil || value <= 0 {
			return 0, "", fmt.Errorf("invalid relative time %q", s)
		}
		return value, entry.unit, nil
	}

	return 0, "", fmt.Errorf("invalid relative time %q: expected a value with one of ms, s, m, h, d, w, mo, y", s)
}
