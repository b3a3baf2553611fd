package directory

import (
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rivo/uniseg"
)

// Initials returns up to two upper-cased leading graphemes, one per word of
// name. "Alex Johnson" becomes "AJ".
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		first, _, _, _ := uniseg.FirstGraphemeClusterInString(word, -1)
		b.WriteString(strings.ToUpper(first))
		if uniseg.GraphemeClusterCount(b.String()) == 2 {
			break
		}
	}
	return b.String()
}

var compactMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Minute, Format: "now", DivBy: 1},
	{D: time.Hour, Format: "%dm %s", DivBy: time.Minute},
	{D: 24 * time.Hour, Format: "%dh %s", DivBy: time.Hour},
	{D: 7 * 24 * time.Hour, Format: "%dd %s", DivBy: 24 * time.Hour},
	{D: math.MaxInt64, Format: "%dw %s", DivBy: 7 * 24 * time.Hour},
}

// RelativeTime renders t relative to now in the compact form used by the
// contact list: "now", "2m ago", "1h ago", "1d ago", "3w ago".
// The zero time renders as "".
func RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.CustomRelTime(t, now, "ago", "from now", compactMagnitudes)
}
