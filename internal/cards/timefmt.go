package cards

import "time"

const timestampLayout = "Jan 2, 2006 15:04:05 MST"

// FormatTimestamp renders an absolute instant as a fixed human-readable UTC
// string, e.g. "Mar 1, 2024 12:00:00 UTC".
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return notAvailable
	}
	return t.UTC().Format(timestampLayout)
}
