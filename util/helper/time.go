package helper_util

import "time"

// storedTimeLayout has a fixed-width fraction so stored timestamps sort lexically.
const storedTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ParseTime parses a stored timestamp, returning the zero time on failure.
func ParseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func FormatTime(t time.Time) string {
	return t.UTC().Format(storedTimeLayout)
}
