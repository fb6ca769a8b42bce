package utils

import (
	"fmt"
	"time"
)

// ParseDate accepts RFC3339 first and falls back to the date-only layouts
// clients tend to send. All persisted dates pass through here so the core
// logic only ever sees time.Time.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		layouts := []string{"2006-01-02", "2006-01-02 15:04", "2006-01-02 15:04:05"}
		for _, layout := range layouts {
			if t, e := time.Parse(layout, value); e == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("invalid date format, use RFC3339 or YYYY-MM-DD")
	}
	return parsed, nil
}

// ValidClock reports whether s is a well-formed "HH:MM" wall-clock string.
func ValidClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	min := int(s[3]-'0')*10 + int(s[4]-'0')
	return hour <= 23 && min <= 59
}
