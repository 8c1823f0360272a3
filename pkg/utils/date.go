package utils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayouts are the date formats accepted in sales files, tried in order.
var DateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
}

// ParseDate parses a calendar date and drops any time of day.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, layout := range DateLayouts {
		if date, err := time.Parse(layout, dateStr); err == nil {
			y, m, d := date.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date %q", dateStr)
}
