package parser

import (
	"fmt"
	"strings"
	"time"
)

// Date layouts accepted for report filters, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
}

// ParseDate converts a user-typed date (ISO or dd/mm/yyyy) into a time.
func ParseDate(s string) (time.Time, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (use dd/mm/yyyy or yyyy-mm-dd)", s)
}

// FormatDateParam renders a date the way the backend's filter endpoints
// expect it.
func FormatDateParam(t time.Time) string {
	return t.Format("2006-01-02")
}
