package expiry

import "fmt"

const weekdayWindow = 7

// FormatDateForDisplay renders a date string relative to today.
func FormatDateForDisplay(s string, today Date) (string, error) {
	d, err := ParseDate(s)
	if err != nil {
		return "", fmt.Errorf("format date for display: %w", err)
	}
	return FormatDate(d, today), nil
}

// FormatDate returns "Today", "Tomorrow" or "Yesterday", a weekday name within
// a week either way ("Last Monday" in the past), or "January 2" with the year
// appended when it is not the current one.
func FormatDate(d, today Date) string {
	diff := today.DaysUntil(d)

	switch {
	case diff == 0:
		return "Today"
	case diff == 1:
		return "Tomorrow"
	case diff == -1:
		return "Yesterday"
	case diff > 0 && diff < weekdayWindow:
		return d.Weekday().String()
	case diff < 0 && -diff < weekdayWindow:
		return "Last " + d.Weekday().String()
	}

	if d.Year != today.Year {
		return d.midnight().Format("January 2, 2006")
	}
	return d.midnight().Format("January 2")
}
