package expiry

import (
	"Pantry-Backend/entities"
	"fmt"
)

type Level string

const (
	LevelCritical Level = "critical"
	LevelWarning  Level = "warning"
	LevelSoon     Level = "soon"
	LevelSafe     Level = "safe"
)

const (
	warningMaxDays = 2
	soonMaxDays    = 6
)

// Levels lists every urgency level from most to least severe.
var Levels = []Level{LevelCritical, LevelWarning, LevelSoon, LevelSafe}

type levelStyle struct {
	label string
	color string
	hex   string
}

var styles = map[Level]levelStyle{
	LevelCritical: {label: "Critical", color: "red", hex: "#E53935"},
	LevelWarning:  {label: "Warning", color: "orange", hex: "#FB8C00"},
	LevelSoon:     {label: "Soon", color: "amber", hex: "#FDD835"},
	LevelSafe:     {label: "Safe", color: "green", hex: "#43A047"},
}

// Severity ranks a level; higher is more urgent. Unknown levels rank 0.
func (l Level) Severity() int {
	for i, lvl := range Levels {
		if lvl == l {
			return len(Levels) - i
		}
	}
	return 0
}

func (l Level) Valid() bool {
	return l.Severity() > 0
}

func (l Level) Label() string {
	return styles[l].label
}

func (l Level) Color() string {
	return styles[l].color
}

func (l Level) Hex() string {
	return styles[l].hex
}

type Urgency struct {
	Level       Level  `json:"level"`
	DaysLeft    int    `json:"days_left"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Hex         string `json:"hex"`
}

// LevelForDays maps days remaining until expiry to an urgency level.
// Zero (expires today) and anything negative is critical.
func LevelForDays(days int) Level {
	switch {
	case days <= 0:
		return LevelCritical
	case days <= warningMaxDays:
		return LevelWarning
	case days <= soonMaxDays:
		return LevelSoon
	default:
		return LevelSafe
	}
}

// Classify computes the urgency of something expiring on expiry, as seen on today.
func Classify(expiry, today Date) Urgency {
	days := today.DaysUntil(expiry)
	level := LevelForDays(days)

	return Urgency{
		Level:       level,
		DaysLeft:    days,
		Label:       level.Label(),
		Description: describeDays(days),
		Color:       level.Color(),
		Hex:         level.Hex(),
	}
}

// ClassifyItem returns false when the item has no expiry date.
func ClassifyItem(item entities.FoodItem, today Date) (Urgency, bool) {
	if item.ExpiryDate == nil {
		return Urgency{}, false
	}
	return Classify(DateOf(*item.ExpiryDate), today), true
}

func describeDays(days int) string {
	switch {
	case days < -1:
		return fmt.Sprintf("Expired %d days ago", -days)
	case days == -1:
		return "Expired 1 day ago"
	case days == 0:
		return "Expires today"
	case days == 1:
		return "Expires tomorrow"
	default:
		return fmt.Sprintf("Expires in %d days", days)
	}
}

// ExpiryRange returns the inclusive window of expiry dates that classify as
// level on today. A nil bound is open.
func ExpiryRange(level Level, today Date) (from, to *Date, ok bool) {
	bound := func(days int) *Date {
		d := today.AddDays(days)
		return &d
	}

	switch level {
	case LevelCritical:
		return nil, bound(0), true
	case LevelWarning:
		return bound(1), bound(warningMaxDays), true
	case LevelSoon:
		return bound(warningMaxDays + 1), bound(soonMaxDays), true
	case LevelSafe:
		return bound(soonMaxDays + 1), nil, true
	}
	return nil, nil, false
}
