package expiry

import (
	"Pantry-Backend/entities"
	"fmt"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2/log"
)

// Buckets maps a "YYYY-MM-DD" date to the items expiring on it.
type Buckets map[string][]entities.FoodItem

type Dot struct {
	Level Level  `json:"level"`
	Color string `json:"color"`
	Hex   string `json:"hex"`
}

type Marker struct {
	Date               string        `json:"date"`
	Dots               []Dot         `json:"dots"`
	AccessibilityLabel string        `json:"accessibility_label"`
	DominantLevel      Level         `json:"dominant_level"`
	ItemCount          int           `json:"item_count"`
	Counts             map[Level]int `json:"counts"`
}

// BuildBuckets groups items by expiry date. Items without one are left out.
func BuildBuckets(items []entities.FoodItem) Buckets {
	buckets := make(Buckets)
	for _, item := range items {
		if item.ExpiryDate == nil {
			continue
		}
		key := DateOf(*item.ExpiryDate).String()
		buckets[key] = append(buckets[key], item)
	}
	return buckets
}

// CountLevels tallies classified items per level. Items without an expiry
// date are not counted.
func CountLevels(items []entities.FoodItem, today Date) map[Level]int {
	counts := make(map[Level]int, len(Levels))
	for _, item := range items {
		if u, ok := ClassifyItem(item, today); ok {
			counts[u.Level]++
		}
	}
	return counts
}

// DominantLevel returns the most severe level among items, or safe when none
// of them has an expiry date.
func DominantLevel(items []entities.FoodItem, today Date) Level {
	return dominant(CountLevels(items, today))
}

func dominant(counts map[Level]int) Level {
	for _, lvl := range Levels {
		if counts[lvl] > 0 {
			return lvl
		}
	}
	return LevelSafe
}

// BuildMarker describes one calendar date. It returns false for an empty bucket.
func BuildMarker(date Date, items []entities.FoodItem, today Date) (Marker, bool) {
	if len(items) == 0 {
		return Marker{}, false
	}

	counts := CountLevels(items, today)
	dots := make([]Dot, 0, len(Levels))
	for _, lvl := range Levels {
		if counts[lvl] == 0 {
			continue
		}
		dots = append(dots, Dot{Level: lvl, Color: lvl.Color(), Hex: lvl.Hex()})
	}

	return Marker{
		Date:               date.String(),
		Dots:               dots,
		AccessibilityLabel: accessibilityLabel(date, len(items), counts),
		DominantLevel:      dominant(counts),
		ItemCount:          len(items),
		Counts:             counts,
	}, true
}

// BuildMarkers produces markers sorted by date. Keys that are not valid dates
// are skipped and logged.
func BuildMarkers(buckets Buckets, today Date) []Marker {
	markers := make([]Marker, 0, len(buckets))
	for key, items := range buckets {
		date, err := ParseDate(key)
		if err != nil {
			log.Warnf("calendar: skipping bucket with %d items: %v", len(items), err)
			continue
		}
		if marker, ok := BuildMarker(date, items, today); ok {
			markers = append(markers, marker)
		}
	}

	sort.Slice(markers, func(i, j int) bool {
		return markers[i].Date < markers[j].Date
	})
	return markers
}

func accessibilityLabel(date Date, total int, counts map[Level]int) string {
	parts := []string{pluralize(total, "item")}
	for _, lvl := range Levels {
		if n := counts[lvl]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, lvl))
		}
	}
	return fmt.Sprintf("%s: %s", longDate(date), strings.Join(parts, ", "))
}

func longDate(d Date) string {
	return d.midnight().Format("January 2, 2006")
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
