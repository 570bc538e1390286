package expiry

import "Pantry-Backend/entities"

type Statistics struct {
	Total              int     `json:"total"`
	Critical           int     `json:"critical"`
	Warning            int     `json:"warning"`
	Soon               int     `json:"soon"`
	Safe               int     `json:"safe"`
	NoExpiry           int     `json:"no_expiry"`
	CriticalPercentage float64 `json:"critical_percentage"`
	WarningPercentage  float64 `json:"warning_percentage"`
}

// Summarize counts items per urgency level. Items without an expiry date count
// toward Total and NoExpiry only.
func Summarize(items []entities.FoodItem, today Date) Statistics {
	stats := Statistics{Total: len(items)}

	for _, item := range items {
		u, ok := ClassifyItem(item, today)
		if !ok {
			stats.NoExpiry++
			continue
		}
		switch u.Level {
		case LevelCritical:
			stats.Critical++
		case LevelWarning:
			stats.Warning++
		case LevelSoon:
			stats.Soon++
		case LevelSafe:
			stats.Safe++
		}
	}

	stats.CriticalPercentage = percentage(stats.Critical, stats.Total)
	stats.WarningPercentage = percentage(stats.Warning, stats.Total)
	return stats
}

func percentage(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
