package expiry

import (
	"Pantry-Backend/entities"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Statistics{}, Summarize(nil, today))
}

func TestSummarize(t *testing.T) {
	items := []entities.FoodItem{
		itemExpiring(-1),
		itemExpiring(0),
		itemExpiring(2),
		itemExpiring(5),
		itemExpiring(30),
		itemExpiring(7),
		itemWithoutExpiry(),
		itemWithoutExpiry(),
	}

	stats := Summarize(items, today)

	assert.Equal(t, 8, stats.Total)
	assert.Equal(t, 2, stats.Critical)
	assert.Equal(t, 1, stats.Warning)
	assert.Equal(t, 1, stats.Soon)
	assert.Equal(t, 2, stats.Safe)
	assert.Equal(t, 2, stats.NoExpiry)
	assert.InDelta(t, 25.0, stats.CriticalPercentage, 0.0001)
	assert.InDelta(t, 12.5, stats.WarningPercentage, 0.0001)
}

func TestSummarize_OnlyNoExpiry(t *testing.T) {
	stats := Summarize([]entities.FoodItem{itemWithoutExpiry()}, today)

	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.NoExpiry)
	assert.Zero(t, stats.Critical+stats.Warning+stats.Soon+stats.Safe)
	assert.Zero(t, stats.CriticalPercentage)
}
