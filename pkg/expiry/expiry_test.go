package expiry

import (
	"Pantry-Backend/entities"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = Date{Year: 2026, Month: time.October, Day: 19}

func itemExpiring(days int) entities.FoodItem {
	t := today.AddDays(days).Time()
	return entities.FoodItem{ID: uuid.New(), Name: "item", Quantity: 1, ExpiryDate: &t}
}

func itemWithoutExpiry() entities.FoodItem {
	return entities.FoodItem{ID: uuid.New(), Name: "salt", Quantity: 1}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-10-19")
	require.NoError(t, err)
	assert.Equal(t, today, d)

	d, err = ParseDate("2026-10-19T23:30:00-05:00")
	require.NoError(t, err)
	assert.Equal(t, today, d, "calendar day is taken in the timestamp's own offset")

	for _, bad := range []string{"", "19/10/2026", "2026-13-01", "tomorrow"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, bad)
	}
}

func TestToday_NormalizesToLocation(t *testing.T) {
	now := time.Date(2026, time.October, 20, 2, 0, 0, 0, time.UTC)
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}

	assert.Equal(t, Date{2026, time.October, 20}, Today(now, nil))
	assert.Equal(t, Date{2026, time.October, 19}, Today(now, ny))
}

func TestDaysUntil_AcrossMonthAndYear(t *testing.T) {
	assert.Equal(t, 0, today.DaysUntil(today))
	assert.Equal(t, 13, today.DaysUntil(Date{2026, time.November, 1}))
	assert.Equal(t, -19, today.DaysUntil(Date{2026, time.September, 30}))
	assert.Equal(t, 1, Date{2026, time.December, 31}.DaysUntil(Date{2027, time.January, 1}))
}

func TestLevelForDays(t *testing.T) {
	tests := []struct {
		days int
		want Level
	}{
		{-30, LevelCritical},
		{-1, LevelCritical},
		{0, LevelCritical},
		{1, LevelWarning},
		{2, LevelWarning},
		{3, LevelSoon},
		{6, LevelSoon},
		{7, LevelSafe},
		{365, LevelSafe},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForDays(tt.days), "days=%d", tt.days)
		assert.Equal(t, tt.want, Classify(today.AddDays(tt.days), today).Level, "days=%d", tt.days)
	}
}

func TestClassify_Metadata(t *testing.T) {
	u := Classify(today, today)
	assert.Equal(t, Urgency{
		Level:       LevelCritical,
		DaysLeft:    0,
		Label:       "Critical",
		Description: "Expires today",
		Color:       "red",
		Hex:         "#E53935",
	}, u)

	assert.Equal(t, "Expired 3 days ago", Classify(today.AddDays(-3), today).Description)
	assert.Equal(t, "Expired 1 day ago", Classify(today.AddDays(-1), today).Description)
	assert.Equal(t, "Expires tomorrow", Classify(today.AddDays(1), today).Description)
	assert.Equal(t, "Expires in 10 days", Classify(today.AddDays(10), today).Description)
}

func TestClassify_Idempotent(t *testing.T) {
	expiry := today.AddDays(4)
	assert.Equal(t, Classify(expiry, today), Classify(expiry, today))
}

func TestClassifyItem_NoExpiry(t *testing.T) {
	_, ok := ClassifyItem(itemWithoutExpiry(), today)
	assert.False(t, ok)

	u, ok := ClassifyItem(itemExpiring(2), today)
	assert.True(t, ok)
	assert.Equal(t, LevelWarning, u.Level)
}

func TestClassifyItem_IgnoresTimeOfDay(t *testing.T) {
	lateEvening := time.Date(2026, time.October, 20, 23, 59, 0, 0, time.UTC)
	item := entities.FoodItem{ExpiryDate: &lateEvening}

	u, ok := ClassifyItem(item, today)
	require.True(t, ok)
	assert.Equal(t, 1, u.DaysLeft)
	assert.Equal(t, LevelWarning, u.Level)
}

func TestLevelSeverity(t *testing.T) {
	assert.Greater(t, LevelCritical.Severity(), LevelWarning.Severity())
	assert.Greater(t, LevelWarning.Severity(), LevelSoon.Severity())
	assert.Greater(t, LevelSoon.Severity(), LevelSafe.Severity())
	assert.False(t, Level("spoiled").Valid())
}

func TestExpiryRange_MatchesClassifier(t *testing.T) {
	for _, level := range Levels {
		from, to, ok := ExpiryRange(level, today)
		require.True(t, ok)

		if from != nil {
			assert.Equal(t, level, Classify(*from, today).Level)
			assert.NotEqual(t, level, Classify(from.AddDays(-1), today).Level)
		}
		if to != nil {
			assert.Equal(t, level, Classify(*to, today).Level)
			assert.NotEqual(t, level, Classify(to.AddDays(1), today).Level)
		}
	}

	_, _, ok := ExpiryRange(Level("rotten"), today)
	assert.False(t, ok)
}
