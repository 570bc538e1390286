package cli

import (
	"Pantry-Backend/domain"
	"Pantry-Backend/pkg/expiry"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	stats := domain.DashboardStatsResponse{
		Statistics: expiry.Statistics{Total: 4, Critical: 1, Warning: 1, Safe: 1, NoExpiry: 1, CriticalPercentage: 25, WarningPercentage: 25},
	}
	calendar := domain.CalendarResponse{
		Month: "2026-10",
		Days: []domain.CalendarDayResponse{{
			Marker: expiry.Marker{
				Date:               "2026-10-19",
				DominantLevel:      expiry.LevelCritical,
				AccessibilityLabel: "October 19, 2026: 1 item, 1 critical",
			},
		}},
	}

	var out bytes.Buffer
	require.NoError(t, writeReport(&out, stats, calendar))

	report := out.String()
	assert.Contains(t, report, "TOTAL")
	assert.Contains(t, report, "25.0")
	assert.Contains(t, report, "2026-10-19")
	assert.Contains(t, report, "October 19, 2026: 1 item, 1 critical")
}

func TestWriteReport_EmptyMonth(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeReport(&out, domain.DashboardStatsResponse{}, domain.CalendarResponse{Month: "2026-11"}))
	assert.Contains(t, out.String(), "nothing expires this month")
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "migrate", "notify", "report"} {
		assert.True(t, names[want], want)
	}
}
