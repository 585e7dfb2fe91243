package filter

import (
	"testing"
	"time"

	"github.com/shenikar/field_ops_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// newCase строит кейс с остатком SLA remaining минут на момент testNow
func newCase(id string, severity models.Severity, status models.CaseStatus, location string, remaining, total int) *models.Case {
	return &models.Case{
		ID:              id,
		Severity:        severity,
		Status:          status,
		Location:        location,
		SLATotalMinutes: total,
		TimeReceived:    testNow.Add(-time.Duration(total-remaining) * time.Minute),
	}
}

func sampleCases() []*models.Case {
	return []*models.Case{
		newCase("C-1234", models.SeverityCritical, models.StatusPending, "123 Main St, Downtown", 12, 60),
		newCase("C-1235", models.SeverityHigh, models.StatusAcknowledged, "45 Oak Avenue", 40, 120),
		newCase("C-1236", models.SeverityCritical, models.StatusOnRoute, "Central Park North", -5, 30),
		newCase("C-1237", models.SeverityLow, models.StatusResolved, "88 Harbor Road", -20, 240),
		newCase("C-1238", models.SeverityMedium, models.StatusInProgress, "Main Street Mall", 200, 240),
	}
}

func ids(cases []*models.Case) []string {
	out := make([]string, len(cases))
	for i, c := range cases {
		out[i] = c.ID
	}
	return out
}

func TestCases_EmptyCriteriaReturnsInputUnchanged(t *testing.T) {
	cases := sampleCases()

	result := Cases(cases, Criteria{Query: "   "})

	assert.Equal(t, ids(cases), ids(result))
}

func TestCases_SeverityPreservesOrder(t *testing.T) {
	cases := sampleCases()

	result := Cases(cases, Criteria{Severities: []models.Severity{models.SeverityCritical}})

	assert.Equal(t, []string{"C-1234", "C-1236"}, ids(result))
}

func TestCases_QueryIsCaseInsensitive(t *testing.T) {
	cases := sampleCases()

	result := Cases(cases, Criteria{Query: "c-12"})
	assert.Len(t, result, len(cases))

	result = Cases(cases, Criteria{Query: "  MAIN "})
	assert.Equal(t, []string{"C-1234", "C-1238"}, ids(result))
}

func TestCases_AllCriteriaCombined(t *testing.T) {
	cases := sampleCases()

	result := Cases(cases, Criteria{
		Query:      "main",
		Severities: []models.Severity{models.SeverityCritical, models.SeverityMedium},
		Statuses:   []models.CaseStatus{models.StatusInProgress},
	})

	assert.Equal(t, []string{"C-1238"}, ids(result))
}

func TestCases_NoMatchReturnsEmptySlice(t *testing.T) {
	result := Cases(sampleCases(), Criteria{Query: "nowhere"})

	require.NotNil(t, result)
	assert.Empty(t, result)
}

func TestSLAAlerts(t *testing.T) {
	result := SLAAlerts(sampleCases(), 30, testNow)

	// C-1237 решен и исключен, C-1235 и C-1238 выше порога
	assert.Equal(t, []string{"C-1236", "C-1234"}, ids(result))
}

func TestSLAAlerts_StableForEqualRemaining(t *testing.T) {
	cases := []*models.Case{
		newCase("A", models.SeverityLow, models.StatusPending, "x", 10, 60),
		newCase("B", models.SeverityLow, models.StatusPending, "x", 10, 60),
		newCase("C", models.SeverityLow, models.StatusPending, "x", 5, 60),
	}

	result := SLAAlerts(cases, 30, testNow)

	assert.Equal(t, []string{"C", "A", "B"}, ids(result))
}

func TestStats(t *testing.T) {
	stats := Stats(sampleCases(), testNow)

	assert.Equal(t, DashboardStats{
		Total:      5,
		Urgent:     3,
		Overdue:    2,
		Closed:     1,
		SLAOverdue: 2,
		SLADueSoon: 1,
		SLANormal:  2,
	}, stats)
}

func TestStats_ResolvedWithinSLAIsNotOverdue(t *testing.T) {
	// Подготовка: кейс решен через 3 часа при SLA 4 часа, с тех пор прошли сутки
	resolved := newCase("C-1237", models.SeverityLow, models.StatusResolved, "88 Harbor Road", -1200, 240)
	resolved.AuditTrail = []models.AuditEvent{
		{Action: "Case Resolved", Timestamp: resolved.TimeReceived.Add(3 * time.Hour)},
	}
	late := newCase("C-1239", models.SeverityLow, models.StatusResolved, "12 Pier St", -1200, 60)
	late.AuditTrail = []models.AuditEvent{
		{Action: "Status Updated to Resolved", Timestamp: late.TimeReceived.Add(2 * time.Hour)},
	}

	// Действие
	stats := Stats([]*models.Case{resolved, late}, testNow)

	// Проверки: опоздавшее решение остается просроченным
	assert.Equal(t, 2, stats.Closed)
	assert.Equal(t, 1, stats.Overdue)
	assert.Equal(t, 1, stats.SLAOverdue)
	assert.Equal(t, 1, stats.SLANormal)
}
