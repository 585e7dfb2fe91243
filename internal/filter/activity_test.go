package filter

import (
	"testing"
	"time"

	"github.com/shenikar/field_ops_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditVariant(t *testing.T) {
	tests := map[string]Variant{
		"SLA OVERDUE":                VariantCritical,
		"Case Resolved":              VariantSuccess,
		"SLA Warning Triggered":      VariantWarning,
		"SLA Escalation":             VariantWarning,
		"Case Created":               VariantDefault,
		"Status Updated to On Route": VariantDefault,
	}
	for action, want := range tests {
		assert.Equal(t, want, AuditVariant(action), action)
	}
}

func TestDayLabel(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, "Today", DayLabel(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "Today", DayLabel(time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC), now))
	assert.Equal(t, "Yesterday", DayLabel(time.Date(2024, 2, 29, 16, 30, 0, 0, time.UTC), now))
	assert.Equal(t, "Feb 28, 2024", DayLabel(time.Date(2024, 2, 28, 16, 30, 0, 0, time.UTC), now))
}

func activityEntries(now time.Time) []ActivityEntry {
	actor := models.NewActor("System")
	return []ActivityEntry{
		NewActivityEntry("C-1234", models.AuditEvent{ID: "1", Action: "Case Created", Actor: actor, Timestamp: now.Add(-time.Hour)}),
		NewActivityEntry("C-1235", models.AuditEvent{ID: "2", Action: "Attachment Added", Actor: actor, Timestamp: now.Add(-2 * time.Hour)}),
		NewActivityEntry("C-1230", models.AuditEvent{ID: "3", Action: "SLA Warning Triggered", Actor: actor, Timestamp: now.Add(-20 * time.Hour)}),
		NewActivityEntry("C-1237", models.AuditEvent{ID: "4", Action: "Case Resolved", Actor: actor, Timestamp: now.Add(-22 * time.Hour)}),
		NewActivityEntry("C-1100", models.AuditEvent{ID: "5", Action: "Case Created", Actor: actor, Timestamp: now.Add(-72 * time.Hour)}),
	}
}

func TestNewActivityEntry(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := activityEntries(now)

	assert.True(t, entries[1].HasAttachment)
	assert.False(t, entries[0].HasAttachment)
	assert.Equal(t, VariantWarning, entries[2].Variant)
	assert.Equal(t, VariantSuccess, entries[3].Variant)
}

func TestActivity_DateFilter(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := activityEntries(now)

	today := Activity(entries, ActivityCriteria{Date: DateToday}, now)
	yesterday := Activity(entries, ActivityCriteria{Date: DateYesterday}, now)
	all := Activity(entries, ActivityCriteria{Date: DateAll}, now)

	assert.Len(t, today, 2)
	assert.Len(t, yesterday, 2)
	assert.Len(t, all, 5)
}

func TestActivity_QueryMatchesCaseID(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	result := Activity(activityEntries(now), ActivityCriteria{Query: "c-123"}, now)

	require.Len(t, result, 4)
	for _, e := range result {
		assert.Contains(t, e.CaseID, "C-123")
	}
}

func TestGroupByDay(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	groups := GroupByDay(activityEntries(now), now)

	require.Len(t, groups, 3)
	assert.Equal(t, "Today", groups[0].Label)
	assert.Len(t, groups[0].Entries, 2)
	assert.Equal(t, "Yesterday", groups[1].Label)
	assert.Len(t, groups[1].Entries, 2)
	assert.Equal(t, "Feb 27, 2024", groups[2].Label)
}

func TestDateFilter_Valid(t *testing.T) {
	assert.True(t, DateFilter("").Valid())
	assert.True(t, DateToday.Valid())
	assert.False(t, DateFilter("last-week").Valid())
}
