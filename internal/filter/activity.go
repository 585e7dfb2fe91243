package filter

import (
	"strings"
	"time"

	"github.com/shenikar/field_ops_dashboard/internal/models"
)

// Variant - цветовая категория записи журнала
type Variant string

const (
	VariantDefault  Variant = "default"
	VariantSuccess  Variant = "success"
	VariantWarning  Variant = "warning"
	VariantCritical Variant = "critical"
)

// AuditVariant классифицирует запись по тексту действия
func AuditVariant(action string) Variant {
	switch {
	case strings.Contains(action, "OVERDUE"):
		return VariantCritical
	case strings.Contains(action, "Resolved"):
		return VariantSuccess
	case strings.Contains(action, "Warning"), strings.Contains(action, "SLA"):
		return VariantWarning
	}
	return VariantDefault
}

// DateFilter - фильтр журнала активности по дню
type DateFilter string

const (
	DateAll       DateFilter = "all"
	DateToday     DateFilter = "today"
	DateYesterday DateFilter = "yesterday"
)

func (d DateFilter) Valid() bool {
	switch d {
	case DateAll, DateToday, DateYesterday, "":
		return true
	}
	return false
}

// ActivityEntry - запись журнала активности с привязкой к кейсу
type ActivityEntry struct {
	ID            string       `json:"id"`
	CaseID        string       `json:"case_id"`
	Action        string       `json:"action"`
	Actor         models.Actor `json:"actor"`
	Timestamp     time.Time    `json:"timestamp"`
	Details       string       `json:"details,omitempty"`
	HasAttachment bool         `json:"has_attachment"`
	Variant       Variant      `json:"variant"`
}

// NewActivityEntry строит запись журнала из события аудита кейса
func NewActivityEntry(caseID string, ev models.AuditEvent) ActivityEntry {
	return ActivityEntry{
		ID:            ev.ID,
		CaseID:        caseID,
		Action:        ev.Action,
		Actor:         ev.Actor,
		Timestamp:     ev.Timestamp,
		Details:       ev.Details,
		HasAttachment: strings.Contains(ev.Action, "Attachment"),
		Variant:       AuditVariant(ev.Action),
	}
}

// ActivityCriteria - критерии журнала активности
type ActivityCriteria struct {
	Query string
	Date  DateFilter
}

// Activity фильтрует журнал по подстроке id кейса и по дню относительно now
func Activity(entries []ActivityEntry, c ActivityCriteria, now time.Time) []ActivityEntry {
	query := strings.ToLower(strings.TrimSpace(c.Query))
	result := make([]ActivityEntry, 0, len(entries))
	for _, e := range entries {
		if query != "" && !strings.Contains(strings.ToLower(e.CaseID), query) {
			continue
		}
		label := DayLabel(e.Timestamp, now)
		if c.Date == DateToday && label != labelToday {
			continue
		}
		if c.Date == DateYesterday && label != labelYesterday {
			continue
		}
		result = append(result, e)
	}
	return result
}

const (
	labelToday     = "Today"
	labelYesterday = "Yesterday"
)

// DayLabel возвращает "Today", "Yesterday" или дату в часовом поясе now
func DayLabel(ts, now time.Time) string {
	ts = ts.In(now.Location())
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	switch {
	case !ts.Before(today) && ts.Before(today.AddDate(0, 0, 1)):
		return labelToday
	case !ts.Before(today.AddDate(0, 0, -1)) && ts.Before(today):
		return labelYesterday
	}
	return ts.Format("Jan 2, 2006")
}

// DayGroup - записи журнала за один день
type DayGroup struct {
	Label   string          `json:"label"`
	Entries []ActivityEntry `json:"entries"`
}

// GroupByDay группирует записи по дню в порядке первого появления
func GroupByDay(entries []ActivityEntry, now time.Time) []DayGroup {
	groups := make([]DayGroup, 0)
	index := make(map[string]int)
	for _, e := range entries {
		label := DayLabel(e.Timestamp, now)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, DayGroup{Label: label})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}
