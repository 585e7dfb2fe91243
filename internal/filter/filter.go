// Package filter содержит чистые функции выборки кейсов для страниц дашборда
package filter

import (
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/shenikar/field_ops_dashboard/internal/models"
	"github.com/shenikar/field_ops_dashboard/internal/sla"
)

// Criteria - критерии поиска кейсов. Пустой критерий не фильтрует
type Criteria struct {
	Query      string
	Severities []models.Severity
	Statuses   []models.CaseStatus
}

// IsEmpty сообщает, что ни один критерий не задан
func (c Criteria) IsEmpty() bool {
	return strings.TrimSpace(c.Query) == "" && len(c.Severities) == 0 && len(c.Statuses) == 0
}

// Cases возвращает подмножество кейсов, подходящих под все критерии, в исходном порядке
func Cases(cases []*models.Case, c Criteria) []*models.Case {
	if c.IsEmpty() {
		return cases
	}

	query := strings.ToLower(strings.TrimSpace(c.Query))
	result := make([]*models.Case, 0, len(cases))
	for _, cs := range cases {
		if query != "" &&
			!strings.Contains(strings.ToLower(cs.ID), query) &&
			!strings.Contains(strings.ToLower(cs.Location), query) {
			continue
		}
		if len(c.Severities) > 0 && !slices.Contains(c.Severities, cs.Severity) {
			continue
		}
		if len(c.Statuses) > 0 && !slices.Contains(c.Statuses, cs.Status) {
			continue
		}
		result = append(result, cs)
	}
	return result
}

// SLAAlerts возвращает нерешенные кейсы с остатком SLA не больше thresholdMinutes,
// самые срочные первыми
func SLAAlerts(cases []*models.Case, thresholdMinutes int, now time.Time) []*models.Case {
	type urgent struct {
		c         *models.Case
		remaining int
	}
	selected := make([]urgent, 0)
	for _, cs := range cases {
		if cs.Status == models.StatusResolved {
			continue
		}
		remaining := sla.Remaining(cs.TimeReceived, cs.SLATotalMinutes, now)
		if remaining <= thresholdMinutes {
			selected = append(selected, urgent{c: cs, remaining: remaining})
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].remaining < selected[j].remaining
	})

	result := make([]*models.Case, len(selected))
	for i, u := range selected {
		result[i] = u.c
	}
	return result
}

// dueSoonMinutes - граница "скоро истекает" для разбивки SLA на дашборде
const dueSoonMinutes = 15

// DashboardStats - сводка по кейсам для главной страницы
type DashboardStats struct {
	Total   int `json:"total"`
	Urgent  int `json:"urgent"`
	Overdue int `json:"overdue"`
	Closed  int `json:"closed"`

	SLAOverdue int `json:"sla_overdue"`
	SLADueSoon int `json:"sla_due_soon"`
	SLANormal  int `json:"sla_normal"`
}

// Stats считает сводку по кейсам на момент now
func Stats(cases []*models.Case, now time.Time) DashboardStats {
	stats := DashboardStats{Total: len(cases)}
	for _, cs := range cases {
		if cs.Severity == models.SeverityCritical || cs.Severity == models.SeverityHigh {
			stats.Urgent++
		}
		if cs.Status == models.StatusResolved {
			stats.Closed++
		}

		remaining := sla.Remaining(cs.TimeReceived, cs.SLATotalMinutes, cs.SLAClock(now))
		switch {
		case remaining <= 0:
			stats.Overdue++
			stats.SLAOverdue++
		case remaining <= dueSoonMinutes:
			stats.SLADueSoon++
		default:
			stats.SLANormal++
		}
	}
	return stats
}
