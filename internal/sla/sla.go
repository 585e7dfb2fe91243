// Package sla вычисляет производное состояние SLA кейса: процент оставшегося
// времени, цветовую категорию и строку для отображения.
package sla

import (
	"fmt"
	"time"
)

// Status - категория SLA для цветовой индикации
type Status string

const (
	StatusNormal   Status = "normal"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
	StatusOverdue  Status = "overdue"
)

// Пороги в процентах оставшегося времени
const (
	criticalThreshold = 25.0
	warningThreshold  = 50.0
)

const overdueText = "Overdue"

// Result - результат расчета SLA
type Result struct {
	Percentage  float64 `json:"percentage"`
	Status      Status  `json:"status"`
	DisplayText string  `json:"display_text"`
}

// Calculate сопоставляет оставшиеся и общие минуты с категорией SLA.
// Просрочка проверяется первой, независимо от процента.
func Calculate(remainingMinutes, totalMinutes int) Result {
	pct := Percentage(remainingMinutes, totalMinutes)

	status := StatusNormal
	switch {
	case remainingMinutes <= 0:
		status = StatusOverdue
	case pct <= criticalThreshold:
		status = StatusCritical
	case pct <= warningThreshold:
		status = StatusWarning
	}

	return Result{
		Percentage:  pct,
		Status:      status,
		DisplayText: FormatTime(remainingMinutes),
	}
}

// Percentage возвращает долю оставшегося времени в диапазоне [0, 100].
// При totalMinutes <= 0 окно считается либо полностью доступным, либо исчерпанным.
func Percentage(remainingMinutes, totalMinutes int) float64 {
	if totalMinutes <= 0 {
		if remainingMinutes <= 0 {
			return 0
		}
		return 100
	}
	pct := float64(remainingMinutes) / float64(totalMinutes) * 100
	return max(0, min(100, pct))
}

// FormatTime форматирует остаток: "Overdue", "1h 15m" или "45m"
func FormatTime(minutes int) string {
	if minutes <= 0 {
		return overdueText
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}

// Remaining вычисляет остаток минут по времени получения кейса.
// Время получения в будущем считается нулевым прошедшим временем.
func Remaining(timeReceived time.Time, totalMinutes int, now time.Time) int {
	elapsed := now.Sub(timeReceived)
	if elapsed < 0 {
		elapsed = 0
	}
	return totalMinutes - int(elapsed/time.Minute)
}

// Deadline возвращает момент истечения SLA
func Deadline(timeReceived time.Time, totalMinutes int) time.Time {
	return timeReceived.Add(time.Duration(totalMinutes) * time.Minute)
}

// FormatDeadline форматирует дедлайн для отображения, например "3:04 PM"
func FormatDeadline(t time.Time) string {
	return t.Format("3:04 PM")
}
