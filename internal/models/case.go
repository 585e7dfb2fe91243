package models

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrCaseNotFound возвращается, когда кейс с указанным id отсутствует
	ErrCaseNotFound = errors.New("case not found")
	// ErrInvalidStatus возвращается для неизвестного статуса кейса
	ErrInvalidStatus = errors.New("invalid case status")
	// ErrInvalidSeverity возвращается для неизвестной важности кейса
	ErrInvalidSeverity = errors.New("invalid case severity")
)

// Severity - важность кейса, задается при создании и больше не меняется
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Severities - все значения важности в порядке убывания
var Severities = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// CaseStatus - статус кейса. Порядок переходов не ограничен
type CaseStatus string

const (
	StatusPending      CaseStatus = "pending"
	StatusAcknowledged CaseStatus = "acknowledged"
	StatusOnRoute      CaseStatus = "on_route"
	StatusArrived      CaseStatus = "arrived"
	StatusInProgress   CaseStatus = "in_progress"
	StatusResolved     CaseStatus = "resolved"
)

// Statuses - все статусы в порядке жизненного цикла
var Statuses = []CaseStatus{
	StatusPending,
	StatusAcknowledged,
	StatusOnRoute,
	StatusArrived,
	StatusInProgress,
	StatusResolved,
}

var statusLabels = map[CaseStatus]string{
	StatusPending:      "Pending",
	StatusAcknowledged: "Acknowledged",
	StatusOnRoute:      "On Route",
	StatusArrived:      "Arrived",
	StatusInProgress:   "In Progress",
	StatusResolved:     "Resolved",
}

func (s CaseStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label возвращает человекочитаемое название статуса
func (s CaseStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Reporter struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type MessageSender string

const (
	SenderReporter  MessageSender = "reporter"
	SenderResponder MessageSender = "responder"
)

// CaseMessage - сообщение в переписке по кейсу. Порядок хронологический
type CaseMessage struct {
	ID        string        `json:"id"`
	Sender    MessageSender `json:"sender"`
	Content   string        `json:"content"`
	Timestamp time.Time     `json:"timestamp"`
}

type AttachmentType string

const (
	AttachmentImage    AttachmentType = "image"
	AttachmentVideo    AttachmentType = "video"
	AttachmentDocument AttachmentType = "document"
)

type CaseAttachment struct {
	ID        string         `json:"id"`
	Type      AttachmentType `json:"type"`
	URL       string         `json:"url"`
	Thumbnail string         `json:"thumbnail,omitempty"`
	Name      string         `json:"name"`
}

type Actor struct {
	Name     string `json:"name"`
	Initials string `json:"initials"`
}

// NewActor строит автора записи аудита, инициалы берутся из первых букв слов имени
func NewActor(name string) Actor {
	var initials strings.Builder
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			initials.WriteString(strings.ToUpper(string(r)))
			break
		}
		if initials.Len() >= 2 {
			break
		}
	}
	return Actor{Name: name, Initials: initials.String()}
}

// AuditEvent - запись журнала аудита кейса, журнал только дополняется
type AuditEvent struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Actor     Actor     `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details,omitempty"`
}

// Case - зарегистрированный инцидент, который отслеживается по статусам.
// Остаток SLA и дедлайн не хранятся, они вычисляются из TimeReceived и SLATotalMinutes.
type Case struct {
	ID              string           `json:"id"`
	Severity        Severity         `json:"severity"`
	Location        string           `json:"location"`
	Coordinates     Coordinates      `json:"coordinates"`
	TimeReceived    time.Time        `json:"time_received"`
	SLATotalMinutes int              `json:"sla_total_minutes"`
	Status          CaseStatus       `json:"status"`
	AssignedBy      string           `json:"assigned_by"`
	Reporter        *Reporter        `json:"reporter,omitempty"`
	Messages        []CaseMessage    `json:"messages"`
	Attachments     []CaseAttachment `json:"attachments"`
	AuditTrail      []AuditEvent     `json:"audit_trail"`
	Notes           string           `json:"notes"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// SLAClock возвращает момент, на который считается SLA. У решенного кейса часы
// останавливаются на последнем событии решения в журнале, без него на UpdatedAt.
func (c *Case) SLAClock(now time.Time) time.Time {
	if c.Status != StatusResolved {
		return now
	}
	for i := len(c.AuditTrail) - 1; i >= 0; i-- {
		if strings.Contains(c.AuditTrail[i].Action, "Resolved") {
			return c.AuditTrail[i].Timestamp
		}
	}
	if !c.UpdatedAt.IsZero() {
		return c.UpdatedAt
	}
	return now
}
