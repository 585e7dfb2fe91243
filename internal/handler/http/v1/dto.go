package v1

import (
	"time"

	"github.com/shenikar/field_ops_dashboard/internal/models"
	"github.com/shenikar/field_ops_dashboard/internal/sla"
)

// CoordinatesDTO - координаты кейса
type CoordinatesDTO struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// ReporterDTO - заявитель
type ReporterDTO struct {
	Name  string `json:"name" validate:"required,max=255"`
	Phone string `json:"phone,omitempty" validate:"max=64"`
}

// MessageDTO - сообщение, полученное вместе с кейсом
type MessageDTO struct {
	Sender  string `json:"sender" validate:"required,oneof=reporter responder"`
	Content string `json:"content" validate:"required"`
}

// AttachmentDTO - вложение кейса
type AttachmentDTO struct {
	Type      string `json:"type" validate:"required,oneof=image video document"`
	URL       string `json:"url" validate:"required"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Name      string `json:"name" validate:"required,max=255"`
}

// CreateCaseRequest DTO для регистрации кейса диспетчером
// @Description DTO для регистрации кейса диспетчером
type CreateCaseRequest struct {
	Severity        string          `json:"severity" validate:"required,oneof=critical high medium low"`
	Location        string          `json:"location,omitempty" validate:"max=512"`
	Coordinates     CoordinatesDTO  `json:"coordinates"`
	SLATotalMinutes int             `json:"sla_total_minutes" validate:"required,gt=0"`
	AssignedBy      string          `json:"assigned_by,omitempty" validate:"max=255"`
	Reporter        *ReporterDTO    `json:"reporter,omitempty"`
	Messages        []MessageDTO    `json:"messages,omitempty" validate:"dive"`
	Attachments     []AttachmentDTO `json:"attachments,omitempty" validate:"dive"`
	Notes           string          `json:"notes,omitempty"`
	Actor           string          `json:"actor,omitempty"`
}

// UpdateStatusRequest DTO для смены статуса кейса
// @Description DTO для смены статуса кейса
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending acknowledged on_route arrived in_progress resolved"`
	Actor  string `json:"actor,omitempty"`
}

// NotesRequest DTO для сохранения заметок по кейсу
// @Description DTO для сохранения заметок по кейсу
type NotesRequest struct {
	Notes string `json:"notes"`
}

// NotesResponse DTO с заметками по кейсу
type NotesResponse struct {
	CaseID string `json:"case_id"`
	Notes  string `json:"notes"`
}

// SLAResponse DTO с расчетом SLA
// @Description DTO с расчетом SLA
type SLAResponse struct {
	RemainingMinutes int        `json:"remaining_minutes"`
	TotalMinutes     int        `json:"total_minutes"`
	Percentage       float64    `json:"percentage"`
	Status           sla.Status `json:"status"`
	DisplayText      string     `json:"display_text"`
	Deadline         time.Time  `json:"deadline"`
	DeadlineDisplay  string     `json:"deadline_display"`
}

// CaseSLAResponse DTO для ответа GET /cases/{id}/sla
type CaseSLAResponse struct {
	CaseID string `json:"case_id"`
	SLAResponse
}

// CaseResponse DTO для ответа с информацией о кейсе
// @Description DTO для ответа с информацией о кейсе
type CaseResponse struct {
	ID           string                  `json:"id"`
	Severity     models.Severity         `json:"severity"`
	Location     string                  `json:"location"`
	Coordinates  models.Coordinates      `json:"coordinates"`
	Status       models.CaseStatus       `json:"status"`
	StatusLabel  string                  `json:"status_label"`
	AssignedBy   string                  `json:"assigned_by"`
	Reporter     *models.Reporter        `json:"reporter,omitempty"`
	TimeReceived time.Time               `json:"time_received"`
	SLA          SLAResponse             `json:"sla"`
	Messages     []models.CaseMessage    `json:"messages"`
	Attachments  []models.CaseAttachment `json:"attachments"`
	AuditTrail   []models.AuditEvent     `json:"audit_trail"`
	Notes        string                  `json:"notes"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

// AvailabilityRequest DTO для смены доступности
// @Description DTO для смены доступности
type AvailabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}

// AvailabilityResponse DTO с текущей доступностью
type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Warning   string `json:"warning,omitempty"`
}

// DispatchAssignmentRequest DTO для постановки назначения в ленту
// @Description DTO для постановки назначения в ленту
type DispatchAssignmentRequest struct {
	CaseID string `json:"case_id" validate:"required"`
}

// AssignmentStateResponse DTO с состоянием попапа назначения
type AssignmentStateResponse struct {
	State              string             `json:"state"`
	ShowPopup          bool               `json:"show_popup"`
	NewAssignment      *models.Assignment `json:"new_assignment"`
	HasNewAssignments  bool               `json:"has_new_assignments"`
	NewAssignmentCount int                `json:"new_assignment_count"`
	Available          bool               `json:"available"`
	Warning            string             `json:"warning,omitempty"`
}

// ProfileUpdateRequest DTO для частичного обновления профиля
// @Description DTO для частичного обновления профиля
type ProfileUpdateRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,max=64"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

// NotificationsUpdateRequest DTO для частичного обновления уведомлений
// @Description DTO для частичного обновления уведомлений
type NotificationsUpdateRequest struct {
	Push         *bool `json:"push,omitempty"`
	SMS          *bool `json:"sms,omitempty"`
	Email        *bool `json:"email,omitempty"`
	CriticalOnly *bool `json:"criticalOnly,omitempty"`
}

// SaveSettingsResponse DTO с результатом сохранения
type SaveSettingsResponse struct {
	Saved    bool                `json:"saved"`
	Settings models.UserSettings `json:"settings"`
	Warning  string              `json:"warning,omitempty"`
}

// SessionRequest DTO для записи входа
// @Description DTO для записи входа
type SessionRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// MapKeyRequest DTO для сохранения ключа карт
// @Description DTO для сохранения ключа карт
type MapKeyRequest struct {
	APIKey string `json:"api_key" validate:"required"`
}

// MapKeyResponse DTO с ключом карт
type MapKeyResponse struct {
	APIKey     string `json:"api_key"`
	Configured bool   `json:"configured"`
}
