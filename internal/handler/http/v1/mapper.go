package v1

import (
	"time"

	"github.com/shenikar/field_ops_dashboard/internal/assignment"
	"github.com/shenikar/field_ops_dashboard/internal/models"
	"github.com/shenikar/field_ops_dashboard/internal/sla"
)

// DTOToCaseModel преобразует DTO регистрации кейса в доменную модель
func DTOToCaseModel(dto CreateCaseRequest) *models.Case {
	c := &models.Case{
		Severity:        models.Severity(dto.Severity),
		Location:        dto.Location,
		Coordinates:     models.Coordinates{Lat: dto.Coordinates.Lat, Lng: dto.Coordinates.Lng},
		SLATotalMinutes: dto.SLATotalMinutes,
		AssignedBy:      dto.AssignedBy,
		Notes:           dto.Notes,
		Messages:        make([]models.CaseMessage, len(dto.Messages)),
		Attachments:     make([]models.CaseAttachment, len(dto.Attachments)),
	}
	if dto.Reporter != nil {
		c.Reporter = &models.Reporter{Name: dto.Reporter.Name, Phone: dto.Reporter.Phone}
	}
	for i, m := range dto.Messages {
		c.Messages[i] = models.CaseMessage{
			Sender:  models.MessageSender(m.Sender),
			Content: m.Content,
		}
	}
	for i, a := range dto.Attachments {
		c.Attachments[i] = models.CaseAttachment{
			Type:      models.AttachmentType(a.Type),
			URL:       a.URL,
			Thumbnail: a.Thumbnail,
			Name:      a.Name,
		}
	}
	return c
}

// ModelToSLAResponse считает SLA кейса на момент now, у решенного кейса на момент решения
func ModelToSLAResponse(model *models.Case, now time.Time) SLAResponse {
	remaining := sla.Remaining(model.TimeReceived, model.SLATotalMinutes, model.SLAClock(now))
	result := sla.Calculate(remaining, model.SLATotalMinutes)
	deadline := sla.Deadline(model.TimeReceived, model.SLATotalMinutes)
	return SLAResponse{
		RemainingMinutes: remaining,
		TotalMinutes:     model.SLATotalMinutes,
		Percentage:       result.Percentage,
		Status:           result.Status,
		DisplayText:      result.DisplayText,
		Deadline:         deadline,
		DeadlineDisplay:  sla.FormatDeadline(deadline),
	}
}

// ModelToCaseResponse преобразует доменную модель в DTO для ответа
func ModelToCaseResponse(model *models.Case, now time.Time) *CaseResponse {
	return &CaseResponse{
		ID:           model.ID,
		Severity:     model.Severity,
		Location:     model.Location,
		Coordinates:  model.Coordinates,
		Status:       model.Status,
		StatusLabel:  model.Status.Label(),
		AssignedBy:   model.AssignedBy,
		Reporter:     model.Reporter,
		TimeReceived: model.TimeReceived,
		SLA:          ModelToSLAResponse(model, now),
		Messages:     nonNil(model.Messages),
		Attachments:  nonNil(model.Attachments),
		AuditTrail:   nonNil(model.AuditTrail),
		Notes:        model.Notes,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

// ModelsToCaseResponses преобразует слайс моделей в слайс DTO
func ModelsToCaseResponses(cases []*models.Case, now time.Time) []*CaseResponse {
	responses := make([]*CaseResponse, len(cases))
	for i, model := range cases {
		responses[i] = ModelToCaseResponse(model, now)
	}
	return responses
}

// SnapshotToResponse преобразует состояние наблюдателя в DTO
func SnapshotToResponse(snap assignment.Snapshot, available bool) AssignmentStateResponse {
	return AssignmentStateResponse{
		State:              string(snap.State),
		ShowPopup:          snap.ShowPopup,
		NewAssignment:      snap.NewAssignment,
		HasNewAssignments:  snap.HasNewAssignments,
		NewAssignmentCount: snap.NewAssignmentCount,
		Available:          available,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
