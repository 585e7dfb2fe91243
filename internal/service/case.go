package service

//go:generate mockgen -source=case.go -destination=mocks/case.go -package=mocks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/field_ops_dashboard/internal/config"
	"github.com/shenikar/field_ops_dashboard/internal/filter"
	"github.com/shenikar/field_ops_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// CaseRepository определяет контракт для работы с бд кейсов
type CaseRepository interface {
	Create(ctx context.Context, c *models.Case) error
	GetByID(ctx context.Context, id string) (*models.Case, error)
	List(ctx context.Context) ([]*models.Case, error)
	UpdateStatus(ctx context.Context, id string, status models.CaseStatus, event models.AuditEvent) (*models.Case, error)
	FindNear(ctx context.Context, lat, lng, radiusMeters float64) ([]*models.Case, error)
	GetCaseFromCache(ctx context.Context, id string) (*models.Case, error)
	SetCaseCache(ctx context.Context, c *models.Case) error
	InvalidateCaseCache(ctx context.Context, id string) error
}

// NotesRepository - хранилище заметок по кейсам
type NotesRepository interface {
	GetNote(ctx context.Context, caseID string) (string, bool, error)
	GetNotes(ctx context.Context, caseIDs []string) (map[string]string, error)
	SaveNote(ctx context.Context, caseID, note string) error
}

// Geocoder определяет адрес по координатам
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}

// CaseService определяет контракт для бизнес-логики управления кейсами
type CaseService interface {
	ListCases(ctx context.Context, criteria filter.Criteria) ([]*models.Case, error)
	GetCase(ctx context.Context, id string) (*models.Case, error)
	CreateCase(ctx context.Context, c *models.Case, actor string) error
	UpdateStatus(ctx context.Context, id string, status models.CaseStatus, actor string) (*models.Case, error)
	GetNotes(ctx context.Context, id string) (string, error)
	SaveNotes(ctx context.Context, id, notes string) error
	SLAAlerts(ctx context.Context) ([]*models.Case, error)
	Stats(ctx context.Context) (filter.DashboardStats, error)
	Activity(ctx context.Context, criteria filter.ActivityCriteria) ([]filter.DayGroup, error)
	CasesNear(ctx context.Context, lat, lng, radiusMeters float64) ([]*models.Case, error)
}

const (
	actionCaseCreated   = "Case Created"
	actionStatusUpdated = "Status Updated to "
)

type caseService struct {
	repo     CaseRepository
	notes    NotesRepository
	geocoder Geocoder
	logger   *logrus.Logger
	cfg      *config.Config
	now      func() time.Time
}

// NewCaseService создает сервис кейсов. geocoder может быть nil
func NewCaseService(repo CaseRepository, notes NotesRepository, geocoder Geocoder, logger *logrus.Logger, cfg *config.Config) CaseService {
	return &caseService{
		repo:     repo,
		notes:    notes,
		geocoder: geocoder,
		logger:   logger,
		cfg:      cfg,
		now:      time.Now,
	}
}

// ListCases возвращает кейсы, подходящие под критерии, вместе с заметками
func (s *caseService) ListCases(ctx context.Context, criteria filter.Criteria) ([]*models.Case, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "case",
		"method":  "ListCases",
		"query":   criteria.Query,
	})
	log.Debug("Listing cases")

	cases, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list cases from repository")
		return nil, fmt.Errorf("service: could not list cases: %w", err)
	}

	cases = filter.Cases(cases, criteria)
	s.overlayNotes(ctx, cases)

	log.WithField("count", len(cases)).Debug("Cases listed successfully")
	return cases, nil
}

// GetCase получает кейс по id: сначала кеш, затем бд
func (s *caseService) GetCase(ctx context.Context, id string) (*models.Case, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "case",
		"method":  "GetCase",
		"case_id": id,
	})

	c, err := s.repo.GetCaseFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read case from cache")
	}

	if c == nil {
		c, err = s.repo.GetByID(ctx, id)
		if err != nil {
			log.WithError(err).Warn("Failed to get case in repository")
			return nil, fmt.Errorf("service: could not get case: %w", err)
		}
		if err := s.repo.SetCaseCache(ctx, c); err != nil {
			log.WithError(err).Warn("Failed to cache case")
		}
	}

	note, ok, err := s.notes.GetNote(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read case notes")
	} else if ok {
		c.Notes = note
	}
	return c, nil
}

// CreateCase регистрирует новый кейс, поступивший от диспетчера
func (s *caseService) CreateCase(ctx context.Context, c *models.Case, actor string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "case",
		"method":   "CreateCase",
		"severity": c.Severity,
	})
	log.Info("Attempting to create a new case")

	if !c.Severity.Valid() {
		return fmt.Errorf("service: could not create case: %w", models.ErrInvalidSeverity)
	}

	now := s.now().UTC()
	c.Status = models.StatusPending
	c.TimeReceived = now
	c.Location = strings.TrimSpace(c.Location)
	if c.Location == "" {
		c.Location = s.resolveLocation(ctx, c.Coordinates)
	}

	if c.Messages == nil {
		c.Messages = []models.CaseMessage{}
	}
	for i := range c.Messages {
		if c.Messages[i].ID == "" {
			c.Messages[i].ID = uuid.NewString()
		}
		if c.Messages[i].Timestamp.IsZero() {
			c.Messages[i].Timestamp = now
		}
	}
	if c.Attachments == nil {
		c.Attachments = []models.CaseAttachment{}
	}
	for i := range c.Attachments {
		if c.Attachments[i].ID == "" {
			c.Attachments[i].ID = uuid.NewString()
		}
	}

	event := models.AuditEvent{
		ID:        uuid.NewString(),
		Action:    actionCaseCreated,
		Actor:     models.NewActor(actor),
		Timestamp: now,
	}
	if c.AssignedBy != "" {
		event.Details = "Assigned by " + c.AssignedBy
	}
	c.AuditTrail = []models.AuditEvent{event}

	if err := s.repo.Create(ctx, c); err != nil {
		log.WithError(err).Error("Failed to create case in repository")
		return fmt.Errorf("service: could not create case: %w", err)
	}

	if c.Notes != "" {
		if err := s.notes.SaveNote(ctx, c.ID, c.Notes); err != nil {
			log.WithError(err).Warn("Failed to save initial case notes")
		}
	}

	log.WithField("case_id", c.ID).Info("Case created successfully")
	return nil
}

// resolveLocation подбирает адрес по координатам, при ошибке возвращает сами координаты
func (s *caseService) resolveLocation(ctx context.Context, coords models.Coordinates) string {
	fallback := fmt.Sprintf("%.5f, %.5f", coords.Lat, coords.Lng)
	if s.geocoder == nil {
		return fallback
	}

	addr, err := s.geocoder.ReverseGeocode(ctx, coords.Lat, coords.Lng)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "case",
			"method":  "resolveLocation",
		}).WithError(err).Warn("Reverse geocoding failed, using coordinates")
		return fallback
	}
	return addr
}

// UpdateStatus меняет статус кейса и добавляет запись в журнал аудита
func (s *caseService) UpdateStatus(ctx context.Context, id string, status models.CaseStatus, actor string) (*models.Case, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "case",
		"method":  "UpdateStatus",
		"case_id": id,
		"status":  status,
	})
	log.Info("Attempting to update case status")

	if !status.Valid() {
		return nil, fmt.Errorf("service: could not update case status: %w", models.ErrInvalidStatus)
	}

	event := models.AuditEvent{
		ID:        uuid.NewString(),
		Action:    actionStatusUpdated + status.Label(),
		Actor:     models.NewActor(actor),
		Timestamp: s.now().UTC(),
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status, event)
	if err != nil {
		log.WithError(err).Error("Failed to update case status in repository")
		return nil, fmt.Errorf("service: could not update case status: %w", err)
	}

	if err := s.repo.InvalidateCaseCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate case cache")
	}

	note, ok, err := s.notes.GetNote(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read case notes")
	} else if ok {
		updated.Notes = note
	}

	log.Info("Case status updated successfully")
	return updated, nil
}

// GetNotes возвращает заметки существующего кейса
func (s *caseService) GetNotes(ctx context.Context, id string) (string, error) {
	c, err := s.GetCase(ctx, id)
	if err != nil {
		return "", err
	}
	return c.Notes, nil
}

// SaveNotes сохраняет заметки существующего кейса
func (s *caseService) SaveNotes(ctx context.Context, id, notes string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "case",
		"method":  "SaveNotes",
		"case_id": id,
	})

	if _, err := s.GetCase(ctx, id); err != nil {
		return err
	}
	if err := s.notes.SaveNote(ctx, id, notes); err != nil {
		log.WithError(err).Error("Failed to save case notes")
		return fmt.Errorf("service: could not save notes: %w", err)
	}

	log.Info("Case notes saved")
	return nil
}

// SLAAlerts возвращает нерешенные кейсы, у которых SLA подходит к концу
func (s *caseService) SLAAlerts(ctx context.Context) ([]*models.Case, error) {
	cases, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "case",
			"method":  "SLAAlerts",
		}).WithError(err).Error("Failed to list cases from repository")
		return nil, fmt.Errorf("service: could not list cases: %w", err)
	}
	return filter.SLAAlerts(cases, s.cfg.SLAAlertThresholdMinutes, s.now()), nil
}

// Stats считает показатели дашборда
func (s *caseService) Stats(ctx context.Context) (filter.DashboardStats, error) {
	cases, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "case",
			"method":  "Stats",
		}).WithError(err).Error("Failed to list cases from repository")
		return filter.DashboardStats{}, fmt.Errorf("service: could not list cases: %w", err)
	}
	return filter.Stats(cases, s.now()), nil
}

// Activity собирает журнал аудита всех кейсов, новые записи первыми, и группирует по дням
func (s *caseService) Activity(ctx context.Context, criteria filter.ActivityCriteria) ([]filter.DayGroup, error) {
	cases, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "case",
			"method":  "Activity",
		}).WithError(err).Error("Failed to list cases from repository")
		return nil, fmt.Errorf("service: could not list cases: %w", err)
	}

	entries := make([]filter.ActivityEntry, 0)
	for _, c := range cases {
		for _, ev := range c.AuditTrail {
			entries = append(entries, filter.NewActivityEntry(c.ID, ev))
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	now := s.now()
	return filter.GroupByDay(filter.Activity(entries, criteria, now), now), nil
}

// CasesNear находит кейсы в радиусе от точки
func (s *caseService) CasesNear(ctx context.Context, lat, lng, radiusMeters float64) ([]*models.Case, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "case",
		"method":  "CasesNear",
		"radius":  radiusMeters,
	})

	cases, err := s.repo.FindNear(ctx, lat, lng, radiusMeters)
	if err != nil {
		log.WithError(err).Error("Failed to find cases by location")
		return nil, fmt.Errorf("service: could not find cases near location: %w", err)
	}
	s.overlayNotes(ctx, cases)

	log.WithField("count", len(cases)).Debug("Cases near location found")
	return cases, nil
}

func (s *caseService) overlayNotes(ctx context.Context, cases []*models.Case) {
	if len(cases) == 0 {
		return
	}
	ids := make([]string, len(cases))
	for i, c := range cases {
		ids[i] = c.ID
	}

	notes, err := s.notes.GetNotes(ctx, ids)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "case",
			"method":  "overlayNotes",
		}).WithError(err).Warn("Failed to read case notes")
		return
	}
	for _, c := range cases {
		if note, ok := notes[c.ID]; ok {
			c.Notes = note
		}
	}
}
