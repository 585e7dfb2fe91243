package v1

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/field_ops_dashboard/internal/assignment"
	"github.com/shenikar/field_ops_dashboard/internal/config"
	"github.com/shenikar/field_ops_dashboard/internal/models"
	"github.com/shenikar/field_ops_dashboard/internal/service"
	"github.com/shenikar/field_ops_dashboard/internal/settings"
	"github.com/sirupsen/logrus"
)

// AvailabilityState - флаг доступности пользователя
type AvailabilityState interface {
	Get() bool
	SetAvailable(ctx context.Context, available bool) error
}

// AssignmentWatcher - управление попапом нового назначения
type AssignmentWatcher interface {
	Snapshot() assignment.Snapshot
	DismissPopup() assignment.Snapshot
	ClearNewAssignment() assignment.Snapshot
	GoOnline(ctx context.Context) (assignment.Snapshot, error)
}

// SettingsStore - настройки, профиль и сессия пользователя
type SettingsStore interface {
	Current() models.UserSettings
	UpdateProfile(u settings.ProfileUpdate) models.UserSettings
	UpdateNotifications(u settings.NotificationsUpdate) models.UserSettings
	UpdateAvailability(available bool) models.UserSettings
	Save(ctx context.Context) (bool, error)
	Profile(ctx context.Context) models.ProfileRecord
	RecordLogin(ctx context.Context, email string) error
	Logout(ctx context.Context) error
	Session(ctx context.Context) (settings.Session, error)
	MapAPIKey(ctx context.Context) (string, error)
	SetMapAPIKey(ctx context.Context, key string) error
}

// EventStream подключает дашборд к потоку событий
type EventStream interface {
	ServeWS(w http.ResponseWriter, r *http.Request) error
}

// Dependencies - компоненты, которые обслуживает API
type Dependencies struct {
	Cases        service.CaseService
	Availability AvailabilityState
	Watcher      AssignmentWatcher
	Dispatcher   assignment.Dispatcher
	Settings     SettingsStore
	Events       EventStream
}

type Handler struct {
	cases        service.CaseService
	availability AvailabilityState
	watcher      AssignmentWatcher
	dispatcher   assignment.Dispatcher
	settings     SettingsStore
	events       EventStream

	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
	now      func() time.Time
}

func NewHandler(deps Dependencies, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		cases:        deps.Cases,
		availability: deps.Availability,
		watcher:      deps.Watcher,
		dispatcher:   deps.Dispatcher,
		settings:     deps.Settings,
		events:       deps.Events,
		logger:       logger,
		validate:     validator.New(),
		cfg:          cfg,
		now:          time.Now,
	}
}

// bindAndValidate разбирает тело запроса и проверяет его. При ошибке ответ уже записан
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// caseError переводит ошибку сервиса кейсов в HTTP-ответ
func (h *Handler) caseError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, models.ErrCaseNotFound):
		log.WithError(err).Warn("Case not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "case not found"})
	case errors.Is(err, models.ErrInvalidStatus), errors.Is(err, models.ErrInvalidSeverity):
		log.WithError(err).Warn("Invalid case data")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Case service failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// actorName - автор действия по умолчанию берется из профиля
func (h *Handler) actorName(requested string) string {
	if requested != "" {
		return requested
	}
	if name := h.settings.Current().Profile.Name; name != "" {
		return name
	}
	return "Field Team"
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Subscribe to live dashboard events
// @Description Upgrades the connection to a websocket that streams availability, assignment, sound and notification events.
// @Tags System
// @Success 101 "Switching Protocols"
// @Failure 400 {object} map[string]string "Not a websocket request"
// @Router /ws [get]
func (h *Handler) serveWS(c *gin.Context) {
	if err := h.events.ServeWS(c.Writer, c.Request); err != nil {
		h.logger.WithField("method", "serveWS").WithError(err).Warn("Failed to open websocket")
	}
}
