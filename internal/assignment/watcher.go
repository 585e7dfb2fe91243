// Package assignment отслеживает новые назначения кейсов и оповещает пользователя, пока он офлайн
package assignment

//go:generate mockgen -source=watcher.go -destination=mocks/watcher.go -package=mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/field_ops_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// State - наблюдаемое состояние попапа назначения
type State string

const (
	StateIdle         State = "idle"
	StatePendingPopup State = "pending_popup"
	StateDismissed    State = "dismissed"
)

// Permission - состояние разрешения на платформенные уведомления
type Permission string

const (
	PermissionGranted Permission = "granted"
	PermissionDefault Permission = "default"
	PermissionDenied  Permission = "denied"
)

// Текст платформенного уведомления о назначении
const (
	NotificationTitle = "New Assignment Received"
	NotificationBody  = "You are offline. Switch to online to accept the case."
	NotificationTag   = "new-assignment"
)

// Notification - уведомление о новом назначении
type Notification struct {
	CaseID             string `json:"case_id"`
	Title              string `json:"title"`
	Body               string `json:"body"`
	Tag                string `json:"tag"`
	RequireInteraction bool   `json:"require_interaction"`
}

// Source - лента назначений. Next возвращает nil, если новых назначений нет
type Source interface {
	Next(ctx context.Context) (*models.Assignment, error)
}

// SoundPlayer проигрывает звуковой сигнал
type SoundPlayer interface {
	Play(ctx context.Context) error
}

// Notifier показывает платформенные уведомления с учетом разрешения
type Notifier interface {
	Permission(ctx context.Context) (Permission, error)
	RequestPermission(ctx context.Context) (Permission, error)
	Notify(ctx context.Context, n Notification) error
}

// Availability - доступность пользователя
type Availability interface {
	Get() bool
	GoOnline(ctx context.Context) error
}

// Snapshot - состояние наблюдателя для API и подписчиков
type Snapshot struct {
	State              State              `json:"state"`
	ShowPopup          bool               `json:"show_popup"`
	NewAssignment      *models.Assignment `json:"new_assignment"`
	HasNewAssignments  bool               `json:"has_new_assignments"`
	NewAssignmentCount int                `json:"new_assignment_count"`
	SoundPlayed        bool               `json:"sound_played"`
}

type Watcher struct {
	source       Source
	sound        SoundPlayer
	notifier     Notifier
	availability Availability
	logger       *logrus.Logger
	interval     time.Duration

	mu          sync.Mutex
	state       State
	current     *models.Assignment
	hasNew      bool
	count       int
	soundPlayed bool

	onAssignment []func(models.Assignment)
	onChange     []func(Snapshot)
}

func NewWatcher(
	source Source,
	sound SoundPlayer,
	notifier Notifier,
	availability Availability,
	logger *logrus.Logger,
	interval time.Duration,
) *Watcher {
	return &Watcher{
		source:       source,
		sound:        sound,
		notifier:     notifier,
		availability: availability,
		logger:       logger,
		interval:     interval,
		state:        StateIdle,
	}
}

// OnNewAssignment регистрирует обработчик каждого обнаруженного назначения.
// Регистрировать до запуска Run.
func (w *Watcher) OnNewAssignment(fn func(models.Assignment)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onAssignment = append(w.onAssignment, fn)
}

// OnChange регистрирует обработчик изменения состояния
func (w *Watcher) OnChange(fn func(Snapshot)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = append(w.onChange, fn)
}

// Run опрашивает ленту с заданным интервалом до отмены контекста
func (w *Watcher) Run(ctx context.Context) {
	log := w.logger.WithFields(logrus.Fields{
		"service":  "assignment",
		"method":   "Run",
		"interval": w.interval.String(),
	})
	log.Info("Starting assignment watcher...")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping assignment watcher.")
			return
		case <-ticker.C:
			if err := w.Poll(ctx); err != nil {
				log.WithError(err).Warn("Failed to poll assignment feed")
			}
		}
	}
}

// Poll забирает из ленты все накопившиеся назначения
func (w *Watcher) Poll(ctx context.Context) error {
	for {
		a, err := w.source.Next(ctx)
		if err != nil {
			return fmt.Errorf("assignment: could not read feed: %w", err)
		}
		if a == nil {
			return nil
		}
		w.Handle(ctx, *a)
	}
}

// Handle обрабатывает обнаруженное назначение
func (w *Watcher) Handle(ctx context.Context, a models.Assignment) {
	log := w.logger.WithFields(logrus.Fields{
		"service": "assignment",
		"method":  "Handle",
		"case_id": a.CaseID,
	})

	offline := !w.availability.Get()

	w.mu.Lock()
	if w.state == StatePendingPopup && w.current != nil && w.current.CaseID == a.CaseID {
		w.mu.Unlock()
		log.Debug("Assignment is already pending, skipping")
		return
	}

	w.current = &a
	w.hasNew = true
	w.count++

	playSound := false
	if offline {
		w.state = StatePendingPopup
		if !w.soundPlayed {
			w.soundPlayed = true
			playSound = true
		}
	}
	listeners := append([]func(models.Assignment){}, w.onAssignment...)
	snap := w.snapshotLocked()
	w.mu.Unlock()

	log.WithField("offline", offline).Info("New assignment received")
	for _, fn := range listeners {
		fn(a)
	}

	if offline {
		if playSound {
			if err := w.sound.Play(ctx); err != nil {
				log.WithError(err).Warn("Could not play alert sound")
			}
		}
		w.notify(ctx, a)
	}

	w.emit(snap)
}

// notify показывает уведомление: granted - сразу, default - после запроса разрешения, denied - никогда
func (w *Watcher) notify(ctx context.Context, a models.Assignment) {
	log := w.logger.WithFields(logrus.Fields{
		"service": "assignment",
		"method":  "notify",
		"case_id": a.CaseID,
	})

	perm, err := w.notifier.Permission(ctx)
	if err != nil {
		log.WithError(err).Warn("Could not read notification permission")
		return
	}

	switch perm {
	case PermissionGranted:
	case PermissionDenied:
		log.Debug("Notification permission denied")
		return
	default:
		perm, err = w.notifier.RequestPermission(ctx)
		if err != nil {
			log.WithError(err).Warn("Could not request notification permission")
			return
		}
		if perm != PermissionGranted {
			log.WithField("permission", perm).Debug("Notification permission not granted")
			return
		}
	}

	n := Notification{
		CaseID:             a.CaseID,
		Title:              NotificationTitle,
		Body:               NotificationBody,
		Tag:                NotificationTag,
		RequireInteraction: true,
	}
	if err := w.notifier.Notify(ctx, n); err != nil {
		log.WithError(err).Warn("Could not show notification")
	}
}

// DismissPopup закрывает попап. Указатель на назначение сохраняется
func (w *Watcher) DismissPopup() Snapshot {
	w.mu.Lock()
	if w.state == StatePendingPopup {
		w.state = StateDismissed
	}
	w.soundPlayed = false
	snap := w.snapshotLocked()
	w.mu.Unlock()

	w.emit(snap)
	return snap
}

// ClearNewAssignment сбрасывает назначение, бейдж и попап
func (w *Watcher) ClearNewAssignment() Snapshot {
	w.mu.Lock()
	w.current = nil
	w.hasNew = false
	w.count = 0
	w.soundPlayed = false
	w.state = StateIdle
	snap := w.snapshotLocked()
	w.mu.Unlock()

	w.emit(snap)
	return snap
}

// GoOnline переводит пользователя в онлайн и закрывает попап.
// Ошибка сохранения доступности не мешает закрытию попапа.
func (w *Watcher) GoOnline(ctx context.Context) (Snapshot, error) {
	err := w.availability.GoOnline(ctx)
	if err != nil {
		w.logger.WithFields(logrus.Fields{
			"service": "assignment",
			"method":  "GoOnline",
		}).WithError(err).Warn("Availability was not persisted")
	}
	return w.DismissPopup(), err
}

// Snapshot возвращает текущее состояние
func (w *Watcher) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

func (w *Watcher) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:              w.state,
		ShowPopup:          w.state == StatePendingPopup,
		HasNewAssignments:  w.hasNew,
		NewAssignmentCount: w.count,
		SoundPlayed:        w.soundPlayed,
	}
	if w.current != nil {
		a := *w.current
		snap.NewAssignment = &a
	}
	return snap
}

func (w *Watcher) emit(snap Snapshot) {
	w.mu.Lock()
	listeners := append([]func(Snapshot){}, w.onChange...)
	w.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}
