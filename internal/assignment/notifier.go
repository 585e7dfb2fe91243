package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/field_ops_dashboard/internal/models"
	"github.com/shenikar/field_ops_dashboard/internal/realtime"
	"github.com/shenikar/field_ops_dashboard/internal/storage"
	"github.com/shenikar/field_ops_dashboard/internal/webhook"
	"github.com/sirupsen/logrus"
)

// EventPublisher рассылает события подключенным дашбордам
type EventPublisher interface {
	Publish(eventType string, data any) error
}

// SettingsReader отдает текущие настройки пользователя
type SettingsReader interface {
	Current() models.UserSettings
}

// PermissionNotifier - Notifier с разрешением, сохраненным в key-value хранилище.
// Уведомление уходит дашбордам по websocket и во внешний вебхук.
type PermissionNotifier struct {
	kv       storage.KeyValueStore
	settings SettingsReader
	webhooks webhook.WebhookPublisher
	events   EventPublisher
	userID   string
	logger   *logrus.Logger
}

func NewPermissionNotifier(
	kv storage.KeyValueStore,
	settings SettingsReader,
	webhooks webhook.WebhookPublisher,
	events EventPublisher,
	userID string,
	logger *logrus.Logger,
) *PermissionNotifier {
	return &PermissionNotifier{
		kv:       kv,
		settings: settings,
		webhooks: webhooks,
		events:   events,
		userID:   userID,
		logger:   logger,
	}
}

// Permission возвращает сохраненное разрешение, по умолчанию default
func (n *PermissionNotifier) Permission(ctx context.Context) (Permission, error) {
	raw, err := n.kv.Get(ctx, storage.KeyNotificationPermission)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return PermissionDefault, nil
		}
		return "", fmt.Errorf("could not read notification permission: %w", err)
	}

	switch p := Permission(raw); p {
	case PermissionGranted, PermissionDenied:
		return p, nil
	default:
		return PermissionDefault, nil
	}
}

// RequestPermission выдает разрешение, если у пользователя включены push-уведомления
func (n *PermissionNotifier) RequestPermission(ctx context.Context) (Permission, error) {
	perm := PermissionDenied
	if n.settings.Current().Notifications.Push {
		perm = PermissionGranted
	}

	if err := n.kv.Set(ctx, storage.KeyNotificationPermission, string(perm)); err != nil {
		return "", fmt.Errorf("could not persist notification permission: %w", err)
	}

	n.logger.WithFields(logrus.Fields{
		"service":    "notifier",
		"method":     "RequestPermission",
		"permission": perm,
	}).Info("Notification permission resolved")
	return perm, nil
}

// Notify рассылает уведомление дашбордам и ставит его в очередь вебхуков
func (n *PermissionNotifier) Notify(ctx context.Context, note Notification) error {
	log := n.logger.WithFields(logrus.Fields{
		"service": "notifier",
		"method":  "Notify",
		"case_id": note.CaseID,
	})

	if err := n.events.Publish(realtime.EventNotification, note); err != nil {
		log.WithError(err).Warn("Failed to broadcast notification event")
	}

	event := webhook.NotificationEvent{
		UserID:             n.userID,
		CaseID:             note.CaseID,
		Title:              note.Title,
		Body:               note.Body,
		Tag:                note.Tag,
		RequireInteraction: note.RequireInteraction,
		Timestamp:          time.Now().UTC(),
	}
	if err := n.webhooks.Publish(ctx, event); err != nil {
		return fmt.Errorf("could not enqueue notification webhook: %w", err)
	}
	return nil
}

// Параметры звукового сигнала
const (
	alertSoundSrc    = "/alert.mp3"
	alertSoundVolume = 0.7
)

// HubSoundPlayer просит подключенные дашборды проиграть сигнал
type HubSoundPlayer struct {
	events EventPublisher
}

func NewHubSoundPlayer(events EventPublisher) *HubSoundPlayer {
	return &HubSoundPlayer{events: events}
}

func (p *HubSoundPlayer) Play(_ context.Context) error {
	return p.events.Publish(realtime.EventAlertSound, map[string]any{
		"src":    alertSoundSrc,
		"volume": alertSoundVolume,
	})
}
