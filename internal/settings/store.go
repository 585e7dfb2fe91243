// Package settings хранит профиль и настройки уведомлений пользователя
// в плоском key-value хранилище.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/shenikar/field_ops_dashboard/internal/models"
	"github.com/shenikar/field_ops_dashboard/internal/storage"
	"github.com/sirupsen/logrus"
)

const (
	profileRole     = "Field Team Member"
	profileJoinDate = "January 2024"
)

// Defaults возвращает настройки по умолчанию
func Defaults() models.UserSettings {
	return models.UserSettings{
		Profile: models.UserProfile{
			Name:  "John Doe",
			Phone: "+1 (555) 123-4567",
			Email: "john.doe@safetext.com",
		},
		Notifications: models.NotificationSettings{
			Push:         true,
			SMS:          true,
			Email:        false,
			CriticalOnly: false,
		},
		Availability: true,
	}
}

// ProfileUpdate - частичное обновление профиля, nil поля не меняются
type ProfileUpdate struct {
	Name  *string
	Phone *string
	Email *string
}

// NotificationsUpdate - частичное обновление настроек уведомлений
type NotificationsUpdate struct {
	Push         *bool
	SMS          *bool
	Email        *bool
	CriticalOnly *bool
}

// Store держит текущую запись настроек в памяти, изменения попадают в хранилище только при Save
type Store struct {
	kv           storage.KeyValueStore
	logger       *logrus.Logger
	mapsFallback string

	mu      sync.RWMutex
	current models.UserSettings
}

func NewStore(kv storage.KeyValueStore, logger *logrus.Logger, mapsFallbackKey string) *Store {
	return &Store{
		kv:           kv,
		logger:       logger,
		mapsFallback: mapsFallbackKey,
		current:      Defaults(),
	}
}

// Load читает сохраненные настройки. Отсутствующая или поврежденная запись дает значения по умолчанию,
// частичная запись накладывается на значения по умолчанию.
func (s *Store) Load(ctx context.Context) models.UserSettings {
	log := s.logger.WithFields(logrus.Fields{
		"service": "settings",
		"method":  "Load",
	})

	loaded := Defaults()
	raw, err := s.kv.Get(ctx, storage.KeyUserSettings)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		log.Debug("No persisted settings, using defaults")
	case err != nil:
		log.WithError(err).Warn("Failed to read settings, using defaults")
	default:
		if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
			log.WithError(err).Warn("Persisted settings are malformed, using defaults")
			loaded = Defaults()
		}
	}

	s.mu.Lock()
	s.current = loaded
	s.mu.Unlock()
	return loaded
}

// Current возвращает копию текущей записи в памяти
func (s *Store) Current() models.UserSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Store) UpdateProfile(u ProfileUpdate) models.UserSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.Name != nil {
		s.current.Profile.Name = *u.Name
	}
	if u.Phone != nil {
		s.current.Profile.Phone = *u.Phone
	}
	if u.Email != nil {
		s.current.Profile.Email = *u.Email
	}
	return s.current
}

func (s *Store) UpdateNotifications(u NotificationsUpdate) models.UserSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.Push != nil {
		s.current.Notifications.Push = *u.Push
	}
	if u.SMS != nil {
		s.current.Notifications.SMS = *u.SMS
	}
	if u.Email != nil {
		s.current.Notifications.Email = *u.Email
	}
	if u.CriticalOnly != nil {
		s.current.Notifications.CriticalOnly = *u.CriticalOnly
	}
	return s.current
}

func (s *Store) UpdateAvailability(available bool) models.UserSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.Availability = available
	return s.current
}

// Save сохраняет запись настроек целиком и денормализованный профиль
func (s *Store) Save(ctx context.Context) (bool, error) {
	current := s.Current()
	log := s.logger.WithFields(logrus.Fields{
		"service": "settings",
		"method":  "Save",
	})

	settingsJSON, err := json.Marshal(current)
	if err != nil {
		return false, fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := s.kv.Set(ctx, storage.KeyUserSettings, string(settingsJSON)); err != nil {
		log.WithError(err).Error("Failed to persist settings")
		return false, fmt.Errorf("settings: could not save settings: %w", err)
	}

	profileJSON, err := json.Marshal(profileRecord(current.Profile))
	if err != nil {
		return false, fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := s.kv.Set(ctx, storage.KeyUserProfile, string(profileJSON)); err != nil {
		log.WithError(err).Error("Failed to persist profile")
		return false, fmt.Errorf("settings: could not save profile: %w", err)
	}

	log.Info("Settings saved successfully")
	return true, nil
}

func profileRecord(p models.UserProfile) models.ProfileRecord {
	return models.ProfileRecord{
		Name:     p.Name,
		Phone:    p.Phone,
		Email:    p.Email,
		Role:     profileRole,
		JoinDate: profileJoinDate,
	}
}

// Profile возвращает сохраненный профиль, либо строит его из текущих настроек
func (s *Store) Profile(ctx context.Context) models.ProfileRecord {
	raw, err := s.kv.Get(ctx, storage.KeyUserProfile)
	if err == nil {
		var rec models.ProfileRecord
		if err := json.Unmarshal([]byte(raw), &rec); err == nil {
			return rec
		}
		s.logger.WithField("key", storage.KeyUserProfile).Warn("Persisted profile is malformed")
	} else if !errors.Is(err, storage.ErrNotFound) {
		s.logger.WithError(err).Warn("Failed to read profile")
	}
	return profileRecord(s.Current().Profile)
}
