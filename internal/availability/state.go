// Package availability - флаг доступности пользователя для новых назначений.
// Один экземпляр State внедряется во все компоненты, которые читают или меняют флаг.
package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/shenikar/field_ops_dashboard/internal/storage"
	"github.com/sirupsen/logrus"
)

// ErrPersistFailed - значение изменено в памяти, но не сохранено. Ошибка не фатальная
var ErrPersistFailed = errors.New("availability: failed to persist")

const availabilityField = "availability"

// Listener вызывается после каждого изменения флага
type Listener func(available bool)

type subscription struct {
	id int
	fn Listener
}

type State struct {
	kv     storage.KeyValueStore
	logger *logrus.Logger

	mu        sync.RWMutex
	available bool
	subs      []subscription
	nextID    int
}

// NewState читает флаг из записи userSettings. По умолчанию пользователь доступен
func NewState(ctx context.Context, kv storage.KeyValueStore, logger *logrus.Logger) *State {
	s := &State{
		kv:        kv,
		logger:    logger,
		available: true,
	}

	record, err := s.readRecord(ctx)
	if err != nil {
		logger.WithError(err).Warn("Failed to read availability, defaulting to available")
		return s
	}
	if raw, ok := record[availabilityField]; ok {
		var v bool
		if err := json.Unmarshal(raw, &v); err == nil {
			s.available = v
		}
	}
	return s
}

func (s *State) Get() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.available
}

// SetAvailable меняет флаг, синхронно сохраняет его и уведомляет подписчиков.
// Значение в памяти меняется даже при ошибке сохранения.
func (s *State) SetAvailable(ctx context.Context, available bool) error {
	s.mu.Lock()
	s.available = available
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	log := s.logger.WithFields(logrus.Fields{
		"service":   "availability",
		"method":    "SetAvailable",
		"available": available,
	})

	var persistErr error
	if err := s.persist(ctx, available); err != nil {
		log.WithError(err).Warn("Availability changed but was not persisted")
		persistErr = fmt.Errorf("%w: %v", ErrPersistFailed, err)
	} else {
		log.Info("Availability changed")
	}

	for _, sub := range subs {
		sub.fn(available)
	}
	return persistErr
}

func (s *State) GoOnline(ctx context.Context) error {
	return s.SetAvailable(ctx, true)
}

func (s *State) GoOffline(ctx context.Context) error {
	return s.SetAvailable(ctx, false)
}

// Subscribe регистрирует слушателя и возвращает функцию отписки
func (s *State) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// persist обновляет только поле availability, остальные поля записи сохраняются как есть
func (s *State) persist(ctx context.Context, available bool) error {
	record, err := s.readRecord(ctx)
	if err != nil {
		return err
	}
	value, err := json.Marshal(available)
	if err != nil {
		return err
	}
	record[availabilityField] = value

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal settings record: %w", err)
	}
	return s.kv.Set(ctx, storage.KeyUserSettings, string(payload))
}

// readRecord читает запись userSettings как набор сырых полей. Поврежденная запись считается пустой
func (s *State) readRecord(ctx context.Context) (map[string]json.RawMessage, error) {
	record := make(map[string]json.RawMessage)
	raw, err := s.kv.Get(ctx, storage.KeyUserSettings)
	if errors.Is(err, storage.ErrNotFound) {
		return record, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		s.logger.WithError(err).Debug("Settings record is malformed, starting from empty record")
		return make(map[string]json.RawMessage), nil
	}
	if record == nil { // запись "null"
		record = make(map[string]json.RawMessage)
	}
	return record, nil
}
