package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/field_ops_dashboard/internal/storage"
)

// Session - запись о входе пользователя. Учетные данные не проверяются
type Session struct {
	LoggedIn bool   `json:"logged_in"`
	Email    string `json:"email,omitempty"`
}

// RecordLogin сохраняет признак входа и email
func (s *Store) RecordLogin(ctx context.Context, email string) error {
	if err := s.kv.Set(ctx, storage.KeyLoggedIn, "true"); err != nil {
		return fmt.Errorf("settings: could not record login: %w", err)
	}
	if err := s.kv.Set(ctx, storage.KeyUserEmail, email); err != nil {
		return fmt.Errorf("settings: could not record login email: %w", err)
	}
	return nil
}

func (s *Store) Logout(ctx context.Context) error {
	if err := s.kv.Delete(ctx, storage.KeyLoggedIn, storage.KeyUserEmail); err != nil {
		return fmt.Errorf("settings: could not clear session: %w", err)
	}
	return nil
}

func (s *Store) Session(ctx context.Context) (Session, error) {
	flag, err := s.kv.Get(ctx, storage.KeyLoggedIn)
	if errors.Is(err, storage.ErrNotFound) {
		return Session{}, nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("settings: could not read session: %w", err)
	}

	email, err := s.kv.Get(ctx, storage.KeyUserEmail)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return Session{}, fmt.Errorf("settings: could not read session email: %w", err)
	}
	return Session{LoggedIn: flag == "true", Email: email}, nil
}

// MapAPIKey возвращает ключ картографического провайдера: сохраненный пользователем или из окружения
func (s *Store) MapAPIKey(ctx context.Context) (string, error) {
	key, err := s.kv.Get(ctx, storage.KeyMapsAPIKey)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && key == "") {
		return s.mapsFallback, nil
	}
	if err != nil {
		return "", fmt.Errorf("settings: could not read map key: %w", err)
	}
	return key, nil
}

func (s *Store) SetMapAPIKey(ctx context.Context, key string) error {
	if err := s.kv.Set(ctx, storage.KeyMapsAPIKey, key); err != nil {
		return fmt.Errorf("settings: could not save map key: %w", err)
	}
	return nil
}
