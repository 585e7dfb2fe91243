package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const notesHashKey = "case_notes"

// NotesStore хранит полевые заметки как отображение id кейса -> заметка в одном хэше Redis
type NotesStore struct {
	client *redis.Client
	key    string
}

func NewNotesStore(client *redis.Client, prefix string) *NotesStore {
	return &NotesStore{
		client: client,
		key:    prefix + notesHashKey,
	}
}

// GetNote возвращает заметку кейса и признак ее наличия
func (s *NotesStore) GetNote(ctx context.Context, caseID string) (string, bool, error) {
	note, err := s.client.HGet(ctx, s.key, caseID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get note for case %s: %w", caseID, err)
	}
	return note, true, nil
}

// GetNotes возвращает заметки для набора кейсов одним запросом. Кейсы без заметок отсутствуют в результате
func (s *NotesStore) GetNotes(ctx context.Context, caseIDs []string) (map[string]string, error) {
	notes := make(map[string]string, len(caseIDs))
	if len(caseIDs) == 0 {
		return notes, nil
	}

	values, err := s.client.HMGet(ctx, s.key, caseIDs...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get notes: %w", err)
	}
	for i, v := range values {
		if str, ok := v.(string); ok {
			notes[caseIDs[i]] = str
		}
	}
	return notes, nil
}

func (s *NotesStore) SaveNote(ctx context.Context, caseID, note string) error {
	if err := s.client.HSet(ctx, s.key, caseID, note).Err(); err != nil {
		return fmt.Errorf("failed to save note for case %s: %w", caseID, err)
	}
	return nil
}

// SaveNotes атомарно сохраняет несколько заметок
func (s *NotesStore) SaveNotes(ctx context.Context, notes map[string]string) error {
	if len(notes) == 0 {
		return nil
	}
	pairs := make([]any, 0, len(notes)*2)
	for caseID, note := range notes {
		pairs = append(pairs, caseID, note)
	}
	if err := s.client.HSet(ctx, s.key, pairs...).Err(); err != nil {
		return fmt.Errorf("failed to save notes: %w", err)
	}
	return nil
}

func (s *NotesStore) DeleteNote(ctx context.Context, caseID string) error {
	if err := s.client.HDel(ctx, s.key, caseID).Err(); err != nil {
		return fmt.Errorf("failed to delete note for case %s: %w", caseID, err)
	}
	return nil
}
