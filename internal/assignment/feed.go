package assignment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/field_ops_dashboard/internal/models"
)

// Dispatcher ставит назначение в ленту пользователя
type Dispatcher interface {
	Push(ctx context.Context, caseID string) (models.Assignment, error)
}

// RedisFeed - лента назначений пользователя в списке Redis assignments:{userID}
type RedisFeed struct {
	client *redis.Client
	key    string
}

func NewRedisFeed(client *redis.Client, prefix, userID string) *RedisFeed {
	return &RedisFeed{
		client: client,
		key:    prefix + "assignments:" + userID,
	}
}

// Next забирает самое старое назначение, nil если лента пуста
func (f *RedisFeed) Next(ctx context.Context) (*models.Assignment, error) {
	raw, err := f.client.RPop(ctx, f.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to pop assignment from Redis: %w", err)
	}

	var a models.Assignment
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assignment: %w", err)
	}
	return &a, nil
}

// Push добавляет назначение кейса в ленту
func (f *RedisFeed) Push(ctx context.Context, caseID string) (models.Assignment, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return models.Assignment{}, errors.New("assignment: case id is required")
	}

	a := models.Assignment{
		CaseID:     caseID,
		AssignedAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(a)
	if err != nil {
		return models.Assignment{}, fmt.Errorf("failed to marshal assignment: %w", err)
	}
	if err := f.client.LPush(ctx, f.key, payload).Err(); err != nil {
		return models.Assignment{}, fmt.Errorf("failed to push assignment to Redis: %w", err)
	}
	return a, nil
}
