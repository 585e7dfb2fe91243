package assignment_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/field_ops_dashboard/internal/assignment"
	"github.com/shenikar/field_ops_dashboard/internal/models"
	"github.com/shenikar/field_ops_dashboard/internal/realtime"
	"github.com/shenikar/field_ops_dashboard/internal/storage"
	"github.com/shenikar/field_ops_dashboard/internal/webhook"
	"github.com/shenikar/field_ops_dashboard/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrefix = "fieldops:"

type publishedEvent struct {
	eventType string
	data      any
}

type recordingPublisher struct {
	events []publishedEvent
	err    error
}

func (p *recordingPublisher) Publish(eventType string, data any) error {
	p.events = append(p.events, publishedEvent{eventType: eventType, data: data})
	return p.err
}

type staticSettings struct {
	settings models.UserSettings
}

func (s staticSettings) Current() models.UserSettings { return s.settings }

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func newTestNotifier(t *testing.T, push bool) (*assignment.PermissionNotifier, *miniredis.Miniredis, *recordingPublisher) {
	mr, client := setupRedis(t)
	events := &recordingPublisher{}
	settings := staticSettings{settings: models.UserSettings{
		Notifications: models.NotificationSettings{Push: push},
	}}
	n := assignment.NewPermissionNotifier(
		storage.NewRedisStore(client, testPrefix),
		settings,
		webhook.NewRedisWebhookPublisher(client),
		events,
		"field-team-1",
		logger.Discard(),
	)
	return n, mr, events
}

func TestPermission_DefaultsWhenMissing(t *testing.T) {
	n, _, _ := newTestNotifier(t, true)

	perm, err := n.Permission(context.Background())

	require.NoError(t, err)
	assert.Equal(t, assignment.PermissionDefault, perm)
}

func TestPermission_UnknownValueIsDefault(t *testing.T) {
	n, mr, _ := newTestNotifier(t, true)
	mr.Set(testPrefix+storage.KeyNotificationPermission, "maybe")

	perm, err := n.Permission(context.Background())

	require.NoError(t, err)
	assert.Equal(t, assignment.PermissionDefault, perm)
}

func TestRequestPermission_FollowsPushSetting(t *testing.T) {
	testCases := []struct {
		name string
		push bool
		want assignment.Permission
	}{
		{name: "push enabled", push: true, want: assignment.PermissionGranted},
		{name: "push disabled", push: false, want: assignment.PermissionDenied},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, mr, _ := newTestNotifier(t, tc.push)
			ctx := context.Background()

			perm, err := n.RequestPermission(ctx)
			require.NoError(t, err)
			assert.Equal(t, tc.want, perm)

			stored, err := mr.Get(testPrefix + storage.KeyNotificationPermission)
			require.NoError(t, err)
			assert.Equal(t, string(tc.want), stored)

			// Сохраненное разрешение читается обратно
			again, err := n.Permission(ctx)
			require.NoError(t, err)
			assert.Equal(t, tc.want, again)
		})
	}
}

func TestNotify_BroadcastsAndEnqueuesWebhook(t *testing.T) {
	n, mr, events := newTestNotifier(t, true)
	note := assignment.Notification{
		CaseID:             "C-1234",
		Title:              assignment.NotificationTitle,
		Body:               assignment.NotificationBody,
		Tag:                assignment.NotificationTag,
		RequireInteraction: true,
	}

	require.NoError(t, n.Notify(context.Background(), note))

	require.Len(t, events.events, 1)
	assert.Equal(t, realtime.EventNotification, events.events[0].eventType)
	assert.Equal(t, note, events.events[0].data)

	queued, err := mr.List("webhook_events")
	require.NoError(t, err)
	require.Len(t, queued, 1)

	var event webhook.NotificationEvent
	require.NoError(t, json.Unmarshal([]byte(queued[0]), &event))
	assert.Equal(t, "field-team-1", event.UserID)
	assert.Equal(t, "C-1234", event.CaseID)
	assert.Equal(t, assignment.NotificationTitle, event.Title)
	assert.True(t, event.RequireInteraction)
}

func TestNotify_BroadcastFailureStillEnqueues(t *testing.T) {
	n, mr, events := newTestNotifier(t, true)
	events.err = errors.New("queue is full")

	require.NoError(t, n.Notify(context.Background(), assignment.Notification{CaseID: "C-1"}))

	queued, err := mr.List("webhook_events")
	require.NoError(t, err)
	assert.Len(t, queued, 1)
}

func TestHubSoundPlayer_PublishesAlertSound(t *testing.T) {
	events := &recordingPublisher{}
	player := assignment.NewHubSoundPlayer(events)

	require.NoError(t, player.Play(context.Background()))

	require.Len(t, events.events, 1)
	assert.Equal(t, realtime.EventAlertSound, events.events[0].eventType)
	assert.Equal(t, map[string]any{"src": "/alert.mp3", "volume": 0.7}, events.events[0].data)
}

func TestRedisFeed_PushThenNextIsFIFO(t *testing.T) {
	_, client := setupRedis(t)
	feed := assignment.NewRedisFeed(client, testPrefix, "field-team-1")
	ctx := context.Background()

	_, err := feed.Push(ctx, "C-1")
	require.NoError(t, err)
	_, err = feed.Push(ctx, " C-2 ")
	require.NoError(t, err)

	first, err := feed.Next(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "C-1", first.CaseID)
	assert.False(t, first.AssignedAt.IsZero())

	second, err := feed.Next(ctx)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, "C-2", second.CaseID)

	empty, err := feed.Next(ctx)
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestRedisFeed_PushRequiresCaseID(t *testing.T) {
	_, client := setupRedis(t)
	feed := assignment.NewRedisFeed(client, testPrefix, "field-team-1")

	_, err := feed.Push(context.Background(), "  ")

	assert.Error(t, err)
}

func TestRedisFeed_MalformedEntry(t *testing.T) {
	mr, client := setupRedis(t)
	feed := assignment.NewRedisFeed(client, testPrefix, "field-team-1")
	mr.Lpush(testPrefix+"assignments:field-team-1", "not-json")

	_, err := feed.Next(context.Background())

	assert.ErrorContains(t, err, "failed to unmarshal assignment")
}
