package assignment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/field_ops_dashboard/internal/assignment"
	"github.com/shenikar/field_ops_dashboard/internal/assignment/mocks"
	"github.com/shenikar/field_ops_dashboard/internal/models"
	"github.com/shenikar/field_ops_dashboard/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type watcherMocks struct {
	source       *mocks.MockSource
	sound        *mocks.MockSoundPlayer
	notifier     *mocks.MockNotifier
	availability *mocks.MockAvailability
}

func newTestWatcher(t *testing.T) (*assignment.Watcher, watcherMocks) {
	ctrl := gomock.NewController(t)
	m := watcherMocks{
		source:       mocks.NewMockSource(ctrl),
		sound:        mocks.NewMockSoundPlayer(ctrl),
		notifier:     mocks.NewMockNotifier(ctrl),
		availability: mocks.NewMockAvailability(ctrl),
	}
	w := assignment.NewWatcher(m.source, m.sound, m.notifier, m.availability, logger.Discard(), 5*time.Millisecond)
	return w, m
}

func newAssignment(caseID string) models.Assignment {
	return models.Assignment{CaseID: caseID, AssignedAt: time.Now().UTC()}
}

func TestHandle_OfflineEntersPendingOncePerCase(t *testing.T) {
	w, m := newTestWatcher(t)
	ctx := context.Background()

	m.availability.EXPECT().Get().Return(false).AnyTimes()
	m.sound.EXPECT().Play(gomock.Any()).Return(nil).Times(1)
	m.notifier.EXPECT().Permission(gomock.Any()).Return(assignment.PermissionGranted, nil).Times(1)
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	w.Handle(ctx, newAssignment("C-1234"))
	w.Handle(ctx, newAssignment("C-1234")) // Повторное обнаружение того же кейса

	snap := w.Snapshot()
	assert.Equal(t, assignment.StatePendingPopup, snap.State)
	assert.True(t, snap.ShowPopup)
	assert.True(t, snap.SoundPlayed)
	assert.Equal(t, 1, snap.NewAssignmentCount)
	require.NotNil(t, snap.NewAssignment)
	assert.Equal(t, "C-1234", snap.NewAssignment.CaseID)
}

func TestHandle_OnlineNeverEntersPending(t *testing.T) {
	w, m := newTestWatcher(t)

	m.availability.EXPECT().Get().Return(true).AnyTimes()
	// Звук и уведомление не ожидаются

	w.Handle(context.Background(), newAssignment("C-1234"))

	snap := w.Snapshot()
	assert.Equal(t, assignment.StateIdle, snap.State)
	assert.False(t, snap.ShowPopup)
	assert.True(t, snap.HasNewAssignments)
	assert.Equal(t, 1, snap.NewAssignmentCount)
}

func TestHandle_SoundGuardHoldsUntilDismiss(t *testing.T) {
	w, m := newTestWatcher(t)
	ctx := context.Background()

	m.availability.EXPECT().Get().Return(false).AnyTimes()
	m.sound.EXPECT().Play(gomock.Any()).Return(nil).Times(1)
	m.notifier.EXPECT().Permission(gomock.Any()).Return(assignment.PermissionGranted, nil).Times(2)
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	w.Handle(ctx, newAssignment("C-1"))
	w.Handle(ctx, newAssignment("C-2")) // Другой кейс, пока первый ждет в попапе

	snap := w.Snapshot()
	assert.Equal(t, assignment.StatePendingPopup, snap.State)
	assert.True(t, snap.SoundPlayed)
	assert.Equal(t, 2, snap.NewAssignmentCount)
	require.NotNil(t, snap.NewAssignment)
	assert.Equal(t, "C-2", snap.NewAssignment.CaseID)
}

func TestDismissPopup_ResetsSoundGuardAndKeepsPointer(t *testing.T) {
	w, m := newTestWatcher(t)
	ctx := context.Background()

	m.availability.EXPECT().Get().Return(false).AnyTimes()
	m.sound.EXPECT().Play(gomock.Any()).Return(nil).Times(2)
	m.notifier.EXPECT().Permission(gomock.Any()).Return(assignment.PermissionDenied, nil).Times(2)

	w.Handle(ctx, newAssignment("C-1"))
	snap := w.DismissPopup()

	assert.Equal(t, assignment.StateDismissed, snap.State)
	assert.False(t, snap.SoundPlayed)
	require.NotNil(t, snap.NewAssignment)
	assert.Equal(t, "C-1", snap.NewAssignment.CaseID)

	w.Handle(ctx, newAssignment("C-2"))
	assert.Equal(t, assignment.StatePendingPopup, w.Snapshot().State)
}

func TestDismissPopup_WhenIdleStaysIdle(t *testing.T) {
	w, _ := newTestWatcher(t)

	snap := w.DismissPopup()

	assert.Equal(t, assignment.StateIdle, snap.State)
}

func TestClearNewAssignment_ResetsEverything(t *testing.T) {
	w, m := newTestWatcher(t)
	ctx := context.Background()

	m.availability.EXPECT().Get().Return(false).AnyTimes()
	m.sound.EXPECT().Play(gomock.Any()).Return(nil).Times(2)
	m.notifier.EXPECT().Permission(gomock.Any()).Return(assignment.PermissionDenied, nil).Times(2)

	w.Handle(ctx, newAssignment("C-1"))
	snap := w.ClearNewAssignment()

	assert.Equal(t, assignment.StateIdle, snap.State)
	assert.Nil(t, snap.NewAssignment)
	assert.False(t, snap.HasNewAssignments)
	assert.Zero(t, snap.NewAssignmentCount)
	assert.False(t, snap.SoundPlayed)

	// Тот же кейс после сброса снова поднимает попап и звук
	w.Handle(ctx, newAssignment("C-1"))
	assert.Equal(t, assignment.StatePendingPopup, w.Snapshot().State)
}

func TestGoOnline_SetsAvailabilityAndDismisses(t *testing.T) {
	w, m := newTestWatcher(t)
	ctx := context.Background()

	gomock.InOrder(
		m.availability.EXPECT().Get().Return(false),
		m.availability.EXPECT().GoOnline(gomock.Any()).Return(nil),
	)
	m.sound.EXPECT().Play(gomock.Any()).Return(nil)
	m.notifier.EXPECT().Permission(gomock.Any()).Return(assignment.PermissionDenied, nil)

	w.Handle(ctx, newAssignment("C-1"))
	snap, err := w.GoOnline(ctx)

	require.NoError(t, err)
	assert.Equal(t, assignment.StateDismissed, snap.State)
	require.NotNil(t, snap.NewAssignment)
	assert.Equal(t, "C-1", snap.NewAssignment.CaseID)
}

func TestGoOnline_PersistFailureStillDismisses(t *testing.T) {
	w, m := newTestWatcher(t)
	ctx := context.Background()
	persistErr := errors.New("quota exceeded")

	m.availability.EXPECT().Get().Return(false)
	m.availability.EXPECT().GoOnline(gomock.Any()).Return(persistErr)
	m.sound.EXPECT().Play(gomock.Any()).Return(nil)
	m.notifier.EXPECT().Permission(gomock.Any()).Return(assignment.PermissionDenied, nil)

	w.Handle(ctx, newAssignment("C-1"))
	snap, err := w.GoOnline(ctx)

	assert.ErrorIs(t, err, persistErr)
	assert.Equal(t, assignment.StateDismissed, snap.State)
}

func TestNotify_PermissionGating(t *testing.T) {
	testCases := []struct {
		name       string
		stored     assignment.Permission
		requested  assignment.Permission
		wantNotify bool
	}{
		{name: "granted shows immediately", stored: assignment.PermissionGranted, wantNotify: true},
		{name: "denied does nothing", stored: assignment.PermissionDenied},
		{name: "default requests and shows on grant", stored: assignment.PermissionDefault, requested: assignment.PermissionGranted, wantNotify: true},
		{name: "default requests and stays silent on deny", stored: assignment.PermissionDefault, requested: assignment.PermissionDenied},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, m := newTestWatcher(t)

			m.availability.EXPECT().Get().Return(false)
			m.sound.EXPECT().Play(gomock.Any()).Return(nil)
			m.notifier.EXPECT().Permission(gomock.Any()).Return(tc.stored, nil)
			if tc.stored == assignment.PermissionDefault {
				m.notifier.EXPECT().RequestPermission(gomock.Any()).Return(tc.requested, nil)
			}
			if tc.wantNotify {
				m.notifier.EXPECT().Notify(gomock.Any(), assignment.Notification{
					CaseID:             "C-1",
					Title:              assignment.NotificationTitle,
					Body:               assignment.NotificationBody,
					Tag:                assignment.NotificationTag,
					RequireInteraction: true,
				}).Return(nil)
			}

			w.Handle(context.Background(), newAssignment("C-1"))

			assert.Equal(t, assignment.StatePendingPopup, w.Snapshot().State)
		})
	}
}

func TestHandle_SideEffectFailuresAreSwallowed(t *testing.T) {
	w, m := newTestWatcher(t)

	m.availability.EXPECT().Get().Return(false)
	m.sound.EXPECT().Play(gomock.Any()).Return(errors.New("autoplay blocked"))
	m.notifier.EXPECT().Permission(gomock.Any()).Return(assignment.PermissionGranted, nil)
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("queue down"))

	w.Handle(context.Background(), newAssignment("C-1"))

	snap := w.Snapshot()
	assert.Equal(t, assignment.StatePendingPopup, snap.State)
	assert.True(t, snap.SoundPlayed)
}

func TestHandle_PermissionReadFailureSkipsNotification(t *testing.T) {
	w, m := newTestWatcher(t)

	m.availability.EXPECT().Get().Return(false)
	m.sound.EXPECT().Play(gomock.Any()).Return(nil)
	m.notifier.EXPECT().Permission(gomock.Any()).Return(assignment.Permission(""), errors.New("redis down"))

	w.Handle(context.Background(), newAssignment("C-1"))

	assert.Equal(t, assignment.StatePendingPopup, w.Snapshot().State)
}

func TestHandle_NotifiesListeners(t *testing.T) {
	w, m := newTestWatcher(t)
	m.availability.EXPECT().Get().Return(true)

	var got []string
	var snaps []assignment.Snapshot
	w.OnNewAssignment(func(a models.Assignment) { got = append(got, a.CaseID) })
	w.OnChange(func(s assignment.Snapshot) { snaps = append(snaps, s) })

	w.Handle(context.Background(), newAssignment("C-7"))

	assert.Equal(t, []string{"C-7"}, got)
	require.Len(t, snaps, 1)
	assert.True(t, snaps[0].HasNewAssignments)
}

func TestPoll_DrainsFeed(t *testing.T) {
	w, m := newTestWatcher(t)
	first, second := newAssignment("C-1"), newAssignment("C-2")

	gomock.InOrder(
		m.source.EXPECT().Next(gomock.Any()).Return(&first, nil),
		m.source.EXPECT().Next(gomock.Any()).Return(&second, nil),
		m.source.EXPECT().Next(gomock.Any()).Return(nil, nil),
	)
	m.availability.EXPECT().Get().Return(true).Times(2)

	require.NoError(t, w.Poll(context.Background()))

	snap := w.Snapshot()
	assert.Equal(t, 2, snap.NewAssignmentCount)
	assert.Equal(t, "C-2", snap.NewAssignment.CaseID)
}

func TestPoll_ReturnsFeedError(t *testing.T) {
	w, m := newTestWatcher(t)
	m.source.EXPECT().Next(gomock.Any()).Return(nil, errors.New("connection refused"))

	err := w.Poll(context.Background())

	assert.ErrorContains(t, err, "could not read feed")
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	w, m := newTestWatcher(t)
	m.source.EXPECT().Next(gomock.Any()).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop after context cancel")
	}
}
