package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/field_ops_dashboard/internal/config"
	"github.com/shenikar/field_ops_dashboard/internal/filter"
	"github.com/shenikar/field_ops_dashboard/internal/models"
	"github.com/shenikar/field_ops_dashboard/internal/service/mocks"
	"github.com/shenikar/field_ops_dashboard/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, time.March, 15, 14, 0, 0, 0, time.UTC)

// newTestCaseService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestCaseService(t *testing.T) (*caseService, *mocks.MockCaseRepository, *mocks.MockNotesRepository, *mocks.MockGeocoder) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockCaseRepository(ctrl)
	notesMock := mocks.NewMockNotesRepository(ctrl)
	geocoderMock := mocks.NewMockGeocoder(ctrl)

	cfg := &config.Config{
		SLAAlertThresholdMinutes: 30,
	}

	service := NewCaseService(repoMock, notesMock, geocoderMock, logger.Discard(), cfg).(*caseService)
	service.now = func() time.Time { return testNow }
	return service, repoMock, notesMock, geocoderMock
}

// receivedCase строит кейс, у которого осталось remaining минут SLA на момент testNow
func receivedCase(id string, status models.CaseStatus, remaining, total int) *models.Case {
	return &models.Case{
		ID:              id,
		Severity:        models.SeverityHigh,
		Status:          status,
		SLATotalMinutes: total,
		TimeReceived:    testNow.Add(time.Duration(remaining-total) * time.Minute),
	}
}

func TestGetCase_Success_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock, notesMock, _ := newTestCaseService(t)
	ctx := context.Background()
	expected := &models.Case{ID: "C-1234", Location: "Main St"}

	// Ожидания
	repoMock.EXPECT().GetCaseFromCache(ctx, "C-1234").Return(expected, nil).Times(1)
	notesMock.EXPECT().GetNote(ctx, "C-1234").Return("Gate code 4521", true, nil).Times(1)

	// Действие
	c, err := service.GetCase(ctx, "C-1234")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Main St", c.Location)
	assert.Equal(t, "Gate code 4521", c.Notes)
}

func TestGetCase_Success_FromDB(t *testing.T) {
	// Подготовка
	service, repoMock, notesMock, _ := newTestCaseService(t)
	ctx := context.Background()
	expected := &models.Case{ID: "C-1234"}

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().GetCaseFromCache(ctx, "C-1234").Return(nil, nil).Times(1)
	// 2. Попадание в БД
	repoMock.EXPECT().GetByID(ctx, "C-1234").Return(expected, nil).Times(1)
	// 3. Запись в кеш
	repoMock.EXPECT().SetCaseCache(ctx, expected).Return(nil).Times(1)
	notesMock.EXPECT().GetNote(ctx, "C-1234").Return("", false, nil).Times(1)

	// Действие
	c, err := service.GetCase(ctx, "C-1234")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, c)
	assert.Empty(t, c.Notes)
}

func TestGetCase_CacheErrorFallsBackToDB(t *testing.T) {
	service, repoMock, notesMock, _ := newTestCaseService(t)
	ctx := context.Background()
	expected := &models.Case{ID: "C-1234"}

	repoMock.EXPECT().GetCaseFromCache(ctx, "C-1234").Return(nil, errors.New("redis down"))
	repoMock.EXPECT().GetByID(ctx, "C-1234").Return(expected, nil)
	repoMock.EXPECT().SetCaseCache(ctx, expected).Return(errors.New("redis down"))
	notesMock.EXPECT().GetNote(ctx, "C-1234").Return("", false, errors.New("redis down"))

	c, err := service.GetCase(ctx, "C-1234")

	require.NoError(t, err)
	assert.Equal(t, "C-1234", c.ID)
}

func TestGetCase_NotFound(t *testing.T) {
	service, repoMock, _, _ := newTestCaseService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetCaseFromCache(ctx, "C-0000").Return(nil, nil)
	repoMock.EXPECT().GetByID(ctx, "C-0000").Return(nil, models.ErrCaseNotFound)

	_, err := service.GetCase(ctx, "C-0000")

	assert.ErrorIs(t, err, models.ErrCaseNotFound)
}

func TestListCases_FiltersAndOverlaysNotes(t *testing.T) {
	// Подготовка
	service, repoMock, notesMock, _ := newTestCaseService(t)
	ctx := context.Background()
	cases := []*models.Case{
		{ID: "C-1234", Severity: models.SeverityCritical},
		{ID: "C-1235", Severity: models.SeverityLow},
		{ID: "C-1236", Severity: models.SeverityCritical},
	}

	// Ожидания
	repoMock.EXPECT().List(ctx).Return(cases, nil)
	notesMock.EXPECT().GetNotes(ctx, []string{"C-1234", "C-1236"}).Return(map[string]string{"C-1236": "bring ladder"}, nil)

	// Действие
	result, err := service.ListCases(ctx, filter.Criteria{Severities: []models.Severity{models.SeverityCritical}})

	// Проверки
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "C-1234", result[0].ID)
	assert.Empty(t, result[0].Notes)
	assert.Equal(t, "bring ladder", result[1].Notes)
}

func TestListCases_EmptyResultSkipsNotes(t *testing.T) {
	service, repoMock, _, _ := newTestCaseService(t)
	ctx := context.Background()

	repoMock.EXPECT().List(ctx).Return([]*models.Case{{ID: "C-1"}}, nil)

	result, err := service.ListCases(ctx, filter.Criteria{Query: "nothing-matches"})

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestListCases_RepositoryError(t *testing.T) {
	service, repoMock, _, _ := newTestCaseService(t)
	ctx := context.Background()

	repoMock.EXPECT().List(ctx).Return(nil, errors.New("db error"))

	_, err := service.ListCases(ctx, filter.Criteria{})

	assert.ErrorContains(t, err, "service: could not list cases")
}

func TestCreateCase_Success(t *testing.T) {
	// Подготовка
	service, repoMock, notesMock, _ := newTestCaseService(t)
	ctx := context.Background()
	c := &models.Case{
		Severity:        models.SeverityCritical,
		Location:        " 12 Harbor Rd ",
		SLATotalMinutes: 60,
		Status:          models.StatusResolved, // Статус задает сервис
		AssignedBy:      "Dispatch Center",
		Messages:        []models.CaseMessage{{Sender: models.SenderReporter, Content: "Smoke from the roof"}},
		Notes:           "Call on arrival",
	}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, created *models.Case) error {
			created.ID = "C-5000"
			return nil
		}).
		Times(1)
	notesMock.EXPECT().SaveNote(ctx, "C-5000", "Call on arrival").Return(nil).Times(1)

	// Действие
	err := service.CreateCase(ctx, c, "Sarah Chen")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, c.Status)
	assert.Equal(t, testNow, c.TimeReceived)
	assert.Equal(t, "12 Harbor Rd", c.Location)
	require.Len(t, c.Messages, 1)
	assert.NotEmpty(t, c.Messages[0].ID)
	assert.Equal(t, testNow, c.Messages[0].Timestamp)
	assert.NotNil(t, c.Attachments)
	require.Len(t, c.AuditTrail, 1)
	assert.Equal(t, "Case Created", c.AuditTrail[0].Action)
	assert.Equal(t, models.Actor{Name: "Sarah Chen", Initials: "SC"}, c.AuditTrail[0].Actor)
	assert.Equal(t, "Assigned by Dispatch Center", c.AuditTrail[0].Details)
}

func TestCreateCase_ReverseGeocodesEmptyLocation(t *testing.T) {
	service, repoMock, _, geocoderMock := newTestCaseService(t)
	ctx := context.Background()
	c := &models.Case{
		Severity:    models.SeverityLow,
		Coordinates: models.Coordinates{Lat: 40.7128, Lng: -74.006},
	}

	geocoderMock.EXPECT().ReverseGeocode(ctx, 40.7128, -74.006).Return("City Hall Park, New York", nil)
	repoMock.EXPECT().Create(ctx, c).Return(nil)

	require.NoError(t, service.CreateCase(ctx, c, "Dispatcher"))
	assert.Equal(t, "City Hall Park, New York", c.Location)
}

func TestCreateCase_GeocodeFailureUsesCoordinates(t *testing.T) {
	service, repoMock, _, geocoderMock := newTestCaseService(t)
	ctx := context.Background()
	c := &models.Case{
		Severity:    models.SeverityLow,
		Coordinates: models.Coordinates{Lat: 40.7128, Lng: -74.006},
	}

	geocoderMock.EXPECT().ReverseGeocode(ctx, 40.7128, -74.006).Return("", errors.New("no key"))
	repoMock.EXPECT().Create(ctx, c).Return(nil)

	require.NoError(t, service.CreateCase(ctx, c, "Dispatcher"))
	assert.Equal(t, "40.71280, -74.00600", c.Location)
}

func TestCreateCase_InvalidSeverity(t *testing.T) {
	service, repoMock, _, _ := newTestCaseService(t)

	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0) // Репозиторий не должен вызываться

	err := service.CreateCase(context.Background(), &models.Case{Severity: "extreme"}, "Dispatcher")

	assert.ErrorIs(t, err, models.ErrInvalidSeverity)
}

func TestUpdateStatus_AppendsAuditAndInvalidatesCache(t *testing.T) {
	// Подготовка
	service, repoMock, notesMock, _ := newTestCaseService(t)
	ctx := context.Background()
	updated := &models.Case{ID: "C-1234", Status: models.StatusOnRoute}

	// Ожидания
	repoMock.EXPECT().
		UpdateStatus(ctx, "C-1234", models.StatusOnRoute, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ models.CaseStatus, ev models.AuditEvent) (*models.Case, error) {
			assert.Equal(t, "Status Updated to On Route", ev.Action)
			assert.Equal(t, "JD", ev.Actor.Initials)
			assert.Equal(t, testNow, ev.Timestamp)
			assert.NotEmpty(t, ev.ID)
			updated.AuditTrail = append(updated.AuditTrail, ev)
			return updated, nil
		}).
		Times(1)
	repoMock.EXPECT().InvalidateCaseCache(ctx, "C-1234").Return(nil).Times(1)
	notesMock.EXPECT().GetNote(ctx, "C-1234").Return("", false, nil)

	// Действие
	c, err := service.UpdateStatus(ctx, "C-1234", models.StatusOnRoute, "John Doe")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusOnRoute, c.Status)
	assert.Len(t, c.AuditTrail, 1)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	service, repoMock, _, _ := newTestCaseService(t)

	repoMock.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := service.UpdateStatus(context.Background(), "C-1234", "closed", "John Doe")

	assert.ErrorIs(t, err, models.ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	service, repoMock, _, _ := newTestCaseService(t)
	ctx := context.Background()

	repoMock.EXPECT().UpdateStatus(ctx, "C-0000", models.StatusArrived, gomock.Any()).Return(nil, models.ErrCaseNotFound)
	repoMock.EXPECT().InvalidateCaseCache(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.UpdateStatus(ctx, "C-0000", models.StatusArrived, "John Doe")

	assert.ErrorIs(t, err, models.ErrCaseNotFound)
}

func TestSaveNotes_RequiresExistingCase(t *testing.T) {
	service, repoMock, notesMock, _ := newTestCaseService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetCaseFromCache(ctx, "C-0000").Return(nil, nil)
	repoMock.EXPECT().GetByID(ctx, "C-0000").Return(nil, models.ErrCaseNotFound)
	notesMock.EXPECT().SaveNote(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := service.SaveNotes(ctx, "C-0000", "text")

	assert.ErrorIs(t, err, models.ErrCaseNotFound)
}

func TestSaveNotes_ThenGetNotes(t *testing.T) {
	service, repoMock, notesMock, _ := newTestCaseService(t)
	ctx := context.Background()
	stored := ""

	repoMock.EXPECT().GetCaseFromCache(ctx, "C-1234").Return(&models.Case{ID: "C-1234"}, nil).Times(1)
	repoMock.EXPECT().GetCaseFromCache(ctx, "C-1234").Return(&models.Case{ID: "C-1234"}, nil).Times(1)
	notesMock.EXPECT().GetNote(ctx, "C-1234").DoAndReturn(func(context.Context, string) (string, bool, error) {
		return stored, stored != "", nil
	}).Times(2)
	notesMock.EXPECT().SaveNote(ctx, "C-1234", "Side entrance").DoAndReturn(func(_ context.Context, _ string, note string) error {
		stored = note
		return nil
	})

	require.NoError(t, service.SaveNotes(ctx, "C-1234", "Side entrance"))
	notes, err := service.GetNotes(ctx, "C-1234")

	require.NoError(t, err)
	assert.Equal(t, "Side entrance", notes)
}

func TestSLAAlerts_UsesConfiguredThreshold(t *testing.T) {
	service, repoMock, _, _ := newTestCaseService(t)
	ctx := context.Background()

	repoMock.EXPECT().List(ctx).Return([]*models.Case{
		receivedCase("C-1", models.StatusPending, 45, 120),
		receivedCase("C-2", models.StatusPending, 20, 120),
		receivedCase("C-3", models.StatusResolved, 5, 120),
		receivedCase("C-4", models.StatusOnRoute, -10, 60),
	}, nil)

	alerts, err := service.SLAAlerts(ctx)

	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, "C-4", alerts[0].ID)
	assert.Equal(t, "C-2", alerts[1].ID)
}

func TestStats(t *testing.T) {
	service, repoMock, _, _ := newTestCaseService(t)
	ctx := context.Background()

	repoMock.EXPECT().List(ctx).Return([]*models.Case{
		receivedCase("C-1", models.StatusPending, 45, 120),
		receivedCase("C-2", models.StatusResolved, 10, 120),
	}, nil)

	stats, err := service.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Closed)
}

func TestActivity_SortsNewestFirstAndGroups(t *testing.T) {
	service, repoMock, _, _ := newTestCaseService(t)
	ctx := context.Background()
	actor := models.NewActor("Sarah Chen")

	repoMock.EXPECT().List(ctx).Return([]*models.Case{
		{ID: "C-1", AuditTrail: []models.AuditEvent{
			{ID: "a1", Action: "Case Created", Actor: actor, Timestamp: testNow.Add(-26 * time.Hour)},
			{ID: "a2", Action: "Status Updated to Resolved", Actor: actor, Timestamp: testNow.Add(-time.Hour)},
		}},
		{ID: "C-2", AuditTrail: []models.AuditEvent{
			{ID: "b1", Action: "SLA Warning", Actor: actor, Timestamp: testNow.Add(-30 * time.Minute)},
		}},
	}, nil).Times(2)

	groups, err := service.Activity(ctx, filter.ActivityCriteria{Date: filter.DateAll})
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Today", groups[0].Label)
	require.Len(t, groups[0].Entries, 2)
	assert.Equal(t, "b1", groups[0].Entries[0].ID)
	assert.Equal(t, filter.VariantWarning, groups[0].Entries[0].Variant)
	assert.Equal(t, filter.VariantSuccess, groups[0].Entries[1].Variant)
	assert.Equal(t, "Yesterday", groups[1].Label)

	groups, err = service.Activity(ctx, filter.ActivityCriteria{Query: "c-1", Date: filter.DateYesterday})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "a1", groups[0].Entries[0].ID)
}

func TestCasesNear(t *testing.T) {
	service, repoMock, notesMock, _ := newTestCaseService(t)
	ctx := context.Background()
	expected := []*models.Case{{ID: "C-1"}, {ID: "C-2", Notes: "initial"}}

	// Ожидания
	repoMock.EXPECT().FindNear(ctx, 40.7, -74.0, 500.0).Return(expected, nil)
	notesMock.EXPECT().GetNotes(ctx, []string{"C-1", "C-2"}).Return(map[string]string{"C-1": "gate code 42"}, nil)

	// Действие
	cases, err := service.CasesNear(ctx, 40.7, -74.0, 500)

	// Проверки
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, "gate code 42", cases[0].Notes)
	assert.Equal(t, "initial", cases[1].Notes)
}

func TestCasesNear_RepositoryError(t *testing.T) {
	service, repoMock, _, _ := newTestCaseService(t)
	ctx := context.Background()

	repoMock.EXPECT().FindNear(ctx, 1.0, 2.0, 3.0).Return(nil, errors.New("db error"))

	_, err := service.CasesNear(ctx, 1, 2, 3)

	assert.ErrorContains(t, err, "could not find cases near location")
}
