package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/field_ops_dashboard/internal/models"
	"github.com/shenikar/field_ops_dashboard/internal/service"
)

const caseColumns = `
	id,
	severity,
	location,
	ST_Y(geom::geometry) AS lat,
	ST_X(geom::geometry) AS lng,
	time_received,
	sla_total_minutes,
	status,
	assigned_by,
	reporter,
	messages,
	attachments,
	audit_trail,
	created_at,
	updated_at
`

type CaseRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewCaseRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.CaseRepository {
	return &CaseRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCase(row rowScanner) (*models.Case, error) {
	c := &models.Case{}
	var reporter, messages, attachments, auditTrail []byte
	err := row.Scan(
		&c.ID,
		&c.Severity,
		&c.Location,
		&c.Coordinates.Lat,
		&c.Coordinates.Lng,
		&c.TimeReceived,
		&c.SLATotalMinutes,
		&c.Status,
		&c.AssignedBy,
		&reporter,
		&messages,
		&attachments,
		&auditTrail,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(reporter) > 0 && string(reporter) != "null" {
		c.Reporter = &models.Reporter{}
		if err := json.Unmarshal(reporter, c.Reporter); err != nil {
			return nil, fmt.Errorf("failed to unmarshal reporter: %w", err)
		}
	}
	if err := unmarshalList(messages, &c.Messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal messages: %w", err)
	}
	if err := unmarshalList(attachments, &c.Attachments); err != nil {
		return nil, fmt.Errorf("failed to unmarshal attachments: %w", err)
	}
	if err := unmarshalList(auditTrail, &c.AuditTrail); err != nil {
		return nil, fmt.Errorf("failed to unmarshal audit trail: %w", err)
	}
	return c, nil
}

// unmarshalList разбирает jsonb-массив, пустое значение дает пустой срез
func unmarshalList[T any](raw []byte, dest *[]T) error {
	*dest = []T{}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return err
	}
	if *dest == nil {
		*dest = []T{}
	}
	return nil
}

func scanCases(rows pgx.Rows) ([]*models.Case, error) {
	defer rows.Close()

	cases := make([]*models.Case, 0)
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan case row: %w", err)
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return cases, nil
}

// Create создает новую запись о кейсе в бд. Идентификатор выдает последовательность
func (r *CaseRepository) Create(ctx context.Context, c *models.Case) error {
	var reporter []byte
	if c.Reporter != nil {
		raw, err := json.Marshal(c.Reporter)
		if err != nil {
			return fmt.Errorf("failed to marshal reporter: %w", err)
		}
		reporter = raw
	}
	messages, err := json.Marshal(c.Messages)
	if err != nil {
		return fmt.Errorf("failed to marshal messages: %w", err)
	}
	attachments, err := json.Marshal(c.Attachments)
	if err != nil {
		return fmt.Errorf("failed to marshal attachments: %w", err)
	}
	auditTrail, err := json.Marshal(c.AuditTrail)
	if err != nil {
		return fmt.Errorf("failed to marshal audit trail: %w", err)
	}

	query := `
		INSERT INTO cases (
			severity, location, geom, time_received, sla_total_minutes, status,
			assigned_by, reporter, messages, attachments, audit_trail
		)
		VALUES (
			$1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography, $5, $6, $7,
			$8, $9::jsonb, $10::jsonb, $11::jsonb, $12::jsonb
		)
		RETURNING id, created_at, updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		c.Severity,
		c.Location,
		c.Coordinates.Lng,
		c.Coordinates.Lat,
		c.TimeReceived,
		c.SLATotalMinutes,
		c.Status,
		c.AssignedBy,
		reporter,
		messages,
		attachments,
		auditTrail,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create case: %w", err)
	}
	return nil
}

// GetByID возвращает кейс по идентификатору
func (r *CaseRepository) GetByID(ctx context.Context, id string) (*models.Case, error) {
	query := `SELECT ` + caseColumns + ` FROM cases WHERE id = $1;`

	c, err := scanCase(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("case with id %s: %w", id, models.ErrCaseNotFound)
		}
		return nil, fmt.Errorf("failed to get case by id: %w", err)
	}
	return c, nil
}

// List возвращает все кейсы, новые первыми
func (r *CaseRepository) List(ctx context.Context) ([]*models.Case, error) {
	query := `SELECT ` + caseColumns + ` FROM cases ORDER BY time_received DESC, id;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	return scanCases(rows)
}

// UpdateStatus атомарно меняет статус и дописывает событие в журнал аудита
func (r *CaseRepository) UpdateStatus(ctx context.Context, id string, status models.CaseStatus, event models.AuditEvent) (*models.Case, error) {
	appended, err := json.Marshal([]models.AuditEvent{event})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal audit event: %w", err)
	}

	query := `
		UPDATE cases SET
			status = $1,
			audit_trail = audit_trail || $2::jsonb,
			updated_at = NOW()
		WHERE id = $3
		RETURNING ` + caseColumns + `;
	`
	c, err := scanCase(r.db.QueryRow(ctx, query, status, appended, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("case with id %s not found for update: %w", id, models.ErrCaseNotFound)
		}
		return nil, fmt.Errorf("failed to update case status: %w", err)
	}
	return c, nil
}

// FindNear находит кейсы в радиусе radiusMeters от точки, ближайшие первыми
func (r *CaseRepository) FindNear(ctx context.Context, lat, lng, radiusMeters float64) ([]*models.Case, error) {
	query := `
		SELECT ` + caseColumns + `
		FROM cases
		WHERE ST_DWithin(
			geom,
			ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
			$3
		)
		ORDER BY ST_Distance(geom, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography), id;
	`
	rows, err := r.db.Query(ctx, query, lng, lat, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to find cases by location: %w", err)
	}
	return scanCases(rows)
}

func caseCacheKey(id string) string {
	return fmt.Sprintf("case:%s", id)
}

// GetCaseFromCache пытается получить кейс из Redis, nil при промахе
func (r *CaseRepository) GetCaseFromCache(ctx context.Context, id string) (*models.Case, error) {
	val, err := r.redisClient.Get(ctx, caseCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get case from cache: %w", err)
	}

	c := &models.Case{}
	if err := json.Unmarshal(val, c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal case from cache: %w", err)
	}
	return c, nil
}

// SetCaseCache сохраняет кейс в Redis без заметок
func (r *CaseRepository) SetCaseCache(ctx context.Context, c *models.Case) error {
	cached := *c
	cached.Notes = ""
	val, err := json.Marshal(&cached)
	if err != nil {
		return fmt.Errorf("failed to marshal case for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, caseCacheKey(c.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set case in cache: %w", err)
	}
	return nil
}

// InvalidateCaseCache удаляет кейс из Redis кэша
func (r *CaseRepository) InvalidateCaseCache(ctx context.Context, id string) error {
	if err := r.redisClient.Del(ctx, caseCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate case cache: %w", err)
	}
	return nil
}
