// Package catalog gives the engine read access to the service catalog.
// Catalog content is managed externally; the engine only ever reads it to
// snapshot a service's price and duration onto new bookings.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/thetrinh16698/tufting-booking/internal/domain"
	"github.com/thetrinh16698/tufting-booking/pkg/dbmetrics"
	"github.com/thetrinh16698/tufting-booking/pkg/psqlbuilder"
)

// Repository reads catalog services.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a new catalog repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID fetches one active service.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"slug",
		"description",
		"price",
		"duration_minutes",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("services").
		Where(squirrel.Eq{"id": id, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		svc         domain.Service
		description sql.NullString
		createdAt   sql.NullTime
		updatedAt   sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.Name,
		&svc.Slug,
		&description,
		&svc.Price,
		&svc.DurationMinutes,
		&svc.IsActive,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	if description.Valid {
		svc.Description = &description.String
	}
	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return &svc, nil
}
