package availability

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/thetrinh16698/tufting-booking/internal/domain"
	"github.com/thetrinh16698/tufting-booking/pkg/dbmetrics"
	"github.com/thetrinh16698/tufting-booking/pkg/psqlbuilder"
)

// Repository persists availability slots.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a new availability repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// BulkInsert writes a batch of generated slots. The insert is keyed on
// (service_id, slot_date, start_time) with ON CONFLICT DO NOTHING, so
// regenerating an overlapping range is a silent no-op rather than an error.
// Returns the number of rows actually written.
func (r *Repository) BulkInsert(ctx context.Context, slots []*domain.AvailabilitySlot) (int64, error) {
	if len(slots) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("availability_slots").
		Columns(
			"id",
			"service_id",
			"slot_date",
			"start_time",
			"end_time",
			"is_booked",
		)

	for _, slot := range slots {
		insertBuilder = insertBuilder.Values(
			slot.ID,
			slot.ServiceID,
			slot.Date,
			slot.StartTime,
			slot.EndTime,
			slot.IsBooked,
		)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (service_id, slot_date, start_time) DO NOTHING").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: BulkInsert - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: BulkInsert - execute insert: %v", ErrExecQuery, err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: BulkInsert - get rows affected: %v", ErrExecQuery, err)
	}

	return inserted, nil
}

// GetByID fetches one slot. Inside a transaction the row is locked with
// FOR UPDATE so the occupied check and the subsequent flip serialize against
// concurrent reservations of the same slot.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"service_id",
		"slot_date",
		"start_time",
		"end_time",
		"is_booked",
		"created_at",
	).
		From("availability_slots").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		slot      domain.AvailabilitySlot
		createdAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&slot.ServiceID,
		&slot.Date,
		&slot.StartTime,
		&slot.EndTime,
		&slot.IsBooked,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	slot.CreatedAt = createdAt.Time

	return &slot, nil
}

// SetBooked flips the occupied flag of a slot.
func (r *Repository) SetBooked(ctx context.Context, id string, booked bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_slots").
		Set("is_booked", booked).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetBooked - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetBooked - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetBooked - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// ListByServiceAndDateRange returns the slots of a service over the
// inclusive day range covering [from, to], ordered by date then start time.
func (r *Repository) ListByServiceAndDateRange(ctx context.Context, serviceID string, from, to time.Time) ([]*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)

	query, args, err := psqlbuilder.Select(
		"id",
		"service_id",
		"slot_date",
		"start_time",
		"end_time",
		"is_booked",
		"created_at",
	).
		From("availability_slots").
		Where(squirrel.Eq{"service_id": serviceID}).
		Where(squirrel.GtOrEq{"slot_date": fromDay}).
		Where(squirrel.LtOrEq{"slot_date": toDay}).
		OrderBy("slot_date ASC", "start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByServiceAndDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByServiceAndDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.AvailabilitySlot, 0)
	for rows.Next() {
		var (
			slot      domain.AvailabilitySlot
			createdAt sql.NullTime
		)

		err := rows.Scan(
			&slot.ID,
			&slot.ServiceID,
			&slot.Date,
			&slot.StartTime,
			&slot.EndTime,
			&slot.IsBooked,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByServiceAndDateRange - scan row: %v", ErrScanRow, err)
		}

		slot.CreatedAt = createdAt.Time
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByServiceAndDateRange - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
