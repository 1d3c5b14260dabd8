package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/thetrinh16698/tufting-booking/internal/domain"
	"github.com/thetrinh16698/tufting-booking/pkg/dbmetrics"
	"github.com/thetrinh16698/tufting-booking/pkg/psqlbuilder"
	"github.com/thetrinh16698/tufting-booking/pkg/types"
)

// bookingColumns are the columns read for every booking projection: the
// booking row itself plus the denormalized slot times joined from
// availability_slots (NULL for plan-based bookings without a slot).
var bookingColumns = []string{
	"b.id",
	"b.user_id",
	"b.service_id",
	"b.slot_id",
	"b.status",
	"b.notes",
	"b.total_price",
	"b.service_name",
	"b.duration_minutes",
	"b.cancelled_at",
	"b.created_at",
	"b.updated_at",
	"s.slot_date",
	"s.start_time",
	"s.end_time",
}

// Repository persists bookings.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a new booking repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking and fills in the generated timestamps.
// The caller provides the id and the price/name/duration snapshots.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"user_id",
			"service_id",
			"slot_id",
			"status",
			"notes",
			"total_price",
			"service_name",
			"duration_minutes",
		).
		Values(
			b.ID,
			b.UserID,
			b.ServiceID,
			b.SlotID,
			b.Status,
			b.Notes,
			b.TotalPrice,
			b.ServiceName,
			b.DurationMinutes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID fetches one booking with its joined slot data. Inside a
// transaction the booking row is locked with FOR UPDATE OF b so the
// ownership check and the status mutation serialize.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		LeftJoin("availability_slots s ON s.id = b.slot_id").
		Where(squirrel.Eq{"b.id": id})

	// FOR UPDATE cannot touch the nullable side of an outer join.
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetByUserID returns a user's bookings, most recent first.
func (r *Repository) GetByUserID(ctx context.Context, userID string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		LeftJoin("availability_slots s ON s.id = b.slot_id").
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("b.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// UpdateStatus sets the status of a booking.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel marks a booking cancelled and records the cancellation time.
func (r *Repository) Cancel(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b           domain.Booking
		slotID      sql.NullString
		notes       sql.NullString
		cancelledAt sql.NullTime
		createdAt   sql.NullTime
		updatedAt   sql.NullTime
		slotDate    sql.NullTime
		slotStart   sql.NullString
		slotEnd     sql.NullString
	)

	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.ServiceID,
		&slotID,
		&b.Status,
		&notes,
		&b.TotalPrice,
		&b.ServiceName,
		&b.DurationMinutes,
		&cancelledAt,
		&createdAt,
		&updatedAt,
		&slotDate,
		&slotStart,
		&slotEnd,
	)
	if err != nil {
		return nil, err
	}

	if slotID.Valid {
		b.SlotID = &slotID.String
	}
	if notes.Valid {
		b.Notes = &notes.String
	}
	if cancelledAt.Valid {
		b.CancelledAt = &cancelledAt.Time
	}
	if slotDate.Valid {
		b.SlotDate = &slotDate.Time
	}
	if slotStart.Valid {
		ts := types.TimeString(slotStart.String)
		b.SlotStartTime = &ts
	}
	if slotEnd.Valid {
		ts := types.TimeString(slotEnd.String)
		b.SlotEndTime = &ts
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}
