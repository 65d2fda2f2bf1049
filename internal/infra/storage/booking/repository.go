package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/tktkaws/booking-02/internal/domain"
	"github.com/tktkaws/booking-02/pkg/dbmetrics"
	"github.com/tktkaws/booking-02/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"b.id",
	"b.title",
	"b.description",
	"b.start_at",
	"b.end_at",
	"b.is_companywide",
	"b.department_id",
	"b.owner_user_id",
	"d.name",
	"d.default_color",
	"b.created_at",
	"b.updated_at",
}

// Repository persists bookings in PostgreSQL. Read queries join the owning
// department's display metadata.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a booking and fills in its id and timestamps. If the context
// carries an active transaction the insert joins it.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"title",
			"description",
			"start_at",
			"end_at",
			"is_companywide",
			"department_id",
			"owner_user_id",
		).
		Values(
			b.Title,
			b.Description,
			b.StartAt,
			b.EndAt,
			b.IsCompanywide,
			b.DepartmentID,
			b.OwnerUserID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID fetches one booking with its department metadata.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectBookings().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// Update rewrites the editable fields of a booking.
func (r *Repository) Update(ctx context.Context, b *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("title", b.Title).
		Set("description", b.Description).
		Set("start_at", b.StartAt).
		Set("end_at", b.EndAt).
		Set("is_companywide", b.IsCompanywide).
		Set("department_id", b.DepartmentID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete removes a booking.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// ListInRange fetches all bookings intersecting the half-open instant range
// [from, to): start_at < to AND end_at > from, so bookings spanning a
// boundary are included. Rows are sorted ascending by start time — the
// calendar grouping step relies on this order.
func (r *Repository) ListInRange(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectBookings().
		Where(squirrel.Lt{"b.start_at": to}).
		Where(squirrel.Gt{"b.end_at": from}).
		OrderBy("b.start_at ASC", "b.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListForDay fetches the bookings starting within [dayStart, dayEnd), sorted
// ascending by start time. excludeID, when set, drops the booking being
// edited from the result (self-exclusion for the overlap check). Inside a
// transaction the booking rows are locked FOR UPDATE so concurrent writers
// serialize on the same day.
func (r *Repository) ListForDay(ctx context.Context, dayStart, dayEnd time.Time, excludeID *int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectBookings().
		Where(squirrel.GtOrEq{"b.start_at": dayStart}).
		Where(squirrel.Lt{"b.start_at": dayEnd}).
		OrderBy("b.start_at ASC", "b.id ASC")

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"b.id": *excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *Repository) selectBookings() squirrel.SelectBuilder {
	return psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("departments d ON d.id = b.department_id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanInto(scanner rowScanner, b *domain.Booking) error {
	var createdAt, updatedAt sql.NullTime
	var defaultColor sql.NullString

	err := scanner.Scan(
		&b.ID,
		&b.Title,
		&b.Description,
		&b.StartAt,
		&b.EndAt,
		&b.IsCompanywide,
		&b.DepartmentID,
		&b.OwnerUserID,
		&b.DepartmentName,
		&defaultColor,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return err
	}

	if defaultColor.Valid {
		b.DepartmentDefaultColor = &defaultColor.String
	}
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return nil
}

func scanBooking(row *sql.Row) (*domain.Booking, error) {
	var b domain.Booking
	if err := scanInto(row, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		if err := scanInto(rows, &b); err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
