package department

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/tktkaws/booking-02/internal/domain"
	"github.com/tktkaws/booking-02/pkg/dbmetrics"
	"github.com/tktkaws/booking-02/pkg/psqlbuilder"
)

// Postgres error code for foreign key violations, used to detect deletion of
// a department that still owns bookings.
const foreignKeyViolation = "23503"

// Repository persists departments in PostgreSQL.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a department repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a department and fills in its id and timestamps.
func (r *Repository) Create(ctx context.Context, d *domain.Department) (*domain.Department, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("departments").
		Columns("name", "default_color").
		Values(d.Name, d.DefaultColor).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&d.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return d, nil
}

// GetByID fetches one department.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectDepartments().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	d, err := scanDepartment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrDepartmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan department: %v", ErrScanRow, err)
	}

	return d, nil
}

// List returns all departments sorted by name.
func (r *Repository) List(ctx context.Context) ([]*domain.Department, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectDepartments().
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	departments := make([]*domain.Department, 0)
	for rows.Next() {
		var d domain.Department
		if err := scanInto(rows, &d); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		departments = append(departments, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return departments, nil
}

// Update rewrites a department's name and default color.
func (r *Repository) Update(ctx context.Context, d *domain.Department) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("departments").
		Set("name", d.Name).
		Set("default_color", d.DefaultColor).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": d.ID}).
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
		return ErrDepartmentNotFound
	}

	return nil
}

// Delete removes a department. Departments still referenced by bookings
// cannot be removed.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("departments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == foreignKeyViolation {
			return ErrDepartmentInUse
		}
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrDepartmentNotFound
	}

	return nil
}

func (r *Repository) selectDepartments() squirrel.SelectBuilder {
	return psqlbuilder.Select("id", "name", "default_color", "created_at", "updated_at").
		From("departments")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanInto(scanner rowScanner, d *domain.Department) error {
	var defaultColor sql.NullString
	var createdAt, updatedAt sql.NullTime

	if err := scanner.Scan(&d.ID, &d.Name, &defaultColor, &createdAt, &updatedAt); err != nil {
		return err
	}

	if defaultColor.Valid {
		d.DefaultColor = &defaultColor.String
	}
	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return nil
}

func scanDepartment(row *sql.Row) (*domain.Department, error) {
	var d domain.Department
	if err := scanInto(row, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
