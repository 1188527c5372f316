package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"

	"workhours/internal/errors"
)

// HandleDatabaseError converts database errors to structured app errors.
// Context deadlines become timeout errors.
func HandleDatabaseError(operation string, err error) error {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.NewTimeoutError(operation, err.Error())
	}
	return errors.NewDatabaseError(operation, err)
}

// IsUniqueViolation reports whether err is a UNIQUE constraint failure.
func IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// ExecuteInsert runs an INSERT. A UNIQUE violation is reported as a conflict
// on entityType/id.
func ExecuteInsert(ctx context.Context, db *sql.DB, query string, entityType string, id string, args ...any) error {
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		if IsUniqueViolation(err) {
			return errors.NewConflictError(entityType, id)
		}
		return HandleDatabaseError("insert "+entityType, err)
	}
	return nil
}

// QuerySingle executes a query that returns a single row and scans it
func QuerySingle[T any](ctx context.Context, db *sql.DB, query string, scanFunc func(Scanner) (*T, error), entityType string, id string, args ...any) (*T, error) {
	row := db.QueryRowContext(ctx, query, args...)
	result, err := scanFunc(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewNotFoundError(entityType, id)
		}
		return nil, HandleDatabaseError("scan "+entityType, err)
	}
	return result, nil
}

// QueryMultiple executes a query that returns multiple rows and scans them
func QueryMultiple[T any](ctx context.Context, db *sql.DB, query string, scanFunc func(Rows) ([]*T, error), entityType string, args ...any) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, HandleDatabaseError("query "+entityType, err)
	}
	defer rows.Close()

	results, err := scanFunc(rows)
	if err != nil {
		return nil, HandleDatabaseError("scan "+entityType, err)
	}
	return results, nil
}
