package store

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a requested entity does not exist or is
	// not visible to the caller.
	ErrNotFound = errors.New("not found")

	// ErrURLTaken is returned when a bookmark with the same url already exists.
	ErrURLTaken = errors.New("url is already bookmarked")

	// ErrShortURLUnavailable is returned when no free short code could be
	// assigned to a new row.
	ErrShortURLUnavailable = errors.New("no short url available")
)

const uniqueViolation = "23505"

// isUniqueConstraintError checks whether err indicates a unique constraint
// violation. Works across SQLite, PostgreSQL (pgx and lib/pq) and MySQL.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || // SQLite
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
