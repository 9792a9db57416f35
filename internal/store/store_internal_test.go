package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

func TestIsUniqueConstraintError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "pgx unique", err: &pgconn.PgError{Code: "23505"}, want: true},
		{name: "pgx wrapped", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), want: true},
		{name: "pgx other code", err: &pgconn.PgError{Code: "23503"}, want: false},
		{name: "lib/pq unique", err: &pq.Error{Code: "23505"}, want: true},
		{name: "lib/pq not null", err: &pq.Error{Code: "23502"}, want: false},
		{name: "mysql duplicate", err: &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, want: true},
		{name: "mysql other", err: &mysql.MySQLError{Number: 1452}, want: false},
		{name: "sqlite message", err: errors.New("constraint failed: UNIQUE constraint failed: bookmarks.url (2067)"), want: true},
		{name: "unrelated", err: errors.New("connection refused"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isUniqueConstraintError(tt.err); got != tt.want {
				t.Errorf("isUniqueConstraintError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
