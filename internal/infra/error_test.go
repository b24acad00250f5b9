//go:build unit

package infra

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     []RepositoryErrorKind
		expected RepositoryErrorKind
	}{
		{name: "unique violation", err: &pgconn.PgError{Code: "23505", ConstraintName: "orders_order_number_key"}, expected: KindDuplicateKey},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, expected: KindForeignKeyViolated},
		{name: "check", err: &pgconn.PgError{Code: "23514"}, expected: KindCheckViolated},
		{name: "other pg error", err: &pgconn.PgError{Code: "57014"}, expected: KindDBFailure},
		{name: "plain error", err: errors.New("boom"), expected: KindDBFailure},
		{name: "explicit kind wins", err: pgx.ErrNoRows, kind: []RepositoryErrorKind{KindNotFound}, expected: KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := WrapRepoErr("op failed", tt.err, tt.kind...)
			assert.True(t, IsKind(wrapped, tt.expected))
			assert.ErrorIs(t, wrapped, tt.err)
		})
	}

	t.Run("constraint name is reachable", func(t *testing.T) {
		wrapped := WrapRepoErr("op failed", &pgconn.PgError{Code: "23505", ConstraintName: "coupons_code_key"})
		assert.Equal(t, "coupons_code_key", ConstraintName(wrapped))
	})
}
