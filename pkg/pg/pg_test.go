package pg_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/tillpoint/posaccess/pkg/pg"
)

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		notFound  bool
		duplicate bool
	}{
		{name: "nil", err: nil},
		{name: "no rows", err: pgx.ErrNoRows, notFound: true},
		{name: "wrapped no rows", err: fmt.Errorf("get role: %w", pgx.ErrNoRows), notFound: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, duplicate: true},
		{name: "joined unique violation", err: errors.Join(errors.New("insert"), &pgconn.PgError{Code: "23505"}), duplicate: true},
		{name: "other pg error", err: &pgconn.PgError{Code: "23503"}},
		{name: "plain error", err: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.notFound, pg.IsNotFoundError(tt.err))
			assert.Equal(t, tt.duplicate, pg.IsDuplicateKeyError(tt.err))
		})
	}
}

func TestConnect_Validation(t *testing.T) {
	t.Parallel()

	_, err := pg.Connect(context.Background(), pg.Config{})
	assert.ErrorIs(t, err, pg.ErrEmptyConnectionString)

	_, err = pg.Connect(context.Background(), pg.Config{ConnectionString: "postgres://%zz"})
	assert.ErrorIs(t, err, pg.ErrFailedToParseDBConfig)
}
