package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, translate(nil))
	})

	t.Run("pgx unique violation", func(t *testing.T) {
		src := &pgconn.PgError{Code: "23505", ConstraintName: "uq_project_members_pair"}
		err := translate(fmt.Errorf("insert: %w", src))
		assert.ErrorIs(t, err, ErrDuplicate)

		var pgErr *pgconn.PgError
		assert.True(t, errors.As(err, &pgErr))
		assert.Equal(t, "uq_project_members_pair", pgErr.ConstraintName)
	})

	t.Run("pgx foreign key violation", func(t *testing.T) {
		err := translate(&pgconn.PgError{Code: "23503"})
		assert.ErrorIs(t, err, ErrForeignKey)
		assert.NotErrorIs(t, err, ErrDuplicate)
	})

	t.Run("lib/pq unique violation", func(t *testing.T) {
		err := translate(&pq.Error{Code: "23505"})
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("gorm translated errors", func(t *testing.T) {
		assert.ErrorIs(t, translate(gorm.ErrDuplicatedKey), ErrDuplicate)
		assert.ErrorIs(t, translate(gorm.ErrForeignKeyViolated), ErrForeignKey)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		src := &pgconn.PgError{Code: "40001"}
		err := translate(src)
		assert.Same(t, src, err)

		plain := errors.New("connection reset")
		assert.Equal(t, plain, translate(plain))
	})
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(gorm.ErrRecordNotFound))
	assert.True(t, IsNotFound(fmt.Errorf("load: %w", gorm.ErrRecordNotFound)))
	assert.False(t, IsNotFound(errors.New("boom")))
}
