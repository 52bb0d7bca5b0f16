package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var (
	ErrDuplicate  = errors.New("duplicate key")
	ErrForeignKey = errors.New("foreign key violation")
)

// translate maps postgres constraint violations onto ErrDuplicate and
// ErrForeignKey while keeping the driver error in the chain.
func translate(err error) error {
	if err == nil {
		return nil
	}

	code := ""
	var pgErr *pgconn.PgError
	var pqErr *pq.Error
	switch {
	case errors.As(err, &pgErr):
		code = pgErr.Code
	case errors.As(err, &pqErr):
		code = string(pqErr.Code)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		code = pgUniqueViolation
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		code = pgForeignKeyViolation
	}

	switch code {
	case pgUniqueViolation:
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrForeignKey, err)
	}
	return err
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
