package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mbaye/kaalis/internal/domain"
)

// PostgreSQL error codes.
const (
	pgErrUniqueViolation      = "23505"
	pgErrDeadlock             = "40P01"
	pgErrSerializationFailure = "40001"
)

// mapPgError translates constraint violations into domain errors. Unique
// violations on entry references and idempotency keys are the storage-level
// backstop for the idempotency contract.
func mapPgError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
		return domain.ErrDuplicateReference
	}

	return err
}
