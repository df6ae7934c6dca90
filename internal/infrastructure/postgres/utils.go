package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código de error PostgreSQL para unique_violation.
const pgUniqueViolation = "23505"

// isUniqueViolation reporta si err proviene de un constraint único
// (inserción de un producto con id ya existente).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
