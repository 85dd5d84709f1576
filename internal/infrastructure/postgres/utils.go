package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// nullable mapea string vacío de dominio a NULL en la columna.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// fromNullable mapea NULL de columna a string vacío de dominio.
func fromNullable(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
