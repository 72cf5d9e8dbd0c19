package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SQLSTATE codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	codeUniqueViolation  = "23505"
	codeNotNullViolation = "23502"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// isUniqueConstraintViolation covers both GORM's translated error and the raw driver error.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || pgErrorCode(err) == codeUniqueViolation
}

func isNotNullConstraintViolation(err error) bool {
	return pgErrorCode(err) == codeNotNullViolation
}
