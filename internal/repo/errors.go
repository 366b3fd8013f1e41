// Package repo implements the data persistence layer for questions and
// answers, backed by GORM. This file defines the storage error taxonomy.
//
// Repository functions return exactly two classes of error:
//
//   - *InvalidIDError when a supplied identifier string is not a well-formed
//     UUID, or when the database rejects an operation because the identifier
//     does not reference a usable row (foreign-key violation). Both causes
//     collapse into one class on purpose: callers only need to know that the
//     identifier they supplied does not denote a usable record.
//   - The raw underlying error for everything else (connectivity, unrelated
//     constraint failures, serialization). The cause is propagated unwrapped
//     so the service layer can log it in full.
package repo

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgForeignKeyViolation is the Postgres SQLSTATE for foreign_key_violation.
const pgForeignKeyViolation = "23503"

// InvalidIDError reports that a supplied identifier is malformed or does not
// reference a usable record.
type InvalidIDError struct {
	Msg string
}

// Error returns the client-safe message carried by the error.
func (e *InvalidIDError) Error() string { return e.Msg }

// IsInvalidID reports whether err is (or wraps) an InvalidIDError.
func IsInvalidID(err error) bool {
	var ie *InvalidIDError
	return errors.As(err, &ie)
}

// isForeignKeyViolation detects referential-integrity rejections across the
// supported drivers.
//
//   - Postgres (pgx): SQLSTATE 23503 on the pgconn error.
//   - GORM: ErrForeignKeyViolated when the dialector translates errors.
//   - SQLite (glebarez): only the message text is available.
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return true
	}
	return strings.Contains(strings.ToUpper(err.Error()), "FOREIGN KEY CONSTRAINT")
}
