package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// BusinessError is an expected rule violation identified by a stable code.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	return CodeOf(err) == code
}

// CodeOf returns the business code wrapped in err, or "".
func CodeOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

// IsExclusionConflict reports a Postgres unique or exclusion violation.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" || pgErr.Code == "23P01"
	}
	return false
}
