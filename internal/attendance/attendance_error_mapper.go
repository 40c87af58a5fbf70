package attendance

import (
	"errors"
	"strings"

	"staff-tracker/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrConcurrentMark means another request inserted the same (employee, date)
// slot between our lookup and insert. A retry lands on the update path.
var ErrConcurrentMark = apperror.New(
	apperror.CodeConflict,
	"Attendance for this employee and date was just recorded, retry to overwrite",
	409,
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_attendance_employee_date" {
			return ErrConcurrentMark
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_attendance_employee_date") {
		return ErrConcurrentMark
	}

	return err
}
