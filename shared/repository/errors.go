package repository

import (
	"airline/shared/constant"
	"airline/shared/failure"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// translateError turns constraint violations reported by Postgres into data integrity failures.
// Any other error is returned unchanged.
func translateError(entity string, err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch string(pqErr.Code) {
	case constant.PqErrorCodeUniqueViolation:
		return failure.DataIntegrity(fmt.Sprintf("Duplicate %s: %s", entity, constraintDetail(pqErr))) //nolint:wrapcheck
	case constant.PqErrorCodeFkViolation:
		return failure.DataIntegrity(fmt.Sprintf("%s is referenced by or references a missing record: %s", entity, constraintDetail(pqErr))) //nolint:wrapcheck
	default:
		return err
	}
}

func constraintDetail(pqErr *pq.Error) string {
	if pqErr.Detail != "" {
		return pqErr.Detail
	}

	return pqErr.Constraint
}
