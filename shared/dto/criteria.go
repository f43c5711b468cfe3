package dto

import (
	"airline/shared/failure"
	"fmt"
	"strings"
)

// Criterion is one optional search parameter. It counts as supplied when Value is not blank.
type Criterion struct {
	Name  string
	Value string
}

// Supplied reports whether the caller provided the criterion.
func (c Criterion) Supplied() bool {
	return strings.TrimSpace(c.Value) != ""
}

// RequireAnyOf rejects a search in which none of the criteria were supplied.
func RequireAnyOf(criteria ...Criterion) error {
	names := make([]string, 0, len(criteria))

	for _, criterion := range criteria {
		if criterion.Supplied() {
			return nil
		}

		names = append(names, criterion.Name)
	}

	return failure.BadRequestFromString(fmt.Sprintf("At least one parameter (%s) must be provided.", strings.Join(names, " or "))) //nolint:wrapcheck
}
