package shared

import (
	"signup-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

// ParseID turns a caller-supplied identifier into a uuid.
func ParseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, errs.Mark(errs.Wrapf(err, "parse id %q", raw), errs.ErrInvalidIdentifier)
	}
	return id, nil
}
