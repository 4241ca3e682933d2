package commands

import (
	"errors"

	"signup-engine/internal/domain/capacity"
	"signup-engine/internal/domain/session"
	"signup-engine/internal/infra"
	"signup-engine/internal/pkg/errs"
)

// Public failure kinds. Callers match them with errors.Is.
var (
	ErrInvalidIdentifier           = errs.ErrInvalidIdentifier
	ErrNotFound                    = errs.ErrNotFound
	ErrUnauthorized                = errs.ErrUnauthorized
	ErrTransactionFailure          = errs.ErrTransactionFailure
	ErrInvalidRequestShape         = capacity.ErrInvalidRequestShape
	ErrExceedsTotalCapacity        = capacity.ErrExceedsTotalCapacity
	ErrExceedsUnrestrictedCapacity = capacity.ErrExceedsUnrestrictedCapacity
	ErrExceedsCategoryCapacity     = capacity.ErrExceedsCategoryCapacity

	ErrInvalidSessionDetails = errs.New("invalid session details")
)

func notFound(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrNotFound)
	}
	return err
}

func invalidSession(err error) error {
	switch {
	case errors.Is(err, session.ErrMissingVenue),
		errors.Is(err, session.ErrEmptyTimeSlot),
		errors.Is(err, session.ErrEmptyNetHeight),
		errors.Is(err, session.ErrEmptyLevel),
		errors.Is(err, session.ErrFieldTooLong),
		errors.Is(err, session.ErrNegativeFee),
		errors.Is(err, session.ErrFeeTooLarge),
		errors.Is(err, session.ErrInvalidActivityDate),
		errors.Is(err, capacity.ErrNegativeCapacity),
		errors.Is(err, capacity.ErrCapacityTooLarge):
		return errs.Mark(err, ErrInvalidSessionDetails)
	default:
		return err
	}
}
