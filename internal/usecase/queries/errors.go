package queries

import "signup-engine/internal/pkg/errs"

// ErrInvalidFilter reports a malformed listing filter such as a bad date.
var ErrInvalidFilter = errs.New("invalid filter")
