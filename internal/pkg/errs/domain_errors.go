package errs

// Error kinds shared by every layer. Capacity kinds live in domain/capacity.
var (
	ErrInvalidIdentifier  = New("invalid identifier")
	ErrNotFound           = New("not found")
	ErrUnauthorized       = New("actor is not the resource owner")
	ErrTransactionFailure = New("transaction failure")
)

// IsRetryable reports whether the caller may retry the same input unchanged.
// Only transaction failures qualify; every other kind is permanent.
func IsRetryable(err error) bool {
	return err != nil && Is(err, ErrTransactionFailure)
}
