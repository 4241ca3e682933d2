package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalesceIf behaves like Coalesce when editable is true and always returns fallback otherwise.
func CoalesceIf[T any](editable bool, ptr *T, fallback T) T {
	if !editable {
		return fallback
	}
	return Coalesce(ptr, fallback)
}

// Changed reports whether ptr carries a value different from current.
func Changed[T comparable](ptr *T, current T) bool {
	return ptr != nil && *ptr != current
}
