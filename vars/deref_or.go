package vars

// DerefOr returns def for a nil pointer
func DerefOr[T any](ptr *T, def T) T {
	if ptr == nil {
		return def
	}
	return *ptr
}
