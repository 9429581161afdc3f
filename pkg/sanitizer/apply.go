package sanitizer

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, fn := range transforms {
		value = fn(value)
	}
	return value
}

// Compose chains transforms into one function, e.g. a prettifier built from
// Humanize and a title-casing step.
func Compose[T any](transforms ...func(T) T) func(T) T {
	chain := append([]func(T) T(nil), transforms...)
	return func(value T) T {
		return Apply(value, chain...)
	}
}
