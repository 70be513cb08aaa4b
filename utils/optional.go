package utils

// Optional holds a value that may be absent. The zero value is absent.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an absent value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome returns true if a value is present.
func (o Optional[T]) IsSome() bool {
	return o.ok
}

// Or returns the value if present, otherwise the fallback.
func (o Optional[T]) Or(fallback T) T {
	if o.ok {
		return o.value
	}

	return fallback
}
