package models

// Optional marks a patch field as provided or absent. For pointer types an
// Optional that is Set with a nil Value means "clear the field".
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns a provided Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Clear returns a provided Optional holding nil.
func Clear[T any]() Optional[*T] {
	return Optional[*T]{Set: true}
}
