package ddd

// ValueObject as described in the DDD book.
// Value objects compare by the values of their attributes, they don't have an identity.
type ValueObject[T any] interface {
	SameValueAs(other T) bool
}

// Distinct returns values without the ones that have the same value as an earlier one.
func Distinct[T ValueObject[T]](values []T) []T {
	result := make([]T, 0, len(values))
	for _, v := range values {
		if !Contains(result, v) {
			result = append(result, v)
		}
	}
	return result
}

// Contains reports whether values holds one with the same value as v.
func Contains[T ValueObject[T]](values []T, v T) bool {
	for _, other := range values {
		if other.SameValueAs(v) {
			return true
		}
	}
	return false
}
