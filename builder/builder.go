package builder

import "context"

// Builder builds a T from the values collected so far.
type Builder[T any] interface {
	Build(ctx context.Context) (T, error)
}
