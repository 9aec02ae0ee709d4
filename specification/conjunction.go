package specification

import "context"

// conjunction is satisfied when every one of Specs is. An empty conjunction is always satisfied.
type conjunction[T any] struct {
	Specs []Specification[T]
}

func (spec *conjunction[T]) IsSatisfiedBy(ctx context.Context, t T) bool {
	for _, spec := range spec.Specs {
		if !spec.IsSatisfiedBy(ctx, t) {
			return false
		}
	}
	return true
}
