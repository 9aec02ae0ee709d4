package specification

import "context"

// disjunction is satisfied when any one of Specs is. An empty disjunction is never satisfied.
type disjunction[T any] struct {
	Specs []Specification[T]
}

func (spec *disjunction[T]) IsSatisfiedBy(ctx context.Context, t T) bool {
	for _, spec := range spec.Specs {
		if spec.IsSatisfiedBy(ctx, t) {
			return true
		}
	}
	return false
}
