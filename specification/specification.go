package specification

import "context"

// Specification interface.
// Use New for creating specifications from a predicate, and
// combine them with And, Or, Not, Conjunction and Disjunction.
type Specification[T any] interface {

	// IsSatisfiedBy check if t is satisfied by the specification.
	IsSatisfiedBy(ctx context.Context, t T) bool

	// And create a new specification that is the AND operation of the current specification and
	// another specification.
	And(another Specification[T]) Specification[T]

	// Or create a new specification that is the OR operation of the current specification and
	// another specification.
	Or(another Specification[T]) Specification[T]

	// Not create a new specification that is the NOT operation of the current specification.
	Not() Specification[T]

	// Conjunction create a new specification satisfied when the current specification and all others are.
	Conjunction(others ...Specification[T]) Specification[T]

	// Disjunction create a new specification satisfied when the current specification or any other is.
	Disjunction(others ...Specification[T]) Specification[T]
}

func New[T any](fn func(ctx context.Context, t T) bool) Specification[T] {
	return wrap[T](predicateFunc[T](fn))
}

func And[T any](left Specification[T], right Specification[T]) Specification[T] {
	return wrap[T](&and[T]{Left: left, Right: right})
}

func Or[T any](left Specification[T], right Specification[T]) Specification[T] {
	return wrap[T](&or[T]{Left: left, Right: right})
}

func Not[T any](spec Specification[T]) Specification[T] {
	return wrap[T](&not[T]{Spec: spec})
}

func Conjunction[T any](specs ...Specification[T]) Specification[T] {
	return wrap[T](&conjunction[T]{Specs: specs})
}

func Disjunction[T any](specs ...Specification[T]) Specification[T] {
	return wrap[T](&disjunction[T]{Specs: specs})
}
