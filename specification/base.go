package specification

import "context"

type predicate[T any] interface {
	IsSatisfiedBy(ctx context.Context, t T) bool
}

type predicateFunc[T any] func(ctx context.Context, t T) bool

func (f predicateFunc[T]) IsSatisfiedBy(ctx context.Context, t T) bool {
	return f(ctx, t)
}

// base gives a predicate the combinators of Specification.
type base[T any] struct {
	predicate[T]
}

func wrap[T any](p predicate[T]) Specification[T] {
	return &base[T]{predicate: p}
}

func (spec *base[T]) And(another Specification[T]) Specification[T] {
	return And[T](spec, another)
}

func (spec *base[T]) Or(another Specification[T]) Specification[T] {
	return Or[T](spec, another)
}

func (spec *base[T]) Not() Specification[T] {
	return Not[T](spec)
}

func (spec *base[T]) Conjunction(others ...Specification[T]) Specification[T] {
	return Conjunction[T](append([]Specification[T]{spec}, others...)...)
}

func (spec *base[T]) Disjunction(others ...Specification[T]) Specification[T] {
	return Disjunction[T](append([]Specification[T]{spec}, others...)...)
}
