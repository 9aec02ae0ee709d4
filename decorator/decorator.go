package decorator

// Decorator derives a new object from obj. For immutable values a decorator
// returns a modified copy and leaves obj untouched.
type Decorator[T any] interface {
	// Decorate returns obj with some change applied.
	Decorate(obj T) T
}

// The DecoratorFunc type is an adapter to allow the use of ordinary functions as Decorator.
type DecoratorFunc[T any] func(obj T) T

// Decorate call f(obj).
func (f DecoratorFunc[T]) Decorate(obj T) T {
	return f(obj)
}

// Chain decorates the given object with all decorators. The first decorator
// is applied last.
func Chain[T any](obj T, decorators ...Decorator[T]) T {
	for i := len(decorators) - 1; i >= 0; i-- {
		if decorators[i] == nil {
			continue
		}
		obj = decorators[i].Decorate(obj)
	}
	return obj
}
