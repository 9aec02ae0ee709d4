package factory

import "context"

// Factory creates a T from a parameter P.
type Factory[T any, P any] interface {
	Create(ctx context.Context, param P) (T, error)
}

// The Func type is an adapter to allow the use of ordinary functions as Factory.
type Func[T any, P any] func(ctx context.Context, param P) (T, error)

// Create call f(ctx, param).
func (f Func[T, P]) Create(ctx context.Context, param P) (T, error) {
	return f(ctx, param)
}

// CreateAll creates one T per param, in order. It stops at the first error.
func CreateAll[T any, P any](ctx context.Context, f Factory[T, P], params []P) ([]T, error) {
	results := make([]T, 0, len(params))
	for _, param := range params {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t, err := f.Create(ctx, param)
		if err != nil {
			return nil, err
		}
		results = append(results, t)
	}
	return results, nil
}
