package valueobject

import (
	"context"
	"strings"

	"github.com/go-leo/themevalue/specification"
)

// Select returns the items satisfying spec, in order.
func Select[T ValueObject](ctx context.Context, items []T, spec specification.Specification[T]) []T {
	var selected []T
	for _, item := range items {
		if spec.IsSatisfiedBy(ctx, item) {
			selected = append(selected, item)
		}
	}
	return selected
}

// First returns the first item satisfying spec.
func First[T ValueObject](ctx context.Context, items []T, spec specification.Specification[T]) (T, bool) {
	for _, item := range items {
		if spec.IsSatisfiedBy(ctx, item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FieldEquals is satisfied by value objects holding value at key.
func FieldEquals[T ValueObject](key string, value string) specification.Specification[T] {
	return specification.New[T](func(ctx context.Context, t T) bool {
		v, err := t.Get(key)
		return err == nil && v == value
	})
}

func HasLanguageCode(code string) specification.Specification[*File] {
	return FieldEquals[*File](FieldLanguageCode, code)
}

func HasExtension(ext string) specification.Specification[*File] {
	ext = strings.TrimPrefix(ext, ".")
	return specification.New[*File](func(ctx context.Context, f *File) bool {
		return strings.EqualFold(f.Extension(), ext)
	})
}

func HasVariant(variant string) specification.Specification[*Date] {
	return FieldEquals[*Date](FieldVariant, variant)
}

// Translation picks the file in language code, falling back to the first
// file without a language.
func Translation(ctx context.Context, files []*File, code string) (*File, bool) {
	if f, ok := First(ctx, files, HasLanguageCode(code)); ok {
		return f, true
	}
	return First(ctx, files, HasLanguageCode(""))
}
