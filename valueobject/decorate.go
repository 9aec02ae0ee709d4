package valueobject

import "github.com/go-leo/themevalue/decorator"

// SetVariant is a decorator applying WithVariant.
func SetVariant(variant string) decorator.Decorator[*Date] {
	return decorator.DecoratorFunc[*Date](func(d *Date) *Date {
		return d.WithVariant(variant)
	})
}

// SetLanguageCode is a decorator applying WithLanguageCode.
func SetLanguageCode(code string) decorator.Decorator[*File] {
	return decorator.DecoratorFunc[*File](func(f *File) *File {
		return f.WithLanguageCode(code)
	})
}

// DefaultLanguageCode sets code on files that have no language code.
func DefaultLanguageCode(code string) decorator.Decorator[*File] {
	return decorator.DecoratorFunc[*File](func(f *File) *File {
		if f.LanguageCode() != "" || code == "" {
			return f
		}
		return f.WithLanguageCode(code)
	})
}

// SetTitle is a decorator applying WithTitle.
func SetTitle(title string) decorator.Decorator[*File] {
	return decorator.DecoratorFunc[*File](func(f *File) *File {
		return f.WithTitle(title)
	})
}
