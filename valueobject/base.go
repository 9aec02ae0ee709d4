package valueobject

import (
	"golang.org/x/exp/slices"
)

// Base stores the fields of a value object in insertion order and provides the
// read-only access shared by every concrete value object.
//
// Unlike an array-access protocol with no-op writes, Base has no mutating
// method at all. A derived variant is produced with with, which copies.
type Base struct {
	keys   []string
	values map[string]string
}

type field struct {
	name  string
	value string
}

func newBase(fields ...field) Base {
	b := Base{
		keys:   make([]string, 0, len(fields)),
		values: make(map[string]string, len(fields)),
	}
	for _, f := range fields {
		if _, ok := b.values[f.name]; !ok {
			b.keys = append(b.keys, f.name)
		}
		b.values[f.name] = f.value
	}
	return b
}

// with returns a copy of b where key holds value. A new key is appended.
func (b Base) with(key string, value string) Base {
	values := make(map[string]string, len(b.values)+1)
	for k, v := range b.values {
		values[k] = v
	}
	keys := slices.Clone(b.keys)
	if _, ok := values[key]; !ok {
		keys = append(keys, key)
	}
	values[key] = value
	return Base{keys: keys, values: values}
}

func (b Base) Has(key string) bool {
	_, ok := b.values[key]
	return ok
}

func (b Base) Get(key string) (string, error) {
	v, ok := b.values[key]
	if !ok {
		return "", newMissingFieldError(key)
	}
	return v, nil
}

func (b Base) Field(name string) (string, error) {
	return b.Get(name)
}

func (b Base) Export() map[string]string {
	m := make(map[string]string, len(b.values))
	for k, v := range b.values {
		m[k] = v
	}
	return m
}

func (b Base) Keys() []string {
	return slices.Clone(b.keys)
}

func (b Base) Len() int {
	return len(b.keys)
}

// Range calls f for every field in insertion order until f returns false.
func (b Base) Range(f func(key, value string) bool) {
	for _, k := range b.keys {
		if !f(k, b.values[k]) {
			return
		}
	}
}

// Equal reports whether b and other hold the same fields in the same order.
func (b Base) Equal(other Base) bool {
	if !slices.Equal(b.keys, other.keys) {
		return false
	}
	for _, k := range b.keys {
		if b.values[k] != other.values[k] {
			return false
		}
	}
	return true
}

// value is used by typed accessors for fields set at construction.
func (b Base) value(key string) string {
	return b.values[key]
}
