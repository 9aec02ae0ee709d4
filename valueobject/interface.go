package valueobject

// ValueObject is a read-only, field addressable snapshot handed to templates.
// There is no way to set or unset a field: every change goes through a wither
// that returns a new value object.
type ValueObject interface {
	// Has reports whether key is present. An empty value is present.
	Has(key string) bool

	// Get returns the value stored at key, or an error wrapping ErrFieldNotFound.
	Get(key string) (string, error)

	// Field looks a field up by name, the way a template calls obj.name().
	// It agrees with Get for every key.
	Field(name string) (string, error)

	// Export returns a copy of all fields.
	Export() map[string]string

	// Keys returns the field names in insertion order.
	Keys() []string
}

var (
	_ ValueObject = Base{}
	_ ValueObject = (*Date)(nil)
	_ ValueObject = (*File)(nil)
)
