// Package options provides the generic functional-option machinery shared by
// the configurable types in this module. Concrete packages declare type
// aliases such as
//
//	type DocumentOption = options.Option[*DocumentConfig]
//
// and expose WithX constructors built on New and NoError.
package options

// Option configures a target of type T and may reject invalid settings.
type Option[T any] interface {
	apply(T) error
}

// optionFunc adapts a plain function into an Option.
type optionFunc[T any] struct {
	fn func(T) error
}

func (o optionFunc[T]) apply(target T) error {
	return o.fn(target)
}

// New wraps a fallible configuration function into an Option.
func New[T any](fn func(T) error) Option[T] {
	return optionFunc[T]{fn: fn}
}

// NoError wraps an infallible configuration function into an Option.
func NoError[T any](fn func(T)) Option[T] {
	return optionFunc[T]{fn: func(target T) error {
		fn(target)
		return nil
	}}
}

// Apply applies opts to target in order, stopping at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
