package datastruct

import "go.llib.dev/frameless/port/option"

// Config holds the construction time settings of a container.
type Config[T any] struct {
	// Destructor releases the resources owned by an element.
	// It is required by Free and the Purge family of operations.
	Destructor func(T)
	// Comparator reports element equality by returning 0.
	// Any function with the shape of cmp.Compare fits.
	// It is required by Contains, Index and Occurrences.
	Comparator func(a, b T) int
	// Allocator provides the Vector slot storage.
	//
	// Default: HeapAllocator
	Allocator Allocator[T]
}

type Option[T any] interface {
	option.Option[Config[T]]
}

var _ Option[int] = Config[int]{}

// Configure lets a Config act as an Option, non-zero fields override the target.
func (c Config[T]) Configure(o *Config[T]) {
	if c.Destructor != nil {
		o.Destructor = c.Destructor
	}
	if c.Comparator != nil {
		o.Comparator = c.Comparator
	}
	if c.Allocator != nil {
		o.Allocator = c.Allocator
	}
}

func (c Config[T]) allocator() Allocator[T] {
	if c.Allocator == nil {
		return HeapAllocator[T]{}
	}
	return c.Allocator
}

func toConfig[T any](opts []Option[T]) Config[T] {
	var c Config[T]
	for _, opt := range opts {
		opt.Configure(&c)
	}
	return c
}

func WithDestructor[T any](fn func(T)) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) { c.Destructor = fn })
}

// WithNopDestructor configures a destructor that leaves elements alone.
// It is the cleanup policy for values that own no resources, such as numbers,
// and it makes Free usable on such containers.
func WithNopDestructor[T any]() Option[T] {
	return WithDestructor[T](func(T) {})
}

// Disposable is implemented by elements that know how to release their own resources.
type Disposable interface {
	Dispose()
}

// WithDisposer configures a destructor that calls Dispose on elements implementing Disposable.
// Elements that don't implement it are left alone.
func WithDisposer[T any]() Option[T] {
	return WithDestructor[T](func(v T) {
		if d, ok := any(v).(Disposable); ok {
			d.Dispose()
		}
	})
}

func WithComparator[T any](fn func(a, b T) int) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) { c.Comparator = fn })
}

func WithAllocator[T any](a Allocator[T]) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) { c.Allocator = a })
}

// Equal is a comparator for comparable types.
// It reports 0 for equal values and 1 otherwise, which is all the search operations need.
func Equal[T comparable](a, b T) int {
	if a == b {
		return 0
	}
	return 1
}
