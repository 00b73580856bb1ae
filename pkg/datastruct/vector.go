package datastruct

import (
	"context"
	"iter"

	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

// Vector is an index addressable, contiguous and resizable collection.
//
// The capacity grows to capacity*3/2+1 whenever an insertion finds the vector full,
// and shrinks to capacity*2/3+1 when a removal brings the size down to exactly that value.
// Every operation validates its arguments before it mutates anything,
// so a failed call leaves the vector as it was.
//
// A Vector is not safe for concurrent use.
type Vector[T any] struct {
	slots      []T
	size       int
	destructor func(T)
	comparator func(a, b T) int
	allocator  Allocator[T]
	released   bool
}

// NewVector creates an empty Vector with room for capacity elements.
//
// A zero capacity is valid, the first insertion will expand it.
func NewVector[T any](capacity int, opts ...Option[T]) (*Vector[T], error) {
	if capacity < 0 {
		return nil, ErrInvalidArgument.F("negative capacity: %d", capacity)
	}
	return newVector(capacity, toConfig(opts))
}

func newVector[T any](capacity int, c Config[T]) (*Vector[T], error) {
	alloc := c.allocator()
	slots, err := alloc.Alloc(capacity)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{
		slots:      slots,
		destructor: c.Destructor,
		comparator: c.Comparator,
		allocator:  alloc,
	}, nil
}

func (v *Vector[T]) config() Config[T] {
	return Config[T]{
		Destructor: v.destructor,
		Comparator: v.comparator,
		Allocator:  v.allocator,
	}
}

// Len returns the number of elements in the vector.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}
	return len(v.slots)
}

func (v *Vector[T]) check() error {
	if v == nil {
		return ErrInvalidArgument.F("nil vector")
	}
	if v.released {
		return ErrReleased
	}
	return nil
}

func (v *Vector[T]) checkIndex(index int) error {
	if index < 0 || v.size <= index {
		return ErrIndexOutOfRange.F("index %d with size %d", index, v.size)
	}
	return nil
}

func growCapacity(capacity int) int { return capacity*3/2 + 1 }

func shrinkCapacity(capacity int) int { return capacity*2/3 + 1 }

// realloc moves the live elements into a freshly allocated slot array.
// The vector is untouched when the allocation fails.
func (v *Vector[T]) realloc(capacity int, reason string) error {
	slots, err := v.allocator.Alloc(capacity)
	if err != nil {
		return err
	}
	copy(slots, v.slots[:v.size])
	logger.Debug(v.logContext(), "vector capacity changed",
		logging.Field("from", len(v.slots)),
		logging.Field("to", capacity),
		logging.Field("reason", reason))
	v.slots = slots
	return nil
}

// reserve makes room for n elements.
// The capacity follows the same growth steps as consecutive single insertions would,
// but it is allocated at once.
func (v *Vector[T]) reserve(n int) error {
	capacity := len(v.slots)
	for capacity < n {
		capacity = growCapacity(capacity)
	}
	if capacity == len(v.slots) {
		return nil
	}
	return v.realloc(capacity, "expand")
}

// contract is opportunistic, a failed shrink keeps the current slots.
func (v *Vector[T]) contract() {
	if err := v.realloc(shrinkCapacity(len(v.slots)), "contract"); err != nil {
		logger.Warn(v.logContext(), "vector contraction failed", logging.ErrField(err))
	}
}

// ResizeBy changes the capacity by delta slots.
// The capacity can't drop below one, nor below the current size.
func (v *Vector[T]) ResizeBy(delta int) error {
	if err := v.check(); err != nil {
		return err
	}
	capacity := len(v.slots) + delta
	if capacity < 1 {
		return ErrInvalidArgument.F("capacity %d%+d is below one", len(v.slots), delta)
	}
	if capacity < v.size {
		return ErrInvalidArgument.F("capacity %d%+d can't hold %d elements", len(v.slots), delta, v.size)
	}
	if delta == 0 {
		return nil
	}
	return v.realloc(capacity, "resize")
}

// Insert puts val at index, and shifts the elements from index onwards one slot to the right.
// Inserting at Len() is the same as appending.
func (v *Vector[T]) Insert(index int, val T) error {
	if err := v.check(); err != nil {
		return err
	}
	if index < 0 || v.size < index {
		return ErrIndexOutOfRange.F("insert at %d with size %d", index, v.size)
	}
	if err := v.reserve(v.size + 1); err != nil {
		return err
	}
	copy(v.slots[index+1:v.size+1], v.slots[index:v.size])
	v.slots[index] = val
	v.size++
	return nil
}

// Append adds the values to the end of the vector.
// Either every value is appended or, on error, none of them.
func (v *Vector[T]) Append(vs ...T) error {
	if err := v.check(); err != nil {
		return err
	}
	if err := v.reserve(v.size + len(vs)); err != nil {
		return err
	}
	copy(v.slots[v.size:], vs)
	v.size += len(vs)
	return nil
}

func (v *Vector[T]) Lookup(index int) (T, bool) {
	if v.check() != nil || v.checkIndex(index) != nil {
		var zero T
		return zero, false
	}
	return v.slots[index], true
}

// Get returns the element at index, or the zero value when index is out of range.
func (v *Vector[T]) Get(index int) T {
	val, _ := v.Lookup(index)
	return val
}

func (v *Vector[T]) Set(index int, val T) error {
	if err := v.check(); err != nil {
		return err
	}
	if err := v.checkIndex(index); err != nil {
		return err
	}
	v.slots[index] = val
	return nil
}

// Remove takes out the element at index and hands it back to the caller.
// The destructor is not invoked.
func (v *Vector[T]) Remove(index int) (T, error) {
	var zero T
	if err := v.check(); err != nil {
		return zero, err
	}
	if err := v.checkIndex(index); err != nil {
		return zero, err
	}
	val := v.slots[index]
	copy(v.slots[index:v.size-1], v.slots[index+1:v.size])
	v.size--
	v.slots[v.size] = zero
	if v.size == shrinkCapacity(len(v.slots)) {
		v.contract()
	}
	return val, nil
}

// Purge removes the element at index and destroys it with the destructor.
func (v *Vector[T]) Purge(index int) error {
	if err := v.check(); err != nil {
		return err
	}
	if v.destructor == nil {
		return ErrPreconditionViolation.F("purge needs a destructor")
	}
	val, err := v.Remove(index)
	if err != nil {
		return err
	}
	v.destructor(val)
	return nil
}

// Free destroys every element in ascending index order, then releases the vector.
// Without a destructor it fails, and the vector stays usable.
func (v *Vector[T]) Free() error {
	if err := v.check(); err != nil {
		return err
	}
	if v.destructor == nil {
		return ErrPreconditionViolation.F("free needs a destructor")
	}
	for i := 0; i < v.size; i++ {
		v.destructor(v.slots[i])
	}
	v.release()
	return nil
}

// Release drops the slot storage but leaves the elements to the caller.
// Releasing twice is a no-op.
func (v *Vector[T]) Release() {
	if v.check() != nil {
		return
	}
	v.release()
}

func (v *Vector[T]) release() {
	logger.Debug(v.logContext(), "vector released", logging.Field("size", v.size))
	v.slots = nil
	v.size = 0
	v.released = true
}

// ToSlice returns a copy of the elements.
func (v *Vector[T]) ToSlice() []T {
	if v.check() != nil {
		return nil
	}
	vs := make([]T, v.size)
	copy(vs, v.slots[:v.size])
	return vs
}

func (v *Vector[T]) Iter() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if v.check() != nil {
			return
		}
		for i := 0; i < v.size; i++ {
			if !yield(i, v.slots[i]) {
				return
			}
		}
	}
}

func (v *Vector[T]) logContext() context.Context {
	return logging.ContextWith(context.Background(), logging.Field("container", "vector"))
}
