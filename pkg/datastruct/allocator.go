package datastruct

// Allocator provides slot storage for a Vector.
//
// Alloc must return a slice with exactly n zero value elements, or an error.
// Growing and shrinking a Vector is always done by allocating a new slot array
// and copying the live elements over, so a failed allocation never touches the existing slots.
type Allocator[T any] interface {
	Alloc(n int) ([]T, error)
}

// HeapAllocator delegates to the Go runtime.
type HeapAllocator[T any] struct {
	// Limit is the largest slot count the allocator hands out.
	// Zero means no limit.
	Limit int
}

func (a HeapAllocator[T]) Alloc(n int) ([]T, error) {
	if n < 0 {
		return nil, ErrAllocationFailure.F("negative slot count: %d", n)
	}
	if 0 < a.Limit && a.Limit < n {
		return nil, ErrAllocationFailure.F("%d slots requested, limit is %d", n, a.Limit)
	}
	return make([]T, n), nil
}
