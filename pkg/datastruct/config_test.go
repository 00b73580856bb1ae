package datastruct_test

import (
	"testing"

	"github.com/nmds/nmds/pkg/datastruct"
	"go.llib.dev/testcase/assert"
)

func TestHeapAllocator(t *testing.T) {
	t.Run("zero value allocates any size", func(t *testing.T) {
		slots, err := datastruct.HeapAllocator[int]{}.Alloc(1024)
		assert.NoError(t, err)
		assert.Equal(t, 1024, len(slots))
	})
	t.Run("negative size fails", func(t *testing.T) {
		_, err := datastruct.HeapAllocator[int]{}.Alloc(-1)
		assert.ErrorIs(t, datastruct.ErrAllocationFailure, err)
	})
	t.Run("limit is enforced", func(t *testing.T) {
		a := datastruct.HeapAllocator[int]{Limit: 8}
		_, err := a.Alloc(8)
		assert.NoError(t, err)
		_, err = a.Alloc(9)
		assert.ErrorIs(t, datastruct.ErrAllocationFailure, err)
	})
}

func TestConfig(t *testing.T) {
	t.Run("a Config can be used as an option", func(t *testing.T) {
		var destroyed []int
		v, err := datastruct.NewVector[int](1, datastruct.Config[int]{
			Destructor: func(n int) { destroyed = append(destroyed, n) },
			Comparator: datastruct.Equal[int],
			Allocator:  datastruct.HeapAllocator[int]{Limit: 2},
		})
		assert.NoError(t, err)
		assert.NoError(t, v.Append(1, 2))
		assert.ErrorIs(t, datastruct.ErrAllocationFailure, v.Append(3))

		ok, err := v.Contains(2)
		assert.NoError(t, err)
		assert.True(t, ok)

		assert.NoError(t, v.Free())
		assert.Equal(t, []int{1, 2}, destroyed)
	})
	t.Run("later options win", func(t *testing.T) {
		var calls []string
		v, err := datastruct.NewVector[int](1,
			datastruct.WithDestructor(func(int) { calls = append(calls, "first") }),
			datastruct.WithDestructor(func(int) { calls = append(calls, "second") }))
		assert.NoError(t, err)
		assert.NoError(t, v.Append(1))
		assert.NoError(t, v.Free())
		assert.Equal(t, []string{"second"}, calls)
	})
	t.Run("Equal", func(t *testing.T) {
		assert.Equal(t, 0, datastruct.Equal("a", "a"))
		assert.NotEqual(t, 0, datastruct.Equal("a", "b"))
	})
}
