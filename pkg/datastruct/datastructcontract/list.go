package datastructcontract

import (
	"testing"

	"github.com/nmds/nmds/pkg/datastruct"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

// List is the behaviour every datastruct.List implementation shares.
//
// Usage:
//
//	s.Context("implements List", datastructcontract.List(makeList, makeValue).Spec)
func List[T any](
	mk func(tb testing.TB, opts ...datastruct.Option[T]) datastruct.List[T],
	mkV func(tb testing.TB) T,
) contract.Contract {
	s := testcase.NewSpec(nil)

	makeValues := func(t *testcase.T) []T {
		vs := make([]T, t.Random.IntBetween(3, 7))
		for i := range vs {
			vs[i] = mkV(t)
		}
		return vs
	}

	s.Test("appended values are kept in order", func(t *testcase.T) {
		list := mk(t)
		assert.Equal(t, 0, list.Len())

		vs := makeValues(t)
		assert.NoError(t, list.Append(vs...))
		assert.Equal(t, len(vs), list.Len())
		assert.Equal(t, vs, list.ToSlice())

		for i, exp := range vs {
			got, ok := list.Lookup(i)
			assert.True(t, ok)
			assert.Equal(t, exp, got)
		}

		var (
			iterated []T
			indexes  []int
		)
		for i, v := range list.Iter() {
			indexes = append(indexes, i)
			iterated = append(iterated, v)
		}
		assert.Equal(t, vs, iterated)
		for i, index := range indexes {
			assert.Equal(t, i, index)
		}
	})

	s.Test("appending nothing changes nothing", func(t *testcase.T) {
		list := mk(t)
		vs := makeValues(t)
		assert.NoError(t, list.Append(vs...))
		assert.NoError(t, list.Append())
		assert.Equal(t, vs, list.ToSlice())
	})

	s.Test("lookup outside of the bounds reports absence", func(t *testcase.T) {
		list := mk(t)
		assert.NoError(t, list.Append(makeValues(t)...))

		_, ok := list.Lookup(-1)
		assert.False(t, ok)
		_, ok = list.Lookup(list.Len())
		assert.False(t, ok)
	})

	s.Test("set replaces the value in place", func(t *testcase.T) {
		list := mk(t)
		vs := makeValues(t)
		assert.NoError(t, list.Append(vs...))

		index := t.Random.IntN(len(vs))
		val := mkV(t)
		assert.NoError(t, list.Set(index, val))
		vs[index] = val
		assert.Equal(t, vs, list.ToSlice())

		assert.ErrorIs(t, datastruct.ErrIndexOutOfRange, list.Set(len(vs), val))
		assert.Equal(t, vs, list.ToSlice())
	})

	s.Test("iteration can be stopped early", func(t *testcase.T) {
		list := mk(t)
		assert.NoError(t, list.Append(makeValues(t)...))

		var count int
		for range list.Iter() {
			count++
			break
		}
		assert.Equal(t, 1, count)
	})

	s.Test("free destroys every element once, in order", func(t *testcase.T) {
		var destroyed []T
		list := mk(t, datastruct.WithDestructor(func(v T) {
			destroyed = append(destroyed, v)
		}))
		vs := makeValues(t)
		assert.NoError(t, list.Append(vs...))

		assert.NoError(t, list.Free())
		assert.Equal(t, vs, destroyed)
		assert.Equal(t, 0, list.Len())
		assert.ErrorIs(t, datastruct.ErrReleased, list.Append(mkV(t)))
		assert.ErrorIs(t, datastruct.ErrReleased, list.Free())
	})

	s.Test("free without a destructor is refused and the list stays usable", func(t *testcase.T) {
		list := mk(t)
		vs := makeValues(t)
		assert.NoError(t, list.Append(vs...))

		assert.ErrorIs(t, datastruct.ErrPreconditionViolation, list.Free())
		assert.Equal(t, vs, list.ToSlice())

		extra := mkV(t)
		assert.NoError(t, list.Append(extra))
		assert.Equal(t, len(vs)+1, list.Len())
	})
	return s.AsSuite("List[T]")
}
