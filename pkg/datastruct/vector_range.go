package datastruct

import (
	"slices"

	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

// InsertRange splices the elements of other into the vector at index,
// keeping their order and moving the elements from index onwards behind the inserted block.
//
// The capacity grows at most once, to exactly the needed size.
// other is not modified, and it may be the vector itself.
func (v *Vector[T]) InsertRange(index int, other *Vector[T]) error {
	if err := v.check(); err != nil {
		return err
	}
	if other == nil {
		return ErrInvalidArgument.F("nil vector to insert")
	}
	if err := other.check(); err != nil {
		return err
	}
	if index < 0 || v.size < index {
		return ErrIndexOutOfRange.F("insert range at %d with size %d", index, v.size)
	}
	n := other.size
	if n == 0 {
		return nil
	}
	src := other.slots[:n]
	if other == v {
		src = slices.Clone(src)
	}
	if need := v.size + n; len(v.slots) < need {
		if err := v.ResizeBy(need - len(v.slots)); err != nil {
			return err
		}
	}
	copy(v.slots[index+n:v.size+n], v.slots[index:v.size])
	copy(v.slots[index:index+n], src)
	v.size += n
	return nil
}

// AppendRange adds the elements of other to the end of the vector.
func (v *Vector[T]) AppendRange(other *Vector[T]) error {
	return v.InsertRange(v.Len(), other)
}

func (v *Vector[T]) checkRange(start, stop int) error {
	if stop <= start {
		return ErrInvalidArgument.F("empty range [%d, %d)", start, stop)
	}
	if start < 0 || v.size <= start || v.size < stop {
		return ErrIndexOutOfRange.F("range [%d, %d) with size %d", start, stop, v.size)
	}
	return nil
}

// RemoveRange takes out the elements of [start, stop) and returns them, in order,
// as a new Vector that shares the configuration of this one.
// The capacity is reduced by the number of removed elements when possible.
func (v *Vector[T]) RemoveRange(start, stop int) (*Vector[T], error) {
	if err := v.check(); err != nil {
		return nil, err
	}
	if err := v.checkRange(start, stop); err != nil {
		return nil, err
	}
	n := stop - start
	removed, err := newVector(n, v.config())
	if err != nil {
		return nil, err
	}
	removed.size = copy(removed.slots, v.slots[start:stop])

	copy(v.slots[start:], v.slots[stop:v.size])
	clear(v.slots[v.size-n : v.size])
	v.size -= n
	if 1 <= len(v.slots)-n {
		if err := v.ResizeBy(-n); err != nil {
			logger.Warn(v.logContext(), "vector shrink after range removal failed", logging.ErrField(err))
		}
	}
	return removed, nil
}

// PurgeRange removes the elements of [start, stop) and destroys them with the destructor.
func (v *Vector[T]) PurgeRange(start, stop int) error {
	if err := v.check(); err != nil {
		return err
	}
	if v.destructor == nil {
		return ErrPreconditionViolation.F("purge range needs a destructor")
	}
	removed, err := v.RemoveRange(start, stop)
	if err != nil {
		return err
	}
	return removed.Free()
}
