package datastruct

import "go.llib.dev/frameless/pkg/errorkit"

func (v *Vector[T]) checkComparator() error {
	if err := v.check(); err != nil {
		return err
	}
	if v.comparator == nil {
		return ErrPreconditionViolation.F("search needs a comparator")
	}
	return nil
}

// Contains reports whether an element equal to val is in the vector.
func (v *Vector[T]) Contains(val T) (bool, error) {
	_, ok, err := v.Index(val)
	return ok, err
}

// Index returns the position of the first element equal to val.
func (v *Vector[T]) Index(val T) (int, bool, error) {
	if err := v.checkComparator(); err != nil {
		return 0, false, err
	}
	for i := 0; i < v.size; i++ {
		if v.comparator(v.slots[i], val) == 0 {
			return i, true, nil
		}
	}
	return 0, false, nil
}

// Occurrences returns every index where an element equals val, in ascending order.
// The result is a LinkedList that can be freed by the caller.
func (v *Vector[T]) Occurrences(val T) (*LinkedList[int], error) {
	return OccurrencesInto(v, val, func() (*LinkedList[int], error) {
		return NewLinkedList[int](WithNopDestructor[int]()), nil
	})
}

// OccurrencesInto collects every index where an element of v equals term
// into the Sequence made by mk.
//
// When appending to the sequence fails, the partial sequence is freed
// and no result is returned.
func OccurrencesInto[T any, S Sequence[int]](v *Vector[T], term T, mk func() (S, error)) (S, error) {
	var zero S
	if err := v.checkComparator(); err != nil {
		return zero, err
	}
	seq, err := mk()
	if err != nil {
		return zero, err
	}
	for i := 0; i < v.size; i++ {
		if v.comparator(v.slots[i], term) != 0 {
			continue
		}
		if err := seq.Append(i); err != nil {
			return zero, errorkit.Merge(err, seq.Free())
		}
	}
	return seq, nil
}
