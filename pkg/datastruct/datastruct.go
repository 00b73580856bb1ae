// Package datastruct provides generic containers with caller controlled element lifetime:
// a resizable Vector and a singly linked LinkedList.
//
// Both containers own their structure (slots, nodes) but not the elements they hold.
// Elements only get destroyed through the configured destructor,
// when the caller asks for it with Free, Purge or one of their variants.
package datastruct

import (
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	// ErrAllocationFailure is returned when slot storage could not be obtained.
	ErrAllocationFailure errorkit.Error = "datastruct: allocation failure"
	// ErrIndexOutOfRange is returned when an index or range violates the container bounds.
	ErrIndexOutOfRange errorkit.Error = "datastruct: index out of range"
	// ErrInvalidArgument is returned for malformed ranges and capacity values.
	ErrInvalidArgument errorkit.Error = "datastruct: invalid argument"
	// ErrPreconditionViolation is returned when a required callback is not configured.
	// It signals a programming error; the container is left untouched.
	ErrPreconditionViolation errorkit.Error = "datastruct: precondition violation"
	// ErrReleased is returned when a container is used after Free or Release.
	ErrReleased errorkit.Error = "datastruct: container is released"
)

// Sequence is an ordered collection that can be built up by appending and torn down with its destructor.
//
// Vector.Occurrences collects its results into a Sequence.
type Sequence[T any] interface {
	Append(vs ...T) error
	Free() error
	Sizer
}

type List[T any] interface {
	Sequence[T]
	Lookup(index int) (T, bool)
	Set(index int, val T) error
	ToSlice() []T
	Iter() iter.Seq2[int, T]
}

type Sizer interface {
	Len() int
}

var (
	_ List[any] = (*Vector[any])(nil)
	_ List[any] = (*LinkedList[any])(nil)
)
