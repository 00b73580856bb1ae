package datastruct

import (
	"context"
	"iter"

	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

// LinkedList is a singly linked list.
// The zero value is an empty list without a destructor.
type LinkedList[T any] struct {
	head       *ListElem[T]
	tail       *ListElem[T]
	length     int
	destructor func(T)
	released   bool
}

// ListElem is a handle to a node of a LinkedList.
// A handle belongs to its list until it is removed.
type ListElem[T any] struct {
	data T
	next *ListElem[T]
	list *LinkedList[T]
}

// Next returns the following element, or nil at the tail.
func (e *ListElem[T]) Next() *ListElem[T] {
	if e == nil {
		return nil
	}
	return e.next
}

func (e *ListElem[T]) Value() T {
	if e == nil {
		var zero T
		return zero
	}
	return e.data
}

func (e *ListElem[T]) SetValue(v T) {
	if e != nil {
		e.data = v
	}
}

// NewLinkedList creates an empty list.
// Only the Destructor of the options is relevant for a list.
func NewLinkedList[T any](opts ...Option[T]) *LinkedList[T] {
	c := toConfig(opts)
	return &LinkedList[T]{destructor: c.Destructor}
}

func (ll *LinkedList[T]) check() error {
	if ll == nil {
		return ErrInvalidArgument.F("nil list")
	}
	if ll.released {
		return ErrReleased
	}
	return nil
}

func (ll *LinkedList[T]) checkElem(elem *ListElem[T]) error {
	if elem != nil && elem.list != ll {
		return ErrInvalidArgument.F("element is not part of this list")
	}
	return nil
}

func (ll *LinkedList[T]) Iter() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if ll == nil {
			return
		}
		var index int
		for current := ll.head; current != nil; current = current.next {
			if !yield(index, current.data) {
				return
			}
			index++
		}
	}
}

func (ll *LinkedList[T]) ToSlice() []T {
	var vs []T
	for _, v := range ll.Iter() {
		vs = append(vs, v)
	}
	return vs
}

func (ll *LinkedList[T]) Append(vs ...T) error {
	if err := ll.check(); err != nil {
		return err
	}
	for _, v := range vs {
		ll.insertNext(ll.tail, v)
	}
	return nil
}

// Prepend adds the values to the beginning of the list, keeping their order.
func (ll *LinkedList[T]) Prepend(vs ...T) error {
	if err := ll.check(); err != nil {
		return err
	}
	var prev *ListElem[T]
	for _, v := range vs {
		prev = ll.insertNext(prev, v)
	}
	return nil
}

// InsertNext inserts v right after elem.
// A nil elem means the new value becomes the head.
// An elem of another list, or one already removed, is refused with ErrInvalidArgument.
func (ll *LinkedList[T]) InsertNext(elem *ListElem[T], v T) error {
	if err := ll.check(); err != nil {
		return err
	}
	if err := ll.checkElem(elem); err != nil {
		return err
	}
	ll.insertNext(elem, v)
	return nil
}

func (ll *LinkedList[T]) insertNext(elem *ListElem[T], v T) *ListElem[T] {
	newElem := &ListElem[T]{data: v, list: ll}
	if elem == nil {
		newElem.next = ll.head
		ll.head = newElem
	} else {
		newElem.next = elem.next
		elem.next = newElem
	}
	if newElem.next == nil {
		ll.tail = newElem
	}
	ll.length++
	return newElem
}

// InsertAt inserts v so that it ends up at index.
// Inserting at Len() appends.
func (ll *LinkedList[T]) InsertAt(index int, v T) error {
	if err := ll.check(); err != nil {
		return err
	}
	if index < 0 || ll.length < index {
		return ErrIndexOutOfRange.F("insert at %d with length %d", index, ll.length)
	}
	var prev *ListElem[T]
	if 0 < index {
		prev = ll.element(index - 1)
	}
	ll.insertNext(prev, v)
	return nil
}

// RemoveNext unlinks the element after elem and returns its value.
// A nil elem removes the head.
func (ll *LinkedList[T]) RemoveNext(elem *ListElem[T]) (T, error) {
	var zero T
	if err := ll.check(); err != nil {
		return zero, err
	}
	if err := ll.checkElem(elem); err != nil {
		return zero, err
	}
	if ll.length == 0 {
		return zero, ErrIndexOutOfRange.F("remove from an empty list")
	}
	if elem != nil && elem.next == nil {
		return zero, ErrIndexOutOfRange.F("no element follows the given one")
	}
	return ll.removeNext(elem), nil
}

func (ll *LinkedList[T]) removeNext(elem *ListElem[T]) T {
	var old *ListElem[T]
	if elem == nil {
		old = ll.head
		ll.head = old.next
		if ll.head == nil {
			ll.tail = nil
		}
	} else {
		old = elem.next
		elem.next = old.next
		if elem.next == nil {
			ll.tail = elem
		}
	}
	old.next = nil
	old.list = nil
	ll.length--
	return old.data
}

func (ll *LinkedList[T]) RemoveAt(index int) (T, error) {
	var zero T
	if err := ll.check(); err != nil {
		return zero, err
	}
	if index < 0 || ll.length <= index {
		return zero, ErrIndexOutOfRange.F("remove at %d with length %d", index, ll.length)
	}
	var prev *ListElem[T]
	if 0 < index {
		prev = ll.element(index - 1)
	}
	return ll.removeNext(prev), nil
}

// PurgeNext removes the element after elem and destroys its value.
func (ll *LinkedList[T]) PurgeNext(elem *ListElem[T]) error {
	if err := ll.checkDestructor(); err != nil {
		return err
	}
	if err := ll.checkElem(elem); err != nil {
		return err
	}
	v, err := ll.RemoveNext(elem)
	if err != nil {
		return err
	}
	ll.destructor(v)
	return nil
}

// PurgeAt removes the element at index and destroys its value.
func (ll *LinkedList[T]) PurgeAt(index int) error {
	if err := ll.checkDestructor(); err != nil {
		return err
	}
	v, err := ll.RemoveAt(index)
	if err != nil {
		return err
	}
	ll.destructor(v)
	return nil
}

func (ll *LinkedList[T]) checkDestructor() error {
	if err := ll.check(); err != nil {
		return err
	}
	if ll.destructor == nil {
		return ErrPreconditionViolation.F("purge needs a destructor")
	}
	return nil
}

// Len returns the number of elements in the list
func (ll *LinkedList[T]) Len() int {
	if ll == nil {
		return 0
	}
	return ll.length
}

// Shift removes the first element and returns it.
func (ll *LinkedList[T]) Shift() (T, bool) {
	if ll.check() != nil || ll.head == nil {
		var zero T
		return zero, false
	}
	return ll.removeNext(nil), true
}

func (ll *LinkedList[T]) Head() *ListElem[T] {
	if ll == nil {
		return nil
	}
	return ll.head
}

func (ll *LinkedList[T]) Tail() *ListElem[T] {
	if ll == nil {
		return nil
	}
	return ll.tail
}

// Element returns the handle of the element at index.
func (ll *LinkedList[T]) Element(index int) (*ListElem[T], bool) {
	if ll == nil || index < 0 || ll.length <= index {
		return nil, false
	}
	return ll.element(index), true
}

func (ll *LinkedList[T]) element(index int) *ListElem[T] {
	if index == ll.length-1 {
		return ll.tail
	}
	current := ll.head
	for i := 0; i < index; i++ {
		current = current.next
	}
	return current
}

func (ll *LinkedList[T]) Lookup(index int) (T, bool) {
	elem, ok := ll.Element(index)
	if !ok {
		var zero T
		return zero, false
	}
	return elem.data, true
}

func (ll *LinkedList[T]) Set(index int, v T) error {
	if err := ll.check(); err != nil {
		return err
	}
	elem, ok := ll.Element(index)
	if !ok {
		return ErrIndexOutOfRange.F("set at %d with length %d", index, ll.length)
	}
	elem.data = v
	return nil
}

// Free removes every element from the head onwards, destroys them, and releases the list.
// Without a destructor it fails, and the list stays usable.
func (ll *LinkedList[T]) Free() error {
	if err := ll.checkDestructor(); err != nil {
		return err
	}
	for ll.length > 0 {
		ll.destructor(ll.removeNext(nil))
	}
	ll.release()
	return nil
}

// Release unlinks every element without destroying the values.
func (ll *LinkedList[T]) Release() {
	if ll.check() != nil {
		return
	}
	ll.release()
}

func (ll *LinkedList[T]) release() {
	ctx := logging.ContextWith(context.Background(), logging.Field("container", "linked_list"))
	logger.Debug(ctx, "linked list released", logging.Field("length", ll.length))
	for ll.length > 0 {
		ll.removeNext(nil)
	}
	ll.released = true
}
