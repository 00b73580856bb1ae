package datastruct_test

import (
	"cmp"
	"fmt"
	"os"

	"github.com/nmds/nmds/pkg/datastruct"
)

func ExampleVector() {
	v, err := datastruct.NewVector[int](1, datastruct.WithComparator(cmp.Compare[int]))
	if err != nil {
		panic(err)
	}

	_ = v.Append(5, 3, 5, 5, 1)
	_ = v.Insert(1, 99) // [5 99 3 5 5 1]

	occ, err := v.Occurrences(5)
	if err != nil {
		panic(err)
	}
	fmt.Println(occ.ToSlice()) // [0 3 4]
}

func ExampleVector_InsertRange() {
	v, _ := datastruct.NewVector[string](4)
	_ = v.Append("a", "b", "c", "d")

	other, _ := datastruct.NewVector[string](2)
	_ = other.Append("x", "y")

	_ = v.InsertRange(1, other)
	fmt.Println(v.ToSlice()) // [a x y b c d]
}

func ExampleVector_Free() {
	v, _ := datastruct.NewVector[*os.File](1, datastruct.WithDestructor(func(f *os.File) { _ = f.Close() }))

	f, err := os.Open(os.DevNull)
	if err != nil {
		panic(err)
	}
	_ = v.Append(f)

	// closes every file, then the vector can no longer be used
	if err := v.Free(); err != nil {
		panic(err)
	}
}

func ExampleLinkedList() {
	var ll datastruct.LinkedList[string]
	_ = ll.Append("b", "c")
	_ = ll.Prepend("a")
	_ = ll.InsertNext(ll.Tail(), "d")

	for i, v := range ll.Iter() {
		fmt.Println(i, v)
	}
}
