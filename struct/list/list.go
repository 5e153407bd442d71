package list

import "github.com/pkg/errors"

var (
	ErrEmptyCollection  = errors.New("empty collection")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

type Consumer[T any] func(idx int, val T) bool

// List is the contract shared by FixedList, GrowableList, LinkedList and ChunkedList.
// Index origin is 0. Get, set and remove take an index in [0, Size()),
// insertion takes an index in [0, Size()].
type List[T any] interface {
	Size() int
	IsEmpty() bool
	GetFront() (val T, err error)
	GetBack() (val T, err error)
	GetIndex(index int) (val T, err error)
	SetIndex(index int, val T) error
	AddFront(val T) error
	AddBack(val T) error
	AddIndex(index int, val T) error
	RemoveFront() (val T, err error)
	RemoveBack() (val T, err error)
	RemoveIndex(index int) (val T, err error)
	ForEach(consumer Consumer[T])
}

// ToSlice collects the elements of l from front to back.
func ToSlice[T any](l List[T]) []T {
	slice := make([]T, 0, l.Size())
	l.ForEach(func(idx int, val T) bool {
		slice = append(slice, val)
		return true
	})
	return slice
}

func checkNotEmpty(size int) error {
	if size == 0 {
		return ErrEmptyCollection
	}
	return nil
}

/*
checkExclusiveIndex
index must address a live element: [0, size).
*/
func checkExclusiveIndex(index int, size int) error {
	if size == 0 {
		return ErrEmptyCollection
	}
	if index < 0 || index >= size {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", index, size)
	}
	return nil
}

/*
checkInclusiveIndex
index must be a valid insertion point: [0, size].
*/
func checkInclusiveIndex(index int, size int) error {
	if index < 0 || index > size {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", index, size)
	}
	return nil
}
