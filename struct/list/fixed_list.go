package list

import (
	"chunky/struct/array"
	"github.com/pkg/errors"
)

// FixedList is a list bounded by the capacity given to MakeFixed.
// Slots [0, fill) hold the elements in order.
type FixedList[T any] struct {
	array *array.Array[T]
	fill  int
}

func MakeFixed[T any](capacity int) *FixedList[T] {
	if capacity <= 0 {
		panic("capacity must be positive")
	}
	return &FixedList[T]{
		array: array.Make[T](capacity),
		fill:  0,
	}
}

func (l *FixedList[T]) Size() int {
	return l.fill
}

func (l *FixedList[T]) IsEmpty() bool {
	return l.fill == 0
}

func (l *FixedList[T]) Cap() int {
	return l.array.Len()
}

// IsFull reports whether another insertion would fail with ErrCapacityExceeded.
func (l *FixedList[T]) IsFull() bool {
	return l.fill == l.array.Len()
}

func (l *FixedList[T]) GetIndex(index int) (val T, err error) {
	if err = checkExclusiveIndex(index, l.fill); err != nil {
		return
	}
	return l.array.Get(index), nil
}

func (l *FixedList[T]) SetIndex(index int, val T) error {
	if err := checkExclusiveIndex(index, l.fill); err != nil {
		return err
	}
	l.array.Set(index, val)
	return nil
}

func (l *FixedList[T]) GetFront() (val T, err error) {
	if err = checkNotEmpty(l.fill); err != nil {
		return
	}
	return l.array.Get(0), nil
}

func (l *FixedList[T]) GetBack() (val T, err error) {
	if err = checkNotEmpty(l.fill); err != nil {
		return
	}
	return l.array.Get(l.fill - 1), nil
}

func (l *FixedList[T]) AddIndex(index int, val T) error {
	if err := checkInclusiveIndex(index, l.fill); err != nil {
		return err
	}
	if l.IsFull() {
		return errors.Wrapf(ErrCapacityExceeded, "capacity %d", l.array.Len())
	}
	// slide to the back
	for i := l.fill; i > index; i-- {
		l.array.Set(i, l.array.Get(i-1))
	}
	l.array.Set(index, val)
	l.fill++
	return nil
}

func (l *FixedList[T]) AddFront(val T) error {
	return l.AddIndex(0, val)
}

func (l *FixedList[T]) AddBack(val T) error {
	if l.IsFull() {
		return errors.Wrapf(ErrCapacityExceeded, "capacity %d", l.array.Len())
	}
	l.array.Set(l.fill, val)
	l.fill++
	return nil
}

func (l *FixedList[T]) RemoveIndex(index int) (val T, err error) {
	if err = checkExclusiveIndex(index, l.fill); err != nil {
		return
	}
	val = l.array.Get(index)
	// slide to the front
	for i := index; i < l.fill-1; i++ {
		l.array.Set(i, l.array.Get(i+1))
	}
	l.array.Clear(l.fill - 1)
	l.fill--
	return val, nil
}

func (l *FixedList[T]) RemoveFront() (val T, err error) {
	return l.RemoveIndex(0)
}

func (l *FixedList[T]) RemoveBack() (val T, err error) {
	return l.RemoveIndex(l.fill - 1)
}

func (l *FixedList[T]) ForEach(consumer Consumer[T]) {
	for i := 0; i < l.fill; i++ {
		if !consumer(i, l.array.Get(i)) {
			break
		}
	}
}
