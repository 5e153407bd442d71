package list

import "chunky/struct/array"

const growableStartCap = 10

// GrowableList is an array backed list whose backing array is replaced by a
// larger one when it runs out of slots. Capacity never shrinks.
type GrowableList[T any] struct {
	array *array.Array[T]
	fill  int
}

func MakeGrowable[T any]() *GrowableList[T] {
	return &GrowableList[T]{
		array: array.Make[T](growableStartCap),
		fill:  0,
	}
}

func (l *GrowableList[T]) Size() int {
	return l.fill
}

func (l *GrowableList[T]) IsEmpty() bool {
	return l.fill == 0
}

func (l *GrowableList[T]) Cap() int {
	return l.array.Len()
}

/*
grow
double the backing array and copy the elements over in order.
*/
func (l *GrowableList[T]) grow() {
	size := l.array.Len() * 2
	if size < l.fill+1 {
		size = l.fill + 1
	}
	bigger := array.Make[T](size)
	for i := 0; i < l.fill; i++ {
		bigger.Set(i, l.array.Get(i))
	}
	l.array = bigger
}

func (l *GrowableList[T]) GetIndex(index int) (val T, err error) {
	if err = checkExclusiveIndex(index, l.fill); err != nil {
		return
	}
	return l.array.Get(index), nil
}

func (l *GrowableList[T]) SetIndex(index int, val T) error {
	if err := checkExclusiveIndex(index, l.fill); err != nil {
		return err
	}
	l.array.Set(index, val)
	return nil
}

func (l *GrowableList[T]) GetFront() (val T, err error) {
	if err = checkNotEmpty(l.fill); err != nil {
		return
	}
	return l.array.Get(0), nil
}

func (l *GrowableList[T]) GetBack() (val T, err error) {
	if err = checkNotEmpty(l.fill); err != nil {
		return
	}
	return l.array.Get(l.fill - 1), nil
}

func (l *GrowableList[T]) AddIndex(index int, val T) error {
	if err := checkInclusiveIndex(index, l.fill); err != nil {
		return err
	}
	if l.fill >= l.array.Len() {
		l.grow()
	}
	for i := l.fill; i > index; i-- {
		l.array.Set(i, l.array.Get(i-1))
	}
	l.array.Set(index, val)
	l.fill++
	return nil
}

func (l *GrowableList[T]) AddFront(val T) error {
	return l.AddIndex(0, val)
}

func (l *GrowableList[T]) AddBack(val T) error {
	if l.fill >= l.array.Len() {
		l.grow()
	}
	l.array.Set(l.fill, val)
	l.fill++
	return nil
}

func (l *GrowableList[T]) RemoveIndex(index int) (val T, err error) {
	if err = checkExclusiveIndex(index, l.fill); err != nil {
		return
	}
	val = l.array.Get(index)
	for i := index; i < l.fill-1; i++ {
		l.array.Set(i, l.array.Get(i+1))
	}
	l.array.Clear(l.fill - 1)
	l.fill--
	return val, nil
}

func (l *GrowableList[T]) RemoveFront() (val T, err error) {
	return l.RemoveIndex(0)
}

func (l *GrowableList[T]) RemoveBack() (val T, err error) {
	return l.RemoveIndex(l.fill - 1)
}

func (l *GrowableList[T]) ForEach(consumer Consumer[T]) {
	for i := 0; i < l.fill; i++ {
		if !consumer(i, l.array.Get(i)) {
			break
		}
	}
}
