package list

import "github.com/pkg/errors"

// LinkedList is a singly linked chain of nodes. Only forward links exist, so
// back and indexed access walk the chain.
type LinkedList[T any] struct {
	first *node[T]
}

type node[T any] struct {
	val  T
	next *node[T]
}

func MakeLinked[T any](values ...T) *LinkedList[T] {
	list := &LinkedList[T]{
		first: nil,
	}
	for _, v := range values {
		_ = list.AddBack(v)
	}
	return list
}

func (l *LinkedList[T]) Size() int {
	size := 0
	for n := l.first; n != nil; n = n.next {
		size++
	}
	return size
}

func (l *LinkedList[T]) IsEmpty() bool {
	return l.first == nil
}

/*
find
walk to the node at index. the caller guarantees the list is not empty.
*/
func (l *LinkedList[T]) find(index int) (*node[T], error) {
	if index < 0 {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "index %d", index)
	}
	n := l.first
	for i := 0; i < index && n != nil; i++ {
		n = n.next
	}
	if n == nil {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", index, l.Size())
	}
	return n, nil
}

func (l *LinkedList[T]) last() *node[T] {
	n := l.first
	for n.next != nil {
		n = n.next
	}
	return n
}

func (l *LinkedList[T]) GetFront() (val T, err error) {
	if l.first == nil {
		err = ErrEmptyCollection
		return
	}
	return l.first.val, nil
}

func (l *LinkedList[T]) GetBack() (val T, err error) {
	if l.first == nil {
		err = ErrEmptyCollection
		return
	}
	return l.last().val, nil
}

func (l *LinkedList[T]) GetIndex(index int) (val T, err error) {
	if l.first == nil {
		err = ErrEmptyCollection
		return
	}
	n, err := l.find(index)
	if err != nil {
		return
	}
	return n.val, nil
}

func (l *LinkedList[T]) SetIndex(index int, val T) error {
	if l.first == nil {
		return ErrEmptyCollection
	}
	n, err := l.find(index)
	if err != nil {
		return err
	}
	n.val = val
	return nil
}

func (l *LinkedList[T]) AddFront(val T) error {
	l.first = &node[T]{
		val:  val,
		next: l.first,
	}
	return nil
}

func (l *LinkedList[T]) AddBack(val T) error {
	if l.first == nil {
		return l.AddFront(val)
	}
	l.last().next = &node[T]{
		val: val,
	}
	return nil
}

func (l *LinkedList[T]) AddIndex(index int, val T) error {
	if index == 0 {
		return l.AddFront(val)
	}
	if l.first == nil {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, size 0", index)
	}
	prev, err := l.find(index - 1)
	if err != nil {
		return err
	}
	prev.next = &node[T]{
		val:  val,
		next: prev.next,
	}
	return nil
}

func (l *LinkedList[T]) RemoveFront() (val T, err error) {
	if l.first == nil {
		err = ErrEmptyCollection
		return
	}
	n := l.first
	l.first = n.next
	n.next = nil
	return n.val, nil
}

func (l *LinkedList[T]) RemoveBack() (val T, err error) {
	if l.first == nil {
		err = ErrEmptyCollection
		return
	}
	// the head has no predecessor to splice from
	if l.first.next == nil {
		return l.RemoveFront()
	}
	prev := l.first
	for prev.next.next != nil {
		prev = prev.next
	}
	val = prev.next.val
	prev.next = nil
	return val, nil
}

func (l *LinkedList[T]) RemoveIndex(index int) (val T, err error) {
	if l.first == nil {
		err = ErrEmptyCollection
		return
	}
	if index == 0 {
		return l.RemoveFront()
	}
	prev, err := l.find(index - 1)
	if err != nil {
		return
	}
	n := prev.next
	if n == nil {
		err = errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", index, l.Size())
		return
	}
	prev.next = n.next
	n.next = nil
	return n.val, nil
}

func (l *LinkedList[T]) ForEach(consumer Consumer[T]) {
	n := l.first
	i := 0
	for n != nil {
		ctu := consumer(i, n.val)
		if ctu == false {
			break
		}
		i++
		n = n.next
	}
}
