package list

import "github.com/pkg/errors"

/*
ChunkedList

elements live in a sequence of FixedList chunks, each holding at most
chunkCap elements. chunks may be partially filled. empty chunks are pruned
only at the front and back, so the chunk sequence is empty exactly when
the list is empty.
*/
type ChunkedList[T any] struct {
	chunkCap int
	chunks   *GrowableList[*FixedList[T]]
}

func MakeChunked[T any](chunkCap int) *ChunkedList[T] {
	if chunkCap <= 0 {
		panic("chunk capacity must be positive")
	}
	return &ChunkedList[T]{
		chunkCap: chunkCap,
		chunks:   MakeGrowable[*FixedList[T]](),
	}
}

func (l *ChunkedList[T]) makeChunk() *FixedList[T] {
	return MakeFixed[T](l.chunkCap)
}

func (l *ChunkedList[T]) ChunkCapacity() int {
	return l.chunkCap
}

// Chunks returns a copy of every chunk's contents in chunk order.
func (l *ChunkedList[T]) Chunks() [][]T {
	result := make([][]T, 0, l.chunks.Size())
	l.chunks.ForEach(func(idx int, chunk *FixedList[T]) bool {
		result = append(result, ToSlice[T](chunk))
		return true
	})
	return result
}

func (l *ChunkedList[T]) Size() int {
	total := 0
	l.chunks.ForEach(func(idx int, chunk *FixedList[T]) bool {
		total += chunk.Size()
		return true
	})
	return total
}

func (l *ChunkedList[T]) IsEmpty() bool {
	return l.chunks.IsEmpty()
}

/*
locate
find the chunk holding logical index and the offset inside it.
*/
func (l *ChunkedList[T]) locate(index int) (chunk *FixedList[T], offset int, err error) {
	if l.IsEmpty() {
		return nil, 0, ErrEmptyCollection
	}
	start := 0
	for i := 0; i < l.chunks.Size(); i++ {
		c, _ := l.chunks.GetIndex(i)
		end := start + c.Size()
		if start <= index && index < end {
			return c, index - start, nil
		}
		start = end
	}
	return nil, 0, errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", index, start)
}

/*
prune
drop empty chunks from both edges.
*/
func (l *ChunkedList[T]) prune() {
	for !l.chunks.IsEmpty() {
		front, _ := l.chunks.GetFront()
		if !front.IsEmpty() {
			break
		}
		_, _ = l.chunks.RemoveFront()
	}
	for !l.chunks.IsEmpty() {
		back, _ := l.chunks.GetBack()
		if !back.IsEmpty() {
			break
		}
		_, _ = l.chunks.RemoveBack()
	}
}

func (l *ChunkedList[T]) GetIndex(index int) (val T, err error) {
	chunk, offset, err := l.locate(index)
	if err != nil {
		return
	}
	return chunk.GetIndex(offset)
}

func (l *ChunkedList[T]) SetIndex(index int, val T) error {
	chunk, offset, err := l.locate(index)
	if err != nil {
		return err
	}
	return chunk.SetIndex(offset, val)
}

func (l *ChunkedList[T]) GetFront() (val T, err error) {
	front, err := l.chunks.GetFront()
	if err != nil {
		return
	}
	return front.GetFront()
}

func (l *ChunkedList[T]) GetBack() (val T, err error) {
	back, err := l.chunks.GetBack()
	if err != nil {
		return
	}
	return back.GetBack()
}

func (l *ChunkedList[T]) RemoveFront() (val T, err error) {
	l.prune()
	front, err := l.chunks.GetFront()
	if err != nil {
		return
	}
	val, err = front.RemoveFront()
	l.prune()
	return
}

func (l *ChunkedList[T]) RemoveBack() (val T, err error) {
	l.prune()
	back, err := l.chunks.GetBack()
	if err != nil {
		return
	}
	val, err = back.RemoveBack()
	l.prune()
	return
}

// RemoveIndex leaves an emptied chunk in place unless it sits at an edge.
func (l *ChunkedList[T]) RemoveIndex(index int) (val T, err error) {
	chunk, offset, err := l.locate(index)
	if err != nil {
		return
	}
	val, err = chunk.RemoveIndex(offset)
	l.prune()
	return
}

func (l *ChunkedList[T]) AddFront(val T) error {
	if l.chunks.IsEmpty() {
		_ = l.chunks.AddFront(l.makeChunk())
	}
	return l.AddIndex(0, val)
}

func (l *ChunkedList[T]) AddBack(val T) error {
	if l.IsEmpty() {
		return l.AddFront(val)
	}
	back, _ := l.chunks.GetBack()
	if back.IsFull() {
		back = l.makeChunk()
		_ = l.chunks.AddBack(back)
	}
	return back.AddBack(val)
}

/*
roomAfter
return a non-full chunk directly after chunk i, allocating one when chunk i
is the last chunk or its successor is full.
*/
func (l *ChunkedList[T]) roomAfter(i int) *FixedList[T] {
	if i+1 < l.chunks.Size() {
		next, _ := l.chunks.GetIndex(i + 1)
		if !next.IsFull() {
			return next
		}
	}
	next := l.makeChunk()
	_ = l.chunks.AddIndex(i+1, next)
	return next
}

/*
AddIndex
find the chunk whose range [start, end] contains index. a chunk with room
takes the value directly. a full chunk either hands the value to the front
of the following chunk (index == end) or donates its last element there
and takes the value at its local offset.
*/
func (l *ChunkedList[T]) AddIndex(index int, val T) error {
	if index < 0 {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d", index)
	}
	if l.chunks.IsEmpty() {
		if index != 0 {
			return errors.Wrapf(ErrIndexOutOfRange, "index %d, size 0", index)
		}
		_ = l.chunks.AddFront(l.makeChunk())
	}
	start := 0
	for i := 0; i < l.chunks.Size(); i++ {
		chunk, _ := l.chunks.GetIndex(i)
		end := start + chunk.Size()
		if start <= index && index <= end {
			if !chunk.IsFull() {
				return chunk.AddIndex(index-start, val)
			}
			next := l.roomAfter(i)
			if index == end {
				return next.AddFront(val)
			}
			back, err := chunk.RemoveBack()
			if err != nil {
				return err
			}
			if err = next.AddFront(back); err != nil {
				return err
			}
			return chunk.AddIndex(index-start, val)
		}
		start = end
	}
	return errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", index, start)
}

func (l *ChunkedList[T]) ForEach(consumer Consumer[T]) {
	i := 0
	ctu := true
	l.chunks.ForEach(func(_ int, chunk *FixedList[T]) bool {
		chunk.ForEach(func(_ int, val T) bool {
			ctu = consumer(i, val)
			i++
			return ctu
		})
		return ctu
	})
}
