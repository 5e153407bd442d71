package array

// Array is a fixed-length sequence of slots. Every slot holds the zero value
// of T until it is set. Get and Set panic when the index is out of range.
type Array[T any] struct {
	slots []T
}

func Make[T any](length int) *Array[T] {
	if length < 0 {
		panic("array length can not be negative")
	}
	return &Array[T]{
		slots: make([]T, length),
	}
}

func (a *Array[T]) Get(index int) T {
	return a.slots[index]
}

func (a *Array[T]) Set(index int, val T) {
	a.slots[index] = val
}

// Clear resets the slot to the zero value.
func (a *Array[T]) Clear(index int) {
	var zero T
	a.slots[index] = zero
}

func (a *Array[T]) Len() int {
	return len(a.slots)
}
