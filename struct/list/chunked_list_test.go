package list

import (
	"math/rand"
	"testing"
)

func checkChunks(t *testing.T, l *ChunkedList[int]) {
	t.Helper()
	chunks := l.Chunks()
	var flat []int
	for i, c := range chunks {
		if len(c) > l.ChunkCapacity() {
			t.Fatalf("chunk %d holds %d elements, capacity %d", i, len(c), l.ChunkCapacity())
		}
		if len(c) == 0 && (i == 0 || i == len(chunks)-1) {
			t.Fatalf("edge chunk %d is empty", i)
		}
		flat = append(flat, c...)
	}
	sameContents(t, l, flat)
}

func TestChunkedList_BoundaryInsert(t *testing.T) {
	var l = MakeChunked[int](3)
	for i := 1; i <= 6; i++ {
		_ = l.AddBack(i)
	}
	if len(l.Chunks()) != 2 {
		t.Fatalf("chunks should be 2 but now is %d", len(l.Chunks()))
	}
	if err := l.AddIndex(3, 99); err != nil {
		t.Fatal(err)
	}
	sameContents(t, l, []int{1, 2, 3, 99, 4, 5, 6})
	checkChunks(t, l)
}

func TestChunkedList_InsertIntoFullChunk(t *testing.T) {
	var l = MakeChunked[int](3)
	for i := 1; i <= 6; i++ {
		_ = l.AddBack(i)
	}
	_ = l.AddIndex(1, 99)
	sameContents(t, l, []int{1, 99, 2, 3, 4, 5, 6})
	checkChunks(t, l)
	_ = l.AddIndex(0, 98)
	_ = l.AddIndex(l.Size(), 97)
	sameContents(t, l, []int{98, 1, 99, 2, 3, 4, 5, 6, 97})
	checkChunks(t, l)
}

func TestChunkedList_InternalEmptyChunk(t *testing.T) {
	var l = MakeChunked[int](2)
	for i := 1; i <= 6; i++ {
		_ = l.AddBack(i)
	}
	_, _ = l.RemoveIndex(2)
	_, _ = l.RemoveIndex(2)
	chunks := l.Chunks()
	if len(chunks) != 3 || len(chunks[1]) != 0 {
		t.Fatalf("middle chunk should stay empty: %v", chunks)
	}
	sameContents(t, l, []int{1, 2, 5, 6})

	_, _ = l.RemoveFront()
	_, _ = l.RemoveFront()
	chunks = l.Chunks()
	if len(chunks) != 1 {
		t.Fatalf("empty edge chunks should be pruned: %v", chunks)
	}
	sameContents(t, l, []int{5, 6})

	_, _ = l.RemoveIndex(1)
	_, _ = l.RemoveIndex(0)
	if !l.IsEmpty() || len(l.Chunks()) != 0 {
		t.Fatal("chunk sequence should be empty")
	}
}

func TestChunkedList_CapacityInvariant(t *testing.T) {
	for _, k := range []int{1, 2, 3, 5} {
		r := rand.New(rand.NewSource(int64(k)))
		l := MakeChunked[int](k)
		for step := 0; step < 2000; step++ {
			size := l.Size()
			switch op := r.Intn(6); {
			case op < 3 || size == 0:
				_ = l.AddIndex(r.Intn(size+1), step)
			case op == 3:
				_, _ = l.RemoveFront()
			case op == 4:
				_, _ = l.RemoveBack()
			default:
				_, _ = l.RemoveIndex(r.Intn(size))
			}
			checkChunks(t, l)
		}
	}
}

func TestChunkedList_AddFrontChain(t *testing.T) {
	var l = MakeChunked[int](2)
	for i := 0; i < 7; i++ {
		_ = l.AddFront(i)
	}
	sameContents(t, l, []int{6, 5, 4, 3, 2, 1, 0})
	checkChunks(t, l)
}
