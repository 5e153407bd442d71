package lock

import "sync"

const prime32 = uint32(16777619)

// Locks serializes access to list instances by id. Keys hashing to the same
// slot share one mutex.
type Locks struct {
	table []*sync.RWMutex
}

/*
spread
Choose the slot.
*/
func (locks *Locks) spread(hashCode uint32) uint32 {
	if locks == nil {
		panic("locks can not be nil")
	}
	tableSize := uint32(len(locks.table))
	return (tableSize - 1) & hashCode
}

/*
Make
create an instance of the locks. tableSize is rounded up to a power of two.
*/
func Make(tableSize int) *Locks {
	size := 1
	for size < tableSize {
		size <<= 1
	}
	table := make([]*sync.RWMutex, size)
	for i := 0; i < size; i++ {
		table[i] = &sync.RWMutex{}
	}
	return &Locks{
		table: table,
	}
}

func (locks *Locks) Lock(key string) {
	locks.table[locks.spread(hash(key))].Lock()
}

func (locks *Locks) UnLock(key string) {
	locks.table[locks.spread(hash(key))].Unlock()
}

func (locks *Locks) RLock(key string) {
	locks.table[locks.spread(hash(key))].RLock()
}

func (locks *Locks) RUnLock(key string) {
	locks.table[locks.spread(hash(key))].RUnlock()
}

// With runs fn while holding the write lock of key.
func (locks *Locks) With(key string, fn func()) {
	locks.Lock(key)
	defer locks.UnLock(key)
	fn()
}

// WithRead runs fn while holding the read lock of key.
func (locks *Locks) WithRead(key string, fn func()) {
	locks.RLock(key)
	defer locks.RUnLock(key)
	fn()
}

/*
hash
FNV to calculate hash value
*/
func hash(key string) uint32 {
	hash := uint32(2166136261)
	for i := 0; i < len(key); i++ {
		hash *= prime32
		hash ^= uint32(key[i])
	}
	return hash
}
