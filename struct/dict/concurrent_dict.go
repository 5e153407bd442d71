package dict

import (
	"sort"
	"sync"
	"sync/atomic"
)

const prime32 = uint32(16777619)

type Consumer[V any] func(key string, val V) bool

/*
	ConcurrentDict

the key would be hashed into one of the shards.
in the same shard, keys use the same lock.
*/
type ConcurrentDict[V any] struct {
	table []*shard[V]
	count int32
}

type shard[V any] struct {
	mp    map[string]V
	mutex sync.RWMutex
}

/*
computeCapacity
round up to a power of two, at least 16.
*/
func computeCapacity(param int) (size int) {
	if param <= 16 {
		return 16
	}
	size = 1
	for size < param {
		size <<= 1
	}
	return size
}

func MakeConcurrentDict[V any](shardCount int) *ConcurrentDict[V] {
	shardCount = computeCapacity(shardCount)
	table := make([]*shard[V], shardCount)
	for i := 0; i < shardCount; i++ {
		table[i] = &shard[V]{
			mp: make(map[string]V),
		}
	}
	return &ConcurrentDict[V]{
		table: table,
		count: 0,
	}
}

func (dict *ConcurrentDict[V]) getShard(key string) *shard[V] {
	if dict == nil {
		panic("dict is nil")
	}
	tableSize := uint32(len(dict.table))
	return dict.table[(tableSize-1)&hash(key)]
}

func (dict *ConcurrentDict[V]) Get(key string) (val V, exists bool) {
	s := dict.getShard(key)
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	val, exists = s.mp[key]
	return
}

func (dict *ConcurrentDict[V]) Len() int {
	return int(atomic.LoadInt32(&dict.count))
}

// Put returns 1 when key is new, 0 when an existing value was replaced.
func (dict *ConcurrentDict[V]) Put(key string, val V) (result int) {
	s := dict.getShard(key)
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if _, ok := s.mp[key]; ok {
		s.mp[key] = val
		return 0
	}
	s.mp[key] = val
	atomic.AddInt32(&dict.count, 1)
	return 1
}

func (dict *ConcurrentDict[V]) Remove(key string) (result int) {
	s := dict.getShard(key)
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if _, ok := s.mp[key]; ok {
		delete(s.mp, key)
		atomic.AddInt32(&dict.count, -1)
		return 1
	}
	return 0
}

/*
ForEach
visit every entry shard by shard. stops when consumer returns false.
*/
func (dict *ConcurrentDict[V]) ForEach(consumer Consumer[V]) {
	for _, s := range dict.table {
		s.mutex.RLock()
		ctu := func() bool {
			defer s.mutex.RUnlock()
			for k, v := range s.mp {
				if !consumer(k, v) {
					return false
				}
			}
			return true
		}()
		if !ctu {
			return
		}
	}
}

// Keys returns every key in ascending order.
func (dict *ConcurrentDict[V]) Keys() []string {
	keys := make([]string, 0, dict.Len())
	dict.ForEach(func(key string, _ V) bool {
		keys = append(keys, key)
		return true
	})
	sort.Strings(keys)
	return keys
}

func hash(key string) uint32 {
	hash := uint32(2166136261)
	for i := 0; i < len(key); i++ {
		hash *= prime32
		hash ^= uint32(key[i])
	}
	return hash
}
