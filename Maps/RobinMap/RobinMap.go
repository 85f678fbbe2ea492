package RobinMap

import (
	"unsafe"

	Robin_Utils "github.com/g-m-twostay/robin-utils"
	"github.com/g-m-twostay/robin-utils/Sets/RobinSet"
)

type pair[K comparable, V any] struct {
	key K
	val V
}

// New RobinMap using hs to hash keys. size has the same meaning as in
// RobinSet.New.
func New[K comparable, V any](hs func(*K) uint, size uint) *RobinMap[K, V] {
	return &RobinMap[K, V]{RobinSet.New[pair[K, V]](func(p *pair[K, V]) uint {
		return hs(&p.key)
	}, func(a, b pair[K, V]) bool {
		return a.key == b.key
	}, size)}
}

// NewComparable RobinMap hashing keys by their memory contents, with the same
// caveats as RobinSet.NewComparable.
func NewComparable[K comparable, V any](size, seed uint) *RobinMap[K, V] {
	sd := Robin_Utils.Hasher(seed)
	return New[K, V](func(k *K) uint {
		return sd.HashMem(unsafe.Pointer(k), unsafe.Sizeof(*k))
	}, size)
}

// RobinMap is a key value view over a RobinSet: entries are stored as set
// elements that hash and compare by key only, so overwriting a value is a
// Replace on the set. Not safe for concurrent use.
type RobinMap[K comparable, V any] struct {
	set *RobinSet.RobinSet[pair[K, V]]
}

// Store val under key, overwriting any previous value.
func (u *RobinMap[K, V]) Store(key K, val V) {
	if p := (pair[K, V]{key, val}); !u.set.Put(p) {
		u.set.Replace(p)
	}
}

// Load the value stored under key.
func (u *RobinMap[K, V]) Load(key K) (V, bool) {
	if c := u.set.Find(pair[K, V]{key: key}); c != u.set.End() {
		return c.Get().val, true
	}
	return *new(V), false
}

// HasKey returns true if key is present.
func (u *RobinMap[K, V]) HasKey(key K) bool {
	return u.set.Has(pair[K, V]{key: key})
}

// Remove the entry stored under key. Returns true if it existed.
func (u *RobinMap[K, V]) Remove(key K) bool {
	return u.set.Remove(pair[K, V]{key: key})
}

// Size of the map.
func (u *RobinMap[K, V]) Size() uint {
	return u.set.Size()
}

// Take an arbitrary entry from the map. Returns zero values if the map is
// empty.
func (u *RobinMap[K, V]) Take() (K, V) {
	p := u.set.Take()
	return p.key, p.val
}

// Range over the entries and call f on each. Stops when f returns false. f must
// not modify the map.
func (u *RobinMap[K, V]) Range(f func(K, V) bool) {
	u.set.Range(func(p pair[K, V]) bool {
		return f(p.key, p.val)
	})
}

// Reserve grows the map so that n entries fit without further growth.
func (u *RobinMap[K, V]) Reserve(n uint) {
	u.set.Reserve(n)
}

// Clear removes all entries.
func (u *RobinMap[K, V]) Clear() {
	u.set.Clear()
}
