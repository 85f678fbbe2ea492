package RobinSet

import (
	"unsafe"

	"github.com/cespare/xxhash"
	Robin_Utils "github.com/g-m-twostay/robin-utils"
	"golang.org/x/exp/constraints"
)

// initCap is the capacity a set starts at and returns to on Clear.
const initCap = 8

// New RobinSet of type E using hs to hash elements and eq to compare them. Both
// are fixed for the lifetime of the set; eq must be consistent with hs (equal
// elements hash equally). size is the number of elements the set should hold
// without growing.
func New[E any](hs func(*E) uint, eq func(E, E) bool, size uint) *RobinSet[E] {
	return &RobinSet[E]{bkt: make([]bucket[E], capFor(size)), hs: hs, eq: eq}
}

// NewComparable RobinSet hashing elements by their memory contents with the
// runtime's seeded hash and comparing them with ==. E must be fully determined
// by its memory contents: don't use this for types containing pointers or
// strings, their headers would be hashed instead of what they point to.
func NewComparable[E comparable](size, seed uint) *RobinSet[E] {
	sd := Robin_Utils.Hasher(seed)
	return New[E](func(e *E) uint {
		return sd.HashMem(unsafe.Pointer(e), unsafe.Sizeof(*e))
	}, func(a, b E) bool { return a == b }, size)
}

// NewInt RobinSet over an integer type, hashed with xxhash.
func NewInt[E constraints.Integer](size uint) *RobinSet[E] {
	return New[E](func(e *E) uint {
		return uint(xxhash.Sum64(unsafe.Slice((*byte)(unsafe.Pointer(e)), unsafe.Sizeof(*e))))
	}, func(a, b E) bool { return a == b }, size)
}

// NewString RobinSet over strings, hashed by contents with the runtime's seeded
// string hash.
func NewString(size, seed uint) *RobinSet[string] {
	sd := Robin_Utils.Hasher(seed)
	return New[string](func(e *string) uint {
		return sd.HashString(*e)
	}, func(a, b string) bool { return a == b }, size)
}

// RobinSet is an open addressing hash set using Robin Hood hashing: on
// collision the probe walks forward linearly, and an inserted element steals
// the slot of any resident closer to its own home, minimizing the variance of
// probe lengths. Removal shifts the following displaced elements backward
// instead of leaving tombstones. Not safe for concurrent use.
type RobinSet[E any] struct {
	bkt []bucket[E]
	hs  func(*E) uint
	eq  func(E, E) bool
	sz  uint
}

// capFor returns the smallest power of 2 capacity holding size elements within
// the 0.7 load factor.
func capFor(size uint) int {
	c := initCap
	for uint(c)*7 < size*10 {
		c <<= 1
	}
	return c
}

func (u *RobinSet[E]) mod(hash uint) int {
	return int(hash) & (len(u.bkt) - 1)
}

func (u *RobinSet[E]) step(i int) int {
	return (i + 1) & (len(u.bkt) - 1)
}

// locate returns the index of the slot holding an element equal to *e, or -1.
// The walk stops as soon as a slot's dib drops below the probe distance: the
// Robin Hood ordering guarantees *e can't sit any further along the run.
func (u *RobinSet[E]) locate(e *E) int {
	i := u.mod(u.hs(e))
	for dib := uint32(1); u.bkt[i].dib >= dib; i, dib = u.step(i), dib+1 {
		if u.bkt[i].dib == dib && u.eq(u.bkt[i].element, *e) {
			return i
		}
	}
	return -1
}

// place inserts e, which must be absent, displacing any resident that is closer
// to its home than the candidate. The load factor guarantees an empty slot
// terminates the walk.
func (u *RobinSet[E]) place(e E) {
	i, dib := u.mod(u.hs(&e)), uint32(1)
	for {
		if !u.bkt[i].filled() {
			u.bkt[i] = bucket[E]{e, dib}
			return
		}
		if u.bkt[i].dib < dib { //the resident is richer, candidate takes the slot
			e, u.bkt[i].element = u.bkt[i].element, e
			dib, u.bkt[i].dib = u.bkt[i].dib, dib
		}
		i, dib = u.step(i), dib+1
	}
}

// Put e into the set. Returns true if e was absent and is now added. Growth is
// decided after the duplicate check and before any slot is written, so putting
// a present element never modifies the set.
func (u *RobinSet[E]) Put(e E) bool {
	if u.locate(&e) >= 0 {
		return false
	}
	if (u.sz+1)*10 > uint(len(u.bkt))*7 {
		u.expand()
	}
	u.place(e)
	u.sz++
	return true
}

// Has e in the set. Returns true if e is present in the set.
func (u *RobinSet[E]) Has(e E) bool {
	return u.locate(&e) >= 0
}

// Remove e from the set. Returns true if the removal is successful. The hole is
// filled by shifting each following displaced element one slot backward, which
// keeps every dib accurate without tombstones; elements already at home don't
// move.
func (u *RobinSet[E]) Remove(e E) bool {
	i := u.locate(&e)
	if i < 0 {
		return false
	}
	for j := u.step(i); u.bkt[j].filled() && !u.bkt[j].home(); i, j = j, u.step(j) {
		u.bkt[i] = bucket[E]{u.bkt[j].element, u.bkt[j].dib - 1}
	}
	u.bkt[i] = bucket[E]{} //also drops the element so it doesn't linger
	u.sz--
	return true
}

// Replace the stored element equal to e with e itself. Returns true if such an
// element was present. e must hash like the element it replaces; useful when
// eq only inspects part of the element, such as the key of a key value pair.
func (u *RobinSet[E]) Replace(e E) bool {
	if i := u.locate(&e); i >= 0 {
		u.bkt[i].element = e
		return true
	}
	return false
}

// Size of the set.
func (u *RobinSet[E]) Size() uint {
	return u.sz
}

// Empty reports whether the set holds no elements.
func (u *RobinSet[E]) Empty() bool {
	return u.sz == 0
}

// Take an arbitrary element from the set. Returns zero value if the set is
// empty. Doesn't guarantee which element it will return.
func (u *RobinSet[E]) Take() (e E) {
	for i := range u.bkt {
		if u.bkt[i].filled() {
			return u.bkt[i].element
		}
	}
	return
}

// Range over the elements in slot order and call f on each. Stops when f
// returns false. f must not modify the set.
func (u *RobinSet[E]) Range(f func(E) bool) {
	for i := range u.bkt {
		if u.bkt[i].filled() && !f(u.bkt[i].element) {
			return
		}
	}
}

func (u *RobinSet[E]) expand() {
	u.rehash(len(u.bkt) << 1)
}

// rehash moves every element into a fresh array of newCap slots through the
// ordinary insertion walk, recomputing all distances. u.bkt is only swapped
// once the new array is fully populated, so a panic mid-rehash (from a user
// hasher, say) leaves the set as it was.
func (u *RobinSet[E]) rehash(newCap int) {
	M := RobinSet[E]{bkt: make([]bucket[E], newCap), hs: u.hs, eq: u.eq}
	for i := range u.bkt {
		if u.bkt[i].filled() {
			M.place(u.bkt[i].element)
		}
	}
	u.bkt = M.bkt
}

// Reserve grows the table so that n elements fit without further growth. Never
// shrinks.
func (u *RobinSet[E]) Reserve(n uint) {
	if c := capFor(n); c > len(u.bkt) {
		u.rehash(c)
	}
}

// Clear removes all elements and returns the table to the default capacity.
func (u *RobinSet[E]) Clear() {
	u.bkt = make([]bucket[E], initCap)
	u.sz = 0
}

// Clone returns a deep copy sharing no storage with u.
func (u *RobinSet[E]) Clone() *RobinSet[E] {
	c := *u
	c.bkt = make([]bucket[E], len(u.bkt))
	copy(c.bkt, u.bkt)
	return &c
}
