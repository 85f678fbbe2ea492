package RobinSet

// bucket is one slot of the table. dib doubles as the occupancy tag: 0 means the
// slot is empty, any other value means the element sits dib-1 probe steps after
// its home slot. Keeping the tag inside dib means clearing a slot and emptying
// it are the same write.
type bucket[E any] struct {
	element E
	dib     uint32
}

func (b *bucket[E]) filled() bool {
	return b.dib != 0
}

// home reports whether the element sits in its ideal slot. Such elements never
// move during a backward shift.
func (b *bucket[E]) home() bool {
	return b.dib == 1
}
