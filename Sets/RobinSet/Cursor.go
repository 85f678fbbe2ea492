package RobinSet

// Cursor is a forward-only view over the occupied slots of a set, holding just
// a position. Cursors compare by position with ==; a cursor equal to End() is
// past the last slot and holds no element. Any Put that grows the table and any
// Remove invalidate existing cursors; using one afterwards is undefined.
type Cursor[E any] struct {
	s *RobinSet[E]
	i int
}

// Begin returns a cursor at the first occupied slot, equal to End() on an
// empty set.
func (u *RobinSet[E]) Begin() Cursor[E] {
	return Cursor[E]{u, -1}.Next()
}

// End returns the cursor one past the last slot.
func (u *RobinSet[E]) End() Cursor[E] {
	return Cursor[E]{u, len(u.bkt)}
}

// Find the element equal to e. Returns End() if e is absent.
func (u *RobinSet[E]) Find(e E) Cursor[E] {
	if i := u.locate(&e); i >= 0 {
		return Cursor[E]{u, i}
	}
	return u.End()
}

// Next returns the cursor advanced to the following occupied slot. Must not be
// called on End().
func (c Cursor[E]) Next() Cursor[E] {
	for c.i++; c.i < len(c.s.bkt) && !c.s.bkt[c.i].filled(); c.i++ {
	}
	return c
}

// Get the element under the cursor. Must not be called on End().
func (c Cursor[E]) Get() E {
	return c.s.bkt[c.i].element
}
