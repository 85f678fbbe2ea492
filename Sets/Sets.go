package Sets

// Set of unique elements of type E. Implementations define their own notion of
// element equality; none of them are safe for concurrent use unless stated
// otherwise.
type Set[E any] interface {
	Put(E) bool
	Has(E) bool
	Remove(E) bool
	Size() uint
	Take() E
	Range(func(E) bool)
}
