package Maps

import (
	"fmt"
	"iter"
)

// Map from K to V. Absence is reported through the bool results, never through errors.
type Map[K, V any] interface {
	// Put v at k. Returns the previous value and true if k was already present.
	Put(K, V) (V, bool)
	HasKey(K) bool
	Get(K) (V, bool)
	// Remove k. Returns its value and true if it was present.
	Remove(K) (V, bool)
	// Take a key and its value, zero values if the Map is empty.
	Take() (K, V)
	Keys() iter.Seq[K]
	Values() iter.Seq[V]
	Pairs() iter.Seq2[K, V]
	Size() uint
	Clear()
}

// Swapper exchanges the values stored at two keys, leaving the keys in place.
type Swapper[K any] interface {
	Swap(k1, k2 K) error
}

// MissingKeyError is returned when an operation needs a key that isn't in the Map.
type MissingKeyError struct {
	Key any
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("Map has no key %v.", e.Key)
}
