// Package chained implements the hash table backing hashkv: separate
// chaining with doubly linked buckets and load-factor-triggered rehashing.
//
// The slot function is the key itself modulo the bucket count. Bucket
// layout is observable through Chains, so swapping in a mixing hash would
// change what callers see; distribution is only as good as the keys.
package chained

import "errors"

// ErrEmptyTable is returned by Retrieve and Delete when the table holds no
// entries, so callers can tell "nothing to search" from "searched, not
// found".
var ErrEmptyTable = errors.New("hash table is empty")

const (
	// DefaultInitialBuckets is the bucket count of a fresh table.
	DefaultInitialBuckets = 5

	// DefaultRehashRatio is the load factor at which the table doubles
	// its bucket count.
	DefaultRehashRatio = 2.0
)

type entry struct {
	key   int
	value any
	prev  *entry
	next  *entry
}

// Table maps integer keys to arbitrary payloads. A nil payload is a legal
// stored value, distinct from key absence. Not safe for concurrent use.
type Table struct {
	buckets []*entry
	size    int
	ratio   float64
}

// New returns a table with the default bucket count and rehash ratio.
func New() *Table {
	return NewWithOptions(DefaultInitialBuckets, DefaultRehashRatio)
}

// NewWithOptions returns a table with the given initial bucket count and
// rehash ratio. It panics if buckets < 1 or ratio <= 0.
func NewWithOptions(buckets int, ratio float64) *Table {
	if buckets < 1 {
		panic("chained: initial bucket count must be at least 1")
	}
	if ratio <= 0 {
		panic("chained: rehash ratio must be positive")
	}
	return &Table{
		buckets: make([]*entry, buckets),
		ratio:   ratio,
	}
}

// Size returns the number of stored entries.
func (t *Table) Size() int { return t.size }

// Capacity returns the current bucket count.
func (t *Table) Capacity() int { return len(t.buckets) }

// IsEmpty reports whether the table holds no entries.
func (t *Table) IsEmpty() bool { return t.size == 0 }

// LoadFactor returns size divided by the bucket count.
func (t *Table) LoadFactor() float64 {
	return float64(t.size) / float64(len(t.buckets))
}

// slotIn returns the bucket index for key in a table of n buckets. The
// remainder is normalized so negative keys index a valid slot.
func slotIn(key, n int) int {
	s := key % n
	if s < 0 {
		s += n
	}
	return s
}

// Insert stores value under key. An existing key has its value overwritten
// in place; a new key is appended at the tail of its chain. If a new key
// pushes the load factor to the rehash ratio or beyond, the table rehashes
// before Insert returns.
func (t *Table) Insert(key int, value any) {
	if !insertInto(t.buckets, key, value) {
		// update in place: no size change, no rehash check
		return
	}
	t.size++
	if t.LoadFactor() >= t.ratio {
		t.rehash()
	}
}

// insertInto places key/value in buckets and reports whether a new entry
// was created (false means an existing key was updated). Shared by Insert
// and rehash; it touches only the given bucket array, never the table's
// counters.
func insertInto(buckets []*entry, key int, value any) bool {
	slot := slotIn(key, len(buckets))
	if buckets[slot] == nil {
		buckets[slot] = &entry{key: key, value: value}
		return true
	}

	curr := buckets[slot]
	for {
		if curr.key == key {
			curr.value = value
			return false
		}
		if curr.next == nil {
			break
		}
		curr = curr.next
	}
	curr.next = &entry{key: key, value: value, prev: curr}
	return true
}

// rehash doubles the bucket count and re-places every entry by the slot
// function against the new count. The new array is built in full before
// the swap, so a partially migrated table is never observable.
func (t *Table) rehash() {
	next := make([]*entry, len(t.buckets)*2)
	for _, head := range t.buckets {
		for curr := head; curr != nil; curr = curr.next {
			insertInto(next, curr.key, curr.value)
		}
	}
	t.buckets = next
}

// Retrieve looks up key without mutating the table. It returns
// ErrEmptyTable when the table holds no entries; otherwise found reports
// whether the key is present.
func (t *Table) Retrieve(key int) (value any, found bool, err error) {
	if t.size == 0 {
		return nil, false, ErrEmptyTable
	}
	slot := slotIn(key, len(t.buckets))
	for curr := t.buckets[slot]; curr != nil; curr = curr.next {
		if curr.key == key {
			return curr.value, true, nil
		}
	}
	return nil, false, nil
}

// Delete removes the entry stored under key. It returns ErrEmptyTable when
// the table holds no entries; otherwise deleted reports whether the key
// was present and removed.
func (t *Table) Delete(key int) (deleted bool, err error) {
	if t.size == 0 {
		return false, ErrEmptyTable
	}

	slot := slotIn(key, len(t.buckets))
	var target *entry
	for curr := t.buckets[slot]; curr != nil; curr = curr.next {
		if curr.key == key {
			target = curr
			break
		}
	}
	if target == nil {
		return false, nil
	}

	if target == t.buckets[slot] {
		t.buckets[slot] = target.next
		if target.next != nil {
			target.next.prev = nil
		}
	} else {
		target.prev.next = target.next
		if target.next != nil {
			target.next.prev = target.prev
		}
	}

	// the removed entry must not retain reachability into the chain
	target.prev = nil
	target.next = nil
	t.size--
	return true, nil
}

// Chains returns the keys of every non-empty chain, one slice per bucket
// in bucket order, each in chain order. Diagnostic only; callers own the
// formatting.
func (t *Table) Chains() [][]int {
	chains := make([][]int, 0, len(t.buckets))
	for _, head := range t.buckets {
		if head == nil {
			continue
		}
		var keys []int
		for curr := head; curr != nil; curr = curr.next {
			keys = append(keys, curr.key)
		}
		chains = append(chains, keys)
	}
	return chains
}
