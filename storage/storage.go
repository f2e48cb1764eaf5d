// Package storage fronts the chained hash table for concurrent callers.
package storage

import (
	"sync"

	"github.com/hashkv/hashkv/storage/chained"
)

// Backend is the set of table operations the collaborators consume.
type Backend interface {
	Insert(key int, value any)
	Retrieve(key int) (value any, found bool, err error)
	Delete(key int) (deleted bool, err error)
	Size() int
	Capacity() int
	IsEmpty() bool
	LoadFactor() float64
	Chains() [][]int
}

// Stats is a point-in-time snapshot of the table's shape.
type Stats struct {
	Size       int     `json:"size"`
	Buckets    int     `json:"buckets"`
	LoadFactor float64 `json:"load_factor"`
	Empty      bool    `json:"empty"`
}

// Store guards a single table with a mutex for use by concurrent callers
// such as the HTTP server. The table itself is single-threaded; the lock
// lives here so the interactive shell can use the bare table without it.
type Store struct {
	mu    sync.Mutex
	table Backend
}

// New returns a Store over a fresh table with the given shape.
func New(initialBuckets int, rehashRatio float64) *Store {
	return &Store{table: chained.NewWithOptions(initialBuckets, rehashRatio)}
}

func (s *Store) Insert(key int, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table.Insert(key, value)
}

func (s *Store) Retrieve(key int) (any, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Retrieve(key)
}

func (s *Store) Delete(key int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Delete(key)
}

// Chains returns the keys of each non-empty chain in bucket order.
func (s *Store) Chains() [][]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Chains()
}

// Stats reports the table's current size, bucket count, load factor and
// emptiness as one consistent snapshot.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Size:       s.table.Size(),
		Buckets:    s.table.Capacity(),
		LoadFactor: s.table.LoadFactor(),
		Empty:      s.table.IsEmpty(),
	}
}
