package store

import (
	"errors"
	"sync"

	"textile-market-backend/internal/model"
)

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("record not found")

// Store defines the operations the API layer performs against the
// process-wide material and order collections.
type Store interface {
	AppendMaterial(m model.Material)
	Materials() []model.Material
	MaterialByID(id string) (model.Material, error)
	AppendOrder(o model.Order)
	Orders() []model.Order
	Counts() (materials int, orders int)
}

// memoryStore keeps both collections as append-only slices guarded by a
// read-write mutex. Records live until process restart; there is no
// persistence layer behind them.
type memoryStore struct {
	mu          sync.RWMutex
	materials   []model.Material
	materialIdx map[string]int
	orders      []model.Order
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() Store {
	return &memoryStore{materialIdx: make(map[string]int)}
}

// AppendMaterial adds a material record. Appends preserve insertion order
// and are immediately visible to subsequent reads.
func (s *memoryStore) AppendMaterial(m model.Material) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.materialIdx[m.ID] = len(s.materials)
	s.materials = append(s.materials, m)
}

// Materials returns a copy of all material records in insertion order.
func (s *memoryStore) Materials() []model.Material {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Material, len(s.materials))
	copy(out, s.materials)
	return out
}

// MaterialByID looks up a single material record.
func (s *memoryStore) MaterialByID(id string) (model.Material, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.materialIdx[id]
	if !ok {
		return model.Material{}, ErrNotFound
	}
	return s.materials[i], nil
}

// AppendOrder adds an order record.
func (s *memoryStore) AppendOrder(o model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, o)
}

// Orders returns a copy of all order records in insertion order.
func (s *memoryStore) Orders() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Counts returns the total number of materials and orders.
func (s *memoryStore) Counts() (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.materials), len(s.orders)
}
