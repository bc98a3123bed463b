package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textile-market-backend/internal/model"
)

func TestMemoryStore_MaterialsInsertionOrder(t *testing.T) {
	s := NewMemoryStore()

	for i := 0; i < 5; i++ {
		s.AppendMaterial(model.Material{ID: fmt.Sprintf("MAT-%08d", i)})
	}

	materials := s.Materials()
	require.Len(t, materials, 5)
	for i, m := range materials {
		assert.Equal(t, fmt.Sprintf("MAT-%08d", i), m.ID)
	}
}

func TestMemoryStore_MaterialByID(t *testing.T) {
	s := NewMemoryStore()
	s.AppendMaterial(model.Material{ID: "MAT-AAAA0001", Filename: "shirt.jpg"})

	m, err := s.MaterialByID("MAT-AAAA0001")
	require.NoError(t, err)
	assert.Equal(t, "shirt.jpg", m.Filename)

	_, err = s.MaterialByID("MAT-MISSING1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_MaterialsReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	s.AppendMaterial(model.Material{ID: "MAT-AAAA0001", Filename: "shirt.jpg"})

	list := s.Materials()
	list[0].Filename = "mutated.jpg"

	m, err := s.MaterialByID("MAT-AAAA0001")
	require.NoError(t, err)
	assert.Equal(t, "shirt.jpg", m.Filename)
}

func TestMemoryStore_OrdersAndCounts(t *testing.T) {
	s := NewMemoryStore()
	assert.Empty(t, s.Orders())

	s.AppendMaterial(model.Material{ID: "MAT-AAAA0001"})
	s.AppendOrder(model.Order{ID: "ORD-BBBB0001", MaterialID: "MAT-AAAA0001"})
	s.AppendOrder(model.Order{ID: "ORD-BBBB0002", MaterialID: "MAT-AAAA0001"})

	orders := s.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-BBBB0001", orders[0].ID)
	assert.Equal(t, "ORD-BBBB0002", orders[1].ID)

	materials, totalOrders := s.Counts()
	assert.Equal(t, 1, materials)
	assert.Equal(t, 2, totalOrders)
}

func TestMemoryStore_ConcurrentAppends(t *testing.T) {
	s := NewMemoryStore()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			s.AppendMaterial(model.Material{ID: fmt.Sprintf("MAT-%08d", i)})
		}(i)
	}
	wg.Wait()

	materials, _ := s.Counts()
	assert.Equal(t, n, materials)

	for i := 0; i < n; i++ {
		_, err := s.MaterialByID(fmt.Sprintf("MAT-%08d", i))
		assert.NoError(t, err)
	}
}
