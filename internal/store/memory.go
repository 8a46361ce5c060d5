package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"ecopontos/pkg/types"
)

// Memory is an in-memory implementation of CategoryStore and PointStore.
// It mirrors the relational invariants: ids assigned on commit,
// referential checks against the catalog, and all-or-nothing visibility
// of the two-step create.
type Memory struct {
	mu           sync.RWMutex
	nextID       int64
	categories   []*types.Category
	points       map[int64]*types.Point
	associations map[int64][]int

	// FailCreateAfterInsert, when set, injects a fault between the point
	// insert and the association insert. The staged write must never
	// become visible.
	FailCreateAfterInsert func() error
}

func NewMemory(categories ...*types.Category) *Memory {
	catalog := make([]*types.Category, 0, len(categories))
	for _, c := range categories {
		dup := *c
		catalog = append(catalog, &dup)
	}
	sort.Slice(catalog, func(i, j int) bool { return catalog[i].ID < catalog[j].ID })

	return &Memory{
		categories:   catalog,
		points:       make(map[int64]*types.Point),
		associations: make(map[int64][]int),
	}
}

func (m *Memory) AllCategories(_ context.Context) ([]*types.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*types.Category, 0, len(m.categories))
	for _, c := range m.categories {
		dup := *c
		out = append(out, &dup)
	}
	return out, nil
}

func (m *Memory) CategoriesForPoint(_ context.Context, pointID int64) ([]*types.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	assigned := make(map[int]struct{}, len(m.associations[pointID]))
	for _, id := range m.associations[pointID] {
		assigned[id] = struct{}{}
	}

	out := make([]*types.Category, 0, len(assigned))
	for _, c := range m.categories {
		if _, ok := assigned[c.ID]; ok {
			dup := *c
			out = append(out, &dup)
		}
	}
	return out, nil
}

func (m *Memory) CreatePoint(_ context.Context, point *types.Point, categoryIDs []int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Stage the full write first so a failure on either step leaves the
	// visible state untouched.
	for _, id := range categoryIDs {
		if !m.categoryExists(id) {
			return 0, persistence("insert point categories", fmt.Errorf("category %d does not exist", id))
		}
	}

	staged := *point
	staged.ID = m.nextID + 1

	if m.FailCreateAfterInsert != nil {
		if err := m.FailCreateAfterInsert(); err != nil {
			return 0, persistence("insert point categories", err)
		}
	}

	m.nextID = staged.ID
	m.points[staged.ID] = &staged
	m.associations[staged.ID] = append([]int(nil), categoryIDs...)

	return staged.ID, nil
}

func (m *Memory) PointByID(_ context.Context, pointID int64) (*types.Point, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	point, ok := m.points[pointID]
	if !ok {
		return nil, types.ErrPointNotFound
	}

	dup := *point
	return &dup, nil
}

func (m *Memory) PointsByLocation(_ context.Context, uf, city string, categoryIDs []int) ([]*types.Point, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	wanted := make(map[int]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		wanted[id] = struct{}{}
	}

	out := make([]*types.Point, 0)
	for _, point := range m.points {
		if point.UF != uf || point.City != city {
			continue
		}
		for _, id := range m.associations[point.ID] {
			if _, ok := wanted[id]; ok {
				dup := *point
				out = append(out, &dup)
				break
			}
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) categoryExists(id int) bool {
	for _, c := range m.categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
