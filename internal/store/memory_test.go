package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"ecopontos/pkg/types"

	"github.com/stretchr/testify/suite"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *Memory
	ctx   context.Context
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = NewMemory(
		&types.Category{ID: 1, Title: "Lâmpadas", Image: "lampadas.svg"},
		&types.Category{ID: 2, Title: "Pilhas e Baterias", Image: "baterias.svg"},
		&types.Category{ID: 3, Title: "Papéis e Papelão", Image: "papeis-papelao.svg"},
	)
	s.ctx = context.Background()
}

func (s *MemoryStoreSuite) newPoint(name, city, uf string) *types.Point {
	return &types.Point{
		Image:     "mercado.jpg",
		Name:      name,
		Email:     "contato@example.com",
		Whatsapp:  "5511999990000",
		Latitude:  -23.55,
		Longitude: -46.63,
		City:      city,
		UF:        uf,
	}
}

func (s *MemoryStoreSuite) TestCreateAndRead() {
	s.Run("created point is readable with its categories", func() {
		id, err := s.store.CreatePoint(s.ctx, s.newPoint("Mercado Central", "Sao Paulo", "SP"), []int{1, 3})
		s.Require().NoError(err)

		point, err := s.store.PointByID(s.ctx, id)
		s.Require().NoError(err)
		s.Equal("Mercado Central", point.Name)
		s.Equal(id, point.ID)

		categories, err := s.store.CategoriesForPoint(s.ctx, id)
		s.Require().NoError(err)

		titles := make([]string, 0, len(categories))
		for _, c := range categories {
			titles = append(titles, c.Title)
		}
		s.ElementsMatch([]string{"Lâmpadas", "Papéis e Papelão"}, titles)
	})

	s.Run("unknown id is not found", func() {
		_, err := s.store.PointByID(s.ctx, 9999)
		s.Require().ErrorIs(err, types.ErrPointNotFound)
	})

	s.Run("unknown category fails the whole write", func() {
		id, err := s.store.CreatePoint(s.ctx, s.newPoint("Feira", "Sao Paulo", "SP"), []int{1, 42})
		s.Require().Error(err)
		s.Zero(id)

		var pErr *types.PersistenceError
		s.Require().ErrorAs(err, &pErr)
	})
}

func (s *MemoryStoreSuite) TestAtomicityUnderFault() {
	boom := errors.New("storage fault")
	s.store.FailCreateAfterInsert = func() error { return boom }

	_, err := s.store.CreatePoint(s.ctx, s.newPoint("Mercado", "Sao Paulo", "SP"), []int{1})
	s.Require().Error(err)
	s.Require().ErrorIs(err, boom)

	// Neither the point nor its associations may be visible.
	s.Empty(s.store.points)
	s.Empty(s.store.associations)

	// The id sequence must not have burned the staged id either; the next
	// successful create starts from a clean slate.
	s.store.FailCreateAfterInsert = nil
	id, err := s.store.CreatePoint(s.ctx, s.newPoint("Mercado", "Sao Paulo", "SP"), []int{1})
	s.Require().NoError(err)

	point, err := s.store.PointByID(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("Mercado", point.Name)
}

func (s *MemoryStoreSuite) TestPointsByLocation() {
	mk := func(name string, categories []int) int64 {
		id, err := s.store.CreatePoint(s.ctx, s.newPoint(name, "Sao Paulo", "SP"), categories)
		s.Require().NoError(err)
		return id
	}

	both := mk("Both", []int{1, 2})
	onlyOne := mk("OnlyOne", []int{1})
	_ = mk("OnlyThree", []int{3})

	elsewhereID, err := s.store.CreatePoint(s.ctx, s.newPoint("Elsewhere", "Campinas", "SP"), []int{1})
	s.Require().NoError(err)

	s.Run("inclusive OR with distinct results", func() {
		points, err := s.store.PointsByLocation(s.ctx, "SP", "Sao Paulo", []int{1, 2})
		s.Require().NoError(err)

		ids := make([]int64, 0, len(points))
		for _, p := range points {
			ids = append(ids, p.ID)
		}
		// Both matches through two categories yet appears once.
		s.Equal([]int64{both, onlyOne}, ids)
	})

	s.Run("points lacking the selected category are excluded", func() {
		points, err := s.store.PointsByLocation(s.ctx, "SP", "Sao Paulo", []int{2})
		s.Require().NoError(err)
		s.Require().Len(points, 1)
		s.Equal(both, points[0].ID)
	})

	s.Run("city match is exact and case sensitive", func() {
		points, err := s.store.PointsByLocation(s.ctx, "SP", "sao paulo", []int{1, 2, 3})
		s.Require().NoError(err)
		s.Empty(points)
	})

	s.Run("empty category set matches nothing", func() {
		points, err := s.store.PointsByLocation(s.ctx, "SP", "Sao Paulo", nil)
		s.Require().NoError(err)
		s.Empty(points)
	})

	s.Run("other city is reachable under its own filter", func() {
		points, err := s.store.PointsByLocation(s.ctx, "SP", "Campinas", []int{1})
		s.Require().NoError(err)
		s.Require().Len(points, 1)
		s.Equal(elsewhereID, points[0].ID)
	})
}

func (s *MemoryStoreSuite) TestConcurrentCreates() {
	const writers = 20

	var wg sync.WaitGroup
	ids := make([]int64, writers)
	errs := make([]error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Overlapping category sets across writers.
			categories := []int{1 + i%2, 3}
			ids[i], errs[i] = s.store.CreatePoint(s.ctx, s.newPoint(fmt.Sprintf("Point %d", i), "Sao Paulo", "SP"), categories)
		}(i)
	}
	wg.Wait()

	seen := make(map[int64]struct{}, writers)
	for i := 0; i < writers; i++ {
		s.Require().NoError(errs[i])
		s.NotContains(seen, ids[i])
		seen[ids[i]] = struct{}{}

		categories, err := s.store.CategoriesForPoint(s.ctx, ids[i])
		s.Require().NoError(err)

		got := make([]int, 0, len(categories))
		for _, c := range categories {
			got = append(got, c.ID)
		}
		s.ElementsMatch([]int{1 + i%2, 3}, got)
	}
}

func (s *MemoryStoreSuite) TestAllCategories() {
	categories, err := s.store.AllCategories(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(categories, 3)
	s.Equal(1, categories[0].ID)
	s.Equal("Pilhas e Baterias", categories[1].Title)
}
