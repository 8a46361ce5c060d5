package seed

import (
	"context"
	"fmt"

	"ecopontos/internal/store"
	"ecopontos/pkg/types"
)

// Categories is the source of truth for the material catalog. Ids are
// fixed; rerunning the seed updates titles and images in place.
func Categories() []types.Category {
	return []types.Category{
		{ID: 1, Title: "Lâmpadas", Image: "lampadas.svg"},
		{ID: 2, Title: "Pilhas e Baterias", Image: "baterias.svg"},
		{ID: 3, Title: "Papéis e Papelão", Image: "papeis-papelao.svg"},
		{ID: 4, Title: "Resíduos Eletrônicos", Image: "eletronicos.svg"},
		{ID: 5, Title: "Resíduos Orgânicos", Image: "organicos.svg"},
		{ID: 6, Title: "Óleo de Cozinha", Image: "oleo.svg"},
	}
}

// SeedCategories syncs the database with the catalog above.
func SeedCategories(ctx context.Context, repo *store.CategoryRepository) error {
	for _, category := range Categories() {
		if err := repo.UpsertCategory(ctx, &category); err != nil {
			return fmt.Errorf("seed category %d: %w", category.ID, err)
		}
	}

	return nil
}
