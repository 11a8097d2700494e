package service

import (
	"context"
	"testing"

	"github.com/pizza-palace/internal/models"
	"github.com/pizza-palace/internal/repository"
)

func TestCatalogSnapshotExcludesInactive(t *testing.T) {
	env := setupOrderTestEnv(t)

	inactiveProduct := models.Product{CategoryID: 1, Name: "Retired Special", Price: models.NewMoneyFromFloat(9.00), IsActive: false}
	if err := env.db.Create(&inactiveProduct).Error; err != nil {
		t.Fatalf("seed inactive product: %v", err)
	}
	inactiveTopping := models.Topping{Name: "Seasonal Truffle", Price: models.NewMoneyFromFloat(3.00), IsActive: false}
	if err := env.db.Create(&inactiveTopping).Error; err != nil {
		t.Fatalf("seed inactive topping: %v", err)
	}

	catalogService := NewCatalogService(
		repository.NewCategoryRepository(env.db),
		repository.NewProductRepository(env.db),
		repository.NewToppingRepository(env.db),
		60,
	)

	snapshot, err := catalogService.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(snapshot.Categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(snapshot.Categories))
	}
	if len(snapshot.Products) != 2 {
		t.Fatalf("expected 2 active products, got %d", len(snapshot.Products))
	}
	for _, product := range snapshot.Products {
		if !product.IsActive {
			t.Fatalf("inactive product leaked into snapshot: %s", product.Name)
		}
	}
	if len(snapshot.Toppings) != 1 {
		t.Fatalf("expected 1 active topping, got %d", len(snapshot.Toppings))
	}
	if snapshot.Toppings[0].Name != "Olives" {
		t.Fatalf("expected olives topping, got %s", snapshot.Toppings[0].Name)
	}
}
