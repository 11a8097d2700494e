package service

import (
	"context"
	"errors"
	"testing"
)

func TestCartAddItemValidatesProduct(t *testing.T) {
	env := setupOrderTestEnv(t)
	ctx := context.Background()

	if _, err := env.cartService.AddItem(ctx, "user-alice", AddItemInput{ProductID: 9999, Quantity: 1}); !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("expected ErrProductNotAvailable, got %v", err)
	}
}

func TestCartAddItemValidatesToppings(t *testing.T) {
	env := setupOrderTestEnv(t)
	ctx := context.Background()

	_, err := env.cartService.AddItem(ctx, "user-alice", AddItemInput{
		ProductID:  env.margherita.ID,
		Quantity:   1,
		ToppingIDs: []uint{env.olives.ID, 9999},
	})
	if !errors.Is(err, ErrToppingNotAvailable) {
		t.Fatalf("expected ErrToppingNotAvailable, got %v", err)
	}
}

func TestCartMergeAndTotal(t *testing.T) {
	env := setupOrderTestEnv(t)
	ctx := context.Background()
	userID := "user-alice"

	if _, err := env.cartService.AddItem(ctx, userID, AddItemInput{ProductID: env.margherita.ID, Quantity: 2, ToppingIDs: []uint{env.olives.ID}}); err != nil {
		t.Fatalf("add item: %v", err)
	}
	cart, err := env.cartService.AddItem(ctx, userID, AddItemInput{ProductID: env.margherita.ID, Quantity: 3})
	if err != nil {
		t.Fatalf("add item again: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected merge into one line item, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("expected accumulated quantity 5, got %d", cart.Items[0].Quantity)
	}
	if len(cart.Items[0].Toppings) != 1 {
		t.Fatalf("expected original toppings kept on merge, got %d", len(cart.Items[0].Toppings))
	}
	// (10.00 + 1.50) * 5 = 57.50
	if cart.Total.String() != "57.50" {
		t.Fatalf("expected total 57.50, got %s", cart.Total.String())
	}
}

func TestCartUpdateQuantityClampsToOne(t *testing.T) {
	env := setupOrderTestEnv(t)
	ctx := context.Background()
	userID := "user-alice"

	if _, err := env.cartService.AddItem(ctx, userID, AddItemInput{ProductID: env.pepperoni.ID, Quantity: 4}); err != nil {
		t.Fatalf("add item: %v", err)
	}
	cart, err := env.cartService.UpdateQuantity(ctx, userID, env.pepperoni.ID, -2)
	if err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	if cart.Items[0].Quantity != 1 {
		t.Fatalf("expected quantity clamped to 1, got %d", cart.Items[0].Quantity)
	}
}

func TestCartRemoveAbsentItemNoOp(t *testing.T) {
	env := setupOrderTestEnv(t)
	ctx := context.Background()
	userID := "user-alice"

	if _, err := env.cartService.AddItem(ctx, userID, AddItemInput{ProductID: env.margherita.ID, Quantity: 1}); err != nil {
		t.Fatalf("add item: %v", err)
	}
	cart, err := env.cartService.RemoveItem(ctx, userID, 9999)
	if err != nil {
		t.Fatalf("remove absent item: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected cart unchanged, got %d items", len(cart.Items))
	}
}

func TestCartIsolatedPerUser(t *testing.T) {
	env := setupOrderTestEnv(t)
	ctx := context.Background()

	if _, err := env.cartService.AddItem(ctx, "user-alice", AddItemInput{ProductID: env.margherita.ID, Quantity: 1}); err != nil {
		t.Fatalf("add item: %v", err)
	}
	cart, err := env.cartService.Get(ctx, "user-bob")
	if err != nil {
		t.Fatalf("get other user cart: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart for other user, got %d items", len(cart.Items))
	}
}
