package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func money(value float64) Money {
	return NewMoneyFromFloat(value)
}

func TestCartAddItemMergesByProductID(t *testing.T) {
	cart := NewCart()
	margherita := Product{ID: 1, Name: "Margherita", Price: money(10)}
	olives := Topping{ID: 7, Name: "Olives", Price: money(1.5)}

	cart.AddItem(margherita, 2, []Topping{olives}, "extra crispy")
	cart.AddItem(margherita, 3, []Topping{{ID: 8, Name: "Basil", Price: money(0.5)}}, "ignored")

	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(cart.Items))
	}
	item := cart.Items[0]
	if item.Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", item.Quantity)
	}
	if len(item.Toppings) != 1 || item.Toppings[0].ID != 7 {
		t.Fatalf("expected original toppings to be kept, got %+v", item.Toppings)
	}
	if item.Notes != "extra crispy" {
		t.Fatalf("expected original notes to be kept, got %q", item.Notes)
	}
}

func TestCartAddItemClampsQuantity(t *testing.T) {
	cart := NewCart()
	cart.AddItem(Product{ID: 1, Price: money(10)}, 0, nil, "")
	if cart.Items[0].Quantity != 1 {
		t.Fatalf("expected quantity clamped to 1, got %d", cart.Items[0].Quantity)
	}
	cart.UpdateQuantity(1, -3)
	if cart.Items[0].Quantity != 1 {
		t.Fatalf("expected update quantity clamped to 1, got %d", cart.Items[0].Quantity)
	}
}

func TestCartAddItemDedupesToppings(t *testing.T) {
	cart := NewCart()
	olives := Topping{ID: 7, Price: money(1.5)}
	cart.AddItem(Product{ID: 1, Price: money(10)}, 1, []Topping{olives, olives}, "")
	if len(cart.Items[0].Toppings) != 1 {
		t.Fatalf("expected toppings unique by id, got %d", len(cart.Items[0].Toppings))
	}
}

func TestCartRemoveItemAbsentIsNoop(t *testing.T) {
	cart := NewCart()
	cart.AddItem(Product{ID: 1, Price: money(10)}, 1, nil, "")
	cart.RemoveItem(99)
	if len(cart.Items) != 1 {
		t.Fatalf("expected remove of absent id to be a no-op, got %d items", len(cart.Items))
	}
	cart.RemoveItem(1)
	if !cart.IsEmpty() {
		t.Fatalf("expected cart to be empty after removing the only item")
	}
}

func TestCartTotal(t *testing.T) {
	cart := NewCart()
	cart.AddItem(Product{ID: 1, Name: "Margherita", Price: money(10)}, 2, []Topping{{ID: 7, Name: "Olives", Price: money(1.5)}}, "")
	cart.AddItem(Product{ID: 2, Name: "Pepperoni", Price: money(12)}, 1, nil, "")

	expected := decimal.NewFromFloat(35.00)
	if !cart.Total().Decimal.Equal(expected) {
		t.Fatalf("expected total 35.00, got %s", cart.Total().String())
	}
}

func TestCartTotalZeroToppingItemDelta(t *testing.T) {
	cart := NewCart()
	cart.AddItem(Product{ID: 1, Price: money(10)}, 2, []Topping{{ID: 7, Price: money(1.5)}}, "")
	before := cart.Total().Decimal

	cart.AddItem(Product{ID: 2, Price: money(4.25)}, 3, nil, "")
	delta := cart.Total().Decimal.Sub(before)
	if !delta.Equal(decimal.NewFromFloat(12.75)) {
		t.Fatalf("expected delta product.price*quantity=12.75, got %s", delta.String())
	}
}

func TestCartClear(t *testing.T) {
	cart := NewCart()
	cart.AddItem(Product{ID: 1, Price: money(10)}, 1, nil, "")
	cart.Clear()
	if !cart.IsEmpty() {
		t.Fatalf("expected cleared cart to be empty")
	}
	if !cart.Total().Decimal.Equal(decimal.Zero) {
		t.Fatalf("expected cleared cart total 0, got %s", cart.Total().String())
	}
}
