package shop

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

// Property: no interleaving of order placements and stock corrections
// ever drives a product's stock negative, and every stored order's
// total is exactly unitPrice * quantity.
func TestStockInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		svc := NewService(NewStore())

		userCount := rapid.IntRange(1, 3).Draw(t, "users")
		for i := 0; i < userCount; i++ {
			name := rapid.StringMatching(`[a-z]{3,8}`).Draw(t, "name")
			if _, err := svc.RegisterUser(name, name+"@example.com"); err != nil {
				var de *DuplicateError
				if !errors.As(err, &de) {
					t.Fatalf("register user: %v", err)
				}
			}
		}

		productCount := rapid.IntRange(1, 3).Draw(t, "products")
		for i := 0; i < productCount; i++ {
			price := float64(rapid.IntRange(0, 500).Draw(t, "price"))
			stock := rapid.IntRange(0, 20).Draw(t, "stock")
			if _, err := svc.AddProduct("product", price, stock); err != nil {
				t.Fatalf("add product: %v", err)
			}
		}

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			userID := int64(rapid.IntRange(1, userCount+1).Draw(t, "userId"))
			productID := int64(rapid.IntRange(1, productCount+1).Draw(t, "productId"))

			if rapid.Float64Range(0, 1).Draw(t, "op") < 0.2 {
				stock := rapid.IntRange(-1, 25).Draw(t, "newStock")
				_, _ = svc.SetProductStock(productID, stock)
			} else {
				quantity := rapid.IntRange(-1, 10).Draw(t, "quantity")
				_, _ = svc.PlaceOrder(userID, productID, quantity)
			}

			for _, p := range svc.Products() {
				if p.Stock < 0 {
					t.Fatalf("product %d stock went negative: %d", p.ID, p.Stock)
				}
			}
		}

		for _, o := range svc.Orders() {
			if o.Total != o.UnitPrice*float64(o.Quantity) {
				t.Fatalf("order %d: total %v != %v * %d", o.ID, o.Total, o.UnitPrice, o.Quantity)
			}
			if o.Quantity <= 0 {
				t.Fatalf("order %d stored with non-positive quantity %d", o.ID, o.Quantity)
			}
			if o.Status != StatusPending {
				t.Fatalf("order %d stored with status %q", o.ID, o.Status)
			}
		}
	})
}
