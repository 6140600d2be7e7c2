package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUserInput(t *testing.T) {
	assert.NoError(t, ValidateUserInput("Ana", "ana@example.com"))
	assert.Error(t, ValidateUserInput("", "ana@example.com"))
	assert.Error(t, ValidateUserInput("Ana", ""))
}

func TestValidateProductInput(t *testing.T) {
	tests := []struct {
		name    string
		pname   string
		price   float64
		stock   int
		wantErr bool
	}{
		{"valid", "Laptop", 999.99, 10, false},
		{"zero price ok", "Sticker", 0, 5, false},
		{"zero stock ok", "Laptop", 10, 0, false},
		{"missing name", "", 10, 5, true},
		{"negative price", "Laptop", -1, 5, true},
		{"negative stock", "Laptop", 10, -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProductInput(tt.pname, tt.price, tt.stock)
			if tt.wantErr {
				var ve *ValidationError
				assert.ErrorAs(t, err, &ve)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateOrderInput(t *testing.T) {
	tests := []struct {
		name      string
		userID    int64
		productID int64
		quantity  int
		wantErr   bool
	}{
		{"valid", 1, 1, 3, false},
		{"zero quantity", 1, 1, 0, true},
		{"negative quantity", 1, 1, -2, true},
		{"missing user", 0, 1, 1, true},
		{"missing product", 1, 0, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOrderInput(tt.userID, tt.productID, tt.quantity)
			if tt.wantErr {
				var ve *ValidationError
				assert.ErrorAs(t, err, &ve)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateStockLevel(t *testing.T) {
	assert.NoError(t, ValidateStockLevel(0))
	assert.NoError(t, ValidateStockLevel(100))
	assert.Error(t, ValidateStockLevel(-1))
}
