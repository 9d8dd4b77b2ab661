package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

func TestIsLowStock(t *testing.T) {
	cases := []struct {
		name     string
		quantity int64
		min      int64
		want     bool
	}{
		{"min cero deshabilita la alerta", 0, 0, false},
		{"min cero con stock", 50, 0, false},
		{"cantidad igual al mínimo", 5, 5, true},
		{"cantidad debajo del mínimo", 2, 5, true},
		{"cantidad en cero con mínimo", 0, 5, true},
		{"cantidad encima del mínimo", 6, 5, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := entity.StockItem{Quantity: tc.quantity, MinQuantity: tc.min}
			assert.Equal(t, tc.want, item.IsLowStock())
		})
	}
}

func TestTotalValue(t *testing.T) {
	item := entity.StockItem{
		Quantity:  3,
		UnitValue: decimal.NewFromFloat(25.50),
	}
	assert.True(t, item.TotalValue().Equal(decimal.NewFromFloat(76.50)))
}

func TestTotalValue_SinValorUnitario(t *testing.T) {
	item := entity.StockItem{Quantity: 10}
	assert.True(t, item.TotalValue().IsZero())
}
