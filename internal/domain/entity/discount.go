package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/catalogo-admin/internal/domain/catalog"
)

// CustomerDiscount representa un descuento por cliente sobre un producto.
// Percentage va de 0 a 100 inclusive.
type CustomerDiscount struct {
	ID         int64           `json:"id"`
	Customer   catalog.Ref     `json:"customer"`
	ProductID  int64           `json:"product"`
	Percentage decimal.Decimal `json:"percentage"`
	IsActive   bool            `json:"is_active"`
	CreatedAt  time.Time       `json:"created_at"`
}
