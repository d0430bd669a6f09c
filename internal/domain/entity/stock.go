package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/catalogo-admin/internal/domain/catalog"
)

// WarehouseStock representa una fila de stock producto↔bodega.
// Puede haber varias filas para el mismo par (producto, bodega) — lotes
// distintos — y deben sumarse para obtener la existencia total.
type WarehouseStock struct {
	ID             int64            `json:"id"`
	Product        catalog.Ref      `json:"product"`
	Warehouse      catalog.Ref      `json:"warehouse"`
	Quantity       decimal.Decimal  `json:"quantity"`
	Price          *decimal.Decimal `json:"price"`           // opcional
	Batch          string           `json:"batch"`           // lote opcional
	ExpirationDate *string          `json:"expiration_date"` // YYYY-MM-DD, opcional
	UpdatedAt      time.Time        `json:"updated_at"`
}
