package entity

import (
	"time"

	"github.com/tu-usuario/catalogo-admin/internal/domain/catalog"
)

// Estados comerciales de un producto.
const (
	ProductStatusRegular = "REGULAR"
	ProductStatusNuevo   = "NUEVO"
	ProductStatusOferta  = "OFERTA"
	ProductStatusRemate  = "REMATE"
)

// ValidProductStatus indica si el estado pertenece a la enumeración conocida.
func ValidProductStatus(s string) bool {
	switch s {
	case ProductStatusRegular, ProductStatusNuevo, ProductStatusOferta, ProductStatusRemate:
		return true
	}
	return false
}

// Product representa un producto del catálogo tal como lo expone el backend.
// Brand y Category llegan a veces como id y a veces como objeto embebido;
// catalog.Ref los normaliza al decodificar. Invariante: si MinimumStock y
// MaximumStock están presentes, MaximumStock >= MinimumStock.
type Product struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	SKU          string      `json:"sku"`     // código único
	Barcode      string      `json:"barcode"` // opcional
	Brand        catalog.Ref `json:"brand"`
	Category     catalog.Ref `json:"category"`
	MinimumStock *int        `json:"minimum_stock"`
	MaximumStock *int        `json:"maximum_stock"`
	Status       string      `json:"status"` // REGULAR | NUEVO | OFERTA | REMATE
	IsActive     bool        `json:"is_active"`
	Description  string      `json:"description"`
	Image        string      `json:"image"` // URL opcional
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
