package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDiscountRequest entrada para crear un descuento por cliente.
// Customer y Percentage son punteros para distinguir "ausente" de cero:
// la validación exige ambos presentes antes de tocar la red.
type CreateDiscountRequest struct {
	CustomerID *int64           `json:"customer" validate:"required"`
	Percentage *decimal.Decimal `json:"percentage" validate:"required"`
	IsActive   *bool            `json:"is_active"`
}

// DiscountResponse salida de un descuento.
type DiscountResponse struct {
	ID         int64           `json:"id"`
	Customer   RefResponse     `json:"customer"`
	ProductID  int64           `json:"product"`
	Percentage decimal.Decimal `json:"percentage"`
	IsActive   bool            `json:"is_active"`
	CreatedAt  time.Time       `json:"created_at"`
}

// DiscountListResponse listado completo de descuentos de un producto,
// siempre recién traído del backend tras cualquier mutación.
type DiscountListResponse struct {
	ProductID int64              `json:"product_id"`
	Items     []DiscountResponse `json:"items"`
}
