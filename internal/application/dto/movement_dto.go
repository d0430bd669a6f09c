package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest entrada para registrar un movimiento. Los campos
// numéricos llegan como string porque el formulario los captura como texto;
// el caso de uso los convierte y anula la fecha de vencimiento vacía.
type RegisterMovementRequest struct {
	WarehouseID string                `json:"warehouse" validate:"required"`
	Type        string                `json:"movement_type" validate:"required"`
	Notes       string                `json:"notes"`
	Details     []MovementLineRequest `json:"details" validate:"min=1"`
}

// MovementLineRequest línea de detalle capturada en el formulario.
type MovementLineRequest struct {
	ProductID      string `json:"product" validate:"required"`
	Quantity       string `json:"quantity" validate:"required"`
	ExpirationDate string `json:"expiration_date"` // "" se envía como null
	Notes          string `json:"notes"`
}

// MovementResponse salida de un movimiento registrado.
type MovementResponse struct {
	ID        int64                  `json:"id"`
	Warehouse RefResponse            `json:"warehouse"`
	Type      string                 `json:"movement_type"`
	Notes     string                 `json:"notes,omitempty"`
	Details   []MovementLineResponse `json:"details"`
	Reference string                 `json:"reference,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	CreatedBy string                 `json:"created_by,omitempty"`
}

// MovementLineResponse línea de detalle con tipos ya numéricos.
type MovementLineResponse struct {
	Product        RefResponse     `json:"product"`
	Quantity       decimal.Decimal `json:"quantity"`
	ExpirationDate *string         `json:"expiration_date"`
	Notes          string          `json:"notes,omitempty"`
}

// MovementListResponse listado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
}
