package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/catalogo-admin/internal/domain/catalog"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// ValidMovementType indica si el tipo pertenece a la enumeración conocida.
func ValidMovementType(t string) bool {
	return t == MovementTypeIN || t == MovementTypeOUT
}

// InventoryMovement representa un movimiento de inventario con sus líneas de detalle.
type InventoryMovement struct {
	ID        int64             `json:"id"`
	Warehouse catalog.Ref       `json:"warehouse"`
	Type      string            `json:"movement_type"` // IN | OUT
	Notes     string            `json:"notes"`
	Details   []MovementDetail  `json:"details"`
	Reference string            `json:"reference"` // código de referencia generado al enviar
	CreatedAt time.Time         `json:"created_at"`
	CreatedBy string            `json:"created_by"` // usuario atribuido
}

// MovementDetail es una línea de detalle de un movimiento. Quantity > 0 siempre.
type MovementDetail struct {
	Product        catalog.Ref     `json:"product"`
	Quantity       decimal.Decimal `json:"quantity"`
	ExpirationDate *string         `json:"expiration_date"` // YYYY-MM-DD, null si no aplica
	Notes          string          `json:"notes"`
}
