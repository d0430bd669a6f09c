package repository

import (
	"context"

	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
)

// MovementRepository define el puerto hacia inventory-movements/.
type MovementRepository interface {
	List(ctx context.Context, warehouseID *int64) ([]entity.InventoryMovement, error)
	Create(ctx context.Context, m *entity.InventoryMovement) (*entity.InventoryMovement, error)
}
