package repository

import (
	"context"

	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
)

// WarehouseRepository define el puerto hacia el recurso warehouses/.
type WarehouseRepository interface {
	List(ctx context.Context) ([]entity.Warehouse, error)
	GetByID(ctx context.Context, id int64) (*entity.Warehouse, error)
	Create(ctx context.Context, w *entity.Warehouse) (*entity.Warehouse, error)
	Update(ctx context.Context, w *entity.Warehouse) (*entity.Warehouse, error)
	Delete(ctx context.Context, id int64) error
}
