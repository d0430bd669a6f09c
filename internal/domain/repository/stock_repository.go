package repository

import (
	"context"

	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
)

// StockRepository define el puerto hacia product-warehouse-stocks/.
// ListByProduct usa el filtro de query ?product=<id> del backend.
type StockRepository interface {
	ListByProduct(ctx context.Context, productID int64) ([]entity.WarehouseStock, error)
}
