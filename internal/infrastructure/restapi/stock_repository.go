package restapi

import (
	"context"
	"net/url"
	"strconv"

	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepository)(nil)

// StockRepository implementa el puerto contra product-warehouse-stocks/.
type StockRepository struct {
	client *Client
}

// NewStockRepository construye el gateway.
func NewStockRepository(client *Client) *StockRepository {
	return &StockRepository{client: client}
}

// ListByProduct trae las filas de stock del producto vía ?product=<id>.
// Pueden venir varias filas por bodega (lotes); la agregación es del dominio.
func (r *StockRepository) ListByProduct(ctx context.Context, productID int64) ([]entity.WarehouseStock, error) {
	query := url.Values{"product": {strconv.FormatInt(productID, 10)}}
	return getList[entity.WarehouseStock](ctx, r.client, "product-warehouse-stocks/", query)
}
