package restapi

import (
	"context"

	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepository)(nil)

// CatalogRepository implementa los puertos de solo lectura brands/,
// categories/ y customers/.
type CatalogRepository struct {
	client *Client
}

// NewCatalogRepository construye el gateway.
func NewCatalogRepository(client *Client) *CatalogRepository {
	return &CatalogRepository{client: client}
}

// ListBrands trae todas las marcas con la etiqueta ya normalizada.
func (r *CatalogRepository) ListBrands(ctx context.Context) ([]entity.Brand, error) {
	return getList[entity.Brand](ctx, r.client, "brands/", nil)
}

// ListCategories trae todas las categorías con la etiqueta ya normalizada.
func (r *CatalogRepository) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return getList[entity.Category](ctx, r.client, "categories/", nil)
}

// ListCustomers trae los clientes para el selector de descuentos.
func (r *CatalogRepository) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	return getList[entity.Customer](ctx, r.client, "customers/", nil)
}
