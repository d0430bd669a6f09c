package repository

import (
	"context"

	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
)

// CatalogRepository define los puertos de solo lectura de los catálogos
// auxiliares (brands/, categories/, customers/).
type CatalogRepository interface {
	ListBrands(ctx context.Context) ([]entity.Brand, error)
	ListCategories(ctx context.Context) ([]entity.Category, error)
	ListCustomers(ctx context.Context) ([]entity.Customer, error)
}
