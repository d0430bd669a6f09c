package repository

import (
	"context"

	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
)

// DiscountRepository define el puerto hacia customer-product-discounts/.
type DiscountRepository interface {
	ListByProduct(ctx context.Context, productID int64) ([]entity.CustomerDiscount, error)
	Create(ctx context.Context, d *entity.CustomerDiscount) (*entity.CustomerDiscount, error)
	Delete(ctx context.Context, id int64) error
	SetActive(ctx context.Context, id int64, active bool) error
}
