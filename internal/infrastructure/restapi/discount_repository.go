package restapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

var _ repository.DiscountRepository = (*DiscountRepository)(nil)

// DiscountRepository implementa el puerto contra customer-product-discounts/.
type DiscountRepository struct {
	client *Client
}

// NewDiscountRepository construye el gateway.
func NewDiscountRepository(client *Client) *DiscountRepository {
	return &DiscountRepository{client: client}
}

type discountPayload struct {
	Customer   int64           `json:"customer"`
	Product    int64           `json:"product"`
	Percentage decimal.Decimal `json:"percentage"`
	IsActive   bool            `json:"is_active"`
}

// ListByProduct trae los descuentos del producto vía ?product=<id>.
func (r *DiscountRepository) ListByProduct(ctx context.Context, productID int64) ([]entity.CustomerDiscount, error) {
	query := url.Values{"product": {strconv.FormatInt(productID, 10)}}
	return getList[entity.CustomerDiscount](ctx, r.client, "customer-product-discounts/", query)
}

// Create crea un descuento.
func (r *DiscountRepository) Create(ctx context.Context, d *entity.CustomerDiscount) (*entity.CustomerDiscount, error) {
	payload := discountPayload{
		Customer:   d.Customer.ID,
		Product:    d.ProductID,
		Percentage: d.Percentage,
		IsActive:   d.IsActive,
	}
	var created entity.CustomerDiscount
	if err := r.client.do(ctx, http.MethodPost, "customer-product-discounts/", nil, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete elimina un descuento.
func (r *DiscountRepository) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("customer-product-discounts/%d/", id)
	return r.client.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// SetActive actualización parcial de la bandera de activo (PATCH).
func (r *DiscountRepository) SetActive(ctx context.Context, id int64, active bool) error {
	path := fmt.Sprintf("customer-product-discounts/%d/", id)
	body := map[string]bool{"is_active": active}
	return r.client.do(ctx, http.MethodPatch, path, nil, body, nil)
}
