package restapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

// Verificación en tiempo de compilación del puerto.
var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository implementa el puerto contra el recurso products/.
type ProductRepository struct {
	client *Client
}

// NewProductRepository construye el gateway.
func NewProductRepository(client *Client) *ProductRepository {
	return &ProductRepository{client: client}
}

// productPayload cuerpo de escritura: solo llaves foráneas, nunca objetos
// embebidos ni timestamps del servidor.
type productPayload struct {
	Name         string `json:"name"`
	SKU          string `json:"sku"`
	Barcode      string `json:"barcode,omitempty"`
	Brand        *int64 `json:"brand,omitempty"`
	Category     *int64 `json:"category,omitempty"`
	MinimumStock *int   `json:"minimum_stock,omitempty"`
	MaximumStock *int   `json:"maximum_stock,omitempty"`
	Status       string `json:"status"`
	IsActive     bool   `json:"is_active"`
	Description  string `json:"description,omitempty"`
	Image        string `json:"image,omitempty"`
}

func toProductPayload(p *entity.Product) productPayload {
	payload := productPayload{
		Name:         p.Name,
		SKU:          p.SKU,
		Barcode:      p.Barcode,
		MinimumStock: p.MinimumStock,
		MaximumStock: p.MaximumStock,
		Status:       p.Status,
		IsActive:     p.IsActive,
		Description:  p.Description,
		Image:        p.Image,
	}
	if !p.Brand.IsZero() {
		id := p.Brand.ID
		payload.Brand = &id
	}
	if !p.Category.IsZero() {
		id := p.Category.ID
		payload.Category = &id
	}
	return payload
}

// List trae la colección completa de productos.
func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	return getList[entity.Product](ctx, r.client, "products/", nil)
}

// GetByID obtiene un producto por ID.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var p entity.Product
	if err := r.client.do(ctx, http.MethodGet, fmt.Sprintf("products/%d/", id), nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create crea el producto y devuelve el registro del backend.
func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	var created entity.Product
	if err := r.client.do(ctx, http.MethodPost, "products/", nil, toProductPayload(p), &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update actualiza el producto completo (PUT).
func (r *ProductRepository) Update(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	var updated entity.Product
	path := fmt.Sprintf("products/%d/", p.ID)
	if err := r.client.do(ctx, http.MethodPut, path, nil, toProductPayload(p), &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetActive actualización parcial de la bandera de activo (PATCH).
func (r *ProductRepository) SetActive(ctx context.Context, id int64, active bool) error {
	path := fmt.Sprintf("products/%d/", id)
	body := map[string]bool{"is_active": active}
	return r.client.do(ctx, http.MethodPatch, path, nil, body, nil)
}
