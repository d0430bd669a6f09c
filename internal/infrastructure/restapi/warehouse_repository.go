package restapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepository)(nil)

// WarehouseRepository implementa el puerto contra el recurso warehouses/.
type WarehouseRepository struct {
	client *Client
}

// NewWarehouseRepository construye el gateway.
func NewWarehouseRepository(client *Client) *WarehouseRepository {
	return &WarehouseRepository{client: client}
}

type warehousePayload struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}

func toWarehousePayload(w *entity.Warehouse) warehousePayload {
	return warehousePayload{
		Name:        w.Name,
		Code:        w.Code,
		Address:     w.Address,
		Description: w.Description,
		IsActive:    w.IsActive,
	}
}

// List trae todas las bodegas.
func (r *WarehouseRepository) List(ctx context.Context) ([]entity.Warehouse, error) {
	return getList[entity.Warehouse](ctx, r.client, "warehouses/", nil)
}

// GetByID obtiene una bodega por ID.
func (r *WarehouseRepository) GetByID(ctx context.Context, id int64) (*entity.Warehouse, error) {
	var w entity.Warehouse
	if err := r.client.do(ctx, http.MethodGet, fmt.Sprintf("warehouses/%d/", id), nil, nil, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// Create crea una bodega.
func (r *WarehouseRepository) Create(ctx context.Context, w *entity.Warehouse) (*entity.Warehouse, error) {
	var created entity.Warehouse
	if err := r.client.do(ctx, http.MethodPost, "warehouses/", nil, toWarehousePayload(w), &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update actualiza una bodega (PUT).
func (r *WarehouseRepository) Update(ctx context.Context, w *entity.Warehouse) (*entity.Warehouse, error) {
	var updated entity.Warehouse
	path := fmt.Sprintf("warehouses/%d/", w.ID)
	if err := r.client.do(ctx, http.MethodPut, path, nil, toWarehousePayload(w), &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete elimina una bodega.
func (r *WarehouseRepository) Delete(ctx context.Context, id int64) error {
	return r.client.do(ctx, http.MethodDelete, fmt.Sprintf("warehouses/%d/", id), nil, nil, nil)
}
