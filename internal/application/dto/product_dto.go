package dto

import (
	"time"

	"github.com/tu-usuario/catalogo-admin/internal/domain/listview"
)

// ListProductsQuery parámetros de query del listado. Active es tri-estado:
// "" (todos), "true" o "false". Stock: "" | "low" | "ok".
type ListProductsQuery struct {
	Search   string `query:"search"`
	Brand    *int64 `query:"brand"`
	Category *int64 `query:"category"`
	Active   string `query:"active"`
	Stock    string `query:"stock"`
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
}

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	SKU          string `json:"sku" validate:"required,min=1,max=100"`
	Barcode      string `json:"barcode"`
	BrandID      *int64 `json:"brand"`
	CategoryID   *int64 `json:"category"`
	MinimumStock *int   `json:"minimum_stock"`
	MaximumStock *int   `json:"maximum_stock"`
	Status       string `json:"status"`
	IsActive     *bool  `json:"is_active"`
	Description  string `json:"description"`
	Image        string `json:"image"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	SKU          *string `json:"sku" validate:"omitempty,min=1,max=100"`
	Barcode      *string `json:"barcode"`
	BrandID      *int64  `json:"brand"`
	CategoryID   *int64  `json:"category"`
	MinimumStock *int    `json:"minimum_stock"`
	MaximumStock *int    `json:"maximum_stock"`
	Status       *string `json:"status"`
	IsActive     *bool   `json:"is_active"`
	Description  *string `json:"description"`
	Image        *string `json:"image"`
}

// ProductResponse salida de un producto con referencias resueltas.
type ProductResponse struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	SKU          string      `json:"sku"`
	Barcode      string      `json:"barcode,omitempty"`
	Brand        RefResponse `json:"brand"`
	Category     RefResponse `json:"category"`
	MinimumStock *int        `json:"minimum_stock"`
	MaximumStock *int        `json:"maximum_stock"`
	Status       string      `json:"status"`
	IsActive     bool        `json:"is_active"`
	Description  string      `json:"description,omitempty"`
	Image        string      `json:"image,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// ProductListResponse página del listado más el estado aplicado, para que la
// UI pueda reanudar exactamente donde quedó (estado serializable).
type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalItems int               `json:"total_items"`
	TotalPages int               `json:"total_pages"`
	State      listview.State    `json:"state"`
	// Error no vacío cuando el fetch al backend falló: la página degrada a
	// lista vacía con banner de error y el usuario reintenta manualmente.
	Error string `json:"error,omitempty"`
}

// ProductMutationResponse resultado de crear/actualizar/activar un producto:
// el producto afectado y el listado completo ya refrescado desde el backend.
type ProductMutationResponse struct {
	Product  ProductResponse   `json:"product"`
	Products []ProductResponse `json:"products"`
}
