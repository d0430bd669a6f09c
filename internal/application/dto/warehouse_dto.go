package dto

import "time"

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Code        string `json:"code" validate:"required,min=1,max=50"`
	Address     string `json:"address"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// UpdateWarehouseRequest entrada para actualizar una bodega (campos opcionales).
type UpdateWarehouseRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Code        *string `json:"code" validate:"omitempty,min=1,max=50"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Address     string    `json:"address,omitempty"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
