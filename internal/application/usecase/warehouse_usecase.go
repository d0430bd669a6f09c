package usecase

import (
	"context"

	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

// WarehouseUseCase CRUD de bodegas proxied al backend.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// List lista todas las bodegas.
func (uc *WarehouseUseCase) List(ctx context.Context) ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for i := range list {
		items = append(items, toWarehouseResponse(&list[i]))
	}
	return items, nil
}

// GetByID obtiene una bodega por ID.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id int64) (*dto.WarehouseResponse, error) {
	w, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toWarehouseResponse(w)
	return &out, nil
}

// Create valida y crea una bodega.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	fe := domain.FieldErrors{}
	if in.Name == "" {
		fe.Add("name", "el nombre es requerido")
	}
	if in.Code == "" {
		fe.Add("code", "el código es requerido")
	}
	if err := fe.OrNil(); err != nil {
		return nil, err
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	w := &entity.Warehouse{
		Name:        in.Name,
		Code:        in.Code,
		Address:     in.Address,
		Description: in.Description,
		IsActive:    active,
	}
	created, err := uc.repo.Create(ctx, w)
	if err != nil {
		return nil, err
	}
	out := toWarehouseResponse(created)
	return &out, nil
}

// Update aplica los campos presentes y actualiza la bodega.
func (uc *WarehouseUseCase) Update(ctx context.Context, id int64, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	w, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		w.Name = *in.Name
	}
	if in.Code != nil {
		w.Code = *in.Code
	}
	if in.Address != nil {
		w.Address = *in.Address
	}
	if in.Description != nil {
		w.Description = *in.Description
	}
	if in.IsActive != nil {
		w.IsActive = *in.IsActive
	}
	if w.Name == "" || w.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	updated, err := uc.repo.Update(ctx, w)
	if err != nil {
		return nil, err
	}
	out := toWarehouseResponse(updated)
	return &out, nil
}

// Delete elimina una bodega por ID.
func (uc *WarehouseUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
