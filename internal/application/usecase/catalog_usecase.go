package usecase

import (
	"context"
	"sync"

	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
	"github.com/tu-usuario/catalogo-admin/pkg/logger"
)

// CatalogUseCase carga de catálogos auxiliares para la carga inicial de la UI.
type CatalogUseCase struct {
	catalogs   repository.CatalogRepository
	warehouses repository.WarehouseRepository
	log        *logger.Logger
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(catalogs repository.CatalogRepository, warehouses repository.WarehouseRepository, log *logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{catalogs: catalogs, warehouses: warehouses, log: log}
}

// Bootstrap trae marcas, categorías y bodegas en paralelo. Los tres fetches
// son independientes y sus fallas quedan aisladas: un catálogo caído llega
// como lista vacía con su mensaje en Errors, sin bloquear a los demás ni
// fallar la respuesta. (No se usa errgroup a propósito: su cancelación al
// primer error rompería el aislamiento.)
func (uc *CatalogUseCase) Bootstrap(ctx context.Context) *dto.BootstrapResponse {
	out := &dto.BootstrapResponse{
		Brands:     []dto.CatalogItemResponse{},
		Categories: []dto.CatalogItemResponse{},
		Warehouses: []dto.WarehouseResponse{},
	}

	var mu sync.Mutex
	fail := func(name string, err error) {
		uc.log.Error().Err(err).Str("catalog", name).Msg("fetch de catálogo falló")
		mu.Lock()
		if out.Errors == nil {
			out.Errors = make(map[string]string)
		}
		out.Errors[name] = err.Error()
		mu.Unlock()
	}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		brands, err := uc.catalogs.ListBrands(ctx)
		if err != nil {
			fail("brands", err)
			return
		}
		items := make([]dto.CatalogItemResponse, 0, len(brands))
		for _, b := range brands {
			items = append(items, dto.CatalogItemResponse{ID: b.ID, Label: b.Label})
		}
		mu.Lock()
		out.Brands = items
		mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		categories, err := uc.catalogs.ListCategories(ctx)
		if err != nil {
			fail("categories", err)
			return
		}
		items := make([]dto.CatalogItemResponse, 0, len(categories))
		for _, c := range categories {
			items = append(items, dto.CatalogItemResponse{ID: c.ID, Label: c.Label})
		}
		mu.Lock()
		out.Categories = items
		mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		warehouses, err := uc.warehouses.List(ctx)
		if err != nil {
			fail("warehouses", err)
			return
		}
		items := make([]dto.WarehouseResponse, 0, len(warehouses))
		for i := range warehouses {
			items = append(items, toWarehouseResponse(&warehouses[i]))
		}
		mu.Lock()
		out.Warehouses = items
		mu.Unlock()
	}()

	wg.Wait()
	return out
}

// ListCustomers clientes para el selector del formulario de descuentos.
func (uc *CatalogUseCase) ListCustomers(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := uc.catalogs.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		items = append(items, dto.CustomerResponse{ID: c.ID, Name: c.Name, TaxID: c.TaxID, IsActive: c.IsActive})
	}
	return items, nil
}

func toWarehouseResponse(w *entity.Warehouse) dto.WarehouseResponse {
	return dto.WarehouseResponse{
		ID:          w.ID,
		Name:        w.Name,
		Code:        w.Code,
		Address:     w.Address,
		Description: w.Description,
		IsActive:    w.IsActive,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}
