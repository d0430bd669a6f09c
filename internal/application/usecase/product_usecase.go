package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/internal/domain/catalog"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/internal/domain/listview"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

// ProductUseCase listado con pipeline de filtro/paginación y mutaciones
// write-then-refetch contra el backend. Nunca hay merge optimista: tras cada
// escritura se vuelve a traer la colección completa.
type ProductUseCase struct {
	repo              repository.ProductRepository
	exporter          ListExporter
	lowStockThreshold int
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, exporter ListExporter, lowStockThreshold int) *ProductUseCase {
	return &ProductUseCase{repo: repo, exporter: exporter, lowStockThreshold: lowStockThreshold}
}

// ListView trae la colección cruda y materializa el estado del listado.
func (uc *ProductUseCase) ListView(ctx context.Context, state listview.State) (*dto.ProductListResponse, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	page := listview.Apply(products, state, uc.lowStockThreshold)
	state.Page = page.Page // refleja el clamping en el estado devuelto
	return &dto.ProductListResponse{
		Items:      toProductResponses(page.Items),
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
		State:      state,
	}, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toProductResponse(p)
	return &out, nil
}

// Create valida, crea en el backend y refresca el listado completo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductMutationResponse, error) {
	fe := domain.FieldErrors{}
	if in.Name == "" {
		fe.Add("name", "el nombre es requerido")
	}
	if in.SKU == "" {
		fe.Add("sku", "el SKU es requerido")
	}
	status := in.Status
	if status == "" {
		status = entity.ProductStatusRegular
	}
	if !entity.ValidProductStatus(status) {
		fe.Add("status", "estado desconocido: "+in.Status)
	}
	validateStockRange(fe, in.MinimumStock, in.MaximumStock)
	if err := fe.OrNil(); err != nil {
		return nil, err
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	p := &entity.Product{
		Name:         in.Name,
		SKU:          in.SKU,
		Barcode:      in.Barcode,
		Brand:        refFromID(in.BrandID),
		Category:     refFromID(in.CategoryID),
		MinimumStock: in.MinimumStock,
		MaximumStock: in.MaximumStock,
		Status:       status,
		IsActive:     active,
		Description:  in.Description,
		Image:        in.Image,
	}
	created, err := uc.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	return uc.mutationResponse(ctx, created)
}

// Update aplica los campos presentes, valida el invariante de stock y
// refresca el listado completo.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductMutationResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.SKU != nil {
		p.SKU = *in.SKU
	}
	if in.Barcode != nil {
		p.Barcode = *in.Barcode
	}
	if in.BrandID != nil {
		p.Brand = catalog.Ref{ID: *in.BrandID}
	}
	if in.CategoryID != nil {
		p.Category = catalog.Ref{ID: *in.CategoryID}
	}
	if in.MinimumStock != nil {
		p.MinimumStock = in.MinimumStock
	}
	if in.MaximumStock != nil {
		p.MaximumStock = in.MaximumStock
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Image != nil {
		p.Image = *in.Image
	}

	// Registros antiguos pueden llegar sin estado; se normaliza igual que en Create.
	if p.Status == "" {
		p.Status = entity.ProductStatusRegular
	}

	fe := domain.FieldErrors{}
	if p.Name == "" {
		fe.Add("name", "el nombre es requerido")
	}
	if !entity.ValidProductStatus(p.Status) {
		fe.Add("status", "estado desconocido: "+p.Status)
	}
	validateStockRange(fe, p.MinimumStock, p.MaximumStock)
	if err := fe.OrNil(); err != nil {
		return nil, err
	}

	updated, err := uc.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	return uc.mutationResponse(ctx, updated)
}

// SetActive alterna la bandera de activo y refresca el listado.
func (uc *ProductUseCase) SetActive(ctx context.Context, id int64, active bool) (*dto.ProductMutationResponse, error) {
	if err := uc.repo.SetActive(ctx, id, active); err != nil {
		return nil, err
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.mutationResponse(ctx, p)
}

// ExportPDF exporta el listado filtrado completo (sin paginar) como PDF.
func (uc *ProductUseCase) ExportPDF(ctx context.Context, state listview.State) ([]byte, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := listview.Filter(products, state.Search, state.Filters, uc.lowStockThreshold)
	return uc.exporter.ExportProducts(ctx, filtered, time.Now())
}

// mutationResponse arma la respuesta de mutación con el listado refrescado.
func (uc *ProductUseCase) mutationResponse(ctx context.Context, p *entity.Product) (*dto.ProductMutationResponse, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ProductMutationResponse{
		Product:  toProductResponse(p),
		Products: toProductResponses(products),
	}, nil
}

// validateStockRange invariante: con ambos umbrales presentes, max >= min.
func validateStockRange(fe domain.FieldErrors, min, max *int) {
	if min != nil && max != nil && *max < *min {
		fe.Add("maximum_stock", "el stock máximo debe ser mayor o igual al mínimo")
	}
}

func refFromID(id *int64) catalog.Ref {
	if id == nil {
		return catalog.Ref{}
	}
	return catalog.Ref{ID: *id}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		SKU:          p.SKU,
		Barcode:      p.Barcode,
		Brand:        dto.RefResponse{ID: p.Brand.ID, Label: p.Brand.Label},
		Category:     dto.RefResponse{ID: p.Category.ID, Label: p.Category.Label},
		MinimumStock: p.MinimumStock,
		MaximumStock: p.MaximumStock,
		Status:       p.Status,
		IsActive:     p.IsActive,
		Description:  p.Description,
		Image:        p.Image,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProductResponses(list []entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for i := range list {
		items = append(items, toProductResponse(&list[i]))
	}
	return items
}
