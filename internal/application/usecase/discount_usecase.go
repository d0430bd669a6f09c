package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/internal/domain/catalog"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

// Límites del porcentaje de descuento, ambos inclusive.
var (
	discountMin = decimal.Zero
	discountMax = decimal.NewFromInt(100)
)

// DiscountUseCase descuentos por cliente de un producto. Cada mutación es un
// round-trip independiente seguido de un refetch completo del listado del
// producto; entre la escritura y el refetch la UI puede mostrar datos viejos
// brevemente y eso es aceptado.
type DiscountUseCase struct {
	repo repository.DiscountRepository
}

// NewDiscountUseCase construye el caso de uso.
func NewDiscountUseCase(repo repository.DiscountRepository) *DiscountUseCase {
	return &DiscountUseCase{repo: repo}
}

// ListByProduct lista los descuentos vigentes de un producto.
func (uc *DiscountUseCase) ListByProduct(ctx context.Context, productID int64) (*dto.DiscountListResponse, error) {
	list, err := uc.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return toDiscountList(productID, list), nil
}

// Create valida y crea el descuento; la validación corre antes de cualquier
// petición: cliente y porcentaje presentes, porcentaje en [0, 100].
func (uc *DiscountUseCase) Create(ctx context.Context, productID int64, in dto.CreateDiscountRequest) (*dto.DiscountListResponse, error) {
	if err := ValidateDiscount(in); err != nil {
		return nil, err
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	d := &entity.CustomerDiscount{
		Customer:   catalog.Ref{ID: *in.CustomerID},
		ProductID:  productID,
		Percentage: *in.Percentage,
		IsActive:   active,
	}
	if _, err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return uc.ListByProduct(ctx, productID)
}

// Delete elimina un descuento y refresca el listado del producto.
func (uc *DiscountUseCase) Delete(ctx context.Context, productID, discountID int64) (*dto.DiscountListResponse, error) {
	if err := uc.repo.Delete(ctx, discountID); err != nil {
		return nil, err
	}
	return uc.ListByProduct(ctx, productID)
}

// SetActive alterna la bandera de activo y refresca el listado del producto.
func (uc *DiscountUseCase) SetActive(ctx context.Context, productID, discountID int64, active bool) (*dto.DiscountListResponse, error) {
	if err := uc.repo.SetActive(ctx, discountID, active); err != nil {
		return nil, err
	}
	return uc.ListByProduct(ctx, productID)
}

// ValidateDiscount contrato de validación previo al envío. 0 y 100 son
// válidos; -1 y 101 no.
func ValidateDiscount(in dto.CreateDiscountRequest) error {
	fe := domain.FieldErrors{}
	if in.CustomerID == nil || *in.CustomerID == 0 {
		fe.Add("customer", "el cliente es requerido")
	}
	if in.Percentage == nil {
		fe.Add("percentage", "el porcentaje es requerido")
	} else if in.Percentage.LessThan(discountMin) || in.Percentage.GreaterThan(discountMax) {
		fe.Add("percentage", "el porcentaje debe estar entre 0 y 100")
	}
	return fe.OrNil()
}

func toDiscountList(productID int64, list []entity.CustomerDiscount) *dto.DiscountListResponse {
	items := make([]dto.DiscountResponse, 0, len(list))
	for _, d := range list {
		items = append(items, dto.DiscountResponse{
			ID:         d.ID,
			Customer:   dto.RefResponse{ID: d.Customer.ID, Label: d.Customer.Label},
			ProductID:  d.ProductID,
			Percentage: d.Percentage,
			IsActive:   d.IsActive,
			CreatedAt:  d.CreatedAt,
		})
	}
	return &dto.DiscountListResponse{ProductID: productID, Items: items}
}
