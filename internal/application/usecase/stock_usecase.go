package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/catalogo-admin/internal/domain/inventory"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
	"github.com/tu-usuario/catalogo-admin/pkg/logger"
)

// StockUseCase existencias por producto. El lookup lleva un timeout propio
// (10 s por defecto): al expirar se aborta la petición en curso y se degrada
// a un resumen vacío en lugar de fallar la vista. No hay retry.
type StockUseCase struct {
	repo    repository.StockRepository
	timeout time.Duration
	log     *logger.Logger
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.StockRepository, timeout time.Duration, log *logger.Logger) *StockUseCase {
	return &StockUseCase{repo: repo, timeout: timeout, log: log}
}

// Summary existencia total y desglose por bodega de un producto.
func (uc *StockUseCase) Summary(ctx context.Context, productID int64) (*inventory.StockSummary, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	rows, err := uc.repo.ListByProduct(lookupCtx, productID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			uc.log.Warn().Int64("product_id", productID).
				Dur("timeout", uc.timeout).
				Msg("lookup de stock expiró, degradando a resumen vacío")
			return &inventory.StockSummary{
				ProductID:  productID,
				Total:      decimal.Zero,
				Warehouses: []inventory.WarehouseTotal{},
			}, nil
		}
		return nil, err
	}
	summary := inventory.Summarize(productID, rows)
	return &summary, nil
}
