package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/catalogo-admin/internal/application/usecase"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/internal/domain/catalog"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/pkg/logger"
)

// stubStockRepo simula un backend lento o caído según delay y err.
type stubStockRepo struct {
	rows  []entity.WarehouseStock
	delay time.Duration
	err   error
}

func (s *stubStockRepo) ListByProduct(ctx context.Context, _ int64) ([]entity.WarehouseStock, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.rows, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error", Service: "test"})
}

func TestStockSummary_AgregaLasFilasDelBackend(t *testing.T) {
	repo := &stubStockRepo{rows: []entity.WarehouseStock{
		{Product: catalog.Ref{ID: 1}, Warehouse: catalog.Ref{ID: 2, Label: "Norte"}, Quantity: decimal.NewFromInt(5)},
		{Product: catalog.Ref{ID: 1}, Warehouse: catalog.Ref{ID: 2}, Quantity: decimal.NewFromInt(3)},
	}}
	uc := usecase.NewStockUseCase(repo, time.Second, testLogger())

	s, err := uc.Summary(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(8).Equal(s.Total))
	require.Len(t, s.Warehouses, 1)
	assert.Equal(t, "Norte", s.Warehouses[0].Warehouse)
}

// Al expirar el timeout del lookup la vista no falla: se degrada a un
// resumen vacío sin error y sin reintento.
func TestStockSummary_TimeoutDegradaAResumenVacio(t *testing.T) {
	repo := &stubStockRepo{delay: 200 * time.Millisecond}
	uc := usecase.NewStockUseCase(repo, 20*time.Millisecond, testLogger())

	s, err := uc.Summary(context.Background(), 42)
	require.NoError(t, err, "el timeout no debe salir como error hacia la vista")
	assert.Equal(t, int64(42), s.ProductID)
	assert.True(t, s.Total.IsZero())
	assert.Empty(t, s.Warehouses)
	assert.NotNil(t, s.Warehouses)
}

// Otros errores del backend sí se propagan tal cual.
func TestStockSummary_ErrorDelBackendSePropaga(t *testing.T) {
	repo := &stubStockRepo{err: domain.ErrBackend}
	uc := usecase.NewStockUseCase(repo, time.Second, testLogger())

	_, err := uc.Summary(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrBackend)
}
