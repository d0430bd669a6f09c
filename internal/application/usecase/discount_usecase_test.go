package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/application/usecase"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/internal/domain/catalog"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
)

// stubDiscountRepo registra las llamadas para verificar el contrato
// write-then-refetch sin tocar la red.
type stubDiscountRepo struct {
	discounts []entity.CustomerDiscount
	calls     []string
	createErr error
}

func (s *stubDiscountRepo) ListByProduct(_ context.Context, productID int64) ([]entity.CustomerDiscount, error) {
	s.calls = append(s.calls, "list")
	out := make([]entity.CustomerDiscount, 0)
	for _, d := range s.discounts {
		if d.ProductID == productID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *stubDiscountRepo) Create(_ context.Context, d *entity.CustomerDiscount) (*entity.CustomerDiscount, error) {
	s.calls = append(s.calls, "create")
	if s.createErr != nil {
		return nil, s.createErr
	}
	created := *d
	created.ID = int64(len(s.discounts) + 1)
	s.discounts = append(s.discounts, created)
	return &created, nil
}

func (s *stubDiscountRepo) Delete(_ context.Context, id int64) error {
	s.calls = append(s.calls, "delete")
	for i, d := range s.discounts {
		if d.ID == id {
			s.discounts = append(s.discounts[:i], s.discounts[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *stubDiscountRepo) SetActive(_ context.Context, id int64, active bool) error {
	s.calls = append(s.calls, "set_active")
	for i := range s.discounts {
		if s.discounts[i].ID == id {
			s.discounts[i].IsActive = active
			return nil
		}
	}
	return domain.ErrNotFound
}

func pctPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

// ── ValidateDiscount ──────────────────────────────────────────────────────────

func TestValidateDiscount_LimitesInclusivos(t *testing.T) {
	cid := int64(5)

	// 0 y 100 son válidos.
	assert.NoError(t, usecase.ValidateDiscount(dto.CreateDiscountRequest{CustomerID: &cid, Percentage: pctPtr(0)}))
	assert.NoError(t, usecase.ValidateDiscount(dto.CreateDiscountRequest{CustomerID: &cid, Percentage: pctPtr(100)}))
	assert.NoError(t, usecase.ValidateDiscount(dto.CreateDiscountRequest{CustomerID: &cid, Percentage: pctPtr(12.5)}))

	// -1 y 101 no.
	err := usecase.ValidateDiscount(dto.CreateDiscountRequest{CustomerID: &cid, Percentage: pctPtr(-1)})
	require.Error(t, err)
	var fe domain.FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Contains(t, fe, "percentage")

	assert.Error(t, usecase.ValidateDiscount(dto.CreateDiscountRequest{CustomerID: &cid, Percentage: pctPtr(101)}))
}

func TestValidateDiscount_ClienteRequerido(t *testing.T) {
	err := usecase.ValidateDiscount(dto.CreateDiscountRequest{Percentage: pctPtr(10)})
	require.Error(t, err)
	var fe domain.FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Contains(t, fe, "customer")
}

func TestValidateDiscount_PorcentajeRequerido(t *testing.T) {
	cid := int64(5)
	err := usecase.ValidateDiscount(dto.CreateDiscountRequest{CustomerID: &cid})
	require.Error(t, err)
	var fe domain.FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Contains(t, fe, "percentage")
}

// ── Create ────────────────────────────────────────────────────────────────────

// La validación corre antes de cualquier petición: con entrada inválida el
// repositorio ni se toca.
func TestDiscountCreate_EntradaInvalidaNoTocaLaRed(t *testing.T) {
	repo := &stubDiscountRepo{}
	uc := usecase.NewDiscountUseCase(repo)

	_, err := uc.Create(context.Background(), 1, dto.CreateDiscountRequest{Percentage: pctPtr(150)})
	require.Error(t, err)
	assert.Empty(t, repo.calls, "ninguna validación fallida debe llegar al repositorio")
}

// Tras crear, el listado se vuelve a traer completo del backend.
func TestDiscountCreate_RefrescaElListado(t *testing.T) {
	repo := &stubDiscountRepo{}
	uc := usecase.NewDiscountUseCase(repo)
	cid := int64(5)

	out, err := uc.Create(context.Background(), 1, dto.CreateDiscountRequest{CustomerID: &cid, Percentage: pctPtr(15)})
	require.NoError(t, err)
	assert.Equal(t, []string{"create", "list"}, repo.calls, "primero la escritura, luego el refetch")
	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(5), out.Items[0].Customer.ID)
	assert.True(t, out.Items[0].IsActive, "sin bandera explícita el descuento nace activo")
}

func TestDiscountCreate_ErrorDelBackendNoRefresca(t *testing.T) {
	repo := &stubDiscountRepo{createErr: domain.ErrDuplicate}
	uc := usecase.NewDiscountUseCase(repo)
	cid := int64(5)

	_, err := uc.Create(context.Background(), 1, dto.CreateDiscountRequest{CustomerID: &cid, Percentage: pctPtr(15)})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, []string{"create"}, repo.calls)
}

// ── Delete / SetActive ────────────────────────────────────────────────────────

func TestDiscountDelete_RefrescaElListado(t *testing.T) {
	repo := &stubDiscountRepo{discounts: []entity.CustomerDiscount{
		{ID: 1, ProductID: 1, Customer: catalog.Ref{ID: 5}, Percentage: decimal.NewFromInt(10)},
		{ID: 2, ProductID: 1, Customer: catalog.Ref{ID: 6}, Percentage: decimal.NewFromInt(20)},
	}}
	uc := usecase.NewDiscountUseCase(repo)

	out, err := uc.Delete(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"delete", "list"}, repo.calls)
	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(2), out.Items[0].ID)
}

func TestDiscountSetActive_RefrescaElListado(t *testing.T) {
	repo := &stubDiscountRepo{discounts: []entity.CustomerDiscount{
		{ID: 1, ProductID: 1, Customer: catalog.Ref{ID: 5}, IsActive: true},
	}}
	uc := usecase.NewDiscountUseCase(repo)

	out, err := uc.SetActive(context.Background(), 1, 1, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"set_active", "list"}, repo.calls)
	require.Len(t, out.Items, 1)
	assert.False(t, out.Items[0].IsActive)
}
