package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/catalogo-admin/internal/application/usecase"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
)

type stubCatalogRepo struct {
	brands     []entity.Brand
	categories []entity.Category
	customers  []entity.Customer

	brandsErr     error
	categoriesErr error
	customersErr  error

	delay time.Duration
}

func (s *stubCatalogRepo) ListBrands(context.Context) ([]entity.Brand, error) {
	time.Sleep(s.delay)
	return s.brands, s.brandsErr
}

func (s *stubCatalogRepo) ListCategories(context.Context) ([]entity.Category, error) {
	time.Sleep(s.delay)
	return s.categories, s.categoriesErr
}

func (s *stubCatalogRepo) ListCustomers(context.Context) ([]entity.Customer, error) {
	return s.customers, s.customersErr
}

type stubWarehouseRepo struct {
	warehouses []entity.Warehouse
	listErr    error
}

func (s *stubWarehouseRepo) List(context.Context) ([]entity.Warehouse, error) {
	return s.warehouses, s.listErr
}

func (s *stubWarehouseRepo) GetByID(_ context.Context, id int64) (*entity.Warehouse, error) {
	for i := range s.warehouses {
		if s.warehouses[i].ID == id {
			return &s.warehouses[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubWarehouseRepo) Create(_ context.Context, w *entity.Warehouse) (*entity.Warehouse, error) {
	created := *w
	created.ID = int64(len(s.warehouses) + 1)
	s.warehouses = append(s.warehouses, created)
	return &created, nil
}

func (s *stubWarehouseRepo) Update(_ context.Context, w *entity.Warehouse) (*entity.Warehouse, error) {
	for i := range s.warehouses {
		if s.warehouses[i].ID == w.ID {
			s.warehouses[i] = *w
			return w, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubWarehouseRepo) Delete(_ context.Context, id int64) error {
	for i := range s.warehouses {
		if s.warehouses[i].ID == id {
			s.warehouses = append(s.warehouses[:i], s.warehouses[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func TestBootstrap_CargaLosTresCatalogos(t *testing.T) {
	catalogs := &stubCatalogRepo{
		brands:     []entity.Brand{{ID: 1, Label: "Ñandú"}},
		categories: []entity.Category{{ID: 2, Label: "Bebidas"}},
	}
	warehouses := &stubWarehouseRepo{warehouses: []entity.Warehouse{{ID: 3, Name: "Norte"}}}
	uc := usecase.NewCatalogUseCase(catalogs, warehouses, testLogger())

	out := uc.Bootstrap(context.Background())

	require.Len(t, out.Brands, 1)
	assert.Equal(t, "Ñandú", out.Brands[0].Label)
	require.Len(t, out.Categories, 1)
	require.Len(t, out.Warehouses, 1)
	assert.Empty(t, out.Errors)
}

// Un catálogo caído no arrastra a los demás: llega vacío con su mensaje en
// Errors y los otros dos llegan completos.
func TestBootstrap_FallaAisladaPorCatalogo(t *testing.T) {
	catalogs := &stubCatalogRepo{
		brands:        []entity.Brand{{ID: 1, Label: "Ñandú"}},
		categoriesErr: domain.ErrBackend,
	}
	warehouses := &stubWarehouseRepo{warehouses: []entity.Warehouse{{ID: 3, Name: "Norte"}}}
	uc := usecase.NewCatalogUseCase(catalogs, warehouses, testLogger())

	out := uc.Bootstrap(context.Background())

	require.Len(t, out.Brands, 1, "marcas debe llegar completo aunque categorías falle")
	require.Len(t, out.Warehouses, 1)
	assert.Empty(t, out.Categories)
	assert.NotNil(t, out.Categories, "el catálogo caído llega como [] y no como null")
	require.Contains(t, out.Errors, "categories")
}

func TestBootstrap_TodosCaidosReportaTodosLosErrores(t *testing.T) {
	catalogs := &stubCatalogRepo{brandsErr: domain.ErrUnavailable, categoriesErr: domain.ErrUnavailable}
	warehouses := &stubWarehouseRepo{listErr: domain.ErrUnavailable}
	uc := usecase.NewCatalogUseCase(catalogs, warehouses, testLogger())

	out := uc.Bootstrap(context.Background())
	assert.Len(t, out.Errors, 3)
}

// Los tres fetches corren en paralelo: con 60 ms de latencia simulada por
// catálogo, la carga tarda cerca de 60 ms y no 180.
func TestBootstrap_FetchesEnParalelo(t *testing.T) {
	catalogs := &stubCatalogRepo{delay: 60 * time.Millisecond}
	warehouses := &stubWarehouseRepo{}
	uc := usecase.NewCatalogUseCase(catalogs, warehouses, testLogger())

	start := time.Now()
	_ = uc.Bootstrap(context.Background())
	assert.Less(t, time.Since(start), 150*time.Millisecond,
		"las cargas deben solaparse en el tiempo")
}

func TestListCustomers_MapeaLosClientes(t *testing.T) {
	catalogs := &stubCatalogRepo{customers: []entity.Customer{
		{ID: 5, Name: "Distribuidora Sur", TaxID: "900123456", IsActive: true},
	}}
	uc := usecase.NewCatalogUseCase(catalogs, &stubWarehouseRepo{}, testLogger())

	out, err := uc.ListCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Distribuidora Sur", out[0].Name)
	assert.Equal(t, "900123456", out[0].TaxID)
}
