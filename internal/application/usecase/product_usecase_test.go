package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/application/usecase"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/internal/domain/listview"
)

const umbralStockBajo = 10

// stubProductRepo colección en memoria que cuenta las lecturas completas
// para verificar el contrato write-then-refetch.
type stubProductRepo struct {
	products  []entity.Product
	listCalls int
	listErr   error
}

func (s *stubProductRepo) List(context.Context) ([]entity.Product, error) {
	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]entity.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *stubProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubProductRepo) Create(_ context.Context, p *entity.Product) (*entity.Product, error) {
	created := *p
	created.ID = int64(len(s.products) + 1)
	s.products = append(s.products, created)
	return &created, nil
}

func (s *stubProductRepo) Update(_ context.Context, p *entity.Product) (*entity.Product, error) {
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = *p
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubProductRepo) SetActive(_ context.Context, id int64, active bool) error {
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].IsActive = active
			return nil
		}
	}
	return domain.ErrNotFound
}

// stubExporter devuelve un PDF falso y registra cuántos productos recibió.
type stubExporter struct {
	received int
}

func (s *stubExporter) ExportProducts(_ context.Context, products []entity.Product, _ time.Time) ([]byte, error) {
	s.received = len(products)
	return []byte("%PDF-fake"), nil
}

func repoConProductos(n int) *stubProductRepo {
	repo := &stubProductRepo{}
	for i := 1; i <= n; i++ {
		repo.products = append(repo.products, entity.Product{
			ID:   int64(i),
			Name: fmt.Sprintf("Producto %02d", i),
			SKU:  fmt.Sprintf("SKU-%02d", i),
		})
	}
	return repo
}

// ── ListView ──────────────────────────────────────────────────────────────────

func TestListView_PaginaYReflejaElClampingEnElEstado(t *testing.T) {
	repo := repoConProductos(25)
	uc := usecase.NewProductUseCase(repo, &stubExporter{}, umbralStockBajo)

	state := listview.NewState(10)
	state = listview.SetPage(state, 9) // fuera de rango

	out, err := uc.ListView(context.Background(), state)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Page, "la página fuera de rango aterriza en la última")
	assert.Equal(t, 3, out.State.Page, "el estado devuelto refleja el clamping")
	assert.Equal(t, 25, out.TotalItems)
	assert.Len(t, out.Items, 5)
}

func TestListView_ErrorDelBackendSePropaga(t *testing.T) {
	repo := &stubProductRepo{listErr: domain.ErrUnavailable}
	uc := usecase.NewProductUseCase(repo, &stubExporter{}, umbralStockBajo)

	_, err := uc.ListView(context.Background(), listview.NewState(10))
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

// ── Create ────────────────────────────────────────────────────────────────────

func TestProductCreate_ValidaAntesDeEscribir(t *testing.T) {
	repo := repoConProductos(0)
	uc := usecase.NewProductUseCase(repo, &stubExporter{}, umbralStockBajo)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{SKU: "X-1"})
	require.Error(t, err)
	var fe domain.FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Contains(t, fe, "name")
	assert.Empty(t, repo.products, "con validación fallida no se escribe nada")
}

func TestProductCreate_EstadoPorDefectoRegular(t *testing.T) {
	repo := repoConProductos(0)
	uc := usecase.NewProductUseCase(repo, &stubExporter{}, umbralStockBajo)

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Café", SKU: "CAF-01"})
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusRegular, out.Product.Status)
	assert.True(t, out.Product.IsActive, "sin bandera explícita el producto nace activo")
}

func TestProductCreate_EstadoDesconocidoRechazado(t *testing.T) {
	uc := usecase.NewProductUseCase(repoConProductos(0), &stubExporter{}, umbralStockBajo)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Café", SKU: "C", Status: "LIQUIDACION"})
	var fe domain.FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Contains(t, fe, "status")
}

func TestProductCreate_RangoDeStockInvalido(t *testing.T) {
	uc := usecase.NewProductUseCase(repoConProductos(0), &stubExporter{}, umbralStockBajo)

	min, max := 10, 5
	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Café", SKU: "C", MinimumStock: &min, MaximumStock: &max,
	})
	var fe domain.FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Contains(t, fe, "maximum_stock")
}

// Tras la escritura se vuelve a traer la colección completa: nunca hay
// merge optimista del lado del cliente.
func TestProductCreate_RefrescaLaColeccionCompleta(t *testing.T) {
	repo := repoConProductos(2)
	uc := usecase.NewProductUseCase(repo, &stubExporter{}, umbralStockBajo)

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Café", SKU: "CAF-01"})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls, "una mutación dispara exactamente un refetch")
	assert.Len(t, out.Products, 3, "el listado devuelto es el recién traído del backend")
}

// ── Update / SetActive ────────────────────────────────────────────────────────

func TestProductUpdate_AplicaSoloLosCamposPresentes(t *testing.T) {
	repo := repoConProductos(1)
	uc := usecase.NewProductUseCase(repo, &stubExporter{}, umbralStockBajo)

	nuevoNombre := "Producto renombrado"
	out, err := uc.Update(context.Background(), 1, dto.UpdateProductRequest{Name: &nuevoNombre})
	require.NoError(t, err)
	assert.Equal(t, "Producto renombrado", out.Product.Name)
	assert.Equal(t, "SKU-01", out.Product.SKU, "los campos ausentes no se tocan")
}

// Un registro que llega del backend sin estado no bloquea un rename: el
// estado vacío se normaliza a REGULAR igual que en la creación.
func TestProductUpdate_EstadoVacioSeNormalizaARegular(t *testing.T) {
	repo := repoConProductos(1)
	repo.products[0].Status = ""
	uc := usecase.NewProductUseCase(repo, &stubExporter{}, umbralStockBajo)

	nuevoNombre := "Solo cambio el nombre"
	out, err := uc.Update(context.Background(), 1, dto.UpdateProductRequest{Name: &nuevoNombre})
	require.NoError(t, err, "actualizar sin tocar el estado no debe fallar")
	assert.Equal(t, entity.ProductStatusRegular, out.Product.Status)
	assert.Equal(t, "Solo cambio el nombre", out.Product.Name)
}

func TestProductUpdate_ProductoInexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(repoConProductos(1), &stubExporter{}, umbralStockBajo)

	nombre := "X"
	_, err := uc.Update(context.Background(), 99, dto.UpdateProductRequest{Name: &nombre})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductSetActive_EscribeYRefresca(t *testing.T) {
	repo := repoConProductos(1)
	repo.products[0].IsActive = true
	uc := usecase.NewProductUseCase(repo, &stubExporter{}, umbralStockBajo)

	out, err := uc.SetActive(context.Background(), 1, false)
	require.NoError(t, err)
	assert.False(t, out.Product.IsActive)
	assert.Equal(t, 1, repo.listCalls)
}

// ── ExportPDF ─────────────────────────────────────────────────────────────────

// La exportación respeta la búsqueda y los filtros vigentes pero ignora la
// paginación: sale el listado filtrado completo.
func TestExportPDF_FiltraSinPaginar(t *testing.T) {
	repo := repoConProductos(25)
	exporter := &stubExporter{}
	uc := usecase.NewProductUseCase(repo, exporter, umbralStockBajo)

	state := listview.NewState(10)
	state = listview.SetSearch(state, "producto 1") // diez coincidencias

	data, err := uc.ExportPDF(context.Background(), state)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, 10, exporter.received, "se exporta el filtrado completo, no una página")
}
