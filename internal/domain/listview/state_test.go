package listview_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/catalogo-admin/internal/domain/listview"
)

// ── Reducers ──────────────────────────────────────────────────────────────────

func TestSetSearch_CambiarElTextoRegresaAPagina1(t *testing.T) {
	s := listview.NewState(10)
	s = listview.SetPage(s, 3)

	s = listview.SetSearch(s, "café")
	assert.Equal(t, "café", s.Search)
	assert.Equal(t, 1, s.Page, "un texto de búsqueda nuevo reinicia la página")
}

func TestSetSearch_RepetirElMismoTextoNoReiniciaLaPagina(t *testing.T) {
	s := listview.NewState(10)
	s = listview.SetSearch(s, "café")
	s = listview.SetPage(s, 2)

	s = listview.SetSearch(s, "café")
	assert.Equal(t, 2, s.Page, "repetir la misma búsqueda conserva la página actual")
}

func TestSetFilters_ConservaLaPagina(t *testing.T) {
	s := listview.NewState(10)
	s = listview.SetPage(s, 2)

	s = listview.SetFilters(s, listview.Filters{StockStatus: listview.StockStatusLow})
	assert.Equal(t, 2, s.Page, "cambiar filtros no reinicia la página; Apply clampea si hace falta")
}

func TestSetPageSize_ReiniciaLaPagina(t *testing.T) {
	s := listview.NewState(10)
	s = listview.SetPage(s, 3)

	s = listview.SetPageSize(s, 25)
	assert.Equal(t, 25, s.PageSize)
	assert.Equal(t, 1, s.Page)

	s = listview.SetPage(s, 2)
	s = listview.SetPageSize(s, 25)
	assert.Equal(t, 2, s.Page, "repetir el mismo tamaño no reinicia la página")
}

func TestSetPage_NormalizaElPiso(t *testing.T) {
	s := listview.NewState(10)
	s = listview.SetPage(s, -3)
	assert.Equal(t, 1, s.Page)
}

// Los reducers son puros: el estado de entrada no se modifica.
func TestReducers_NoMutanElEstadoDeEntrada(t *testing.T) {
	original := listview.NewState(10)
	original = listview.SetPage(original, 2)
	copia := original

	_ = listview.SetSearch(original, "otro")
	_ = listview.SetPageSize(original, 50)
	assert.Equal(t, copia, original)
}

// ── Apply ─────────────────────────────────────────────────────────────────────

// Si el filtro encoge el resultado por debajo de la página actual, Apply
// clampea y devuelve la última página con contenido.
func TestApply_FiltroQueEncogeClampeaLaPagina(t *testing.T) {
	products := generarProductos(25)
	s := listview.NewState(10)
	s = listview.SetPage(s, 3)

	// Sin filtro la página 3 existe.
	page := listview.Apply(products, s, umbralStockBajo)
	assert.Equal(t, 3, page.Page)

	// "Producto 0" solo coincide con los nueve primeros: una sola página.
	s = listview.SetFilters(s, listview.Filters{})
	s.Search = "producto 0"
	page = listview.Apply(products, s, umbralStockBajo)
	assert.Equal(t, 1, page.Page, "la página queda clampeada al nuevo total")
	assert.Equal(t, 1, page.TotalPages)
	assert.Len(t, page.Items, 9)
}

func TestApply_PipelineCompletoFiltraYPagina(t *testing.T) {
	products := generarProductos(25)
	s := listview.NewState(10)
	s = listview.SetPageSize(s, 4)
	s = listview.SetSearch(s, "producto 1") // 10..19: diez coincidencias

	page := listview.Apply(products, s, umbralStockBajo)
	assert.Equal(t, 10, page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 4)
}

// ── Serialización ─────────────────────────────────────────────────────────────

// El estado sobrevive un round-trip JSON: la UI lo puede guardar en la URL o
// en storage y restaurarlo tal cual.
func TestState_RoundTripJSON(t *testing.T) {
	s := listview.NewState(25)
	s = listview.SetSearch(s, "café")
	s = listview.SetFilters(s, listview.Filters{BrandID: int64Ptr(3), StockStatus: listview.StockStatusLow})
	s = listview.SetPage(s, 2)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var restored listview.State
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, s, restored)
}
