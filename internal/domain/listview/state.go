package listview

import "github.com/tu-usuario/catalogo-admin/internal/domain/entity"

// State es el estado serializable del listado. Reemplaza el estado mutable
// disperso de la UI original: cada cambio pasa por un reducer puro que
// devuelve un estado nuevo, y Apply lo materializa contra la colección cruda.
type State struct {
	Search   string  `json:"search"`
	Filters  Filters `json:"filters"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
}

// NewState estado inicial: sin búsqueda, sin filtros, página 1.
func NewState(pageSize int) State {
	if pageSize <= 0 {
		pageSize = 10
	}
	return State{Page: 1, PageSize: pageSize}
}

// SetSearch reducer: cambiar el texto de búsqueda regresa a la página 1.
// Repetir el mismo texto no reinicia la página.
func SetSearch(s State, search string) State {
	if s.Search == search {
		return s
	}
	s.Search = search
	s.Page = 1
	return s
}

// SetFilters reducer: cambia el conjunto de filtros. La página se conserva;
// Apply la clampea si el resultado encogió.
func SetFilters(s State, f Filters) State {
	s.Filters = f
	return s
}

// SetPage reducer: navega a una página (el clamping final lo hace Apply).
func SetPage(s State, page int) State {
	if page < 1 {
		page = 1
	}
	s.Page = page
	return s
}

// SetPageSize reducer: cambia el tamaño y regresa a la página 1.
func SetPageSize(s State, size int) State {
	if size <= 0 || size == s.PageSize {
		return s
	}
	s.PageSize = size
	s.Page = 1
	return s
}

// Apply materializa el estado contra la colección cruda: filtra, clampea la
// página y corta la rebanada. Es puro: no toca products ni el estado.
func Apply(products []entity.Product, s State, lowStockThreshold int) Page {
	filtered := Filter(products, s.Search, s.Filters, lowStockThreshold)
	return Paginate(filtered, s.Page, s.PageSize)
}
