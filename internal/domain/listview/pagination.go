package listview

import "github.com/tu-usuario/catalogo-admin/internal/domain/entity"

// Page es una página del listado ya filtrado. Page llega clampeado a
// [1, TotalPages] cuando hay resultados, o a 1 cuando no los hay.
type Page struct {
	Items      []entity.Product `json:"items"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalItems int              `json:"total_items"`
	TotalPages int              `json:"total_pages"`
}

// TotalPages calcula ceil(total/pageSize). Con total 0 devuelve 0.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// ClampPage ajusta una página 1-based al rango válido: max(1, totalPages)
// como techo y 1 como piso. Así, si el filtro encoge el resultado, la página
// actual nunca queda fuera de rango.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Paginate corta la rebanada [(page-1)*pageSize, page*pageSize) del listado
// filtrado y devuelve la página con sus metadatos.
func Paginate(filtered []entity.Product, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = 1
	}
	total := len(filtered)
	totalPages := TotalPages(total, pageSize)
	page = ClampPage(page, totalPages)

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]entity.Product, end-start)
	copy(items, filtered[start:end])

	return Page{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
