// Package listview implementa el view-model del listado de productos:
// predicado de filtro, paginación con clamping y reducers puros sobre un
// estado serializable. Toda la lógica es independiente del transporte para
// poder probarla sin levantar el servidor.
package listview

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
)

// Códigos del filtro de estado de stock. Cualquier otro código no vacío no
// coincide con ningún producto.
const (
	StockStatusLow = "low"
	StockStatusOK  = "ok"
)

// Filters selección de filtros del listado. Punteros nil = sin filtro.
type Filters struct {
	BrandID     *int64 `json:"brand_id,omitempty"`
	CategoryID  *int64 `json:"category_id,omitempty"`
	Active      *bool  `json:"active,omitempty"`
	StockStatus string `json:"stock_status,omitempty"` // "" | "low" | "ok"
}

// foldTransformer elimina diacríticos: NFD, remover marcas, NFC.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza texto para búsqueda: minúsculas y sin acentos
// ("Cañón" -> "canon"). Si la transformación falla se usa solo minúsculas.
func Fold(s string) string {
	lower := strings.ToLower(s)
	out, _, err := transform.String(foldTransformer, lower)
	if err != nil {
		return lower
	}
	return out
}

// Matches evalúa el predicado completo sobre un producto.
//
// Texto: subcadena insensible a mayúsculas y acentos contra nombre, SKU,
// código de barras y las etiquetas resueltas de marca/categoría; búsqueda
// vacía coincide con todo. Marca/categoría: igualdad exacta del id
// normalizado. Activo: tri-estado. Estado de stock: compara minimum_stock
// contra lowStockThreshold — nunca contra la existencia real; la UI original
// hacía lo mismo y se preserva tal cual (ver DESIGN.md).
func Matches(p entity.Product, search string, f Filters, lowStockThreshold int) bool {
	if !matchesText(p, search) {
		return false
	}
	if f.BrandID != nil && p.Brand.ID != *f.BrandID {
		return false
	}
	if f.CategoryID != nil && p.Category.ID != *f.CategoryID {
		return false
	}
	if f.Active != nil && p.IsActive != *f.Active {
		return false
	}
	return matchesStockStatus(p, f.StockStatus, lowStockThreshold)
}

func matchesText(p entity.Product, search string) bool {
	needle := Fold(strings.TrimSpace(search))
	if needle == "" {
		return true
	}
	for _, field := range []string{p.Name, p.SKU, p.Barcode, p.Brand.Label, p.Category.Label} {
		if field != "" && strings.Contains(Fold(field), needle) {
			return true
		}
	}
	return false
}

func matchesStockStatus(p entity.Product, code string, threshold int) bool {
	switch code {
	case "":
		return true
	case StockStatusLow:
		return p.MinimumStock != nil && *p.MinimumStock < threshold
	case StockStatusOK:
		return p.MinimumStock == nil || *p.MinimumStock >= threshold
	default:
		return false
	}
}

// Filter devuelve los productos que pasan el predicado, en el orden original.
func Filter(products []entity.Product, search string, f Filters, lowStockThreshold int) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if Matches(p, search, f, lowStockThreshold) {
			out = append(out, p)
		}
	}
	return out
}
