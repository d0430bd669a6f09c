// Package inventory contiene la aritmética pura de existencias.
package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
)

// WarehouseTotal existencia total de un producto en una bodega.
type WarehouseTotal struct {
	WarehouseID int64           `json:"warehouse_id"`
	Warehouse   string          `json:"warehouse"` // etiqueta si el backend la envió embebida
	Quantity    decimal.Decimal `json:"quantity"`
}

// StockSummary existencia total y desglose por bodega para un producto.
type StockSummary struct {
	ProductID  int64            `json:"product_id"`
	Total      decimal.Decimal  `json:"total"`
	Warehouses []WarehouseTotal `json:"warehouses"`
}

// Summarize suma las filas de stock del producto: total global y desglose por
// bodega en orden de primera aparición. Varias filas del mismo par
// (producto, bodega) — lotes distintos — se acumulan; las bodegas cuyo
// acumulado queda en cero se excluyen del desglose. Tolera filas donde la
// bodega viene como id suelto u objeto embebido.
func Summarize(productID int64, rows []entity.WarehouseStock) StockSummary {
	summary := StockSummary{
		ProductID:  productID,
		Total:      decimal.Zero,
		Warehouses: []WarehouseTotal{},
	}

	var order []int64
	totals := make(map[int64]WarehouseTotal)

	for _, row := range rows {
		if row.Product.ID != productID {
			continue
		}
		summary.Total = summary.Total.Add(row.Quantity)

		wid := row.Warehouse.ID
		acc, seen := totals[wid]
		if !seen {
			acc = WarehouseTotal{WarehouseID: wid, Quantity: decimal.Zero}
			order = append(order, wid)
		}
		acc.Quantity = acc.Quantity.Add(row.Quantity)
		if acc.Warehouse == "" && row.Warehouse.Label != "" {
			acc.Warehouse = row.Warehouse.Label
		}
		totals[wid] = acc
	}

	for _, wid := range order {
		acc := totals[wid]
		if acc.Quantity.IsZero() {
			continue
		}
		summary.Warehouses = append(summary.Warehouses, acc)
	}
	return summary
}
