package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
)

// ListExporter puerto de exportación del listado filtrado (implementado en
// infrastructure/pdf).
type ListExporter interface {
	ExportProducts(ctx context.Context, products []entity.Product, generatedAt time.Time) ([]byte, error)
}
