package repository

import (
	"context"

	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
)

// ProductRepository define el puerto hacia el recurso products/ del backend.
// El ctx transporta el bearer token del operador para reenviarlo al backend.
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, p *entity.Product) (*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) (*entity.Product, error)
	SetActive(ctx context.Context, id int64, active bool) error
}
