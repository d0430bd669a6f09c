package repository

import (
	"context"

	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
)

// ProfileRepository define el puerto hacia user/profile/ y businesses/.
type ProfileRepository interface {
	GetProfile(ctx context.Context) (*entity.UserProfile, error)
	ListBusinesses(ctx context.Context) ([]entity.Business, error)
}
