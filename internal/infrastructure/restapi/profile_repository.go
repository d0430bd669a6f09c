package restapi

import (
	"context"
	"net/http"

	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepository)(nil)

// ProfileRepository implementa el puerto contra user/profile/ y businesses/.
type ProfileRepository struct {
	client *Client
}

// NewProfileRepository construye el gateway.
func NewProfileRepository(client *Client) *ProfileRepository {
	return &ProfileRepository{client: client}
}

// GetProfile trae el perfil del operador autenticado.
func (r *ProfileRepository) GetProfile(ctx context.Context) (*entity.UserProfile, error) {
	var p entity.UserProfile
	if err := r.client.do(ctx, http.MethodGet, "user/profile/", nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListBusinesses trae los negocios del operador.
func (r *ProfileRepository) ListBusinesses(ctx context.Context) ([]entity.Business, error) {
	return getList[entity.Business](ctx, r.client, "businesses/", nil)
}
