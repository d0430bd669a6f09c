package usecase

import (
	"context"

	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

// ProfileUseCase lecturas proxied de user/profile/ y businesses/.
type ProfileUseCase struct {
	repo repository.ProfileRepository
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(repo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

// GetProfile perfil del operador autenticado.
func (uc *ProfileUseCase) GetProfile(ctx context.Context) (*dto.ProfileResponse, error) {
	p, err := uc.repo.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ProfileResponse{
		ID:        p.ID,
		Username:  p.Username,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Role:      p.Role,
	}, nil
}

// ListBusinesses negocios del operador.
func (uc *ProfileUseCase) ListBusinesses(ctx context.Context) ([]dto.BusinessResponse, error) {
	list, err := uc.repo.ListBusinesses(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BusinessResponse, 0, len(list))
	for _, b := range list {
		items = append(items, dto.BusinessResponse{
			ID:       b.ID,
			Name:     b.Name,
			TaxID:    b.TaxID,
			Address:  b.Address,
			IsActive: b.IsActive,
		})
	}
	return items, nil
}
