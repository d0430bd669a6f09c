package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/catalogo-admin/internal/application/usecase"
)

// CatalogHandler maneja los catálogos de referencia y el perfil del usuario.
type CatalogHandler struct {
	catalogUC *usecase.CatalogUseCase
	profileUC *usecase.ProfileUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(catalogUC *usecase.CatalogUseCase, profileUC *usecase.ProfileUseCase) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC, profileUC: profileUC}
}

// Bootstrap godoc
// @Summary      Cargar catálogos iniciales (marcas, categorías y bodegas)
// @Description  Carga los tres catálogos en paralelo. Los fallos se reportan por catálogo sin afectar a los demás.
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BootstrapResponse
// @Router       /api/catalog [get]
func (h *CatalogHandler) Bootstrap(c *fiber.Ctx) error {
	return c.JSON(h.catalogUC.Bootstrap(c.UserContext()))
}

// Customers godoc
// @Summary      Listar clientes
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CustomerResponse
// @Router       /api/customers [get]
func (h *CatalogHandler) Customers(c *fiber.Ctx) error {
	out, err := h.catalogUC.ListCustomers(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Profile godoc
// @Summary      Obtener perfil del usuario autenticado
// @Tags         profile
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProfileResponse
// @Router       /api/profile [get]
func (h *CatalogHandler) Profile(c *fiber.Ctx) error {
	out, err := h.profileUC.GetProfile(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Businesses godoc
// @Summary      Listar negocios del usuario
// @Tags         profile
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BusinessResponse
// @Router       /api/businesses [get]
func (h *CatalogHandler) Businesses(c *fiber.Ctx) error {
	out, err := h.profileUC.ListBusinesses(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
