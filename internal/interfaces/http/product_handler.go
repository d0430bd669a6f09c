package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/application/usecase"
	"github.com/tu-usuario/catalogo-admin/internal/domain/listview"
	"github.com/tu-usuario/catalogo-admin/pkg/logger"
)

// ProductHandler maneja las peticiones HTTP del listado y CRUD de productos
// (protegido).
type ProductHandler struct {
	uc              *usecase.ProductUseCase
	stockUC         *usecase.StockUseCase
	defaultPageSize int
	maxPageSize     int
	log             *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, stockUC *usecase.StockUseCase, defaultPageSize, maxPageSize int, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, stockUC: stockUC, defaultPageSize: defaultPageSize, maxPageSize: maxPageSize, log: log}
}

// stateFromQuery arma el estado del listado plegando los parámetros de query
// a través de los reducers (mismo camino que seguiría la UI).
func (h *ProductHandler) stateFromQuery(c *fiber.Ctx) listview.State {
	state := listview.NewState(h.defaultPageSize)

	if size := c.QueryInt("page_size", 0); size > 0 {
		if size > h.maxPageSize {
			size = h.maxPageSize
		}
		state = listview.SetPageSize(state, size)
	}

	filters := listview.Filters{StockStatus: c.Query("stock")}
	if raw := c.Query("brand"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filters.BrandID = &id
		}
	}
	if raw := c.Query("category"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filters.CategoryID = &id
		}
	}
	switch c.Query("active") {
	case "true":
		t := true
		filters.Active = &t
	case "false":
		f := false
		filters.Active = &f
	}
	state = listview.SetFilters(state, filters)
	state = listview.SetSearch(state, c.Query("search"))
	if page := c.QueryInt("page", 0); page > 0 {
		state = listview.SetPage(state, page)
	}
	return state
}

// List godoc
// @Summary      Listar productos (filtro + paginación)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        search     query  string  false  "Texto de búsqueda"
// @Param        brand      query  int     false  "ID de marca"
// @Param        category   query  int     false  "ID de categoría"
// @Param        active     query  string  false  "true | false | vacío"
// @Param        stock      query  string  false  "low | ok | vacío"
// @Param        page       query  int     false  "Página (1-based)"
// @Param        page_size  query  int     false  "Tamaño de página"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	state := h.stateFromQuery(c)
	out, err := h.uc.ListView(c.UserContext(), state)
	if err != nil {
		// La página degrada a lista vacía con banner; el usuario reintenta.
		h.log.Error().Err(err).Msg("fetch del listado de productos falló")
		return c.JSON(dto.ProductListResponse{
			Items:    []dto.ProductResponse{},
			Page:     1,
			PageSize: state.PageSize,
			State:    state,
			Error:    "no se pudo cargar el listado, reintenta",
		})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ProductMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetActive godoc
// @Summary      Activar o desactivar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  object{is_active=bool}  true  "Bandera de activo"
// @Success      200   {object}  dto.ProductMutationResponse
// @Router       /api/products/{id}/active [patch]
func (h *ProductHandler) SetActive(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	var in struct {
		IsActive *bool `json:"is_active"`
	}
	if err := c.BodyParser(&in); err != nil || in.IsActive == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "is_active es requerido"})
	}
	out, err := h.uc.SetActive(c.UserContext(), id, *in.IsActive)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar el listado filtrado como PDF
// @Tags         products
// @Security     Bearer
// @Produce      application/pdf
// @Param        search    query  string  false  "Texto de búsqueda"
// @Param        brand     query  int     false  "ID de marca"
// @Param        category  query  int     false  "ID de categoría"
// @Param        active    query  string  false  "true | false | vacío"
// @Param        stock     query  string  false  "low | ok | vacío"
// @Success      200  {file}  binary
// @Router       /api/products/export.pdf [get]
func (h *ProductHandler) Export(c *fiber.Ctx) error {
	state := h.stateFromQuery(c)
	data, err := h.uc.ExportPDF(c.UserContext(), state)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="productos.pdf"`)
	return c.Send(data)
}

// StockSummary godoc
// @Summary      Existencias del producto por bodega
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  inventory.StockSummary
// @Router       /api/products/{id}/stock [get]
func (h *ProductHandler) StockSummary(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	out, err := h.stockUC.Summary(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// parseID lee el parámetro :id como int64. Si no es numérico escribe el 400
// y devuelve ok=false; el handler solo retorna nil.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
		return 0, false
	}
	return id, true
}

// parseParamID igual que parseID para un parámetro de ruta arbitrario.
func parseParamID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: name + " numérico requerido"})
		return 0, false
	}
	return id, true
}
