package dto

// CatalogItemResponse elemento de un catálogo auxiliar (marca o categoría).
type CatalogItemResponse struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// BootstrapResponse carga inicial de catálogos. Cada colección se obtiene en
// paralelo y de forma aislada: un catálogo que falló llega como lista vacía
// con su mensaje en Errors, sin bloquear a los demás.
type BootstrapResponse struct {
	Brands     []CatalogItemResponse `json:"brands"`
	Categories []CatalogItemResponse `json:"categories"`
	Warehouses []WarehouseResponse   `json:"warehouses"`
	Errors     map[string]string     `json:"errors,omitempty"`
}

// ProfileResponse perfil del operador autenticado.
type ProfileResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
}

// BusinessResponse negocio del operador.
type BusinessResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	TaxID    string `json:"tax_id,omitempty"`
	Address  string `json:"address,omitempty"`
	IsActive bool   `json:"is_active"`
}

// CustomerResponse cliente para el selector de descuentos.
type CustomerResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	TaxID    string `json:"tax_id,omitempty"`
	IsActive bool   `json:"is_active"`
}
