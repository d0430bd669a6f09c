package entity

// Business representa un negocio al que pertenece el operador.
type Business struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	TaxID    string `json:"tax_id"`
	Address  string `json:"address"`
	IsActive bool   `json:"is_active"`
}

// UserProfile representa el perfil del operador autenticado (user/profile/).
type UserProfile struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}
