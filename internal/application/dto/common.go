package dto

// ErrorResponse cuerpo de error HTTP. Fields trae los mensajes por campo
// cuando la falla es de validación (local o 400 del backend).
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

// RefResponse referencia resuelta a un registro de catálogo.
type RefResponse struct {
	ID    int64  `json:"id"`
	Label string `json:"label,omitempty"`
}
