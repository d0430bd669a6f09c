package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
// Cubren la taxonomía completa: transporte, validación local, 400 con errores
// por campo, 404 y fallo del backend. Nunca hay retry automático.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrUnavailable  = errors.New("backend no disponible")
	ErrBackend      = errors.New("error interno del backend")
)

// FieldErrors agrupa mensajes de validación por campo, tal como los reporta
// el backend en respuestas 400 estructuradas o la validación previa al envío.
type FieldErrors map[string][]string

// Error implementa error con un resumen legible y determinista.
func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return ErrInvalidInput.Error()
	}
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(fe[f], "; ")))
	}
	return "validación: " + strings.Join(parts, " | ")
}

// Unwrap permite errors.Is(err, ErrInvalidInput) sobre errores de campo.
func (fe FieldErrors) Unwrap() error { return ErrInvalidInput }

// Add acumula un mensaje para un campo.
func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// OrNil devuelve nil si no se acumuló ningún error.
func (fe FieldErrors) OrNil() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}
