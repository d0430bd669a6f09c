package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/catalogo-admin/internal/domain"
)

func TestFieldErrors_EsErrInvalidInput(t *testing.T) {
	fe := domain.FieldErrors{}
	fe.Add("sku", "ya existe")

	var err error = fe
	assert.True(t, errors.Is(err, domain.ErrInvalidInput),
		"los errores por campo deben clasificarse como entrada inválida")
}

func TestFieldErrors_ResumenDeterminista(t *testing.T) {
	fe := domain.FieldErrors{}
	fe.Add("sku", "ya existe")
	fe.Add("name", "es requerido")
	fe.Add("name", "muy corto")

	// Los campos salen en orden alfabético sin importar el orden de inserción.
	assert.Equal(t, "validación: name: es requerido; muy corto | sku: ya existe", fe.Error())
}

func TestFieldErrors_OrNil(t *testing.T) {
	fe := domain.FieldErrors{}
	assert.NoError(t, fe.OrNil(), "sin errores acumulados OrNil devuelve nil")

	fe.Add("percentage", "fuera de rango")
	assert.Error(t, fe.OrNil())
}

func TestFieldErrors_RecuperableConErrorsAs(t *testing.T) {
	fe := domain.FieldErrors{}
	fe.Add("customer", "es requerido")
	var err error = fe

	var got domain.FieldErrors
	assert.True(t, errors.As(err, &got))
	assert.Equal(t, []string{"es requerido"}, got["customer"])
}
