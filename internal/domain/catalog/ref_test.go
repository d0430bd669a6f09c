package catalog_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/catalogo-admin/internal/domain/catalog"
)

// ── Decodificación polimórfica ────────────────────────────────────────────────

func TestRef_DecodificaIdSuelto(t *testing.T) {
	var r catalog.Ref
	require.NoError(t, json.Unmarshal([]byte(`3`), &r))
	assert.Equal(t, int64(3), r.ID)
	assert.Empty(t, r.Label, "un id suelto no trae etiqueta")
}

func TestRef_DecodificaObjetoConName(t *testing.T) {
	var r catalog.Ref
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"name":"Ñandú"}`), &r))
	assert.Equal(t, int64(3), r.ID)
	assert.Equal(t, "Ñandú", r.Label)
}

func TestRef_DecodificaObjetoConDescription(t *testing.T) {
	var r catalog.Ref
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"description":"Bebidas"}`), &r))
	assert.Equal(t, int64(7), r.ID)
	assert.Equal(t, "Bebidas", r.Label)
}

// Cuando vienen ambas, name tiene prioridad sobre description.
func TestRef_NameTienePrioridadSobreDescription(t *testing.T) {
	var r catalog.Ref
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"name":"Bebidas frías","description":"otra cosa"}`), &r))
	assert.Equal(t, "Bebidas frías", r.Label)
}

func TestRef_NameVacioCaeADescription(t *testing.T) {
	var r catalog.Ref
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"name":"","description":"Bebidas"}`), &r))
	assert.Equal(t, "Bebidas", r.Label)
}

func TestRef_DecodificaIdComoString(t *testing.T) {
	var r catalog.Ref
	require.NoError(t, json.Unmarshal([]byte(`"42"`), &r))
	assert.Equal(t, int64(42), r.ID)
}

func TestRef_NullYStringVaciaSonReferenciaCero(t *testing.T) {
	var r catalog.Ref
	require.NoError(t, json.Unmarshal([]byte(`null`), &r))
	assert.True(t, r.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`""`), &r))
	assert.True(t, r.IsZero())
}

func TestRef_StringNoNumericaEsError(t *testing.T) {
	var r catalog.Ref
	err := json.Unmarshal([]byte(`"abc"`), &r)
	assert.Error(t, err)
}

// ── Serialización hacia el backend ────────────────────────────────────────────

// Al escribir solo viaja la llave foránea: el objeto embebido jamás se
// re-serializa de vuelta.
func TestRef_SerializaSiempreComoIdSuelto(t *testing.T) {
	r := catalog.Ref{ID: 3, Label: "Ñandú"}
	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `3`, string(data))
}

func TestRef_ReferenciaCeroSerializaComoNull(t *testing.T) {
	data, err := json.Marshal(catalog.Ref{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestRef_RoundTripDesdeObjetoEmbebido(t *testing.T) {
	var r catalog.Ref
	require.NoError(t, json.Unmarshal([]byte(`{"id":9,"name":"Norte"}`), &r))

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, "9", string(data), "el round-trip degrada el objeto a su id")
}
