// Package catalog normaliza las representaciones polimórficas del backend.
//
// Varios recursos referencian marca, categoría, bodega o cliente a veces como
// id suelto (3) y a veces como objeto embebido ({"id":3,"name":"..."}), y la
// etiqueta puede venir como "name" o como "description". La normalización
// ocurre una sola vez al decodificar; el resto del código trabaja con Ref.
package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Ref es una referencia normalizada a un registro de catálogo.
// Label queda vacío cuando el backend envió solo el id.
type Ref struct {
	ID    int64
	Label string
}

// IsZero indica que no hay referencia (campo ausente o null).
func (r Ref) IsZero() bool { return r.ID == 0 && r.Label == "" }

// refObject forma embebida; name tiene prioridad sobre description.
type refObject struct {
	ID          int64   `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// UnmarshalJSON acepta null, un id numérico, un id en string u objeto embebido.
func (r *Ref) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*r = Ref{}
		return nil
	}
	switch data[0] {
	case '{':
		var obj refObject
		if err := json.Unmarshal(data, &obj); err != nil {
			return fmt.Errorf("catalog: referencia embebida inválida: %w", err)
		}
		label := ""
		if obj.Name != nil && *obj.Name != "" {
			label = *obj.Name
		} else if obj.Description != nil {
			label = *obj.Description
		}
		*r = Ref{ID: obj.ID, Label: label}
		return nil
	case '"':
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if raw == "" {
			*r = Ref{}
			return nil
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("catalog: id de referencia no numérico %q", raw)
		}
		*r = Ref{ID: id}
		return nil
	default:
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("catalog: referencia inválida %s", s)
		}
		*r = Ref{ID: id}
		return nil
	}
}

// MarshalJSON serializa siempre como id suelto: al escribir hacia el backend
// solo viaja la llave foránea, nunca el objeto embebido.
func (r Ref) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(r.ID, 10)), nil
}
