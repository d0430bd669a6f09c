package entity

import "encoding/json"

// Category representa una categoría de productos.
// Misma polimorfia de etiqueta que Brand: "name" o "description".
type Category struct {
	ID    int64
	Label string
}

type categoryRecord struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UnmarshalJSON normaliza la etiqueta: name tiene prioridad, description es el respaldo.
func (c *Category) UnmarshalJSON(data []byte) error {
	var rec categoryRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	label := rec.Name
	if label == "" {
		label = rec.Description
	}
	*c = Category{ID: rec.ID, Label: label}
	return nil
}

// MarshalJSON emite la forma canónica con "name".
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(categoryRecord{ID: c.ID, Name: c.Label})
}
