package entity

import "encoding/json"

// Brand representa una marca de productos.
// El backend etiqueta indistintamente con "name" o "description"; Label
// absorbe ambas formas al decodificar.
type Brand struct {
	ID    int64
	Label string
}

// brandRecord forma de cable con ambas variantes de etiqueta.
type brandRecord struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UnmarshalJSON normaliza la etiqueta: name tiene prioridad, description es el respaldo.
func (b *Brand) UnmarshalJSON(data []byte) error {
	var rec brandRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	label := rec.Name
	if label == "" {
		label = rec.Description
	}
	*b = Brand{ID: rec.ID, Label: label}
	return nil
}

// MarshalJSON emite la forma canónica con "name".
func (b Brand) MarshalJSON() ([]byte, error) {
	return json.Marshal(brandRecord{ID: b.ID, Name: b.Label})
}
