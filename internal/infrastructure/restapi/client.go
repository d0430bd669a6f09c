// Package restapi implementa los puertos de dominio contra el API REST de
// inventario (colaborador externo). Cubre las dos tolerancias de cable que el
// backend exige: listados que llegan como arreglo pelado o como envoltura
// {"results": [...]}, y referencias que llegan como id suelto u objeto
// embebido (resueltas por catalog.Ref al decodificar).
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/pkg/logger"
)

// Client cliente HTTP hacia el backend. Un timeout de red fijo por petición,
// sin retry ni reintentos: el usuario reintenta manualmente.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente. baseURL sin slash final.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// do ejecuta una petición y decodifica la respuesta en out (si no es nil).
// Reenvía el bearer token del operador tomado del contexto.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("restapi: serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("restapi: construir petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := TokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Se conserva la cadena original para que errors.Is detecte tanto
		// ErrUnavailable como context.DeadlineExceeded.
		return errors.Join(domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Join(domain.ErrUnavailable, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || len(bytes.TrimSpace(data)) == 0 {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("restapi: decodificar respuesta de %s %s: %w", method, path, err)
		}
		return nil
	}

	c.log.Warn().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Msg("respuesta de error del backend")
	return mapStatus(resp.StatusCode, data)
}

// mapStatus traduce el status HTTP a la taxonomía de dominio. Un 400 con
// cuerpo estructurado se convierte en FieldErrors por campo.
func mapStatus(status int, body []byte) error {
	switch {
	case status == http.StatusBadRequest:
		if fe := parseFieldErrors(body); fe != nil {
			return fe
		}
		return domain.ErrInvalidInput
	case status == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case status == http.StatusForbidden:
		return domain.ErrForbidden
	case status == http.StatusNotFound:
		return domain.ErrNotFound
	case status == http.StatusConflict:
		return domain.ErrDuplicate
	case status >= 500:
		return domain.ErrBackend
	default:
		return fmt.Errorf("%w: status inesperado %d", domain.ErrBackend, status)
	}
}

// parseFieldErrors interpreta el 400 típico: {"sku": ["ya existe"],
// "percentage": "fuera de rango", "detail": "..."}.
func parseFieldErrors(body []byte) domain.FieldErrors {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil || len(raw) == 0 {
		return nil
	}
	fe := domain.FieldErrors{}
	for field, v := range raw {
		switch msgs := v.(type) {
		case string:
			fe.Add(field, msgs)
		case []any:
			for _, m := range msgs {
				if s, ok := m.(string); ok {
					fe.Add(field, s)
				}
			}
		}
	}
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// getList trae un listado tolerando ambas formas de cuerpo: arreglo pelado o
// envoltura {"results": [...]}.
func getList[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, query, nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[T](raw)
}

func decodeList[T any](data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return []T{}, nil
	}
	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("restapi: decodificar arreglo: %w", err)
		}
		return items, nil
	}
	var envelope struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("restapi: decodificar envoltura: %w", err)
	}
	if envelope.Results == nil {
		return []T{}, nil
	}
	return envelope.Results, nil
}
