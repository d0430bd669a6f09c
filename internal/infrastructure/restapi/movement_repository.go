package restapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepository)(nil)

// MovementRepository implementa el puerto contra inventory-movements/.
type MovementRepository struct {
	client *Client
}

// NewMovementRepository construye el gateway.
func NewMovementRepository(client *Client) *MovementRepository {
	return &MovementRepository{client: client}
}

// movementPayload cuerpo de escritura ya coercionado: ids numéricos y fecha
// de vencimiento null cuando no aplica.
type movementPayload struct {
	Warehouse int64                   `json:"warehouse"`
	Type      string                  `json:"movement_type"`
	Notes     string                  `json:"notes,omitempty"`
	Reference string                  `json:"reference,omitempty"`
	Details   []movementDetailPayload `json:"details"`
}

type movementDetailPayload struct {
	Product        int64           `json:"product"`
	Quantity       decimal.Decimal `json:"quantity"`
	ExpirationDate *string         `json:"expiration_date"`
	Notes          string          `json:"notes,omitempty"`
}

// List trae movimientos, opcionalmente filtrados por bodega.
func (r *MovementRepository) List(ctx context.Context, warehouseID *int64) ([]entity.InventoryMovement, error) {
	var query url.Values
	if warehouseID != nil {
		query = url.Values{"warehouse": {strconv.FormatInt(*warehouseID, 10)}}
	}
	return getList[entity.InventoryMovement](ctx, r.client, "inventory-movements/", query)
}

// Create registra el movimiento con sus líneas de detalle.
func (r *MovementRepository) Create(ctx context.Context, m *entity.InventoryMovement) (*entity.InventoryMovement, error) {
	payload := movementPayload{
		Warehouse: m.Warehouse.ID,
		Type:      m.Type,
		Notes:     m.Notes,
		Reference: m.Reference,
		Details:   make([]movementDetailPayload, 0, len(m.Details)),
	}
	for _, d := range m.Details {
		payload.Details = append(payload.Details, movementDetailPayload{
			Product:        d.Product.ID,
			Quantity:       d.Quantity,
			ExpirationDate: d.ExpirationDate,
			Notes:          d.Notes,
		})
	}
	var created entity.InventoryMovement
	if err := r.client.do(ctx, http.MethodPost, "inventory-movements/", nil, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
