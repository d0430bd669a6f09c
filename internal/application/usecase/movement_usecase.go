package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/internal/domain/catalog"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

// MovementUseCase registro y consulta de movimientos de inventario.
type MovementUseCase struct {
	repo repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo}
}

// List lista movimientos, opcionalmente filtrados por bodega.
func (uc *MovementUseCase) List(ctx context.Context, warehouseID *int64) (*dto.MovementListResponse, error) {
	list, err := uc.repo.List(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for i := range list {
		items = append(items, toMovementResponse(&list[i]))
	}
	return &dto.MovementListResponse{Items: items}, nil
}

// Register valida y convierte el formulario antes de enviarlo: ids y
// cantidades llegan como texto y se coercen a numérico, y una fecha de
// vencimiento vacía se envía como null. Sin al menos una línea de detalle el
// envío no se permite; ninguna validación fallida llega a la red.
func (uc *MovementUseCase) Register(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	m, err := buildMovement(userID, in)
	if err != nil {
		return nil, err
	}
	created, err := uc.repo.Create(ctx, m)
	if err != nil {
		return nil, err
	}
	out := toMovementResponse(created)
	return &out, nil
}

func buildMovement(userID string, in dto.RegisterMovementRequest) (*entity.InventoryMovement, error) {
	fe := domain.FieldErrors{}

	warehouseID, err := strconv.ParseInt(strings.TrimSpace(in.WarehouseID), 10, 64)
	if err != nil || warehouseID <= 0 {
		fe.Add("warehouse", "la bodega es requerida")
	}
	if !entity.ValidMovementType(in.Type) {
		fe.Add("movement_type", "el tipo debe ser IN u OUT")
	}
	if len(in.Details) == 0 {
		fe.Add("details", "el movimiento debe tener al menos una línea de detalle")
	}

	details := make([]entity.MovementDetail, 0, len(in.Details))
	for i, line := range in.Details {
		prefix := "details[" + strconv.Itoa(i) + "]"

		productID, perr := strconv.ParseInt(strings.TrimSpace(line.ProductID), 10, 64)
		if perr != nil || productID <= 0 {
			fe.Add(prefix+".product", "el producto es requerido")
			continue
		}
		qty, qerr := decimal.NewFromString(strings.TrimSpace(line.Quantity))
		if qerr != nil || !qty.IsPositive() {
			fe.Add(prefix+".quantity", "la cantidad debe ser mayor que cero")
			continue
		}

		// Fecha de vencimiento vacía viaja como null, nunca como "".
		var expiration *string
		if exp := strings.TrimSpace(line.ExpirationDate); exp != "" {
			expiration = &exp
		}
		details = append(details, entity.MovementDetail{
			Product:        catalog.Ref{ID: productID},
			Quantity:       qty,
			ExpirationDate: expiration,
			Notes:          line.Notes,
		})
	}
	if err := fe.OrNil(); err != nil {
		return nil, err
	}

	return &entity.InventoryMovement{
		Warehouse: catalog.Ref{ID: warehouseID},
		Type:      in.Type,
		Notes:     in.Notes,
		Details:   details,
		Reference: uuid.NewString(),
		CreatedBy: userID,
	}, nil
}

func toMovementResponse(m *entity.InventoryMovement) dto.MovementResponse {
	lines := make([]dto.MovementLineResponse, 0, len(m.Details))
	for _, d := range m.Details {
		lines = append(lines, dto.MovementLineResponse{
			Product:        dto.RefResponse{ID: d.Product.ID, Label: d.Product.Label},
			Quantity:       d.Quantity,
			ExpirationDate: d.ExpirationDate,
			Notes:          d.Notes,
		})
	}
	return dto.MovementResponse{
		ID:        m.ID,
		Warehouse: dto.RefResponse{ID: m.Warehouse.ID, Label: m.Warehouse.Label},
		Type:      m.Type,
		Notes:     m.Notes,
		Details:   lines,
		Reference: m.Reference,
		CreatedAt: m.CreatedAt,
		CreatedBy: m.CreatedBy,
	}
}
