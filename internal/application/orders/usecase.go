package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/pedidos-api/internal/application/dto"
	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
	"github.com/tu-usuario/pedidos-api/internal/domain/order"
	"github.com/tu-usuario/pedidos-api/internal/domain/repository"
)

// Clock fuente de "ahora" inyectable; la regla de fecha futura depende de ella
// y los tests la fijan a un instante conocido.
type Clock func() time.Time

// OrderUseCase casos de uso de pedidos: crear, consultar y actualizar,
// siempre scoped al usuario autenticado.
type OrderUseCase struct {
	repo repository.OrderRepository
	now  Clock
}

// NewOrderUseCase construye el caso de uso. clock nil usa time.Now.
func NewOrderUseCase(repo repository.OrderRepository, clock Clock) *OrderUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &OrderUseCase{repo: repo, now: clock}
}

// Create valida el input y persiste el pedido con owner = usuario autenticado.
// En fallo de validación no se escribe nada y el error es order.FieldErrors.
func (uc *OrderUseCase) Create(userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	o, ferrs := order.ValidateForCreate(order.CreateInput{
		DeliveryType:        in.DeliveryType,
		ScheduledTime:       in.ScheduledTime,
		ContactPhone:        in.ContactPhone,
		DeliveryAddress:     in.DeliveryAddress,
		PickupPerson:        in.PickupPerson,
		CurbsideVehicleInfo: in.CurbsideVehicleInfo,
		Notes:               in.Notes,
	}, uc.now())
	if len(ferrs) > 0 {
		return nil, ferrs
	}

	now := uc.now()
	o.ID = uuid.New().String()
	o.UserID = userID
	o.CreatedAt = now
	o.UpdatedAt = now

	if err := uc.repo.Create(o); err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// Get consulta un pedido por id scoped al dueño. (nil, nil) cubre tanto
// "no existe" como "es de otro usuario": el filtro de ownership no distingue.
func (uc *OrderUseCase) Get(userID, id string) (*dto.OrderResponse, error) {
	o, err := uc.repo.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, nil
	}
	return toOrderResponse(o), nil
}

// Update mergea el input parcial sobre el pedido existente, re-valida el
// candidato completo y persiste. Atómico: o el merge completo es válido y se
// escribe, o no se escribe nada.
func (uc *OrderUseCase) Update(userID, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	existing, err := uc.repo.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	merged, ferrs := order.ValidateForUpdate(existing, order.UpdateInput{
		DeliveryType:        in.DeliveryType,
		ScheduledTime:       in.ScheduledTime,
		ContactPhone:        in.ContactPhone,
		DeliveryAddress:     in.DeliveryAddress,
		PickupPerson:        in.PickupPerson,
		CurbsideVehicleInfo: in.CurbsideVehicleInfo,
		Notes:               in.Notes,
	}, uc.now())
	if len(ferrs) > 0 {
		return nil, ferrs
	}

	merged.UpdatedAt = uc.now()
	if err := uc.repo.Update(merged); err != nil {
		return nil, err
	}
	return toOrderResponse(merged), nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:                  o.ID,
		UserID:              o.UserID,
		DeliveryType:        string(o.DeliveryType),
		ScheduledTime:       o.ScheduledTime,
		ContactPhone:        o.ContactPhone,
		DeliveryAddress:     optional(o.DeliveryAddress),
		PickupPerson:        optional(o.PickupPerson),
		CurbsideVehicleInfo: optional(o.CurbsideVehicleInfo),
		Notes:               optional(o.Notes),
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}

// optional mapea string vacío de dominio a null en el JSON de salida.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
