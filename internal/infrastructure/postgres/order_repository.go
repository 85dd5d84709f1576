package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
	"github.com/tu-usuario/pedidos-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Create persiste un pedido nuevo (los condicionales vacíos quedan NULL).
func (r *OrderRepo) Create(o *entity.Order) error {
	query := `
		INSERT INTO orders (id, user_id, delivery_type, scheduled_time, contact_phone,
			delivery_address, pickup_person, curbside_vehicle_info, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(context.Background(), query,
		o.ID, o.UserID, string(o.DeliveryType), o.ScheduledTime, o.ContactPhone,
		nullable(o.DeliveryAddress), nullable(o.PickupPerson),
		nullable(o.CurbsideVehicleInfo), nullable(o.Notes),
		o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByIDAndUser obtiene un pedido por id filtrando por dueño.
// (nil, nil) tanto si no existe como si pertenece a otro usuario.
func (r *OrderRepo) GetByIDAndUser(id, userID string) (*entity.Order, error) {
	query := `
		SELECT id, user_id, delivery_type, scheduled_time, contact_phone,
			delivery_address, pickup_person, curbside_vehicle_info, notes, created_at, updated_at
		FROM orders WHERE id = $1 AND user_id = $2`
	var (
		o                              entity.Order
		deliveryType                   string
		address, pickup, vehicle, note *string
	)
	err := r.pool.QueryRow(context.Background(), query, id, userID).Scan(
		&o.ID, &o.UserID, &deliveryType, &o.ScheduledTime, &o.ContactPhone,
		&address, &pickup, &vehicle, &note, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by id and user: %w", err)
	}
	o.DeliveryType = entity.DeliveryType(deliveryType)
	o.DeliveryAddress = fromNullable(address)
	o.PickupPerson = fromNullable(pickup)
	o.CurbsideVehicleInfo = fromNullable(vehicle)
	o.Notes = fromNullable(note)
	return &o, nil
}

// Update sobreescribe la fila completa del pedido mergeado (last-write-wins,
// sin token de concurrencia optimista).
func (r *OrderRepo) Update(o *entity.Order) error {
	query := `
		UPDATE orders SET delivery_type = $2, scheduled_time = $3, contact_phone = $4,
			delivery_address = $5, pickup_person = $6, curbside_vehicle_info = $7,
			notes = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		o.ID, string(o.DeliveryType), o.ScheduledTime, o.ContactPhone,
		nullable(o.DeliveryAddress), nullable(o.PickupPerson),
		nullable(o.CurbsideVehicleInfo), nullable(o.Notes), o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}
