package repository

import "github.com/tu-usuario/pedidos-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order.
// GetByIDAndUser filtra por dueño: un pedido ajeno y uno inexistente son
// indistinguibles para el caller (nil, nil) — no se filtra existencia.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByIDAndUser(id, userID string) (*entity.Order, error)
	Update(order *entity.Order) error
}
