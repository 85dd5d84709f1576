package orders

import (
	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
	"github.com/tu-usuario/pedidos-api/internal/domain/repository"
)

// ReceiptGenerator puerto de generación del comprobante PDF de un pedido.
// La implementación (Maroto) vive en infrastructure/pdf.
type ReceiptGenerator interface {
	GenerateReceipt(order *entity.Order, owner *entity.User) ([]byte, error)
}

// ReceiptUseCase genera el comprobante PDF de un pedido del usuario autenticado.
type ReceiptUseCase struct {
	orders repository.OrderRepository
	users  repository.UserRepository
	pdf    ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso del comprobante.
func NewReceiptUseCase(orders repository.OrderRepository, users repository.UserRepository, pdf ReceiptGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{orders: orders, users: users, pdf: pdf}
}

// Generate devuelve los bytes del PDF, o (nil, nil) si el pedido no existe
// o pertenece a otro usuario (mismo filtro de ownership que el resto).
func (uc *ReceiptUseCase) Generate(userID, orderID string) ([]byte, error) {
	o, err := uc.orders.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, nil
	}
	owner, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateReceipt(o, owner)
}
