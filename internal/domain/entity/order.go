package entity

import "time"

// DeliveryType discriminante del pedido: determina cuál de los tres campos
// condicionales es obligatorio.
type DeliveryType string

const (
	DeliveryTypeInStore  DeliveryType = "IN_STORE"
	DeliveryTypeDelivery DeliveryType = "DELIVERY"
	DeliveryTypeCurbside DeliveryType = "CURBSIDE"
)

// IsValid verifica que el tipo sea uno de los tres valores del enum.
func (t DeliveryType) IsValid() bool {
	switch t {
	case DeliveryTypeInStore, DeliveryTypeDelivery, DeliveryTypeCurbside:
		return true
	}
	return false
}

// Order pedido de preferencia de entrega. Pertenece a exactamente un User.
// Los tres campos condicionales son columnas nullable en la fila persistida
// (string vacío en dominio = NULL en base de datos).
type Order struct {
	ID                  string
	UserID              string
	DeliveryType        DeliveryType
	ScheduledTime       time.Time
	ContactPhone        string
	DeliveryAddress     string
	PickupPerson        string
	CurbsideVehicleInfo string
	Notes               string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
