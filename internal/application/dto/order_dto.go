package dto

import "time"

// CreateOrderRequest entrada para crear un pedido. Las claves JSON son las
// que ya usa el cliente móvil (camelCase).
type CreateOrderRequest struct {
	DeliveryType        string `json:"deliveryType"`
	ScheduledTime       string `json:"scheduledTime"`
	ContactPhone        string `json:"contactPhone"`
	DeliveryAddress     string `json:"deliveryAddress"`
	PickupPerson        string `json:"pickupPerson"`
	CurbsideVehicleInfo string `json:"curbsideVehicleInfo"`
	Notes               string `json:"notes"`
}

// UpdateOrderRequest entrada parcial: todo campo es opcional (nil = no tocar,
// semántica de merge sobre lo persistido).
type UpdateOrderRequest struct {
	DeliveryType        *string `json:"deliveryType"`
	ScheduledTime       *string `json:"scheduledTime"`
	ContactPhone        *string `json:"contactPhone"`
	DeliveryAddress     *string `json:"deliveryAddress"`
	PickupPerson        *string `json:"pickupPerson"`
	CurbsideVehicleInfo *string `json:"curbsideVehicleInfo"`
	Notes               *string `json:"notes"`
}

// OrderResponse salida de un pedido. Los condicionales ausentes se serializan
// como null, igual que la fila de la base de datos.
type OrderResponse struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"userId"`
	DeliveryType        string    `json:"deliveryType"`
	ScheduledTime       time.Time `json:"scheduledTime"`
	ContactPhone        string    `json:"contactPhone"`
	DeliveryAddress     *string   `json:"deliveryAddress"`
	PickupPerson        *string   `json:"pickupPerson"`
	CurbsideVehicleInfo *string   `json:"curbsideVehicleInfo"`
	Notes               *string   `json:"notes"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
