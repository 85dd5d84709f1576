// Package order contiene el motor de validación y merge de pedidos: una función
// pura de (pedido existente | nada, input, instante actual) → (pedido | errores).
// El instante actual siempre llega como parámetro; nunca se lee de un global.
package order

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
)

// Límites de longitud de los campos de texto.
const (
	MaxDeliveryAddress     = 255
	MaxPickupPerson        = 120
	MaxCurbsideVehicleInfo = 255
	MaxNotes               = 500

	// MinContactPhone longitud mínima del teléfono de contacto.
	MinContactPhone = 10
)

// FieldError una violación de regla sobre un campo concreto.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors lista de violaciones; se recolectan TODAS en una sola pasada,
// nunca se corta en la primera. Implementa error para viajar por las capas.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

// Has indica si existe una violación sobre el campo dado.
func (e FieldErrors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// CreateInput entrada cruda para crear un pedido. ScheduledTime llega como
// string ISO sin parsear; los condicionales vacíos significan "ausente".
type CreateInput struct {
	DeliveryType        string
	ScheduledTime       string
	ContactPhone        string
	DeliveryAddress     string
	PickupPerson        string
	CurbsideVehicleInfo string
	Notes               string
}

// UpdateInput entrada parcial: cada campo es opcional (nil = no tocar).
type UpdateInput struct {
	DeliveryType        *string
	ScheduledTime       *string
	ContactPhone        *string
	DeliveryAddress     *string
	PickupPerson        *string
	CurbsideVehicleInfo *string
	Notes               *string
}

// candidate pedido completamente mergeado, listo para pasar por las reglas.
type candidate struct {
	deliveryType        string
	scheduledTime       time.Time
	scheduledValid      bool
	contactPhone        string
	deliveryAddress     string
	pickupPerson        string
	curbsideVehicleInfo string
	notes               string
}

// conditionalField descriptor de un campo condicional: en lugar de ramas ad hoc
// por tipo, una tabla determina qué campo exige cada DeliveryType.
type conditionalField struct {
	name  string
	max   int
	value func(*candidate) string
}

var conditionalFields = []conditionalField{
	{
		name:  "deliveryAddress",
		max:   MaxDeliveryAddress,
		value: func(c *candidate) string { return c.deliveryAddress },
	},
	{
		name:  "pickupPerson",
		max:   MaxPickupPerson,
		value: func(c *candidate) string { return c.pickupPerson },
	},
	{
		name:  "curbsideVehicleInfo",
		max:   MaxCurbsideVehicleInfo,
		value: func(c *candidate) string { return c.curbsideVehicleInfo },
	},
}

// requiredFor índice del campo condicional obligatorio por tipo de entrega.
var requiredFor = map[entity.DeliveryType]*conditionalField{
	entity.DeliveryTypeDelivery: &conditionalFields[0],
	entity.DeliveryTypeInStore:  &conditionalFields[1],
	entity.DeliveryTypeCurbside: &conditionalFields[2],
}

// ValidateForCreate aplica todas las reglas sobre el input y, si pasan,
// devuelve un pedido listo para persistir. ID y timestamps los asigna el
// caller; este motor no conoce el store.
func ValidateForCreate(in CreateInput, now time.Time) (*entity.Order, FieldErrors) {
	c := &candidate{
		deliveryType:        in.DeliveryType,
		contactPhone:        in.ContactPhone,
		deliveryAddress:     in.DeliveryAddress,
		pickupPerson:        in.PickupPerson,
		curbsideVehicleInfo: in.CurbsideVehicleInfo,
		notes:               in.Notes,
	}
	c.scheduledTime, c.scheduledValid = parseSchedule(in.ScheduledTime)

	if errs := checkRules(c, now); len(errs) > 0 {
		return nil, errs
	}
	return c.toOrder(), nil
}

// ValidateForUpdate mergea el input parcial sobre el pedido existente
// (campo presente gana, ausente conserva lo persistido) y re-valida el
// candidato completo con el MISMO juego de reglas del create — incluida la
// regla de fecha futura sobre el scheduledTime mergeado, aunque el caller no
// lo haya tocado. Un update nunca puede dejar la fila violando el invariante
// del tipo de entrega.
func ValidateForUpdate(existing *entity.Order, in UpdateInput, now time.Time) (*entity.Order, FieldErrors) {
	c := &candidate{
		deliveryType:        string(existing.DeliveryType),
		scheduledTime:       existing.ScheduledTime,
		scheduledValid:      true,
		contactPhone:        existing.ContactPhone,
		deliveryAddress:     existing.DeliveryAddress,
		pickupPerson:        existing.PickupPerson,
		curbsideVehicleInfo: existing.CurbsideVehicleInfo,
		notes:               existing.Notes,
	}
	if in.DeliveryType != nil {
		c.deliveryType = *in.DeliveryType
	}
	if in.ScheduledTime != nil {
		c.scheduledTime, c.scheduledValid = parseSchedule(*in.ScheduledTime)
	}
	if in.ContactPhone != nil {
		c.contactPhone = *in.ContactPhone
	}
	if in.DeliveryAddress != nil {
		c.deliveryAddress = *in.DeliveryAddress
	}
	if in.PickupPerson != nil {
		c.pickupPerson = *in.PickupPerson
	}
	if in.CurbsideVehicleInfo != nil {
		c.curbsideVehicleInfo = *in.CurbsideVehicleInfo
	}
	if in.Notes != nil {
		c.notes = *in.Notes
	}

	if errs := checkRules(c, now); len(errs) > 0 {
		return nil, errs
	}

	merged := c.toOrder()
	merged.ID = existing.ID
	merged.UserID = existing.UserID
	merged.CreatedAt = existing.CreatedAt
	return merged, nil
}

// checkRules aplica todas las reglas juntas y devuelve cada violación
// encontrada. Los mensajes son los mismos que ya conoce el cliente móvil.
func checkRules(c *candidate, now time.Time) FieldErrors {
	var errs FieldErrors

	dt := entity.DeliveryType(c.deliveryType)
	if !dt.IsValid() {
		errs = append(errs, FieldError{
			Field:   "deliveryType",
			Message: "deliveryType must be one of IN_STORE, DELIVERY, CURBSIDE",
		})
	}

	switch {
	case !c.scheduledValid:
		errs = append(errs, FieldError{
			Field:   "scheduledTime",
			Message: "scheduledTime must be a valid ISO date",
		})
	case !c.scheduledTime.After(now):
		errs = append(errs, FieldError{
			Field:   "scheduledTime",
			Message: "scheduledTime must be in the future",
		})
	}

	if utf8.RuneCountInString(c.contactPhone) < MinContactPhone {
		errs = append(errs, FieldError{
			Field:   "contactPhone",
			Message: "contactPhone must be at least 10 digits",
		})
	}

	for _, f := range conditionalFields {
		if utf8.RuneCountInString(f.value(c)) > f.max {
			errs = append(errs, FieldError{
				Field:   f.name,
				Message: fmt.Sprintf("%s must be at most %d characters", f.name, f.max),
			})
		}
	}
	if utf8.RuneCountInString(c.notes) > MaxNotes {
		errs = append(errs, FieldError{
			Field:   "notes",
			Message: fmt.Sprintf("notes must be at most %d characters", MaxNotes),
		})
	}

	// Campo condicional obligatorio según el discriminante (solo con tipo válido).
	if f, ok := requiredFor[dt]; ok && f.value(c) == "" {
		errs = append(errs, FieldError{
			Field:   f.name,
			Message: fmt.Sprintf("%s is required for %s", f.name, dt),
		})
	}

	return errs
}

func (c *candidate) toOrder() *entity.Order {
	return &entity.Order{
		DeliveryType:        entity.DeliveryType(c.deliveryType),
		ScheduledTime:       c.scheduledTime,
		ContactPhone:        c.contactPhone,
		DeliveryAddress:     c.deliveryAddress,
		PickupPerson:        c.pickupPerson,
		CurbsideVehicleInfo: c.curbsideVehicleInfo,
		Notes:               c.notes,
	}
}

// parseSchedule parsea el scheduledTime en formato RFC3339 (acepta fracción de
// segundo). Devuelve el instante y si el parseo fue válido.
func parseSchedule(raw string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
