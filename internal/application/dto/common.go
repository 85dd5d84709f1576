package dto

import "github.com/tu-usuario/pedidos-api/internal/domain/order"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse error 400 con la lista exhaustiva de violaciones
// por campo — nunca una sola; el cliente las muestra todas juntas.
type ValidationErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Errors  order.FieldErrors `json:"errors"`
}

// NewValidationError construye la respuesta 400 estándar de validación.
func NewValidationError(errs order.FieldErrors) ValidationErrorResponse {
	return ValidationErrorResponse{
		Code:    "VALIDATION",
		Message: "Invalid order payload",
		Errors:  errs,
	}
}
