package order_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
	"github.com/tu-usuario/pedidos-api/internal/domain/order"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// testNow instante fijo inyectado en todas las validaciones: el motor es una
// función pura del reloj, así que los tests son deterministas.
var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

const testPhone = "5551234567"

// futureISO un scheduledTime una hora en el futuro respecto a testNow.
func futureISO() string {
	return testNow.Add(time.Hour).Format(time.RFC3339)
}

// createInputFor input de creación válido para el tipo dado, con su campo
// condicional presente.
func createInputFor(t *testing.T, dt entity.DeliveryType) order.CreateInput {
	t.Helper()
	in := order.CreateInput{
		DeliveryType:  string(dt),
		ScheduledTime: futureISO(),
		ContactPhone:  testPhone,
	}
	switch dt {
	case entity.DeliveryTypeDelivery:
		in.DeliveryAddress = "123 Main St"
	case entity.DeliveryTypeInStore:
		in.PickupPerson = "Ana Gómez"
	case entity.DeliveryTypeCurbside:
		in.CurbsideVehicleInfo = "Mazda 3 rojo, placa ABC123"
	}
	return in
}

// requiredFieldName campo condicional obligatorio para cada tipo.
func requiredFieldName(dt entity.DeliveryType) string {
	switch dt {
	case entity.DeliveryTypeDelivery:
		return "deliveryAddress"
	case entity.DeliveryTypeInStore:
		return "pickupPerson"
	default:
		return "curbsideVehicleInfo"
	}
}

// existingDeliveryOrder pedido DELIVERY válido ya persistido, base de los
// tests de update.
func existingDeliveryOrder() *entity.Order {
	return &entity.Order{
		ID:              "order-1",
		UserID:          "user-1",
		DeliveryType:    entity.DeliveryTypeDelivery,
		ScheduledTime:   testNow.Add(2 * time.Hour),
		ContactPhone:    testPhone,
		DeliveryAddress: "123 Main St",
		Notes:           "timbre dañado, llamar al llegar",
		CreatedAt:       testNow.Add(-24 * time.Hour),
		UpdatedAt:       testNow.Add(-24 * time.Hour),
	}
}

func strPtr(s string) *string { return &s }

var allTypes = []entity.DeliveryType{
	entity.DeliveryTypeInStore,
	entity.DeliveryTypeDelivery,
	entity.DeliveryTypeCurbside,
}

// ──────────────────────────────────────────────────────────────────────────────
// ValidateForCreate
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateForCreate_CadaTipoConSuCampoValida(t *testing.T) {
	for _, dt := range allTypes {
		t.Run(string(dt), func(t *testing.T) {
			o, errs := order.ValidateForCreate(createInputFor(t, dt), testNow)
			require.Empty(t, errs, "input válido para %s no debe producir errores", dt)
			require.NotNil(t, o)
			assert.Equal(t, dt, o.DeliveryType)
			assert.Equal(t, testPhone, o.ContactPhone)
			assert.True(t, o.ScheduledTime.After(testNow))
			assert.Empty(t, o.ID, "el id lo asigna el caller, no el motor")
		})
	}
}

func TestValidateForCreate_CampoCondicionalAusenteFalla(t *testing.T) {
	for _, dt := range allTypes {
		t.Run(string(dt), func(t *testing.T) {
			in := order.CreateInput{
				DeliveryType:  string(dt),
				ScheduledTime: futureISO(),
				ContactPhone:  testPhone,
			}
			o, errs := order.ValidateForCreate(in, testNow)
			assert.Nil(t, o)
			require.Len(t, errs, 1, "debe fallar exactamente el campo condicional")
			assert.Equal(t, requiredFieldName(dt), errs[0].Field,
				"la ruta del error debe ser el campo que exige %s", dt)
		})
	}
}

// Escenario concreto del contrato: CURBSIDE sin curbsideVehicleInfo.
func TestValidateForCreate_CurbsideSinVehiculo(t *testing.T) {
	in := order.CreateInput{
		DeliveryType:  "CURBSIDE",
		ScheduledTime: futureISO(),
		ContactPhone:  "5551234567",
	}
	_, errs := order.ValidateForCreate(in, testNow)
	require.True(t, errs.Has("curbsideVehicleInfo"),
		"debe reportar la ruta curbsideVehicleInfo")
}

func TestValidateForCreate_FechaPasadaFalla(t *testing.T) {
	in := createInputFor(t, entity.DeliveryTypeDelivery)
	in.ScheduledTime = testNow.Add(-time.Hour).Format(time.RFC3339)
	_, errs := order.ValidateForCreate(in, testNow)
	require.True(t, errs.Has("scheduledTime"))
	assert.Contains(t, errs.Error(), "must be in the future")
}

// scheduledTime == now no es estrictamente futuro: también falla.
func TestValidateForCreate_FechaIgualAhoraFalla(t *testing.T) {
	in := createInputFor(t, entity.DeliveryTypeDelivery)
	in.ScheduledTime = testNow.Format(time.RFC3339)
	_, errs := order.ValidateForCreate(in, testNow)
	assert.True(t, errs.Has("scheduledTime"))
}

func TestValidateForCreate_FechaNoParseableFalla(t *testing.T) {
	in := createInputFor(t, entity.DeliveryTypeDelivery)
	in.ScheduledTime = "mañana a las tres"
	_, errs := order.ValidateForCreate(in, testNow)
	require.True(t, errs.Has("scheduledTime"))
	assert.Contains(t, errs.Error(), "valid ISO date")
}

func TestValidateForCreate_TelefonoCortoFallaEnTodosLosTipos(t *testing.T) {
	for _, dt := range allTypes {
		t.Run(string(dt), func(t *testing.T) {
			in := createInputFor(t, dt)
			in.ContactPhone = "555123"
			_, errs := order.ValidateForCreate(in, testNow)
			assert.True(t, errs.Has("contactPhone"),
				"teléfono corto debe fallar independiente del tipo de entrega")
		})
	}
}

func TestValidateForCreate_TipoInvalidoFalla(t *testing.T) {
	in := createInputFor(t, entity.DeliveryTypeDelivery)
	in.DeliveryType = "DRONE"
	_, errs := order.ValidateForCreate(in, testNow)
	require.True(t, errs.Has("deliveryType"))
	// Sin tipo válido no hay campo condicional que exigir.
	assert.False(t, errs.Has("deliveryAddress"))
}

// Todas las violaciones se recolectan en una sola pasada, nunca solo la primera.
func TestValidateForCreate_RecolectaTodasLasViolaciones(t *testing.T) {
	in := order.CreateInput{
		DeliveryType:  "DELIVERY",
		ScheduledTime: testNow.Add(-time.Hour).Format(time.RFC3339),
		ContactPhone:  "123",
	}
	_, errs := order.ValidateForCreate(in, testNow)
	require.Len(t, errs, 3, "fecha pasada + teléfono corto + dirección ausente")
	assert.True(t, errs.Has("scheduledTime"))
	assert.True(t, errs.Has("contactPhone"))
	assert.True(t, errs.Has("deliveryAddress"))
}

func TestValidateForCreate_LongitudesMaximas(t *testing.T) {
	cases := []struct {
		field string
		apply func(*order.CreateInput)
	}{
		{"deliveryAddress", func(in *order.CreateInput) {
			in.DeliveryAddress = strings.Repeat("a", order.MaxDeliveryAddress+1)
		}},
		{"pickupPerson", func(in *order.CreateInput) {
			in.PickupPerson = strings.Repeat("a", order.MaxPickupPerson+1)
		}},
		{"curbsideVehicleInfo", func(in *order.CreateInput) {
			in.CurbsideVehicleInfo = strings.Repeat("a", order.MaxCurbsideVehicleInfo+1)
		}},
		{"notes", func(in *order.CreateInput) {
			in.Notes = strings.Repeat("a", order.MaxNotes+1)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			in := createInputFor(t, entity.DeliveryTypeDelivery)
			tc.apply(&in)
			_, errs := order.ValidateForCreate(in, testNow)
			assert.True(t, errs.Has(tc.field), "exceder el máximo de %s debe fallar", tc.field)
		})
	}
}

// En el límite exacto no hay violación.
func TestValidateForCreate_LongitudEnElLimitePasa(t *testing.T) {
	in := createInputFor(t, entity.DeliveryTypeDelivery)
	in.DeliveryAddress = strings.Repeat("a", order.MaxDeliveryAddress)
	in.Notes = strings.Repeat("n", order.MaxNotes)
	_, errs := order.ValidateForCreate(in, testNow)
	assert.Empty(t, errs)
}

// ──────────────────────────────────────────────────────────────────────────────
// ValidateForUpdate — merge y re-validación
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateForUpdate_MergePreservaCamposNoTocados(t *testing.T) {
	existing := existingDeliveryOrder()
	merged, errs := order.ValidateForUpdate(existing, order.UpdateInput{
		Notes: strPtr("dejar en portería"),
	}, testNow)

	require.Empty(t, errs)
	require.NotNil(t, merged)
	assert.Equal(t, "dejar en portería", merged.Notes)
	assert.Equal(t, existing.DeliveryAddress, merged.DeliveryAddress,
		"los campos no tocados conservan su valor persistido")
	assert.Equal(t, existing.ScheduledTime, merged.ScheduledTime)
	assert.Equal(t, existing.ContactPhone, merged.ContactPhone)
}

func TestValidateForUpdate_ConservaIdentidadDelPedido(t *testing.T) {
	existing := existingDeliveryOrder()
	merged, errs := order.ValidateForUpdate(existing, order.UpdateInput{
		Notes: strPtr("x"),
	}, testNow)

	require.Empty(t, errs)
	assert.Equal(t, existing.ID, merged.ID)
	assert.Equal(t, existing.UserID, merged.UserID)
	assert.Equal(t, existing.CreatedAt, merged.CreatedAt)
}

// Cambiar el tipo sin aportar el campo que el nuevo tipo exige debe fallar,
// aunque el campo del tipo anterior siga presente.
func TestValidateForUpdate_CambioDeTipoSinNuevoCampoFalla(t *testing.T) {
	existing := existingDeliveryOrder()
	merged, errs := order.ValidateForUpdate(existing, order.UpdateInput{
		DeliveryType: strPtr("IN_STORE"),
	}, testNow)

	assert.Nil(t, merged)
	require.Len(t, errs, 1)
	assert.Equal(t, "pickupPerson", errs[0].Field,
		"el error debe apuntar al campo que exige el nuevo tipo")
}

func TestValidateForUpdate_CambioDeTipoConNuevoCampoPasa(t *testing.T) {
	existing := existingDeliveryOrder()
	merged, errs := order.ValidateForUpdate(existing, order.UpdateInput{
		DeliveryType: strPtr("CURBSIDE"),
		CurbsideVehicleInfo: strPtr("camioneta gris, placa XYZ789"),
	}, testNow)

	require.Empty(t, errs)
	assert.Equal(t, entity.DeliveryTypeCurbside, merged.DeliveryType)
	assert.Equal(t, "camioneta gris, placa XYZ789", merged.CurbsideVehicleInfo)
	// El campo del tipo anterior no se borra: la fila persistida lo conserva.
	assert.Equal(t, existing.DeliveryAddress, merged.DeliveryAddress)
}

// Política deliberada: el scheduledTime mergeado se re-valida contra "ahora"
// aunque el caller no lo haya enviado. Un pedido cuya fecha ya venció no
// admite updates sin reprogramarlo.
func TestValidateForUpdate_FechaVencidaSeRevalida(t *testing.T) {
	existing := existingDeliveryOrder()
	existing.ScheduledTime = testNow.Add(-time.Minute)

	merged, errs := order.ValidateForUpdate(existing, order.UpdateInput{
		Notes: strPtr("solo toco las notas"),
	}, testNow)

	assert.Nil(t, merged)
	require.True(t, errs.Has("scheduledTime"),
		"la fecha vencida del registro debe bloquear el update")
}

func TestValidateForUpdate_ReprogramarFechaVencidaPasa(t *testing.T) {
	existing := existingDeliveryOrder()
	existing.ScheduledTime = testNow.Add(-time.Minute)

	merged, errs := order.ValidateForUpdate(existing, order.UpdateInput{
		ScheduledTime: strPtr(futureISO()),
	}, testNow)

	require.Empty(t, errs)
	assert.True(t, merged.ScheduledTime.After(testNow))
}

func TestValidateForUpdate_FechaNuevaInvalidaFalla(t *testing.T) {
	existing := existingDeliveryOrder()
	_, errs := order.ValidateForUpdate(existing, order.UpdateInput{
		ScheduledTime: strPtr("no-es-una-fecha"),
	}, testNow)
	assert.True(t, errs.Has("scheduledTime"))
}

func TestValidateForUpdate_TelefonoCortoEnMergeFalla(t *testing.T) {
	existing := existingDeliveryOrder()
	_, errs := order.ValidateForUpdate(existing, order.UpdateInput{
		ContactPhone: strPtr("123"),
	}, testNow)
	assert.True(t, errs.Has("contactPhone"))
}
