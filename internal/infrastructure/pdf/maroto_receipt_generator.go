// Package pdf implementa la generación del comprobante PDF de un pedido.
//
// Layout de la página A5:
//
//	┌──────────────────────────────────────────────┐
//	│  HEADER: Comprobante de Pedido │ id + fecha  │
//	│  ──────────────────────────────────────────  │
//	│  CLIENTE: nombre + email                     │
//	│  ──────────────────────────────────────────  │
//	│  DETALLE: tipo de entrega / fecha programada │
//	│           teléfono / campo condicional       │
//	│           notas                              │
//	│  ──────────────────────────────────────────  │
//	│  FOOTER: QR con el id del pedido             │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// deliveryTypeLabels etiqueta legible por tipo de entrega.
var deliveryTypeLabels = map[entity.DeliveryType]string{
	entity.DeliveryTypeInStore:  "Recogida en tienda",
	entity.DeliveryTypeDelivery: "Entrega a domicilio",
	entity.DeliveryTypeCurbside: "Entrega en andén",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa orders.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceipt genera el comprobante PDF del pedido y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceipt(o *entity.Order, owner *entity.User) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de Pedido", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(o))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if owner != nil {
		m.AddRows(ownerRow(owner))
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}
	for _, r := range detailRows(o) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(qrFooterRow(o))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) e id + fecha de creación (der).
func headerRow(o *entity.Order) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("COMPROBANTE DE PEDIDO", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Pedido "+shortID(o.ID), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			}),
			text.New("Creado: "+o.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// ownerRow: datos del cliente dueño del pedido.
func ownerRow(owner *entity.User) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   %s", owner.Name, owner.Email), props.Text{
				Size: 8, Top: 7, Color: colorGray,
			}),
		),
	)
}

// detailRows: una fila etiqueta/valor por cada dato del pedido.
func detailRows(o *entity.Order) []core.Row {
	pair := func(label, value string) core.Row {
		return row.New(7).Add(
			col.New(4).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1,
			})),
			col.New(8).Add(text.New(value, props.Text{
				Size: 8, Top: 1, Color: colorGray,
			})),
		)
	}

	rows := []core.Row{
		pair("Tipo de entrega:", deliveryTypeLabels[o.DeliveryType]),
		pair("Fecha programada:", o.ScheduledTime.Format("02/01/2006 15:04")),
		pair("Teléfono de contacto:", o.ContactPhone),
	}
	switch o.DeliveryType {
	case entity.DeliveryTypeDelivery:
		rows = append(rows, pair("Dirección de entrega:", o.DeliveryAddress))
	case entity.DeliveryTypeInStore:
		rows = append(rows, pair("Persona que recoge:", o.PickupPerson))
	case entity.DeliveryTypeCurbside:
		rows = append(rows, pair("Vehículo:", o.CurbsideVehicleInfo))
	}
	if o.Notes != "" {
		rows = append(rows, pair("Notas:", o.Notes))
	}
	return rows
}

// qrFooterRow: QR con el id del pedido para consultarlo desde la app.
func qrFooterRow(o *entity.Order) core.Row {
	return row.New(40).Add(
		col.New(4).Add(code.NewQr(o.ID, props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(8).Add(
			text.New("Escanea el código QR para abrir\neste pedido en la app.", props.Text{
				Size: 8, Top: 6, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// shortID primeros 8 caracteres del uuid, suficientes para referencia visual.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
