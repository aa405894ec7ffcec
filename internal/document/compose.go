// Package document builds printable service-order records and hands them to
// a storage sink. Compose gathers the data, a Renderer turns it into bytes,
// and a Sink stores them.
package document

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/autoprime/internal/common"
	"github.com/dmitrijs2005/autoprime/internal/models"
	"github.com/shopspring/decimal"
)

type ServiceLine struct {
	Nome  string
	Valor decimal.Decimal
}

type PartLine struct {
	Nome       string
	Quantidade int
	Unitario   decimal.Decimal
	Subtotal   decimal.Decimal
}

// ServiceOrderDocument is a read-only, render-ready view of one order.
type ServiceOrderDocument struct {
	OrderID  string
	Date     time.Time
	Status   models.OrderStatus
	Mecanico string
	Notes    string

	ClientName  string
	ClientPhone string
	ClientEmail string

	VehicleModel string
	VehiclePlate string
	VehicleBrand string
	KmNoServico  int

	Services []ServiceLine
	Parts    []PartLine
	Total    decimal.Decimal
}

// Compose assembles the document for orderID. Dangling client or vehicle
// references render as placeholders.
func Compose(orders []models.ServiceOrder, clients []models.Client, vehicles []models.Vehicle, orderID string) (*ServiceOrderDocument, error) {
	var (
		order models.ServiceOrder
		found bool
	)
	for _, o := range orders {
		if o.ID == orderID {
			order, found = o, true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("order %s: %w", orderID, common.ErrNotFound)
	}

	doc := &ServiceOrderDocument{
		OrderID:      order.ID,
		Date:         order.Data,
		Status:       order.Status,
		Mecanico:     order.Mecanico,
		Notes:        order.Notas,
		ClientName:   models.RemovedClient,
		VehicleModel: models.RemovedVehicle,
		KmNoServico:  order.KmNoServico,
		Services:     make([]ServiceLine, 0, len(order.Servicos)),
		Parts:        make([]PartLine, 0, len(order.PecasUsadas)),
		Total:        order.ValorTotal,
	}

	for _, c := range clients {
		if c.ID == order.ClienteID {
			doc.ClientName, doc.ClientPhone, doc.ClientEmail = c.Nome, c.Telefone, c.Email
			break
		}
	}
	for _, v := range vehicles {
		if v.ID == order.VeiculoID {
			doc.VehicleModel, doc.VehiclePlate, doc.VehicleBrand = v.Modelo, v.Placa, v.Marca
			break
		}
	}

	for _, s := range order.Servicos {
		doc.Services = append(doc.Services, ServiceLine{Nome: s.Nome, Valor: s.Valor})
	}
	for _, p := range order.PecasUsadas {
		doc.Parts = append(doc.Parts, PartLine{
			Nome:       p.NomePeca,
			Quantidade: p.Quantidade,
			Unitario:   p.ValorUnitarioSnapshot,
			Subtotal:   p.Subtotal(),
		})
	}
	return doc, nil
}
