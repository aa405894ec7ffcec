package models

import (
	"fmt"
	"time"
)

// Odometer history sources.
const (
	SourceRegistration = "Cadastro"
	SourceManual       = "Ajuste manual"
)

// SourceOrder labels a history entry produced by a service order.
func SourceOrder(orderID string) string {
	return fmt.Sprintf("OS %s", orderID)
}

type OdometerReading struct {
	Data   time.Time `json:"data"`
	Km     int       `json:"km"`
	Origem string    `json:"origem"`
}

type Vehicle struct {
	ID                    string            `json:"id"`
	Placa                 string            `json:"placa"`
	Modelo                string            `json:"modelo"`
	Marca                 string            `json:"marca,omitempty"`
	Ano                   int               `json:"ano,omitempty"`
	ClienteID             string            `json:"clienteId"`
	KmEntrada             int               `json:"kmEntrada"`
	KmAtual               int               `json:"kmAtual"`
	HistoricoKm           []OdometerReading `json:"historicoKm"`
	Notas                 string            `json:"notas,omitempty"`
	DataUltimaManutencao  *time.Time        `json:"dataUltimaManutencao,omitempty"`
	DataProximaManutencao *time.Time        `json:"dataProximaManutencao,omitempty"`
}

func (v Vehicle) EntityID() string { return v.ID }

func (v Vehicle) Clone() Vehicle {
	out := v
	if v.HistoricoKm != nil {
		out.HistoricoKm = make([]OdometerReading, len(v.HistoricoKm))
		copy(out.HistoricoKm, v.HistoricoKm)
	}
	out.DataUltimaManutencao = clonePtr(v.DataUltimaManutencao)
	out.DataProximaManutencao = clonePtr(v.DataProximaManutencao)
	return out
}

// RaiseOdometer sets KmAtual to km when km is higher and records the reading.
// It reports whether the odometer moved.
func (v *Vehicle) RaiseOdometer(km int, at time.Time, source string) bool {
	if km <= v.KmAtual {
		return false
	}
	v.KmAtual = km
	v.HistoricoKm = append(v.HistoricoKm, OdometerReading{Data: at, Km: km, Origem: source})
	return true
}

// VehiclePatch covers the descriptive fields. Odometer and maintenance date
// changes carry their own rules and are applied by the vehicle service.
type VehiclePatch struct {
	Placa                *string
	Modelo               *string
	Marca                *string
	Ano                  *int
	ClienteID            *string
	Notas                *string
	KmEntrada            *int
	KmAtual              *int
	DataUltimaManutencao *time.Time
}

func (p VehiclePatch) Apply(v *Vehicle) {
	if p.Placa != nil {
		v.Placa = *p.Placa
	}
	if p.Modelo != nil {
		v.Modelo = *p.Modelo
	}
	if p.Marca != nil {
		v.Marca = *p.Marca
	}
	if p.Ano != nil {
		v.Ano = *p.Ano
	}
	if p.ClienteID != nil {
		v.ClienteID = *p.ClienteID
	}
	if p.Notas != nil {
		v.Notas = *p.Notas
	}
	if p.KmEntrada != nil {
		v.KmEntrada = *p.KmEntrada
	}
}
