package models

import "github.com/shopspring/decimal"

type AlertType string

const (
	AlertStock       AlertType = "ESTOQUE"
	AlertMaintenance AlertType = "MANUTENCAO"
)

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Placeholders shown for dangling references.
const (
	RemovedClient  = "Cliente removido"
	RemovedVehicle = "Veículo removido"
)

// Alert is derived state; it is recomputed on every read and never stored.
type Alert struct {
	ID          string    `json:"id"`
	Type        AlertType `json:"type"`
	Severity    Severity  `json:"severity"`
	Message     string    `json:"message"`
	VeiculoID   string    `json:"veiculoId,omitempty"`
	RegraID     string    `json:"regraId,omitempty"`
	ClientName  string    `json:"clientName,omitempty"`
	ClientPhone string    `json:"clientPhone,omitempty"`
}

type ServiceCount struct {
	Nome string `json:"nome"`
	Qtd  int    `json:"qtd"`
}

type DashboardMetrics struct {
	FaturamentoTotal decimal.Decimal `json:"faturamentoTotal"`
	FaturamentoMes   decimal.Decimal `json:"faturamentoMes"`
	OSAbertas        int             `json:"osAbertas"`
	OSConcluidas     int             `json:"osConcluidas"`
	TicketMedio      decimal.Decimal `json:"ticketMedio"`
	TopServicos      []ServiceCount  `json:"topServicos"`
}

type MonthSummary struct {
	Income       decimal.Decimal `json:"income"`
	Expense      decimal.Decimal `json:"expense"`
	Balance      decimal.Decimal `json:"balance"`
	Transactions []Transaction   `json:"transactions"`
}
