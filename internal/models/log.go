package models

import "time"

type Action string

const (
	ActionCreate Action = "CRIACAO"
	ActionEdit   Action = "EDICAO"
	ActionDelete Action = "EXCLUSAO"
	ActionConfig Action = "CONFIG"
)

type EntityKind string

const (
	EntityClient      EntityKind = "CLIENTE"
	EntityVehicle     EntityKind = "VEICULO"
	EntityStock       EntityKind = "ESTOQUE"
	EntityOrder       EntityKind = "OS"
	EntityRule        EntityKind = "REGRA"
	EntityTransaction EntityKind = "FINANCEIRO"

	// EntitySystem tags settings changes such as the selected view.
	EntitySystem EntityKind = "SISTEMA"
)

// LogEntry is an immutable audit record.
type LogEntry struct {
	ID        string     `json:"id"`
	Timestamp time.Time  `json:"timestamp"`
	Acao      Action     `json:"acao"`
	Entidade  EntityKind `json:"entidade"`
	Detalhes  string     `json:"detalhes"`
}

func (l LogEntry) EntityID() string { return l.ID }
func (l LogEntry) Clone() LogEntry  { return l }
