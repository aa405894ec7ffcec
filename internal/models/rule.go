package models

// MaintenanceRule schedules a named service every IntervaloMeses months.
// An empty VeiculoID makes the rule global.
type MaintenanceRule struct {
	ID             string `json:"id"`
	NomeServico    string `json:"nomeServico"`
	IntervaloMeses int    `json:"intervaloMeses"`
	VeiculoID      string `json:"veiculoId,omitempty"`
}

func (r MaintenanceRule) EntityID() string       { return r.ID }
func (r MaintenanceRule) Clone() MaintenanceRule { return r }

// AppliesTo reports whether the rule covers the vehicle.
func (r MaintenanceRule) AppliesTo(vehicleID string) bool {
	return r.VeiculoID == "" || r.VeiculoID == vehicleID
}

// RulePatch fields left nil are unchanged. A VeiculoID pointing at "" makes
// the rule global again.
type RulePatch struct {
	NomeServico    *string
	IntervaloMeses *int
	VeiculoID      *string
}

func (p RulePatch) Apply(r *MaintenanceRule) {
	if p.NomeServico != nil {
		r.NomeServico = *p.NomeServico
	}
	if p.IntervaloMeses != nil {
		r.IntervaloMeses = *p.IntervaloMeses
	}
	if p.VeiculoID != nil {
		r.VeiculoID = *p.VeiculoID
	}
}
