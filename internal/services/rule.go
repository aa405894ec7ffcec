package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/autoprime/internal/models"
)

type RuleInput struct {
	NomeServico    string
	IntervaloMeses int
	// VeiculoID scopes the rule to one vehicle; empty means global.
	VeiculoID string
}

type RuleService interface {
	Add(ctx context.Context, in RuleInput) (models.MaintenanceRule, error)
	Update(ctx context.Context, id string, patch models.RulePatch) error
	Delete(ctx context.Context, id string) error
	List() []models.MaintenanceRule
}

type ruleService struct {
	d Deps
}

func NewRuleService(d Deps) RuleService {
	return &ruleService{d: d}
}

func (s *ruleService) Add(ctx context.Context, in RuleInput) (models.MaintenanceRule, error) {
	r := models.MaintenanceRule{
		ID:             s.d.NewID(),
		NomeServico:    in.NomeServico,
		IntervaloMeses: in.IntervaloMeses,
		VeiculoID:      in.VeiculoID,
	}
	err := s.d.Store.Rules.Add(ctx, r)
	return r, errors.Join(err, s.d.record(ctx, models.ActionCreate, models.EntityRule, "Regra %s criada.", r.NomeServico))
}

func (s *ruleService) Update(ctx context.Context, id string, patch models.RulePatch) error {
	ok, err := s.d.Store.Rules.Update(ctx, id, patch.Apply)
	if !ok {
		return notFound(models.EntityRule, id)
	}
	return errors.Join(err, s.d.record(ctx, models.ActionEdit, models.EntityRule, "Regra %s editada.", id))
}

func (s *ruleService) Delete(ctx context.Context, id string) error {
	ok, err := s.d.Store.Rules.Delete(ctx, id)
	if !ok {
		return nil
	}
	return errors.Join(err, s.d.record(ctx, models.ActionDelete, models.EntityRule, "Regra %s removida.", id))
}

func (s *ruleService) List() []models.MaintenanceRule {
	return s.d.Store.Rules.List()
}
