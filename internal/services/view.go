package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/autoprime/internal/common"
	"github.com/dmitrijs2005/autoprime/internal/models"
)

// Views are the selectable screens.
var Views = []string{"dashboard", "clients", "vehicles", "inventory", "os", "financial", "settings"}

type ViewService interface {
	Current() string
	Set(ctx context.Context, view string) error
}

type viewService struct {
	d Deps
}

func NewViewService(d Deps) ViewService {
	return &viewService{d: d}
}

func (s *viewService) Current() string {
	return s.d.Store.CurrentView()
}

// Set persists view. Selecting the current view again writes nothing.
func (s *viewService) Set(ctx context.Context, view string) error {
	if !slices.Contains(Views, view) {
		return fmt.Errorf("%w: unknown view %q", common.ErrValidation, view)
	}
	if view == s.d.Store.CurrentView() {
		return nil
	}
	err := s.d.Store.SetCurrentView(ctx, view)
	return errors.Join(err, s.d.record(ctx, models.ActionConfig, models.EntitySystem, "Visão alterada para %s.", view))
}
