package quote

import (
	"context"
	"strings"

	"configurateur-be/internal/catalog"
	"configurateur-be/internal/configurator"
	"configurateur-be/internal/logger"
	"configurateur-be/internal/pricing"

	"go.uber.org/zap"
)

// Service turns a finished selection into a persisted quote. It
// satisfies configurator.Submitter.
type Service interface {
	Submit(ctx context.Context, sel configurator.Selection, contact configurator.Contact) (string, error)
	GetByNumber(ctx context.Context, number string) (*Quote, error)
}

type service struct {
	repo     Repository
	settings *catalog.Settings
	calc     *pricing.Calculator
}

func NewService(repo Repository, settings *catalog.Settings, calc *pricing.Calculator) Service {
	return &service{repo: repo, settings: settings, calc: calc}
}

// Submit validates, reprices and persists a configuration. The price is
// always recomputed here; a total sent by the client is never trusted.
func (s *service) Submit(ctx context.Context, sel configurator.Selection, contact configurator.Contact) (string, error) {
	if strings.TrimSpace(contact.Name) == "" {
		return "", ErrContactNameRequired
	}
	if strings.TrimSpace(contact.Email) == "" {
		return "", ErrContactEmailRequired
	}

	t := s.settings.ProductTypeBySlug(sel.ProductType)
	if t == nil {
		return "", ErrProductTypeRequired
	}
	if s.settings.MaterialByID(sel.MaterialID) == nil {
		return "", ErrMaterialRequired
	}

	// clamp once more before persisting; a hand-crafted payload must
	// not smuggle out-of-envelope dimensions into the CRM
	sel.Dimensions = configurator.ClampDimensions(t, sel.Dimensions)

	q := &Quote{
		Selection: sel,
		Price:     s.calc.Compute(sel),
		Contact:   contact,
	}

	created, err := s.repo.Create(ctx, q)
	if err != nil {
		logger.FromCtx(ctx).Error("quote submission failed", zap.Error(err))
		return "", err
	}

	logger.FromCtx(ctx).Info("quote submitted",
		zap.String("number", created.Number),
		zap.Float64("total_ttc", created.Price.TotalTTC),
	)

	return created.Number, nil
}

func (s *service) GetByNumber(ctx context.Context, number string) (*Quote, error) {
	return s.repo.GetByNumber(ctx, number)
}
