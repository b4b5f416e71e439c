package catalog

import (
	"context"
	"fmt"

	"configurateur-be/internal/logger"

	"go.uber.org/zap"
)

// Service assembles the settings bundle the configurator works from.
type Service interface {
	GetSettings(ctx context.Context) (*Settings, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GetSettings loads the full bundle. Callers fetch it once per session
// and treat it as immutable afterwards.
func (s *service) GetSettings(ctx context.Context) (*Settings, error) {
	types, err := s.repo.GetProductTypes(ctx)
	if err != nil {
		return nil, err
	}

	materials, err := s.repo.GetMaterials(ctx)
	if err != nil {
		return nil, err
	}

	options, err := s.repo.GetOptions(ctx)
	if err != nil {
		return nil, err
	}

	labels, err := s.repo.GetLabels(ctx)
	if err != nil {
		return nil, err
	}

	settings := &Settings{
		ProductTypes: types,
		Materials:    materials,
		Options:      options,
		Labels:       labels,
	}

	if err := validateSettings(settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// validateSettings rejects a bundle the back office should never have
// produced. Failing loud here beats pricing from a broken catalog.
func validateSettings(s *Settings) error {
	for i := range s.ProductTypes {
		if err := s.ProductTypes[i].Validate(); err != nil {
			return fmt.Errorf("product type %q: %w", s.ProductTypes[i].Slug, err)
		}
	}
	for i := range s.Materials {
		if err := s.Materials[i].Validate(); err != nil {
			return fmt.Errorf("material %q: %w", s.Materials[i].Name, err)
		}
	}
	for i := range s.Options {
		if err := s.Options[i].Validate(); err != nil {
			logger.L().Warn("skipping invalid catalog option",
				zap.String("slug", s.Options[i].Slug),
				zap.Error(err),
			)
			s.Options[i].Actif = false
		}
	}
	return nil
}
