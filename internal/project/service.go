package project

import (
	"context"

	"configurateur-be/internal/catalog"
	"configurateur-be/internal/configurator"
	"configurateur-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	GetProject(ctx context.Context, projectID, userID uint, isAdmin bool) (*Project, error)
	UpdateProject(ctx context.Context, params UpdateParams, isAdmin bool) (*Project, error)
}

type service struct {
	repo     Repository
	settings *catalog.Settings
}

func NewService(repo Repository, settings *catalog.Settings) Service {
	return &service{repo: repo, settings: settings}
}

func (s *service) GetProject(ctx context.Context, projectID, userID uint, isAdmin bool) (*Project, error) {
	p, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && p.UserID != userID {
		return nil, ErrUnauthorized
	}
	return p, nil
}

// UpdateProject replaces a project's configuration. Owner-only unless
// the caller is an admin. The stored config goes through the same clamp
// as a live session, so a stale client can't persist an out-of-envelope
// configuration.
func (s *service) UpdateProject(ctx context.Context, params UpdateParams, isAdmin bool) (*Project, error) {
	p, err := s.repo.GetByID(ctx, params.ProjectID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && p.UserID != params.UserID {
		return nil, ErrUnauthorized
	}

	cfg := params.Config
	if t := s.settings.ProductTypeBySlug(cfg.ProductType); t != nil {
		cfg.Dimensions = configurator.ClampDimensions(t, cfg.Dimensions)
	}
	p.Config = cfg

	if params.Status != nil {
		switch *params.Status {
		case StatusBrouillon, StatusEnCours, StatusTermine:
			p.Status = *params.Status
		default:
			return nil, ErrInvalidStatus
		}
	}

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("project updated",
		zap.Uint("project_id", updated.ID),
		zap.String("status", string(updated.Status)),
	)

	return updated, nil
}
