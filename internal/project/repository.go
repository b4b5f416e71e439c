package project

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"configurateur-be/internal/configurator"
)

type Repository interface {
	GetByID(ctx context.Context, id uint) (*Project, error)
	Update(ctx context.Context, p *Project) (*Project, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Project, error) {
	var p Project
	var cfgJSON []byte

	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, config, status, created_at, updated_at
		FROM projects
		WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.UserID, &p.Name, &cfgJSON, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedGetProject, err)
	}

	var cfg configurator.Selection
	if err := json.Unmarshal(cfgJSON, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedGetProject, err)
	}
	p.Config = cfg

	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Project) (*Project, error) {
	cfgJSON, err := json.Marshal(p.Config)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedUpdateProject, err)
	}

	err = r.db.QueryRowContext(ctx, `
		UPDATE projects
		SET config = $1, status = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at`,
		cfgJSON, p.Status, p.ID,
	).Scan(&p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedUpdateProject, err)
	}

	return p, nil
}
