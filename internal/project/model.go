package project

import (
	"time"

	"configurateur-be/internal/configurator"
)

type Status string

const (
	StatusBrouillon Status = "BROUILLON"
	StatusEnCours   Status = "EN_COURS"
	StatusTermine   Status = "TERMINE"
)

// Project is a saved configuration an authenticated client can come
// back to. Config is the same JSON shape the wizard works with.
type Project struct {
	ID        uint                   `json:"id"`
	UserID    uint                   `json:"user_id"`
	Name      string                 `json:"name"`
	Config    configurator.Selection `json:"config"`
	Status    Status                 `json:"status"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// UpdateParams carries the PUT payload: a full replacement config plus
// an optional status move.
type UpdateParams struct {
	ProjectID uint
	UserID    uint
	Config    configurator.Selection
	Status    *Status
}
