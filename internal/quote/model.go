package quote

import (
	"time"

	"configurateur-be/internal/configurator"
	"configurateur-be/internal/pricing"
)

type Status string

const (
	StatusNouveau Status = "NOUVEAU"
	StatusEnCours Status = "EN_COURS"
	StatusAccepte Status = "ACCEPTE"
	StatusRefuse  Status = "REFUSE"
)

// Quote is the persisted record of a submitted configuration. Number is
// generated at insert time and unique per accepted submission.
type Quote struct {
	ID        uint                   `json:"id"`
	Number    string                 `json:"number"`
	Selection configurator.Selection `json:"selection"`
	Price     pricing.Breakdown      `json:"price"`
	Contact   configurator.Contact   `json:"contact"`
	Status    Status                 `json:"status"`
	CreatedAt time.Time              `json:"created_at"`
}
