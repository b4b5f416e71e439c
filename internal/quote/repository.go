package quote

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"configurateur-be/internal/configurator"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, q *Quote) (*Quote, error)
	GetByNumber(ctx context.Context, number string) (*Quote, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// newQuoteNumber builds a human-quotable reference, e.g. DEV-2025-3FA09B21.
// A unique index on quotes.number backs the uniqueness guarantee.
func newQuoteNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("DEV-%d-%s", now.Year(), suffix)
}

func (r *repository) Create(ctx context.Context, q *Quote) (*Quote, error) {
	selJSON, err := json.Marshal(q.Selection)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedCreateQuote, err)
	}

	q.Number = newQuoteNumber(time.Now())
	q.Status = StatusNouveau

	err = r.db.QueryRowContext(ctx, `
		INSERT INTO quotes (number, selection, subtotal_ht, tva, total_ttc,
		                    contact_name, contact_email, contact_phone, contact_message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`,
		q.Number, selJSON, q.Price.SubtotalHT, q.Price.TVA, q.Price.TotalTTC,
		q.Contact.Name, q.Contact.Email, q.Contact.Phone, q.Contact.Message, q.Status,
	).Scan(&q.ID, &q.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedCreateQuote, err)
	}

	return q, nil
}

func (r *repository) GetByNumber(ctx context.Context, number string) (*Quote, error) {
	var q Quote
	var selJSON []byte

	err := r.db.QueryRowContext(ctx, `
		SELECT id, number, selection, subtotal_ht, tva, total_ttc,
		       contact_name, contact_email, contact_phone, contact_message, status, created_at
		FROM quotes
		WHERE number = $1`,
		number,
	).Scan(
		&q.ID, &q.Number, &selJSON, &q.Price.SubtotalHT, &q.Price.TVA, &q.Price.TotalTTC,
		&q.Contact.Name, &q.Contact.Email, &q.Contact.Phone, &q.Contact.Message, &q.Status, &q.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrQuoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedGetQuote, err)
	}

	var sel configurator.Selection
	if err := json.Unmarshal(selJSON, &sel); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedGetQuote, err)
	}
	q.Selection = sel

	return &q, nil
}
