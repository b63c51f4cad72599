package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/models"
)

type localLeadRepository struct {
	*DB
}

func NewLocalLeadRepository(db *DB) LocalLeadRepository {
	return &localLeadRepository{DB: db}
}

// SaveLead stores the payload verbatim. The chiropractor and createdAt
// fields are copied into their own columns for filtering.
func (l *localLeadRepository) SaveLead(ctx context.Context, raw json.RawMessage) error {
	log := logger.FromContext(ctx)

	var lead models.Lead
	if err := json.Unmarshal(raw, &lead); err != nil {
		return fmt.Errorf("invalid lead payload: %w", err)
	}

	if _, err := l.DB.ExecContext(ctx, saveLocalLead, lead.Chiropractor, lead.CreatedAt, string(raw)); err != nil {
		log.Err(err).Str("func", "localLeadRepository.SaveLead").Msg("failed to save lead")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localLeadRepository) GetLeads(ctx context.Context, chiropractor string) ([]models.Lead, error) {
	log := logger.FromContext(ctx)

	query, args := getAllLocalLeads, []any{}
	if chiropractor != "" {
		query, args = getLocalLeadsByChiropractor, []any{chiropractor}
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localLeadRepository.GetLeads").Msg("failed to query leads")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	leads := make([]models.Lead, 0)
	for rows.Next() {
		var payload string
		if err = rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		var lead models.Lead
		if err = json.Unmarshal([]byte(payload), &lead); err != nil {
			log.Warn().Err(err).Str("func", "localLeadRepository.GetLeads").Msg("skipping malformed local lead")
			continue
		}
		leads = append(leads, lead)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return leads, nil
}
