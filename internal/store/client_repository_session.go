package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/models"
)

type localSessionRepository struct {
	*DB
}

func NewLocalSessionRepository(db *DB) LocalSessionRepository {
	return &localSessionRepository{DB: db}
}

func (l *localSessionRepository) GetSessionID(ctx context.Context) (string, error) {
	var sessionID string
	err := l.DB.QueryRowContext(ctx, getSessionID).Scan(&sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localSessionRepository.GetSessionID").Msg("failed to read session id")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return sessionID, nil
}

func (l *localSessionRepository) SaveSessionID(ctx context.Context, sessionID string) error {
	if _, err := l.DB.ExecContext(ctx, saveSessionID, sessionID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localSessionRepository.SaveSessionID").Msg("failed to save session id")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (l *localSessionRepository) ClearSession(ctx context.Context) error {
	if _, err := l.DB.ExecContext(ctx, clearSession); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

type localIdentityRepository struct {
	*DB
}

func NewLocalIdentityRepository(db *DB) LocalIdentityRepository {
	return &localIdentityRepository{DB: db}
}

func (l *localIdentityRepository) GetIdentity(ctx context.Context) (models.Identity, error) {
	var identity models.Identity
	err := l.DB.QueryRowContext(ctx, getIdentity).Scan(
		&identity.UserID,
		&identity.Login,
		&identity.Email,
		&identity.Chiropractor,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Identity{}, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localIdentityRepository.GetIdentity").Msg("failed to read identity")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return identity, nil
}

func (l *localIdentityRepository) SaveIdentity(ctx context.Context, identity models.Identity) error {
	_, err := l.DB.ExecContext(ctx, saveIdentity,
		identity.UserID,
		identity.Login,
		identity.Email,
		identity.Chiropractor,
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localIdentityRepository.SaveIdentity").Msg("failed to save identity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (l *localIdentityRepository) ClearIdentity(ctx context.Context) error {
	if _, err := l.DB.ExecContext(ctx, clearIdentity); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
