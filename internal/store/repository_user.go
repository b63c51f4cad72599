package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, login stamps and the table probe against the
// "users" table.
//
// The handle is taken from the shared [Connector] on every call, so an
// unconfigured or unreachable database surfaces as [ErrDBNotConfigured] or
// [ErrDBUnreachable].
type userRepository struct {
	logger    *logger.Logger
	connector *Connector
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// connector and logger.
func NewUserRepository(connector *Connector, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		connector: connector,
		logger:    logger,
	}
}

// CreateUser persists a new user record and returns the stored
// [models.User] with server-assigned fields (ID, CreatedAt).
//
// Error handling:
//   - no row returned (ON CONFLICT DO NOTHING) → [ErrUserAlreadyExists].
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists].
//   - connection-level failure → [ErrDBUnreachable].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	db, err := r.connector.DB(ctx)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("database handle is not available")
		return models.User{}, err
	}

	query, args, err := buildCreateUserQuery(user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	err = db.QueryRowContext(ctx, query, args...).Scan(&created.ID, &created.Login, &created.Email, &created.CreatedAt)
	switch {
	case err == nil:
		return created, nil
	case errors.Is(err, sql.ErrNoRows):
		log.Info().Str("func", "*userRepository.CreateUser").Str("login", user.Login).Msg("login or email already taken")
		return models.User{}, ErrUserAlreadyExists
	case postgresError(err) == pgerrcode.UniqueViolation:
		log.Info().Str("func", "*userRepository.CreateUser").Str("login", user.Login).Msg("unique violation on insert")
		return models.User{}, ErrUserAlreadyExists
	default:
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, db.wrapDBError(err, ErrExecutingStatement)
	}
}

// TouchLogin sets last_login_at and last_seen_at to at for the user with
// the given login. A login that matches nobody is not an error; the
// returned count is zero.
func (r *userRepository) TouchLogin(ctx context.Context, login string, at time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	db, err := r.connector.DB(ctx)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.TouchLogin").Msg("database handle is not available")
		return 0, err
	}

	query, args, err := buildTouchLoginQuery(login, at)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.TouchLogin").Msg("error updating login timestamps")
		return 0, db.wrapDBError(err, ErrExecutingStatement)
	}

	updated, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "*userRepository.TouchLogin").Str("login", login).Int64("updated", updated).Send()
	return updated, nil
}

// ProbeUsers runs a read-only count over at most one row of the users
// table. It never mutates data.
func (r *userRepository) ProbeUsers(ctx context.Context) error {
	db, err := r.connector.DB(ctx)
	if err != nil {
		return err
	}

	query, args, err := buildProbeUsersQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.ProbeUsers").Msg("users table probe failed")
		return db.wrapDBError(err, ErrExecutingQuery)
	}

	return nil
}
