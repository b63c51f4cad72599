package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/chiro-hub/internal/adapter"
	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/internal/store"
	"github.com/MKhiriev/chiro-hub/models"
)

type clientAuthService struct {
	serverAdapter adapter.ServerAdapter
	identities    store.LocalIdentityRepository
	sessions      store.LocalSessionRepository

	chiropractor string

	logger *logger.Logger
}

func NewClientAuthService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, chiropractor string, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		serverAdapter: serverAdapter,
		identities:    storages.Identities,
		sessions:      storages.Sessions,
		chiropractor:  chiropractor,
		logger:        logger,
	}
}

func (s *clientAuthService) Register(ctx context.Context, req models.RegistrationRequest) (models.RegisteredUser, error) {
	user, err := s.serverAdapter.Register(ctx, req)
	if err != nil {
		return models.RegisteredUser{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	identity := models.Identity{
		UserID:       user.ID,
		Login:        user.Login,
		Email:        user.Email,
		Chiropractor: s.chiropractor,
	}
	if err = s.switchIdentity(ctx, identity); err != nil {
		return models.RegisteredUser{}, err
	}

	return user, nil
}

func (s *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	result, err := s.serverAdapter.TouchLogin(ctx, req)
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	login := result.Login
	if login == "" {
		login = strings.TrimSpace(req.Login)
	}

	cached, err := s.identities.GetIdentity(ctx)
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("error reading cached identity: %w", err)
	}

	if cached.Login == login {
		if s.chiropractor != "" {
			cached.Chiropractor = s.chiropractor
		}
		if err = s.identities.SaveIdentity(ctx, cached); err != nil {
			return models.LoginResult{}, fmt.Errorf("error caching identity: %w", err)
		}
		return result, nil
	}

	identity := models.Identity{Login: login, Chiropractor: s.chiropractor}
	if err = s.switchIdentity(ctx, identity); err != nil {
		return models.LoginResult{}, err
	}

	return result, nil
}

func (s *clientAuthService) Logout(ctx context.Context) error {
	if err := s.identities.ClearIdentity(ctx); err != nil {
		return fmt.Errorf("error clearing identity: %w", err)
	}
	if err := s.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("error clearing session: %w", err)
	}

	logger.FromContext(ctx).Info().Msg("signed out")
	return nil
}

func (s *clientAuthService) WhoAmI(ctx context.Context) (models.Identity, error) {
	identity, err := s.identities.GetIdentity(ctx)
	if err != nil {
		return models.Identity{}, fmt.Errorf("error reading cached identity: %w", err)
	}
	if identity.IsEmpty() {
		return models.Identity{}, ErrNotSignedIn
	}

	return identity, nil
}

// switchIdentity caches identity and drops the session of the previous one.
func (s *clientAuthService) switchIdentity(ctx context.Context, identity models.Identity) error {
	if err := s.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("error clearing session: %w", err)
	}
	if err := s.identities.SaveIdentity(ctx, identity); err != nil {
		return fmt.Errorf("error caching identity: %w", err)
	}

	logger.FromContext(ctx).Info().Str("login", identity.Login).Msg("identity cached")
	return nil
}
