package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/internal/store"
	"github.com/MKhiriev/chiro-hub/models"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt work factor of stored password hashes.
const PasswordHashCost = 10

// maxPasswordBytes is the longest input bcrypt hashes. Longer passwords are
// hashed by their first maxPasswordBytes bytes.
const maxPasswordBytes = 72

// userService is the concrete implementation of UserService.
type userService struct {
	// userRepository is the data-access layer used to create and stamp users.
	userRepository store.UserRepository

	// now is the clock used for login stamps.
	now func() time.Time

	logger *logger.Logger
}

// NewUserService constructs a new UserService wired to the given
// UserRepository. Inputs are expected to be validated by the wrapper
// returned from [NewUserValidationService].
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		now:            time.Now,
		logger:         logger,
	}
}

// Register trims login and email, lowercases email, hashes the password with
// bcrypt and stores the user.
//
// Returns:
//   - store.ErrUserAlreadyExists if the login or email is taken.
//   - store.ErrDBNotConfigured or store.ErrDBUnreachable if the database
//     cannot be used.
//   - a wrapped storage error otherwise.
func (s *userService) Register(ctx context.Context, req models.RegistrationRequest) (models.RegisteredUser, error) {
	log := logger.FromContext(ctx)

	user := models.User{
		Login: strings.TrimSpace(req.Login),
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
	}

	hash, err := bcrypt.GenerateFromPassword(passwordBytes(req.Password), PasswordHashCost)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("password hashing failed")
		return models.RegisteredUser{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = string(hash)

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user creation ended with error")
		return models.RegisteredUser{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("id", created.ID).Str("login", created.Login).Msg("user registered")
	return models.RegisteredUser{
		ID:    created.ID,
		Login: created.Login,
		Email: created.Email,
	}, nil
}

// TouchLogin stamps the last login of the user identified by req.Login.
func (s *userService) TouchLogin(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	login := strings.TrimSpace(req.Login)

	updated, err := s.userRepository.TouchLogin(ctx, login, s.now().UTC())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("login", login).Msg("login timestamp update failed")
		return models.LoginResult{}, fmt.Errorf("login timestamp update failed: %w", err)
	}

	return models.LoginResult{
		Success: true,
		Login:   login,
		Updated: updated,
	}, nil
}

// passwordBytes returns the part of password that bcrypt takes into account.
func passwordBytes(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
