package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/chiro-hub/internal/validators"
	"github.com/MKhiriev/chiro-hub/models"
)

// UserValidationService rejects blank inputs before they reach the
// wrapped [UserService].
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) Register(ctx context.Context, req models.RegistrationRequest) (models.RegisteredUser, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.RegisteredUser{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Register(ctx, req)
}

func (v *UserValidationService) TouchLogin(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.TouchLogin(ctx, req)
}

func (v *UserValidationService) Wrap(wrapper UserService) UserService {
	v.inner = wrapper
	return v
}
