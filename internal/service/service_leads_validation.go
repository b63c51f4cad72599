package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/chiro-hub/internal/validators"
	"github.com/MKhiriev/chiro-hub/models"
)

// LeadValidationService rejects malformed lead queries before they reach
// the wrapped [LeadService].
type LeadValidationService struct {
	inner     LeadService
	validator validators.Validator
}

func NewLeadValidationService() LeadServiceWrapper {
	return &LeadValidationService{
		validator: validators.NewLeadQueryValidator(),
	}
}

func (v *LeadValidationService) ListLeads(ctx context.Context, q models.LeadQuery) (models.LeadList, error) {
	if err := v.validator.Validate(ctx, q); err != nil {
		return models.LeadList{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ListLeads(ctx, q)
}

func (v *LeadValidationService) ReceiveLead(ctx context.Context, raw json.RawMessage) (models.LeadAck, error) {
	return v.inner.ReceiveLead(ctx, raw)
}

func (v *LeadValidationService) Wrap(wrapper LeadService) LeadService {
	v.inner = wrapper
	return v
}
