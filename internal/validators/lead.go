package validators

import (
	"context"

	"github.com/MKhiriev/chiro-hub/models"
)

const FieldSince = "since"

// LeadQueryValidator checks the query parameters of a lead listing.
type LeadQueryValidator struct{}

func NewLeadQueryValidator() Validator {
	return &LeadQueryValidator{}
}

func (v *LeadQueryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LeadQuery:
		return v.validateQuery(value, fields...)
	case *models.LeadQuery:
		return v.validateQuery(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *LeadQueryValidator) validateQuery(q models.LeadQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSince}
	}

	for _, f := range fields {
		switch f {
		case FieldSince:
			if q.Since == "" {
				continue
			}
			if _, ok := models.ParseLeadTime(q.Since); !ok {
				return ErrInvalidSince
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
