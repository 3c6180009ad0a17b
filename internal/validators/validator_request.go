// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/MKhiriev/go-invoice-gateway/internal/utils"
	"github.com/MKhiriev/go-invoice-gateway/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldCustomerID  = "customer_id"
	FieldSource      = "source"
	FieldTotalAmount = "total_amount"
	FieldDate        = "date"
	FieldGUID        = "guid"
)

// MaxGUIDLength bounds caller-supplied idempotency keys.
const MaxGUIDLength = 64

// RequestValidator validates the bodies of the payment endpoints.
type RequestValidator struct {
	allowedSources []string
	guids          *utils.UUIDGenerator
}

// NewRequestValidator accepts only the given sources. They are compared
// case-insensitively.
func NewRequestValidator(allowedSources []string) *RequestValidator {
	sources := make([]string, 0, len(allowedSources))
	for _, s := range allowedSources {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			sources = append(sources, s)
		}
	}

	return &RequestValidator{
		allowedSources: sources,
		guids:          utils.NewUUIDGenerator(),
	}
}

// Validate dispatches on the dynamic type of obj. Pointer arguments are
// normalized in place; value arguments are only checked.
//
// Supported types:
//   - models.CustomerRequest / *models.CustomerRequest
//   - models.PayInvoicesRequest / *models.PayInvoicesRequest
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CustomerRequest:
		return v.validateCustomerRequest(ctx, &value, fields...)
	case *models.CustomerRequest:
		return v.validateCustomerRequest(ctx, value, fields...)
	case models.PayInvoicesRequest:
		return v.validatePayInvoicesRequest(ctx, &value, fields...)
	case *models.PayInvoicesRequest:
		return v.validatePayInvoicesRequest(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) PaymentOrder(ctx context.Context, req *models.PayInvoicesRequest) (models.PaymentOrder, error) {
	if err := v.validatePayInvoicesRequest(ctx, req); err != nil {
		return models.PaymentOrder{}, err
	}

	// already checked above
	date, _ := time.Parse(models.PaymentDateLayout, req.Date)

	if req.GUID == "" {
		req.GUID = v.guids.Generate()
	}

	return models.PaymentOrder{
		GUID:        req.GUID,
		CustomerID:  req.CustomerID,
		TotalAmount: *req.TotalAmount,
		Date:        date,
		Source:      req.Source,
	}, nil
}

func (v *RequestValidator) validateCustomerRequest(ctx context.Context, req *models.CustomerRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCustomerID, FieldSource}
	}

	req.CustomerID = strings.TrimSpace(req.CustomerID)
	req.Source = normalizeSource(req.Source)

	for _, f := range fields {
		switch f {
		case FieldCustomerID:
			if req.CustomerID == "" {
				return ErrCustomerIDRequired
			}
		case FieldSource:
			if err := v.checkSource(req.Source); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validatePayInvoicesRequest(ctx context.Context, req *models.PayInvoicesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCustomerID, FieldTotalAmount, FieldDate, FieldSource, FieldGUID}
	}

	req.CustomerID = strings.TrimSpace(req.CustomerID)
	req.Date = strings.TrimSpace(req.Date)
	req.Source = normalizeSource(req.Source)
	req.GUID = strings.TrimSpace(req.GUID)

	for _, f := range fields {
		switch f {
		case FieldCustomerID:
			if req.CustomerID == "" {
				return ErrCustomerIDRequired
			}
		case FieldTotalAmount:
			if req.TotalAmount == nil {
				return ErrTotalAmountRequired
			}
		case FieldDate:
			if req.Date == "" {
				return ErrDateRequired
			}
			if _, err := time.Parse(models.PaymentDateLayout, req.Date); err != nil {
				return ErrInvalidDate
			}
		case FieldSource:
			if err := v.checkSource(req.Source); err != nil {
				return err
			}
		case FieldGUID:
			if len(req.GUID) > MaxGUIDLength || strings.ContainsFunc(req.GUID, unicode.IsSpace) {
				return ErrInvalidGUID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) checkSource(source string) error {
	if source == "" {
		return ErrSourceRequired
	}
	if !slices.Contains(v.allowedSources, source) {
		return ErrInvalidSource
	}
	return nil
}

func normalizeSource(source string) string {
	return strings.ToLower(strings.TrimSpace(source))
}
