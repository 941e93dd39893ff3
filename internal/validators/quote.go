package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode"

	"github.com/MKhiriev/quote-sync/models"
)

// Field name constants used to restrict Validate to a subset of fields.
const (
	// FieldCurrency targets the ISO 4217 currency code.
	FieldCurrency = "currency"

	// FieldCustomer targets the customer name and email.
	FieldCustomer = "customer"

	// FieldItems targets the line items.
	FieldItems = "items"

	// FieldNotes targets the free-form notes.
	FieldNotes = "notes"
)

const (
	// MaxItems bounds the number of lines in one quote.
	MaxItems = 200

	maxTextLength  = 200
	maxNotesLength = 4000
)

// QuoteValidator validates and normalizes [models.Quote] values.
type QuoteValidator struct {
}

// NewQuoteValidator constructs a new QuoteValidator.
func NewQuoteValidator() *QuoteValidator {
	return &QuoteValidator{}
}

// Validate accepts models.Quote or *models.Quote. Without fields every rule
// is checked.
func (v *QuoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Quote:
		return v.validateQuote(ctx, value, fields...)
	case *models.Quote:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateQuote(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// Normalize returns a canonical copy of q and validates it:
//   - surrounding whitespace is trimmed from every text field
//   - the currency is upper-cased
//   - items with neither SKU nor name are dropped
//   - negative quantities and unit prices are clamped to zero
//
// q itself is never modified.
func (v *QuoteValidator) Normalize(q models.Quote) (models.Quote, error) {
	out := q.Clone()

	out.Customer.Name = strings.TrimSpace(out.Customer.Name)
	out.Customer.Email = strings.TrimSpace(out.Customer.Email)
	out.Currency = strings.ToUpper(strings.TrimSpace(out.Currency))
	out.Notes = strings.TrimSpace(out.Notes)

	items := make([]models.QuoteItem, 0, len(out.Items))
	for _, item := range out.Items {
		item.SKU = strings.TrimSpace(item.SKU)
		item.Name = strings.TrimSpace(item.Name)
		if item.SKU == "" && item.Name == "" {
			continue
		}
		item.Quantity = max(item.Quantity, 0)
		item.UnitPrice = max(item.UnitPrice, 0)
		items = append(items, item)
	}
	out.Items = items

	if err := v.validateQuote(context.Background(), out); err != nil {
		return q, err
	}

	return out, nil
}

func (v *QuoteValidator) validateQuote(_ context.Context, q models.Quote, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCurrency, FieldCustomer, FieldItems, FieldNotes}
	}

	for _, f := range fields {
		switch f {
		case FieldCurrency:
			if q.Currency != "" && !isCurrencyCode(q.Currency) {
				return ErrInvalidCurrency
			}
		case FieldCustomer:
			if len(q.Customer.Name) > maxTextLength {
				return fmt.Errorf("customer name: %w", ErrFieldTooLong)
			}
			if q.Customer.Email != "" {
				if _, err := mail.ParseAddress(q.Customer.Email); err != nil {
					return ErrInvalidEmail
				}
			}
		case FieldItems:
			if len(q.Items) > MaxItems {
				return ErrTooManyItems
			}
			for i, item := range q.Items {
				if item.Name == "" {
					return fmt.Errorf("validation error at index %d: %w", i, ErrItemNameRequired)
				}
				if len(item.Name) > maxTextLength || len(item.SKU) > maxTextLength {
					return fmt.Errorf("validation error at index %d: %w", i, ErrFieldTooLong)
				}
			}
		case FieldNotes:
			if len(q.Notes) > maxNotesLength {
				return fmt.Errorf("notes: %w", ErrFieldTooLong)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if !unicode.IsUpper(r) || r > unicode.MaxASCII {
			return false
		}
	}
	return true
}
