package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidCurrency  = errors.New("currency must be a 3-letter code")
	ErrInvalidEmail     = errors.New("invalid customer email")
	ErrTooManyItems     = errors.New("too many quote items")
	ErrItemNameRequired = errors.New("quote item name is required")
	ErrFieldTooLong     = errors.New("field is too long")
)
