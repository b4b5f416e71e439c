package quote

import "errors"

var (
	// -- Validation & Input --
	ErrContactNameRequired  = errors.New("contact name is required")
	ErrContactEmailRequired = errors.New("contact email is required")
	ErrProductTypeRequired  = errors.New("a product type must be chosen")
	ErrMaterialRequired     = errors.New("a material must be chosen")

	// -- Resource State --
	ErrQuoteNotFound = errors.New("quote not found")

	// -- Database & Operation Failures --
	ErrFailedCreateQuote = errors.New("failed to create quote")
	ErrFailedGetQuote    = errors.New("failed to get quote")
)
