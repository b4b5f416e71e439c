package catalog

import "errors"

var (
	// -- Lookup --
	ErrProductTypeNotFound = errors.New("product type not found")
	ErrMaterialNotFound    = errors.New("material not found")
	ErrOptionNotFound      = errors.New("option not found")

	// -- Settings integrity --
	ErrInvalidEnvelope    = errors.New("invalid dimension envelope")
	ErrInvalidAreaAxes    = errors.New("product type missing area axes")
	ErrNegativePrice      = errors.New("negative price in catalog")
	ErrChoixWithoutGroupe = errors.New("choix option without groupe")
	ErrGroupeOnNonChoix   = errors.New("groupe set on non-choix option")

	// -- Database & Operation Failures --
	ErrFailedGetProductTypes = errors.New("failed to get product types")
	ErrFailedGetMaterials    = errors.New("failed to get materials")
	ErrFailedGetOptions      = errors.New("failed to get options")
	ErrFailedGetLabels       = errors.New("failed to get labels")
)
