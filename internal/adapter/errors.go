package adapter

import "errors"

// Errors mapped from API response statuses by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

// ErrEnrichment is returned by the enrichment client for any failed call.
var ErrEnrichment = errors.New("enrichment request failed")
