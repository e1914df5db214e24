package service

import "errors"

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrWrongPassword  = errors.New("wrong password")
	ErrUserIsDisabled = errors.New("user is disabled")

	ErrTokenIsMalformed    = errors.New("token is malformed")
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrValidation       = errors.New("validation failed")
	ErrEnrichmentFailed = errors.New("description enrichment failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
