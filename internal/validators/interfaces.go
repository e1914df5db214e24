// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds input validation for todo and account payloads.
//
// Validators are injected into the service layer, where a validating
// decorator runs them before any data access. Field names may be passed to
// Validate to check only part of a payload.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
