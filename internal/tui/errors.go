// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
)

// humanizeError turns adapter errors into messages fit for the status line.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Session expired or credentials are wrong, log in again"
	case errors.Is(err, adapter.ErrForbidden):
		return "Account is disabled"
	case errors.Is(err, adapter.ErrNotFound):
		return "Todo no longer exists"
	case errors.Is(err, adapter.ErrConflict):
		return "Username is already taken"
	case errors.Is(err, adapter.ErrBadGateway):
		return "Description enrichment is unavailable, try again later"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	return err.Error()
}
