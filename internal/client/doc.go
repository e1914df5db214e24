// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client process.
//
// [App] owns the signal-aware lifecycle and hands a single API adapter to
// the terminal UI, which keeps the bearer token for the session.
package client
