// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is a runnable client process.
type Client interface {
	Run() error
}

// UI is the interactive front end driven by [App]. Run returns when the
// user quits or ctx is cancelled.
type UI interface {
	Run(ctx context.Context) error
}

var _ Client = (*App)(nil)
