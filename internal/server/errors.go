// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated means the handlers enabled no transport at all.
var errNoServersAreCreated = errors.New("no servers are created: neither HTTP nor gRPC handler is set")
