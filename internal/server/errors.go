// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoUserRecordsHandler = errors.New("user records HTTP handler is not configured")
	errNoListenAddress      = errors.New("HTTP listen address is empty")
)
