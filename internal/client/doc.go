// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command line client of the user records
// API.
//
// Each invocation runs one command (create, get, update, list, search,
// login, verify, version) through [adapter.UserClient] and prints the JSON
// result.
package client
