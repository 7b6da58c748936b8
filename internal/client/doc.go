// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the marketplace command-line client.
//
// Each invocation dispatches one sub-command (login, products, favorite, ...)
// to the client services. The "shell" command keeps the process alive and
// reads commands from stdin so the session and the product cache are shared
// between them.
package client
