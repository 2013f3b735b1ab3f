// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the project sync service and the background
// refresh worker into a single process lifecycle bound to SIGINT/SIGTERM.
package client
