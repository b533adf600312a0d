// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the locally stored session and runs the terminal UI as a single
// process lifecycle.
package client
