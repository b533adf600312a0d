// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the domain entities shared by the server, the client
// and their transport: users, devices, the client session singleton, and the
// request/response payloads of the account and device flows.
package models
