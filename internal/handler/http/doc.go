// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the Private VPN server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API and the landing page. Cross-cutting concerns such as authentication,
// request tracing, access logging, response compression and rate limiting are
// handled in this package before requests are delegated to the service layer.
package http
