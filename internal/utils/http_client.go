// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is the resty client used by the client adapter.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client for baseURL with JSON defaults. A baseURL
// without a scheme is treated as http. Transient failures (connection errors
// and 5xx on idempotent requests) are retried twice.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(normalizeBaseURL(baseURL)).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			method := resp.Request.Method
			return resp.StatusCode() >= 500 && (method == resty.MethodGet || method == resty.MethodHead)
		})

	return &HTTPClient{Client: client}
}

func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" || strings.Contains(baseURL, "://") {
		return baseURL
	}
	return "http://" + baseURL
}
