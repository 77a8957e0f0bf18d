// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every outbound request.
const UserAgent = "go-feed-keeper"

// HTTPClient embeds *resty.Client so callers configure it directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client. Retries are left disabled:
// a failed request fails the sync stage that issued it.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", UserAgent).
		SetRetryCount(0)

	return &HTTPClient{Client: client}
}
