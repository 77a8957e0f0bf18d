// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnauthorized = errors.New("client unauthorized")
	ErrRateLimited  = errors.New("rate limited")
	ErrTransport    = errors.New("transport failure")
	ErrServer       = errors.New("remote server error")
	ErrBadRequest   = errors.New("bad request")
	ErrNotFound     = errors.New("not found")
	ErrBadResponse  = errors.New("malformed response")
)

// RateLimitError is returned for HTTP 429. It matches ErrRateLimited.
type RateLimitError struct {
	// RetryAfter is zero when the server did not send a usable Retry-After.
	RetryAfter time.Duration
	Body       string
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("%s: retry after %s: %s", ErrRateLimited, e.RetryAfter, e.Body)
	}
	return fmt.Sprintf("%s: %s", ErrRateLimited, e.Body)
}

func (e *RateLimitError) Unwrap() error {
	return ErrRateLimited
}
