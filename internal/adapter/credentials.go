// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-feed-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// checkCredentials rejects tokens that cannot possibly be accepted so no
// request is sent with them. Opaque tokens are only checked for emptiness;
// JWT-shaped tokens are also checked for an "exp" claim in the past.
// The signature is not verified: the remote service does that.
func checkCredentials(creds models.Credentials, now time.Time) error {
	token := strings.TrimSpace(creds.Secret)
	if token == "" {
		return fmt.Errorf("%w: empty access token", ErrUnauthorized)
	}

	if strings.Count(token, ".") != 2 {
		return nil
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil
	}

	if claims.ExpiresAt != nil && !claims.ExpiresAt.After(now) {
		return fmt.Errorf("%w: access token expired at %s", ErrUnauthorized, claims.ExpiresAt.Time.Format(time.RFC3339))
	}

	return nil
}
