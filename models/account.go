// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CredentialsType identifies how [Credentials.Secret] must be presented to
// the feed service.
type CredentialsType string

const (
	// CredentialsOAuthAccessToken is a bearer access token obtained through
	// the OAuth flow. Refreshing it is the caller's responsibility.
	CredentialsOAuthAccessToken CredentialsType = "oauth_access_token"
)

// Account identifies the local account a sync run works on. Every local
// entity (feeds, folders, articles, status sets) is keyed by AccountID.
type Account struct {
	// ID is the local account identifier.
	ID string `json:"id"`

	// UserID is the remote user identifier. It is used to build the
	// user-scoped stream IDs such as "user/<UserID>/category/global.all".
	UserID string `json:"user_id"`
}

// Credentials is a snapshot of the secrets a sync run authenticates with.
// A run never refreshes or persists credentials; it only reads this value.
type Credentials struct {
	// Type tells the adapter how to present Secret.
	Type CredentialsType `json:"type"`

	// Username is the remote account name, informational only.
	Username string `json:"username"`

	// Secret is the access token.
	Secret string `json:"-"`
}
