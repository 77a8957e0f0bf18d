// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is a transport server managed by this package.
type Server interface {
	// Run serves requests until ctx is cancelled, then shuts down
	// gracefully. It returns nil after a clean shutdown.
	Run(ctx context.Context) error
}
