// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// ErrNoServersAreCreated is returned by NewServer when the status API has no
// address, i.e. it is disabled.
var ErrNoServersAreCreated = errors.New("no servers are created")
