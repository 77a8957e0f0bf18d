// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var errNoSyncJob = errors.New("no sync job is configured")
