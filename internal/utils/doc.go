// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the transport and service
// layers: JSON responses, the resty client and ID generation.
package utils
