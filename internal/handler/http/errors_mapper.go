// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-feed-keeper/internal/service"
	"github.com/MKhiriev/go-feed-keeper/internal/store"
	"github.com/MKhiriev/go-feed-keeper/internal/utils"
)

// errorStatusMap is checked in order; the first match wins.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrSyncInProgress, http.StatusConflict},
	{service.ErrNoActiveSync, http.StatusNotFound},

	{store.ErrFeedNotFound, http.StatusNotFound},
	{store.ErrInvalidMarkAction, http.StatusBadRequest},
	{store.ErrTransient, http.StatusServiceUnavailable},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers a service error. Client errors carry the error text,
// server-side failures only msg.
func writeError(w http.ResponseWriter, err error, msg string) {
	status := statusFromError(err)
	if status < http.StatusInternalServerError {
		msg = err.Error()
	}
	utils.WriteError(w, msg, status)
}
