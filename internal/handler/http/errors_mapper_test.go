// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-feed-keeper/internal/service"
	"github.com/MKhiriev/go-feed-keeper/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrInvalidDataProvided, http.StatusBadRequest},
		{fmt.Errorf("start: %w", service.ErrSyncInProgress), http.StatusConflict},
		{service.ErrNoActiveSync, http.StatusNotFound},
		{fmt.Errorf("%w: %w", service.ErrLocalStorage, store.ErrFeedNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: %w", service.ErrLocalStorage, store.ErrTransient), http.StatusServiceUnavailable},
		{service.ErrLocalStorage, http.StatusInternalServerError},
		{errors.New("unexpected"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
