// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"github.com/MKhiriev/go-feed-keeper/internal/config"
	handler "github.com/MKhiriev/go-feed-keeper/internal/handler/http"
	"github.com/MKhiriev/go-feed-keeper/internal/logger"
)

// NewServer builds the status API server. It fails when no address is
// configured.
func NewServer(h *handler.Handler, cfg config.ClientServer, logger *logger.Logger) (Server, error) {
	if cfg.HTTPAddress == "" {
		return nil, ErrNoServersAreCreated
	}

	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating new server...")
	return newHTTPServer(h.Init(), cfg.HTTPAddress, logger), nil
}
