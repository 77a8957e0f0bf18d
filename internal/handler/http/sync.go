// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-feed-keeper/internal/logger"
	"github.com/MKhiriev/go-feed-keeper/internal/utils"
)

func (h *Handler) getSyncStatus(w http.ResponseWriter, r *http.Request) {
	status := h.services.SyncJob.Status(r.Context())
	utils.WriteJSON(w, status, http.StatusOK)
}

// startSync starts a run that outlives the request. The answer carries the
// status right after the start.
func (h *Handler) startSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if _, err := h.services.SyncJob.SyncNow(ctx); err != nil {
		log.Err(err).Str("func", "*Handler.startSync").Msg("sync was not started")
		writeError(w, err, "sync was not started")
		return
	}

	log.Info().Str("func", "*Handler.startSync").Msg("sync started on request")
	utils.WriteJSON(w, h.services.SyncJob.Status(ctx), http.StatusAccepted)
}

func (h *Handler) cancelSync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.services.SyncJob.CancelCurrent(); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.cancelSync").Msg("nothing to cancel")
		writeError(w, err, "error cancelling sync")
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
