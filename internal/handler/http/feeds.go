// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-feed-keeper/internal/logger"
	"github.com/MKhiriev/go-feed-keeper/internal/utils"
	"github.com/MKhiriev/go-feed-keeper/models"
)

type renameFeedRequest struct {
	Name string `json:"name"`
}

type queueMarksRequest struct {
	Marks []models.PendingMark `json:"marks"`
}

func (h *Handler) listFeeds(w http.ResponseWriter, r *http.Request) {
	feeds, err := h.services.LocalDataService.Feeds(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listFeeds").Msg("error listing feeds")
		writeError(w, err, "error listing feeds")
		return
	}

	utils.WriteJSON(w, feeds, http.StatusOK)
}

func (h *Handler) renameFeed(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	feedID, err := url.PathUnescape(chi.URLParam(r, "feedID"))
	if err != nil {
		utils.WriteError(w, "invalid feed id", http.StatusBadRequest)
		return
	}

	var req renameFeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.renameFeed").Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.LocalDataService.RenameFeed(r.Context(), feedID, req.Name); err != nil {
		log.Err(err).Str("func", "*Handler.renameFeed").Str("feed_id", feedID).Msg("error renaming feed")
		writeError(w, err, "error renaming feed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) queueMarks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req queueMarksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.queueMarks").Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.LocalDataService.QueueStatusMarks(r.Context(), req.Marks...); err != nil {
		log.Err(err).Str("func", "*Handler.queueMarks").Int("marks", len(req.Marks)).Msg("error queueing marks")
		writeError(w, err, "error queueing marks")
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
