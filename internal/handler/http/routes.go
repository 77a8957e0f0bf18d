// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	router.Get("/api/version", h.getVersion)

	router.Get("/api/sync/status", h.getSyncStatus)
	router.Post("/api/sync", h.startSync)
	router.Post("/api/sync/cancel", h.cancelSync)

	// feed ids contain slashes and must be path-escaped
	router.Get("/api/feeds", h.listFeeds)
	router.Put("/api/feeds/{feedID}/name", h.renameFeed)

	router.Post("/api/marks", h.queueMarks)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
