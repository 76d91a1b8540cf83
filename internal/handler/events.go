// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/nailroom/nailroom-go/internal/store"
)

const defaultEventLimit = 100

// EventHandler exposes the persisted event log to the admin panel.
type EventHandler struct {
	queries *store.Queries
}

func NewEventHandler(db *sql.DB) *EventHandler {
	return &EventHandler{queries: store.New(db)}
}

// List handles GET /api/admin/events?level=&limit=. Events come back
// newest first; an empty level means all levels.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := int64(defaultEventLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	events, err := h.queries.ListEvents(r.Context(), r.URL.Query().Get("level"), limit)
	if err != nil {
		slog.Error("events: list failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, msgServerError)
		return
	}
	writeJSONSuccess(w, map[string]any{"events": events})
}
