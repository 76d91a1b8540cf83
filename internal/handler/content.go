// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"

	"github.com/nailroom/nailroom-go/internal/model"
	"github.com/nailroom/nailroom-go/internal/store"
)

// ContentHandler serves the keyed website content: free-form text and
// image values grouped by page section, edited from the admin panel.
type ContentHandler struct {
	queries  *store.Queries
	sanitize *bluemonday.Policy
}

// NewContentHandler creates a ContentHandler backed by db. Values are
// sanitized with a UGC policy on write, so stored content is safe to
// render without escaping.
func NewContentHandler(db *sql.DB) *ContentHandler {
	return &ContentHandler{
		queries:  store.New(db),
		sanitize: bluemonday.UGCPolicy(),
	}
}

type contentValue struct {
	Value *string `json:"value"`
	Type  string  `json:"type"`
}

// GetSection handles GET /api/content/{section}. It returns every key in
// the section as a key → {value, type} map.
func (h *ContentHandler) GetSection(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	rows, err := h.queries.ListContentBySection(r.Context(), section)
	if err != nil {
		slog.Error("content: list section failed", "section", section, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Lỗi khi lấy nội dung")
		return
	}
	content := make(map[string]contentValue, len(rows))
	for _, row := range rows {
		content[row.ContentKey] = contentValue{Value: row.ContentValue, Type: row.ContentType}
	}
	writeJSONSuccess(w, map[string]any{"content": content})
}

// UpdateSection handles POST /api/content/{section}. The body is a flat
// key → value object; every pair is upserted into the section. Re-posting
// a key replaces its value in place.
func (h *ContentHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	var values map[string]*string
	if err := decodeJSON(r, &values); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Lỗi khi cập nhật nội dung")
		return
	}

	// Deterministic write order keeps the upserts stable under retries.
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	now := time.Now()
	for _, key := range keys {
		value := values[key]
		if value != nil {
			clean := h.sanitize.Sanitize(*value)
			value = &clean
		}
		if _, err := h.queries.UpsertContent(r.Context(), store.UpsertContentParams{
			Section:      section,
			ContentKey:   key,
			ContentValue: value,
			ContentType:  h.contentType(r, section, key),
			UpdatedAt:    now,
		}); err != nil {
			slog.Error("content: upsert failed", "section", section, "key", key, "error", err)
			writeJSONError(w, http.StatusInternalServerError, "Lỗi khi cập nhật nội dung")
			return
		}
	}
	writeJSONSuccess(w, map[string]any{"message": "Đã cập nhật nội dung thành công"})
}

// contentType keeps the stored type of an existing key; new keys default
// to text unless the key names an image slot.
func (h *ContentHandler) contentType(r *http.Request, section, key string) string {
	existing, err := h.queries.GetContent(r.Context(), section, key)
	if err == nil {
		return existing.ContentType
	}
	if !errors.Is(err, sql.ErrNoRows) {
		slog.Warn("content: type lookup failed", "section", section, "key", key, "error", err)
	}
	if strings.Contains(key, "image") || strings.Contains(key, "logo") {
		return model.ContentTypeImage
	}
	return model.ContentTypeText
}
