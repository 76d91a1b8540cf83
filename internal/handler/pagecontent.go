// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/nailroom/nailroom-go/internal/store"
)

// PageHandler serves the database-backed page builder: pages own ordered
// sections, sections own labelled content items. Reads are public so the
// site can render from it; writes are admin only.
type PageHandler struct {
	queries *store.Queries
}

func NewPageHandler(db *sql.DB) *PageHandler {
	return &PageHandler{queries: store.New(db)}
}

// ListPages handles GET /api/pages.
func (h *PageHandler) ListPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.queries.ListPages(r.Context())
	if err != nil {
		slog.Error("pages: list failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Lỗi khi lấy danh sách trang")
		return
	}
	writeJSONSuccess(w, map[string]any{"pages": pages})
}

// GetPage handles GET /api/pages/{id}. The response includes the page's
// sections in display order.
func (h *PageHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Không tìm thấy trang")
		return
	}
	page, err := h.queries.GetPageByID(r.Context(), id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		writeJSONError(w, http.StatusNotFound, "Không tìm thấy trang")
		return
	case err != nil:
		slog.Error("pages: get failed", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Lỗi khi lấy nội dung trang")
		return
	}
	sections, err := h.queries.ListSectionsByPage(r.Context(), id)
	if err != nil {
		slog.Error("pages: sections failed", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Lỗi khi lấy nội dung trang")
		return
	}
	writeJSONSuccess(w, map[string]any{"page": page, "sections": sections})
}

type pageRequest struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// UpdatePage handles PUT /api/pages/{id}.
func (h *PageHandler) UpdatePage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Không tìm thấy trang")
		return
	}
	var req pageRequest
	if err := decodeJSON(r, &req); err != nil || req.Name == "" || req.Title == "" {
		writeJSONError(w, http.StatusBadRequest, "Vui lòng điền tên và tiêu đề trang")
		return
	}

	page, err := h.queries.UpdatePage(r.Context(), store.UpdatePageParams{
		ID:        id,
		Name:      req.Name,
		Title:     req.Title,
		UpdatedAt: time.Now(),
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		writeJSONError(w, http.StatusNotFound, "Không tìm thấy trang")
	case err != nil:
		slog.Error("pages: update failed", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Lỗi khi cập nhật trang")
	default:
		writeJSONSuccess(w, map[string]any{
			"message": "Đã cập nhật trang thành công",
			"page":    page,
		})
	}
}

// ListSections handles GET /api/pages/{id}/sections.
func (h *PageHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Không tìm thấy trang")
		return
	}
	sections, err := h.queries.ListSectionsByPage(r.Context(), id)
	if err != nil {
		slog.Error("sections: list failed", "page_id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Lỗi khi lấy danh sách section")
		return
	}
	writeJSONSuccess(w, map[string]any{"sections": sections})
}

type sectionRequest struct {
	Heading  *string `json:"heading"`
	Body     *string `json:"body"`
	Position int64   `json:"position"`
}

// CreateSection handles POST /api/pages/{id}/sections.
func (h *PageHandler) CreateSection(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Không tìm thấy trang")
		return
	}
	if _, err := h.queries.GetPageByID(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusNotFound, "Không tìm thấy trang")
			return
		}
		slog.Error("sections: page lookup failed", "page_id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Lỗi khi thêm section")
		return
	}
	var req sectionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Lỗi khi thêm section")
		return
	}

	section, err := h.queries.CreateSection(r.Context(), store.CreateSectionParams{
		PageID:    id,
		Heading:   req.Heading,
		Body:      req.Body,
		Position:  req.Position,
		CreatedAt: time.Now(),
	})
	if err != nil {
		slog.Error("sections: create failed", "page_id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Lỗi khi thêm section")
		return
	}
	writeJSONSuccess(w, map[string]any{
		"message": "Đã thêm section thành công",
		"section": section,
	})
}

// UpdateSection handles PUT /api/sections/{id}.
func (h *PageHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Không tìm thấy section")
		return
	}
	var req sectionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Lỗi khi cập nhật section")
		return
	}

	section, err := h.queries.UpdateSection(r.Context(), store.UpdateSectionParams{
		ID:        id,
		Heading:   req.Heading,
		Body:      req.Body,
		Position:  req.Position,
		UpdatedAt: time.Now(),
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		writeJSONError(w, http.StatusNotFound, "Không tìm thấy section")
	case err != nil:
		slog.Error("sections: update failed", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Lỗi khi cập nhật section")
	default:
		writeJSONSuccess(w, map[string]any{
			"message": "Đã cập nhật section thành công",
			"section": section,
		})
	}
}

// DeleteSection handles DELETE /api/sections/{id}. Content items under
// the section go with it.
func (h *PageHandler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Không tìm thấy section")
		return
	}
	if err := h.queries.DeleteSection(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusNotFound, "Không tìm thấy section")
			return
		}
		slog.Error("sections: delete failed", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Lỗi khi xóa section")
		return
	}
	writeJSONSuccess(w, map[string]any{"message": "Đã xóa section thành công"})
}

// ListContentItems handles GET /api/sections/{id}/content.
func (h *PageHandler) ListContentItems(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Không tìm thấy section")
		return
	}
	items, err := h.queries.ListContentItemsBySection(r.Context(), id)
	if err != nil {
		slog.Error("content items: list failed", "section_id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Lỗi khi lấy nội dung")
		return
	}
	writeJSONSuccess(w, map[string]any{"content": items})
}

type contentItemRequest struct {
	Label    string  `json:"label"`
	Value    *string `json:"value"`
	Position int64   `json:"position"`
}

// CreateContentItem handles POST /api/sections/{id}/content.
func (h *PageHandler) CreateContentItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Không tìm thấy section")
		return
	}
	if _, err := h.queries.GetSectionByID(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusNotFound, "Không tìm thấy section")
			return
		}
		slog.Error("content items: section lookup failed", "section_id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Lỗi khi thêm nội dung")
		return
	}
	var req contentItemRequest
	if err := decodeJSON(r, &req); err != nil || req.Label == "" {
		writeJSONError(w, http.StatusBadRequest, "Vui lòng điền nhãn nội dung")
		return
	}

	item, err := h.queries.CreateContentItem(r.Context(), store.CreateContentItemParams{
		SectionID: id,
		Label:     req.Label,
		Value:     req.Value,
		Position:  req.Position,
		CreatedAt: time.Now(),
	})
	if err != nil {
		slog.Error("content items: create failed", "section_id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Lỗi khi thêm nội dung")
		return
	}
	writeJSONSuccess(w, map[string]any{
		"message": "Đã thêm nội dung thành công",
		"item":    item,
	})
}

// UpdateContentItem handles PUT /api/content-items/{id}.
func (h *PageHandler) UpdateContentItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Không tìm thấy nội dung")
		return
	}
	var req contentItemRequest
	if err := decodeJSON(r, &req); err != nil || req.Label == "" {
		writeJSONError(w, http.StatusBadRequest, "Vui lòng điền nhãn nội dung")
		return
	}

	item, err := h.queries.UpdateContentItem(r.Context(), store.UpdateContentItemParams{
		ID:        id,
		Label:     req.Label,
		Value:     req.Value,
		Position:  req.Position,
		UpdatedAt: time.Now(),
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		writeJSONError(w, http.StatusNotFound, "Không tìm thấy nội dung")
	case err != nil:
		slog.Error("content items: update failed", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Lỗi khi cập nhật nội dung")
	default:
		writeJSONSuccess(w, map[string]any{
			"message": "Đã cập nhật nội dung thành công",
			"item":    item,
		})
	}
}

// DeleteContentItem handles DELETE /api/content-items/{id}.
func (h *PageHandler) DeleteContentItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Không tìm thấy nội dung")
		return
	}
	if err := h.queries.DeleteContentItem(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusNotFound, "Không tìm thấy nội dung")
			return
		}
		slog.Error("content items: delete failed", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Lỗi khi xóa nội dung")
		return
	}
	writeJSONSuccess(w, map[string]any{"message": "Đã xóa nội dung thành công"})
}
