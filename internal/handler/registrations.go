// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/nailroom/nailroom-go/internal/model"
	"github.com/nailroom/nailroom-go/internal/store"
)

// Valid intake statuses for registrations and appointments.
var intakeStatuses = map[string]bool{
	model.StatusPending:   true,
	model.StatusConfirmed: true,
	model.StatusDone:      true,
	model.StatusCancelled: true,
}

// RegistrationHandler serves the public contact form and its admin-side
// management, including CSV export.
type RegistrationHandler struct {
	queries *store.Queries
}

func NewRegistrationHandler(db *sql.DB) *RegistrationHandler {
	return &RegistrationHandler{queries: store.New(db)}
}

type registrationRequest struct {
	FullName        string  `json:"full_name"`
	Phone           string  `json:"phone"`
	Email           *string `json:"email"`
	ServiceInterest *string `json:"service_interest"`
	Message         *string `json:"message"`
}

// Submit handles POST /api/registrations, the public contact form.
func (h *RegistrationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req registrationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Vui lòng điền họ tên và số điện thoại")
		return
	}
	if req.FullName == "" || req.Phone == "" {
		writeJSONError(w, http.StatusBadRequest, "Vui lòng điền họ tên và số điện thoại")
		return
	}

	reg, err := h.queries.CreateRegistration(r.Context(), store.CreateRegistrationParams{
		FullName:        req.FullName,
		Phone:           req.Phone,
		Email:           req.Email,
		ServiceInterest: req.ServiceInterest,
		Message:         req.Message,
		CreatedAt:       time.Now(),
	})
	if err != nil {
		slog.Error("registration: create failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Lỗi khi gửi thông tin đăng ký")
		return
	}
	writeJSONSuccess(w, map[string]any{
		"message":      "Đã gửi thông tin đăng ký thành công",
		"registration": reg,
	})
}

// List handles GET /api/registrations with optional ?date= and ?service=
// filters. Admin only.
func (h *RegistrationHandler) List(w http.ResponseWriter, r *http.Request) {
	regs, err := h.queries.ListRegistrations(r.Context(), store.RegistrationFilter{
		Date:    r.URL.Query().Get("date"),
		Service: r.URL.Query().Get("service"),
	})
	if err != nil {
		slog.Error("registration: list failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Lỗi khi lấy danh sách đăng ký")
		return
	}
	writeJSONSuccess(w, map[string]any{"registrations": regs})
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PUT /api/registrations/{id}. Only the status
// column changes; anything outside the known status set is rejected.
func (h *RegistrationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Không tìm thấy đăng ký")
		return
	}
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil || !intakeStatuses[req.Status] {
		writeJSONError(w, http.StatusBadRequest, "Lỗi khi cập nhật trạng thái")
		return
	}

	reg, err := h.queries.UpdateRegistrationStatus(r.Context(), id, req.Status, time.Now())
	switch {
	case errors.Is(err, sql.ErrNoRows):
		writeJSONError(w, http.StatusNotFound, "Không tìm thấy đăng ký")
	case err != nil:
		slog.Error("registration: status update failed", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Lỗi khi cập nhật trạng thái")
	default:
		writeJSONSuccess(w, map[string]any{
			"message":      "Đã cập nhật trạng thái thành công",
			"registration": reg,
		})
	}
}

// Delete handles DELETE /api/registrations/{id}.
func (h *RegistrationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Không tìm thấy đăng ký")
		return
	}
	if err := h.queries.DeleteRegistration(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusNotFound, "Không tìm thấy đăng ký")
			return
		}
		slog.Error("registration: delete failed", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Lỗi khi xóa đăng ký")
		return
	}
	writeJSONSuccess(w, map[string]any{"message": "Đã xóa đăng ký thành công"})
}

var exportHeader = []string{
	"ID", "Họ tên", "Số điện thoại", "Email",
	"Dịch vụ quan tâm", "Tin nhắn", "Trạng thái", "Ngày đăng ký",
}

// Export handles GET /api/registrations/export. With ?format=csv it
// streams a UTF-8 CSV prefixed with a BOM so spreadsheet apps pick up
// the Vietnamese headers; any other format returns the rows as JSON.
func (h *RegistrationHandler) Export(w http.ResponseWriter, r *http.Request) {
	regs, err := h.queries.ListRegistrations(r.Context(), store.RegistrationFilter{
		Date:    r.URL.Query().Get("date"),
		Service: r.URL.Query().Get("service"),
	})
	if err != nil {
		slog.Error("registration: export failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Lỗi khi xuất dữ liệu")
		return
	}

	if r.URL.Query().Get("format") != "csv" {
		writeJSONSuccess(w, map[string]any{"data": regs})
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=registrations_%s.csv", time.Now().Format("2006-01-02")))
	// BOM keeps Excel from misreading the encoding.
	if _, err := w.Write([]byte("\uFEFF")); err != nil {
		return
	}

	cw := csv.NewWriter(w)
	_ = cw.Write(exportHeader)
	for _, reg := range regs {
		_ = cw.Write([]string{
			strconv.FormatInt(reg.ID, 10),
			reg.FullName,
			reg.Phone,
			strOrEmpty(reg.Email),
			strOrEmpty(reg.ServiceInterest),
			strOrEmpty(reg.Message),
			reg.Status,
			reg.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.Error("registration: csv write failed", "error", err)
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
