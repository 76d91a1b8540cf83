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

// AppointmentHandler serves the public booking form and the admin
// appointment list.
type AppointmentHandler struct {
	queries *store.Queries
}

func NewAppointmentHandler(db *sql.DB) *AppointmentHandler {
	return &AppointmentHandler{queries: store.New(db)}
}

type appointmentRequest struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Email   *string `json:"email"`
	Service string  `json:"service"`
	Date    string  `json:"date"`
	Time    string  `json:"time"`
	Notes   *string `json:"notes"`
}

// Book handles POST /api/appointments, the public booking form.
func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req appointmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Vui lòng điền đầy đủ thông tin đặt lịch")
		return
	}
	if req.Name == "" || req.Phone == "" || req.Service == "" || req.Date == "" || req.Time == "" {
		writeJSONError(w, http.StatusBadRequest, "Vui lòng điền đầy đủ thông tin đặt lịch")
		return
	}

	appt, err := h.queries.CreateAppointment(r.Context(), store.CreateAppointmentParams{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Service:   req.Service,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
		CreatedAt: time.Now(),
	})
	if err != nil {
		slog.Error("appointment: create failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Lỗi khi đặt lịch")
		return
	}
	writeJSONSuccess(w, map[string]any{
		"message":     "Đã đặt lịch thành công",
		"appointment": appt,
	})
}

// List handles GET /api/admin/appointments with optional ?date= and
// ?status= filters.
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	appts, err := h.queries.ListAppointments(r.Context(), store.AppointmentFilter{
		Date:   r.URL.Query().Get("date"),
		Status: r.URL.Query().Get("status"),
	})
	if err != nil {
		slog.Error("appointment: list failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Lỗi khi lấy danh sách đặt lịch")
		return
	}
	writeJSONSuccess(w, map[string]any{"appointments": appts})
}

// UpdateStatus handles PUT /api/admin/appointments/{id} with a {status}
// body.
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Không tìm thấy lịch hẹn")
		return
	}
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil || !intakeStatuses[req.Status] {
		writeJSONError(w, http.StatusBadRequest, "Lỗi khi cập nhật trạng thái")
		return
	}

	appt, err := h.queries.UpdateAppointmentStatus(r.Context(), id, req.Status)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		writeJSONError(w, http.StatusNotFound, "Không tìm thấy lịch hẹn")
	case err != nil:
		slog.Error("appointment: status update failed", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Lỗi khi cập nhật trạng thái")
	default:
		writeJSONSuccess(w, map[string]any{
			"message":     "Đã cập nhật trạng thái thành công",
			"appointment": appt,
		})
	}
}

// Delete handles DELETE /api/admin/appointments/{id}.
func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Không tìm thấy lịch hẹn")
		return
	}
	if err := h.queries.DeleteAppointment(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusNotFound, "Không tìm thấy lịch hẹn")
			return
		}
		slog.Error("appointment: delete failed", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Lỗi khi xóa lịch hẹn")
		return
	}
	writeJSONSuccess(w, map[string]any{"message": "Đã xóa lịch hẹn thành công"})
}
