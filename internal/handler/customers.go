// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/nailroom/nailroom-go/internal/auth"
	"github.com/nailroom/nailroom-go/internal/model"
	"github.com/nailroom/nailroom-go/internal/store"
)

// CustomerHandler manages user accounts from the admin panel and serves
// the dashboard stat counters. Password hashes never leave the store
// layer; responses carry the public user view only.
type CustomerHandler struct {
	queries *store.Queries
}

func NewCustomerHandler(db *sql.DB) *CustomerHandler {
	return &CustomerHandler{queries: store.New(db)}
}

// List handles GET /api/admin/customers.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.queries.ListUsers(r.Context())
	if err != nil {
		slog.Error("customers: list failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, msgServerError)
		return
	}
	views := make([]model.PublicView, 0, len(users))
	for _, u := range users {
		views = append(views, u.Public())
	}
	writeJSONSuccess(w, map[string]any{"customers": views})
}

// Get handles GET /api/admin/customers/{id}.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Không tìm thấy khách hàng")
		return
	}
	user, err := h.queries.GetUserByID(r.Context(), id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		writeJSONError(w, http.StatusNotFound, "Không tìm thấy khách hàng")
	case err != nil:
		slog.Error("customers: get failed", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, msgServerError)
	default:
		writeJSONSuccess(w, map[string]any{"customer": user.Public()})
	}
}

type customerCreateRequest struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Role     string  `json:"role"`
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
}

// Create handles POST /api/admin/customers. Same validation path as the
// public register endpoint, but the admin picks the role.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req customerCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Vui lòng điền đầy đủ thông tin bắt buộc")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeJSONError(w, http.StatusBadRequest, "Vui lòng điền đầy đủ thông tin bắt buộc")
		return
	}
	if req.Role == "" {
		req.Role = model.RoleUser
	}
	if req.Role != model.RoleAdmin && req.Role != model.RoleUser {
		writeJSONError(w, http.StatusBadRequest, "Vui lòng điền đầy đủ thông tin bắt buộc")
		return
	}

	n, err := h.queries.CountUsersByUsernameOrEmail(r.Context(), req.Username, req.Email)
	if err != nil {
		slog.Error("customers: uniqueness check failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, msgServerError)
		return
	}
	if n > 0 {
		writeJSONError(w, http.StatusBadRequest, "Tên đăng nhập hoặc email đã tồn tại")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("customers: hash failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	user, err := h.queries.CreateUser(r.Context(), store.CreateUserParams{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		FullName:     req.FullName,
		Phone:        req.Phone,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		// UNIQUE constraint is the backstop for concurrent creates.
		writeJSONError(w, http.StatusBadRequest, "Tên đăng nhập hoặc email đã tồn tại")
		return
	}
	writeJSONSuccess(w, map[string]any{
		"message":  "Đã thêm khách hàng thành công",
		"customer": user.Public(),
	})
}

type customerUpdateRequest struct {
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
}

// Update handles PUT /api/admin/customers/{id}. Username and password
// are immutable here.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Không tìm thấy khách hàng")
		return
	}
	var req customerUpdateRequest
	if err := decodeJSON(r, &req); err != nil || req.Email == "" {
		writeJSONError(w, http.StatusBadRequest, "Vui lòng điền đầy đủ thông tin bắt buộc")
		return
	}
	if req.Role == "" {
		req.Role = model.RoleUser
	}
	if req.Role != model.RoleAdmin && req.Role != model.RoleUser {
		writeJSONError(w, http.StatusBadRequest, "Vui lòng điền đầy đủ thông tin bắt buộc")
		return
	}

	user, err := h.queries.UpdateUser(r.Context(), store.UpdateUserParams{
		ID:       id,
		Email:    req.Email,
		Role:     req.Role,
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		writeJSONError(w, http.StatusNotFound, "Không tìm thấy khách hàng")
	case err != nil:
		slog.Error("customers: update failed", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, msgServerError)
	default:
		writeJSONSuccess(w, map[string]any{
			"message":  "Đã cập nhật khách hàng thành công",
			"customer": user.Public(),
		})
	}
}

// Delete handles DELETE /api/admin/customers/{id}.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Không tìm thấy khách hàng")
		return
	}
	if err := h.queries.DeleteUser(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusNotFound, "Không tìm thấy khách hàng")
			return
		}
		slog.Error("customers: delete failed", "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, msgServerError)
		return
	}
	writeJSONSuccess(w, map[string]any{"message": "Đã xóa khách hàng thành công"})
}

// StatsCustomers handles GET /api/admin/stats/customers.
func (h *CustomerHandler) StatsCustomers(w http.ResponseWriter, r *http.Request) {
	total, err := h.queries.CountUsersByRole(r.Context(), model.RoleUser)
	if err != nil {
		slog.Error("stats: customer count failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, msgServerError)
		return
	}
	writeJSONSuccess(w, map[string]any{"total": total})
}

// StatsRevenue handles GET /api/admin/stats/revenue. Revenue is the sum
// of service prices over appointments marked done.
func (h *CustomerHandler) StatsRevenue(w http.ResponseWriter, r *http.Request) {
	total, err := h.queries.SumDoneAppointmentRevenue(r.Context())
	if err != nil {
		slog.Error("stats: revenue failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, msgServerError)
		return
	}
	writeJSONSuccess(w, map[string]any{"total": total})
}

// StatsAppointments handles GET /api/admin/stats/appointments and
// reports today's bookings.
func (h *CustomerHandler) StatsAppointments(w http.ResponseWriter, r *http.Request) {
	today := time.Now().Format("2006-01-02")
	appts, err := h.queries.ListAppointments(r.Context(), store.AppointmentFilter{Date: today})
	if err != nil {
		slog.Error("stats: appointment count failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, msgServerError)
		return
	}
	writeJSONSuccess(w, map[string]any{"today": len(appts)})
}

// StatsServices handles GET /api/admin/stats/services.
func (h *CustomerHandler) StatsServices(w http.ResponseWriter, r *http.Request) {
	total, err := h.queries.CountServices(r.Context())
	if err != nil {
		slog.Error("stats: service count failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, msgServerError)
		return
	}
	writeJSONSuccess(w, map[string]any{"total": total})
}
