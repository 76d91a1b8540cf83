// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/nailroom/nailroom-go/internal/auth"
	"github.com/nailroom/nailroom-go/internal/model"
	"github.com/nailroom/nailroom-go/internal/session"
	"github.com/nailroom/nailroom-go/internal/store"
)

// AuthHandler serves registration, login and session inspection.
type AuthHandler struct {
	queries *store.Queries
	sm      *scs.SessionManager
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(db *sql.DB, sm *scs.SessionManager) *AuthHandler {
	return &AuthHandler{queries: store.New(db), sm: sm}
}

// openSession records the logged-in user in the session, renewing the
// token to prevent session fixation.
func (h *AuthHandler) openSession(r *http.Request, user model.User) error {
	if err := h.sm.RenewToken(r.Context()); err != nil {
		return err
	}
	h.sm.Put(r.Context(), session.KeyUserID, user.ID)
	h.sm.Put(r.Context(), session.KeyUsername, user.Username)
	h.sm.Put(r.Context(), session.KeyRole, user.Role)
	return nil
}

type registerRequest struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
}

// Register handles POST /api/register. New accounts always get the user
// role; admins are created through the admin customers API.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Vui lòng điền đầy đủ thông tin bắt buộc")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeJSONError(w, http.StatusBadRequest, "Vui lòng điền đầy đủ thông tin bắt buộc")
		return
	}

	taken, err := h.queries.CountUsersByUsernameOrEmail(r.Context(), req.Username, req.Email)
	if err != nil {
		slog.Error("register: checking existing user", "error", err)
		writeJSONError(w, http.StatusInternalServerError, msgServerError)
		return
	}
	if taken > 0 {
		writeJSONError(w, http.StatusBadRequest, "Tên đăng nhập hoặc email đã tồn tại")
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("register: hashing password", "error", err)
		writeJSONError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	user, err := h.queries.CreateUser(r.Context(), store.CreateUserParams{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         model.RoleUser,
		FullName:     req.FullName,
		Phone:        req.Phone,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		// The uniqueness check above races with concurrent registrations;
		// the UNIQUE constraints are the backstop.
		writeJSONError(w, http.StatusBadRequest, "Tên đăng nhập hoặc email đã tồn tại")
		return
	}

	if err := h.openSession(r, user); err != nil {
		slog.Error("register: opening session", "error", err)
		writeJSONError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	writeJSONSuccess(w, map[string]any{
		"message": "Đăng ký thành công",
		"user":    user.Public(),
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/login. Unknown users and wrong passwords get the
// same message so usernames cannot be probed.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Vui lòng nhập tên đăng nhập và mật khẩu")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeJSONError(w, http.StatusBadRequest, "Vui lòng nhập tên đăng nhập và mật khẩu")
		return
	}

	user, err := h.queries.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("login: loading user", "error", err)
			writeJSONError(w, http.StatusInternalServerError, msgServerError)
			return
		}
		writeJSONError(w, http.StatusUnauthorized, "Tên đăng nhập hoặc mật khẩu không đúng")
		return
	}

	ok, err := auth.CheckPassword(req.Password, user.PasswordHash)
	if err != nil || !ok {
		writeJSONError(w, http.StatusUnauthorized, "Tên đăng nhập hoặc mật khẩu không đúng")
		return
	}

	// Upgrade hashes written with older parameters.
	if auth.NeedsRehash(user.PasswordHash) {
		if newHash, err := auth.HashPassword(req.Password); err == nil {
			if err := h.queries.UpdateUserPassword(r.Context(), user.ID, newHash); err != nil {
				slog.Warn("login: rehashing password", "error", err, "user_id", user.ID)
			}
		}
	}

	if err := h.openSession(r, user); err != nil {
		slog.Error("login: opening session", "error", err)
		writeJSONError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	writeJSONSuccess(w, map[string]any{
		"message": "Đăng nhập thành công",
		"user":    user.Public(),
	})
}

// Logout handles POST /api/logout. Destroying an absent session is fine, so
// logout is idempotent.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sm.Destroy(r.Context()); err != nil {
		slog.Error("logout: destroying session", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Lỗi khi đăng xuất")
		return
	}
	writeJSONSuccess(w, map[string]any{
		"message": "Đăng xuất thành công",
	})
}

// Profile handles GET /api/profile, returning the identity stored in the
// session without a database round trip.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID := h.sm.GetInt64(r.Context(), session.KeyUserID)
	if userID == 0 {
		writeJSONError(w, http.StatusUnauthorized, "Chưa đăng nhập")
		return
	}

	writeJSONSuccess(w, map[string]any{
		"user": map[string]any{
			"id":       userID,
			"username": h.sm.GetString(r.Context(), session.KeyUsername),
			"role":     h.sm.GetString(r.Context(), session.KeyRole),
		},
	})
}

// AuthStatus handles GET /api/auth-status. The user row is re-fetched so
// role changes apply without re-login; a vanished row clears the session.
func (h *AuthHandler) AuthStatus(w http.ResponseWriter, r *http.Request) {
	userID := h.sm.GetInt64(r.Context(), session.KeyUserID)
	if userID == 0 {
		writeJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	user, err := h.queries.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			_ = h.sm.Destroy(r.Context())
			writeJSON(w, http.StatusOK, map[string]any{"authenticated": false})
			return
		}
		slog.Error("auth-status: loading user", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"authenticated": false,
			"error":         "Server error",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user":          user.Public(),
	})
}
