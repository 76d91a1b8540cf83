// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication,
// authorization, and request rate limiting.
package middleware

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/nailroom/nailroom-go/internal/model"
	"github.com/nailroom/nailroom-go/internal/session"
	"github.com/nailroom/nailroom-go/internal/store"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyUser is the context key holding the authenticated user.
const ContextKeyUser ContextKey = "user"

// writeJSONMessage writes the {success, message} envelope used across the API.
func writeJSONMessage(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
	})
}

// RequireAuth creates middleware that rejects requests without a logged-in
// session.
func RequireAuth(sm *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sm.GetInt64(r.Context(), session.KeyUserID)
			if userID == 0 {
				writeJSONMessage(w, http.StatusUnauthorized, "Chưa đăng nhập")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin creates middleware that loads the session user fresh from the
// database and rejects non-admins. The stored role is authoritative: a role
// cached in the session is never trusted, so demoting or deleting an account
// takes effect on the next request.
func RequireAdmin(sm *scs.SessionManager, db *sql.DB) func(http.Handler) http.Handler {
	queries := store.New(db)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sm.GetInt64(r.Context(), session.KeyUserID)
			if userID == 0 {
				writeJSONMessage(w, http.StatusUnauthorized, "Chưa đăng nhập")
				return
			}

			user, err := queries.GetUserByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					// Account deleted since login, session is stale.
					_ = sm.Destroy(r.Context())
					writeJSONMessage(w, http.StatusUnauthorized, "Chưa đăng nhập")
					return
				}
				slog.Error("failed to load session user", "error", err, "user_id", userID)
				writeJSONMessage(w, http.StatusInternalServerError, "Lỗi máy chủ")
				return
			}

			if !user.IsAdmin() {
				writeJSONMessage(w, http.StatusForbidden, "Không có quyền truy cập")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoadUser creates middleware that loads the current user into the request
// context when a session exists. Requests without a session pass through.
func LoadUser(sm *scs.SessionManager, db *sql.DB) func(http.Handler) http.Handler {
	queries := store.New(db)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sm.GetInt64(r.Context(), session.KeyUserID)
			if userID == 0 {
				next.ServeHTTP(w, r)
				return
			}

			user, err := queries.GetUserByID(r.Context(), userID)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IsAdmin returns a predicate reporting whether the request carries an
// admin session. It uses the same fresh role lookup as RequireAdmin so the
// two can never disagree.
func IsAdmin(sm *scs.SessionManager, db *sql.DB) func(*http.Request) bool {
	queries := store.New(db)
	return func(r *http.Request) bool {
		userID := sm.GetInt64(r.Context(), session.KeyUserID)
		if userID == 0 {
			return false
		}
		user, err := queries.GetUserByID(r.Context(), userID)
		return err == nil && user.IsAdmin()
	}
}

// GetUser retrieves the current user from the request context.
// Returns nil if no user is in context.
func GetUser(r *http.Request) *model.User {
	user, ok := r.Context().Value(ContextKeyUser).(model.User)
	if !ok {
		return nil
	}
	return &user
}
