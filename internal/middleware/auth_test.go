// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/nailroom/nailroom-go/internal/model"
	"github.com/nailroom/nailroom-go/internal/session"
	"github.com/nailroom/nailroom-go/internal/store"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	f, err := os.CreateTemp("", "nailroom-mw-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	_ = f.Close()

	db, err := store.NewDB(dbPath)
	if err != nil {
		_ = os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}
	if err := store.Migrate(db); err != nil {
		_ = db.Close()
		_ = os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
		_ = os.Remove(dbPath)
	})
	return db
}

func createTestUser(t *testing.T, db *sql.DB, username, role string) model.User {
	t.Helper()
	user, err := store.New(db).CreateUser(context.Background(), store.CreateUserParams{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         role,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return user
}

// doSession runs a request through the session manager with userID stored,
// returning the recorder.
func doSession(t *testing.T, sm *scs.SessionManager, handler http.Handler, userID int64) *httptest.ResponseRecorder {
	t.Helper()

	wrapped := sm.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID != 0 {
			sm.Put(r.Context(), session.KeyUserID, userID)
		}
		handler.ServeHTTP(w, r)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	wrapped.ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) (bool, string) {
	t.Helper()
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	return body.Success, body.Message
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_NoSession(t *testing.T) {
	sm := scs.New()
	handler := RequireAuth(sm)(okHandler())

	rec := doSession(t, sm, handler, 0)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	success, message := decodeMessage(t, rec)
	if success {
		t.Error("success = true, want false")
	}
	if message != "Chưa đăng nhập" {
		t.Errorf("message = %q, want %q", message, "Chưa đăng nhập")
	}
}

func TestRequireAuth_WithSession(t *testing.T) {
	sm := scs.New()
	handler := RequireAuth(sm)(okHandler())

	rec := doSession(t, sm, handler, 42)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRequireAdmin_NonAdmin(t *testing.T) {
	db := testDB(t)
	user := createTestUser(t, db, "regular", model.RoleUser)

	sm := scs.New()
	handler := RequireAdmin(sm, db)(okHandler())

	rec := doSession(t, sm, handler, user.ID)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
	_, message := decodeMessage(t, rec)
	if message != "Không có quyền truy cập" {
		t.Errorf("message = %q, want %q", message, "Không có quyền truy cập")
	}
}

func TestRequireAdmin_Admin(t *testing.T) {
	db := testDB(t)
	admin := createTestUser(t, db, "boss", model.RoleAdmin)

	sm := scs.New()
	var seen *model.User
	handler := RequireAdmin(sm, db)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetUser(r)
		w.WriteHeader(http.StatusOK)
	}))

	rec := doSession(t, sm, handler, admin.ID)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if seen == nil || seen.ID != admin.ID {
		t.Errorf("GetUser() = %v, want admin %d", seen, admin.ID)
	}
}

func TestRequireAdmin_DeletedUser(t *testing.T) {
	db := testDB(t)

	sm := scs.New()
	handler := RequireAdmin(sm, db)(okHandler())

	// Session points at a user id that does not exist.
	rec := doSession(t, sm, handler, 9999)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestGetUser(t *testing.T) {
	t.Run("no user in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if user := GetUser(req); user != nil {
			t.Errorf("GetUser() = %v, want nil", user)
		}
	})

	t.Run("user in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		testUser := model.User{
			ID:       123,
			Username: "tester",
			Role:     model.RoleAdmin,
		}
		ctx := context.WithValue(req.Context(), ContextKeyUser, testUser)
		req = req.WithContext(ctx)

		user := GetUser(req)
		if user == nil {
			t.Fatal("GetUser() = nil, want user")
		}
		if user.ID != 123 {
			t.Errorf("GetUser().ID = %d, want 123", user.ID)
		}
		if user.Username != "tester" {
			t.Errorf("GetUser().Username = %q, want %q", user.Username, "tester")
		}
	})
}
