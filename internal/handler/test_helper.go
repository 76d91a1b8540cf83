// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	_ "modernc.org/sqlite"

	"github.com/nailroom/nailroom-go/internal/auth"
	"github.com/nailroom/nailroom-go/internal/middleware"
	"github.com/nailroom/nailroom-go/internal/model"
	"github.com/nailroom/nailroom-go/internal/session"
	"github.com/nailroom/nailroom-go/internal/store"
)

// testDB creates an in-memory SQLite database with the full schema.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	// The pool must stay on one connection or :memory: forks the schema.
	db.SetMaxOpenConns(1)

	// Match production config (store.NewDBWithConfig) so ON DELETE CASCADE fires.
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		t.Fatalf("enabling foreign keys: %v", err)
	}

	if err := store.Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// testApp runs the API surface against an in-memory database, with a
// cookie jar so session state carries across requests.
type testApp struct {
	db      *sql.DB
	queries *store.Queries
	sm      *scs.SessionManager
	server  *httptest.Server
	client  *http.Client
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db := testDB(t)
	sm := session.New(db, true)

	r := chi.NewRouter()
	r.Use(sm.LoadAndSave)
	registerTestRoutes(r, db, sm)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}

	return &testApp{
		db:      db,
		queries: store.New(db),
		sm:      sm,
		server:  server,
		client:  &http.Client{Jar: jar},
	}
}

// registerTestRoutes mirrors the production route table.
func registerTestRoutes(r chi.Router, db *sql.DB, sm *scs.SessionManager) {
	queries := store.New(db)
	adminGate := middleware.RequireAdmin(sm, db)
	isAdmin := middleware.IsAdmin(sm, db)

	authHandler := NewAuthHandler(db, sm)
	contentHandler := NewContentHandler(db)
	registrationHandler := NewRegistrationHandler(db)
	appointmentHandler := NewAppointmentHandler(db)
	customerHandler := NewCustomerHandler(db)
	pageHandler := NewPageHandler(db)
	eventHandler := NewEventHandler(db)

	r.Route("/api", func(api chi.Router) {
		api.Post("/register", authHandler.Register)
		api.Post("/login", authHandler.Login)
		api.Post("/logout", authHandler.Logout)
		api.Get("/profile", authHandler.Profile)
		api.Get("/auth-status", authHandler.AuthStatus)

		api.Route("/services", func(rr chi.Router) {
			NewServiceResource(queries).Mount(rr, adminGate, isAdmin)
		})
		api.Route("/menu", func(rr chi.Router) {
			NewMenuResource(queries).Mount(rr, adminGate, isAdmin)
		})
		api.Route("/gallery", func(rr chi.Router) {
			NewGalleryResource(queries).Mount(rr, adminGate, isAdmin)
		})
		api.Route("/testimonials", func(rr chi.Router) {
			NewTestimonialResource(queries).Mount(rr, adminGate, isAdmin)
		})

		api.Get("/content/{section}", contentHandler.GetSection)
		api.With(adminGate).Post("/content/{section}", contentHandler.UpdateSection)

		api.Post("/registrations", registrationHandler.Submit)
		api.Group(func(admin chi.Router) {
			admin.Use(adminGate)
			admin.Get("/registrations", registrationHandler.List)
			admin.Get("/registrations/export", registrationHandler.Export)
			admin.Put("/registrations/{id}", registrationHandler.UpdateStatus)
			admin.Delete("/registrations/{id}", registrationHandler.Delete)
		})

		api.Post("/appointments", appointmentHandler.Book)

		api.Get("/pages", pageHandler.ListPages)
		api.Get("/pages/{id}", pageHandler.GetPage)
		api.Get("/pages/{id}/sections", pageHandler.ListSections)
		api.Get("/sections/{id}/content", pageHandler.ListContentItems)
		api.Group(func(admin chi.Router) {
			admin.Use(adminGate)
			admin.Put("/pages/{id}", pageHandler.UpdatePage)
			admin.Post("/pages/{id}/sections", pageHandler.CreateSection)
			admin.Put("/sections/{id}", pageHandler.UpdateSection)
			admin.Delete("/sections/{id}", pageHandler.DeleteSection)
			admin.Post("/sections/{id}/content", pageHandler.CreateContentItem)
			admin.Put("/content-items/{id}", pageHandler.UpdateContentItem)
			admin.Delete("/content-items/{id}", pageHandler.DeleteContentItem)
		})

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(adminGate)
			admin.Get("/customers", customerHandler.List)
			admin.Post("/customers", customerHandler.Create)
			admin.Get("/customers/{id}", customerHandler.Get)
			admin.Put("/customers/{id}", customerHandler.Update)
			admin.Delete("/customers/{id}", customerHandler.Delete)
			admin.Get("/stats/customers", customerHandler.StatsCustomers)
			admin.Get("/stats/revenue", customerHandler.StatsRevenue)
			admin.Get("/stats/appointments", customerHandler.StatsAppointments)
			admin.Get("/stats/services", customerHandler.StatsServices)
			admin.Get("/appointments", appointmentHandler.List)
			admin.Put("/appointments/{id}", appointmentHandler.UpdateStatus)
			admin.Delete("/appointments/{id}", appointmentHandler.Delete)
			admin.Get("/events", eventHandler.List)
		})
	})
}

// abs builds an id-addressed path like /api/services/3.
func abs(prefix string, id int64) string {
	return prefix + strconv.FormatInt(id, 10)
}

// request sends a JSON request through the test server and decodes the
// response envelope. Raw body bytes come back for non-JSON responses.
func (app *testApp) request(t *testing.T, method, path string, body any) (int, map[string]any, []byte) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, app.server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading response: %v", err)
	}

	var envelope map[string]any
	_ = json.Unmarshal(raw, &envelope)
	return resp.StatusCode, envelope, raw
}

// createAdmin inserts an admin account directly into the store.
func (app *testApp) createAdmin(t *testing.T, username, password string) model.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	user, err := app.queries.CreateUser(context.Background(), store.CreateUserParams{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		t.Fatalf("creating admin: %v", err)
	}
	return user
}

// loginAsAdmin creates an admin account and opens a session for it.
func (app *testApp) loginAsAdmin(t *testing.T) model.User {
	t.Helper()

	user := app.createAdmin(t, "admin", "admin123")
	status, _, _ := app.request(t, http.MethodPost, "/api/login", map[string]any{
		"username": "admin",
		"password": "admin123",
	})
	if status != http.StatusOK {
		t.Fatalf("admin login returned %d", status)
	}
	return user
}
