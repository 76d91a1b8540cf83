// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"database/sql"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/nailroom/nailroom-go/internal/handler"
	"github.com/nailroom/nailroom-go/internal/middleware"
	"github.com/nailroom/nailroom-go/internal/store"
)

// registerRoutes wires the full API surface: public reads and form
// submissions, session-backed auth, and the admin-gated write side.
func registerRoutes(r chi.Router, db *sql.DB, sm *scs.SessionManager, formLimiter *middleware.PublicFormLimiter) {
	queries := store.New(db)

	adminGate := middleware.RequireAdmin(sm, db)
	isAdmin := middleware.IsAdmin(sm, db)

	authHandler := handler.NewAuthHandler(db, sm)
	contentHandler := handler.NewContentHandler(db)
	registrationHandler := handler.NewRegistrationHandler(db)
	appointmentHandler := handler.NewAppointmentHandler(db)
	customerHandler := handler.NewCustomerHandler(db)
	pageHandler := handler.NewPageHandler(db)
	eventHandler := handler.NewEventHandler(db)

	r.Route("/api", func(api chi.Router) {
		// Session auth
		api.Post("/register", authHandler.Register)
		api.Post("/login", authHandler.Login)
		api.Post("/logout", authHandler.Logout)
		api.Get("/profile", authHandler.Profile)
		api.Get("/auth-status", authHandler.AuthStatus)

		// Catalog entities: public list, admin writes
		mountResource(api, "/services", handler.NewServiceResource(queries), adminGate, isAdmin)
		mountResource(api, "/menu", handler.NewMenuResource(queries), adminGate, isAdmin)
		mountResource(api, "/sliders", handler.NewSliderResource(queries), adminGate, isAdmin)
		mountResource(api, "/gallery", handler.NewGalleryResource(queries), adminGate, isAdmin)
		mountResource(api, "/celebrities", handler.NewCelebrityResource(queries), adminGate, isAdmin)
		mountResource(api, "/testimonials", handler.NewTestimonialResource(queries), adminGate, isAdmin)
		mountResource(api, "/stores", handler.NewStoreResource(queries), adminGate, isAdmin)

		// Keyed website content
		api.Get("/content/{section}", contentHandler.GetSection)
		api.With(adminGate).Post("/content/{section}", contentHandler.UpdateSection)

		// Contact-form registrations
		api.With(formLimiter.Middleware()).Post("/registrations", registrationHandler.Submit)
		api.Group(func(admin chi.Router) {
			admin.Use(adminGate)
			admin.Get("/registrations", registrationHandler.List)
			admin.Get("/registrations/export", registrationHandler.Export)
			admin.Put("/registrations/{id}", registrationHandler.UpdateStatus)
			admin.Delete("/registrations/{id}", registrationHandler.Delete)
		})

		// Booking appointments
		api.With(formLimiter.Middleware()).Post("/appointments", appointmentHandler.Book)

		// Page builder: public reads, admin writes
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

		// Admin-only surface
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

// mountResource attaches a CRUD resource under its base path.
func mountResource[T any](api chi.Router, base string, res *handler.Resource[T],
	adminGate func(http.Handler) http.Handler, isAdmin func(*http.Request) bool) {
	api.Route(base, func(rr chi.Router) {
		res.Mount(rr, adminGate, isAdmin)
	})
}
