// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// validationError carries a user-facing message for a rejected request body.
type validationError struct {
	message string
}

func (e *validationError) Error() string { return e.message }

// errValidation builds a validation error with the given Vietnamese message.
func errValidation(message string) error {
	return &validationError{message: message}
}

// Messages holds the user-facing strings of one resource. They mirror the
// frontend's expectations, so each entity keeps its own wording.
type Messages struct {
	ListError   string
	CreateOK    string
	CreateError string
	UpdateOK    string
	UpdateError string
	DeleteOK    string
	DeleteError string
	NotFound    string
}

// Resource wires one entity type into the shared CRUD handler. List, Get,
// Create, Update and Delete adapt the store queries; Create and Update
// decode and validate their own request bodies, returning a validationError
// for bad input and sql.ErrNoRows for missing rows.
type Resource[T any] struct {
	// Name identifies the resource in log records.
	Name string
	// ItemKey and ListKey are the envelope keys for one row / many rows.
	ItemKey string
	ListKey string
	Msg     Messages

	List   func(ctx context.Context, includeInactive bool) ([]T, error)
	Get    func(ctx context.Context, id int64) (T, error)
	Create func(ctx context.Context, r *http.Request) (T, error)
	Update func(ctx context.Context, id int64, r *http.Request) (T, error)
	Delete func(ctx context.Context, id int64) error
}

// Mount registers the resource's routes on router. The list endpoint is
// public and serves active rows; `?all=1` includes inactive rows for
// admins (checked via isAdmin, silently ignored otherwise). Everything
// else goes through adminGate.
func (res *Resource[T]) Mount(router chi.Router, adminGate func(http.Handler) http.Handler, isAdmin func(*http.Request) bool) {
	router.Get("/", res.handleList(isAdmin))
	router.Group(func(gr chi.Router) {
		gr.Use(adminGate)
		if res.Get != nil {
			gr.Get("/{id}", res.handleGet)
		}
		gr.Post("/", res.handleCreate)
		if res.Update != nil {
			gr.Put("/{id}", res.handleUpdate)
		}
		gr.Delete("/{id}", res.handleDelete)
	})
}

func (res *Resource[T]) handleList(isAdmin func(*http.Request) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		includeInactive := r.URL.Query().Get("all") == "1" && isAdmin(r)

		items, err := res.List(r.Context(), includeInactive)
		if err != nil {
			slog.Error("listing resource", "resource", res.Name, "error", err)
			writeJSONError(w, http.StatusInternalServerError, res.Msg.ListError)
			return
		}
		writeJSONSuccess(w, map[string]any{res.ListKey: items})
	}
}

func (res *Resource[T]) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, res.Msg.NotFound)
		return
	}

	item, err := res.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusNotFound, res.Msg.NotFound)
			return
		}
		slog.Error("getting resource", "resource", res.Name, "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, res.Msg.ListError)
		return
	}
	writeJSONSuccess(w, map[string]any{res.ItemKey: item})
}

func (res *Resource[T]) handleCreate(w http.ResponseWriter, r *http.Request) {
	item, err := res.Create(r.Context(), r)
	if err != nil {
		var ve *validationError
		if errors.As(err, &ve) {
			writeJSONError(w, http.StatusBadRequest, ve.message)
			return
		}
		slog.Error("creating resource", "resource", res.Name, "error", err)
		writeJSONError(w, http.StatusInternalServerError, res.Msg.CreateError)
		return
	}
	writeJSONSuccess(w, map[string]any{
		res.ItemKey: item,
		"message":   res.Msg.CreateOK,
	})
}

func (res *Resource[T]) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, res.Msg.NotFound)
		return
	}

	item, err := res.Update(r.Context(), id, r)
	if err != nil {
		var ve *validationError
		switch {
		case errors.As(err, &ve):
			writeJSONError(w, http.StatusBadRequest, ve.message)
		case errors.Is(err, sql.ErrNoRows):
			writeJSONError(w, http.StatusNotFound, res.Msg.NotFound)
		default:
			slog.Error("updating resource", "resource", res.Name, "id", id, "error", err)
			writeJSONError(w, http.StatusInternalServerError, res.Msg.UpdateError)
		}
		return
	}
	writeJSONSuccess(w, map[string]any{
		res.ItemKey: item,
		"message":   res.Msg.UpdateOK,
	})
}

func (res *Resource[T]) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, res.Msg.NotFound)
		return
	}

	if err := res.Delete(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusNotFound, res.Msg.NotFound)
			return
		}
		slog.Error("deleting resource", "resource", res.Name, "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, res.Msg.DeleteError)
		return
	}
	writeJSONSuccess(w, map[string]any{
		"message": res.Msg.DeleteOK,
	})
}
