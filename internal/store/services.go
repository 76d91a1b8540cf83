// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/nailroom/nailroom-go/internal/model"
	"github.com/nailroom/nailroom-go/internal/util"
)

// Service statuses.
const (
	ServiceStatusActive   = "active"
	ServiceStatusInactive = "inactive"
)

const serviceColumns = "id, name, description, price, image, position, status, created_at"

func scanService(row rowScanner) (model.Service, error) {
	var s model.Service
	var description, image sql.NullString
	err := row.Scan(&s.ID, &s.Name, &description, &s.Price, &image, &s.Position, &s.Status, &s.CreatedAt)
	if err != nil {
		return model.Service{}, err
	}
	s.Description = util.PtrFromNullString(description)
	s.Image = util.PtrFromNullString(image)
	return s, nil
}

// ListActiveServices returns active services in display order.
func (q *Queries) ListActiveServices(ctx context.Context) ([]model.Service, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT "+serviceColumns+
		" FROM services WHERE status = ? ORDER BY position ASC, id ASC", ServiceStatusActive)
	if err != nil {
		return nil, err
	}
	return collectRows(rows, scanService)
}

// ListServices returns every service row regardless of status.
func (q *Queries) ListServices(ctx context.Context) ([]model.Service, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT "+serviceColumns+" FROM services ORDER BY position ASC, id ASC")
	if err != nil {
		return nil, err
	}
	return collectRows(rows, scanService)
}

// GetServiceByID returns the service with the given id.
func (q *Queries) GetServiceByID(ctx context.Context, id int64) (model.Service, error) {
	row := q.db.QueryRowContext(ctx, "SELECT "+serviceColumns+" FROM services WHERE id = ?", id)
	return scanService(row)
}

// CreateServiceParams holds the fields required to insert a service row.
type CreateServiceParams struct {
	Name        string
	Description *string
	Price       float64
	Image       *string
	Position    int64
	Status      string
	CreatedAt   time.Time
}

// CreateService inserts a service and returns the stored row.
func (q *Queries) CreateService(ctx context.Context, arg CreateServiceParams) (model.Service, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO services (name, description, price, image, position, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING `+serviceColumns,
		arg.Name, util.NullStringFromPtr(arg.Description), arg.Price,
		util.NullStringFromPtr(arg.Image), arg.Position, arg.Status, arg.CreatedAt)
	return scanService(row)
}

// UpdateServiceParams holds the mutable fields of a service row.
type UpdateServiceParams struct {
	ID          int64
	Name        string
	Description *string
	Price       float64
	Image       *string
	Position    int64
	Status      string
}

// UpdateService replaces the mutable fields of a service and returns the updated row.
func (q *Queries) UpdateService(ctx context.Context, arg UpdateServiceParams) (model.Service, error) {
	err := q.execExpectingRow(ctx, `
		UPDATE services SET name = ?, description = ?, price = ?, image = ?, position = ?, status = ?
		WHERE id = ?`,
		arg.Name, util.NullStringFromPtr(arg.Description), arg.Price,
		util.NullStringFromPtr(arg.Image), arg.Position, arg.Status, arg.ID)
	if err != nil {
		return model.Service{}, err
	}
	return q.GetServiceByID(ctx, arg.ID)
}

// DeleteService removes a service row.
func (q *Queries) DeleteService(ctx context.Context, id int64) error {
	return q.execExpectingRow(ctx, "DELETE FROM services WHERE id = ?", id)
}

// CountServices returns the total number of service rows.
func (q *Queries) CountServices(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM services").Scan(&n)
	return n, err
}
