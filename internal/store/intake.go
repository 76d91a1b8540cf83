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

// Registrations

const registrationColumns = "id, full_name, phone, email, service_interest, message, status, created_at, updated_at"

func scanRegistration(row rowScanner) (model.Registration, error) {
	var r model.Registration
	var email, interest, message sql.NullString
	err := row.Scan(&r.ID, &r.FullName, &r.Phone, &email, &interest, &message,
		&r.Status, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return model.Registration{}, err
	}
	r.Email = util.PtrFromNullString(email)
	r.ServiceInterest = util.PtrFromNullString(interest)
	r.Message = util.PtrFromNullString(message)
	return r, nil
}

// RegistrationFilter narrows ListRegistrations. Zero values mean no filter.
// Date matches the calendar day of created_at, Service matches
// service_interest exactly.
type RegistrationFilter struct {
	Date    string
	Service string
}

// ListRegistrations returns registrations newest first, optionally filtered.
func (q *Queries) ListRegistrations(ctx context.Context, filter RegistrationFilter) ([]model.Registration, error) {
	query := "SELECT " + registrationColumns + " FROM registrations WHERE 1=1"
	args := make([]any, 0, 2)
	if filter.Date != "" {
		query += " AND date(created_at) = ?"
		args = append(args, filter.Date)
	}
	if filter.Service != "" {
		query += " AND service_interest = ?"
		args = append(args, filter.Service)
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectRows(rows, scanRegistration)
}

// GetRegistrationByID returns the registration with the given id.
func (q *Queries) GetRegistrationByID(ctx context.Context, id int64) (model.Registration, error) {
	return scanRegistration(q.db.QueryRowContext(ctx, "SELECT "+registrationColumns+
		" FROM registrations WHERE id = ?", id))
}

// CreateRegistrationParams holds the public contact-form fields.
type CreateRegistrationParams struct {
	FullName        string
	Phone           string
	Email           *string
	ServiceInterest *string
	Message         *string
	CreatedAt       time.Time
}

// CreateRegistration stores a contact-form submission with status pending.
func (q *Queries) CreateRegistration(ctx context.Context, arg CreateRegistrationParams) (model.Registration, error) {
	return scanRegistration(q.db.QueryRowContext(ctx, `
		INSERT INTO registrations (full_name, phone, email, service_interest, message, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+registrationColumns,
		arg.FullName, arg.Phone, util.NullStringFromPtr(arg.Email),
		util.NullStringFromPtr(arg.ServiceInterest), util.NullStringFromPtr(arg.Message),
		model.StatusPending, arg.CreatedAt, arg.CreatedAt))
}

// UpdateRegistrationStatus moves a registration to a new status and bumps
// updated_at.
func (q *Queries) UpdateRegistrationStatus(ctx context.Context, id int64, status string, now time.Time) (model.Registration, error) {
	err := q.execExpectingRow(ctx,
		"UPDATE registrations SET status = ?, updated_at = ? WHERE id = ?", status, now, id)
	if err != nil {
		return model.Registration{}, err
	}
	return q.GetRegistrationByID(ctx, id)
}

// DeleteRegistration removes a registration row.
func (q *Queries) DeleteRegistration(ctx context.Context, id int64) error {
	return q.execExpectingRow(ctx, "DELETE FROM registrations WHERE id = ?", id)
}

// CountRegistrations returns the total number of registration rows.
func (q *Queries) CountRegistrations(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM registrations").Scan(&n)
	return n, err
}

// Appointments

const appointmentColumns = "id, name, phone, email, service, date, time, notes, status, created_at"

func scanAppointment(row rowScanner) (model.Appointment, error) {
	var a model.Appointment
	var email, notes sql.NullString
	err := row.Scan(&a.ID, &a.Name, &a.Phone, &email, &a.Service, &a.Date, &a.Time,
		&notes, &a.Status, &a.CreatedAt)
	if err != nil {
		return model.Appointment{}, err
	}
	a.Email = util.PtrFromNullString(email)
	a.Notes = util.PtrFromNullString(notes)
	return a, nil
}

// AppointmentFilter narrows ListAppointments. Zero values mean no filter.
type AppointmentFilter struct {
	Date   string
	Status string
}

// ListAppointments returns appointments newest first, optionally filtered
// by booking date and status.
func (q *Queries) ListAppointments(ctx context.Context, filter AppointmentFilter) ([]model.Appointment, error) {
	query := "SELECT " + appointmentColumns + " FROM appointments WHERE 1=1"
	args := make([]any, 0, 2)
	if filter.Date != "" {
		query += " AND date = ?"
		args = append(args, filter.Date)
	}
	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectRows(rows, scanAppointment)
}

// GetAppointmentByID returns the appointment with the given id.
func (q *Queries) GetAppointmentByID(ctx context.Context, id int64) (model.Appointment, error) {
	return scanAppointment(q.db.QueryRowContext(ctx, "SELECT "+appointmentColumns+
		" FROM appointments WHERE id = ?", id))
}

// CreateAppointmentParams holds the public booking-form fields.
type CreateAppointmentParams struct {
	Name      string
	Phone     string
	Email     *string
	Service   string
	Date      string
	Time      string
	Notes     *string
	CreatedAt time.Time
}

// CreateAppointment stores a booking request with status pending.
func (q *Queries) CreateAppointment(ctx context.Context, arg CreateAppointmentParams) (model.Appointment, error) {
	return scanAppointment(q.db.QueryRowContext(ctx, `
		INSERT INTO appointments (name, phone, email, service, date, time, notes, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+appointmentColumns,
		arg.Name, arg.Phone, util.NullStringFromPtr(arg.Email), arg.Service,
		arg.Date, arg.Time, util.NullStringFromPtr(arg.Notes),
		model.StatusPending, arg.CreatedAt))
}

// UpdateAppointmentStatus moves an appointment to a new status.
func (q *Queries) UpdateAppointmentStatus(ctx context.Context, id int64, status string) (model.Appointment, error) {
	err := q.execExpectingRow(ctx, "UPDATE appointments SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return model.Appointment{}, err
	}
	return q.GetAppointmentByID(ctx, id)
}

// DeleteAppointment removes an appointment row.
func (q *Queries) DeleteAppointment(ctx context.Context, id int64) error {
	return q.execExpectingRow(ctx, "DELETE FROM appointments WHERE id = ?", id)
}

// CountAppointments returns the total number of appointment rows.
func (q *Queries) CountAppointments(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM appointments").Scan(&n)
	return n, err
}

// CountAppointmentsByStatus returns the number of appointments in a status.
func (q *Queries) CountAppointmentsByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM appointments WHERE status = ?", status).Scan(&n)
	return n, err
}

// SumDoneAppointmentRevenue totals service prices across completed
// appointments, joining on the service name the customer picked.
func (q *Queries) SumDoneAppointmentRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := q.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(s.price), 0)
		FROM appointments a
		JOIN services s ON s.name = a.service
		WHERE a.status = ?`, model.StatusDone).Scan(&total)
	return total, err
}
