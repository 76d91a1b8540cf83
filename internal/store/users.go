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

const userColumns = "id, username, email, password_hash, role, full_name, phone, created_at"

func scanUser(row rowScanner) (model.User, error) {
	var u model.User
	var fullName, phone sql.NullString
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &fullName, &phone, &u.CreatedAt)
	if err != nil {
		return model.User{}, err
	}
	u.FullName = util.PtrFromNullString(fullName)
	u.Phone = util.PtrFromNullString(phone)
	return u, nil
}

// CreateUserParams holds the fields required to insert a user row.
type CreateUserParams struct {
	Username     string
	Email        string
	PasswordHash string
	Role         string
	FullName     *string
	Phone        *string
	CreatedAt    time.Time
}

// CreateUser inserts a user and returns the stored row.
func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (model.User, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO users (username, email, password_hash, role, full_name, phone, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING `+userColumns,
		arg.Username, arg.Email, arg.PasswordHash, arg.Role,
		util.NullStringFromPtr(arg.FullName), util.NullStringFromPtr(arg.Phone), arg.CreatedAt)
	return scanUser(row)
}

// GetUserByID returns the user with the given id.
func (q *Queries) GetUserByID(ctx context.Context, id int64) (model.User, error) {
	row := q.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
	return scanUser(row)
}

// GetUserByUsername returns the user with the given username.
func (q *Queries) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	row := q.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE username = ?", username)
	return scanUser(row)
}

// CountUsersByUsernameOrEmail returns how many users hold the given
// username or email. Used for the duplicate check before registration.
func (q *Queries) CountUsersByUsernameOrEmail(ctx context.Context, username, email string) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE username = ? OR email = ?", username, email).Scan(&n)
	return n, err
}

// ListUsers returns all users, newest first.
func (q *Queries) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	return collectRows(rows, scanUser)
}

// UpdateUserParams holds the mutable fields of a user row.
type UpdateUserParams struct {
	ID       int64
	Email    string
	Role     string
	FullName *string
	Phone    *string
}

// UpdateUser replaces the mutable fields of a user and returns the updated row.
func (q *Queries) UpdateUser(ctx context.Context, arg UpdateUserParams) (model.User, error) {
	err := q.execExpectingRow(ctx, `
		UPDATE users SET email = ?, role = ?, full_name = ?, phone = ? WHERE id = ?`,
		arg.Email, arg.Role, util.NullStringFromPtr(arg.FullName), util.NullStringFromPtr(arg.Phone), arg.ID)
	if err != nil {
		return model.User{}, err
	}
	return q.GetUserByID(ctx, arg.ID)
}

// UpdateUserPassword replaces the stored password hash.
func (q *Queries) UpdateUserPassword(ctx context.Context, id int64, passwordHash string) error {
	return q.execExpectingRow(ctx, "UPDATE users SET password_hash = ? WHERE id = ?", passwordHash, id)
}

// DeleteUser removes a user row.
func (q *Queries) DeleteUser(ctx context.Context, id int64) error {
	return q.execExpectingRow(ctx, "DELETE FROM users WHERE id = ?", id)
}

// CountUsersByRole returns the number of users with the given role.
func (q *Queries) CountUsersByRole(ctx context.Context, role string) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users WHERE role = ?", role).Scan(&n)
	return n, err
}
