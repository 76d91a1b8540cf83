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

const websiteContentColumns = "id, section, content_key, content_value, content_type, updated_at"

func scanWebsiteContent(row rowScanner) (model.WebsiteContent, error) {
	var c model.WebsiteContent
	var value sql.NullString
	err := row.Scan(&c.ID, &c.Section, &c.ContentKey, &value, &c.ContentType, &c.UpdatedAt)
	if err != nil {
		return model.WebsiteContent{}, err
	}
	c.ContentValue = util.PtrFromNullString(value)
	return c, nil
}

// ListContentBySection returns every keyed value belonging to a section.
func (q *Queries) ListContentBySection(ctx context.Context, section string) ([]model.WebsiteContent, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT "+websiteContentColumns+
		" FROM website_content WHERE section = ? ORDER BY content_key ASC", section)
	if err != nil {
		return nil, err
	}
	return collectRows(rows, scanWebsiteContent)
}

// GetContent returns the value stored under (section, content_key).
func (q *Queries) GetContent(ctx context.Context, section, contentKey string) (model.WebsiteContent, error) {
	return scanWebsiteContent(q.db.QueryRowContext(ctx, "SELECT "+websiteContentColumns+
		" FROM website_content WHERE section = ? AND content_key = ?", section, contentKey))
}

// UpsertContentParams identifies the slot and the value written into it.
type UpsertContentParams struct {
	Section      string
	ContentKey   string
	ContentValue *string
	ContentType  string
	UpdatedAt    time.Time
}

// UpsertContent inserts a keyed value or overwrites the existing one.
// (section, content_key) is unique, so a second write updates in place.
func (q *Queries) UpsertContent(ctx context.Context, arg UpsertContentParams) (model.WebsiteContent, error) {
	return scanWebsiteContent(q.db.QueryRowContext(ctx, `
		INSERT INTO website_content (section, content_key, content_value, content_type, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(section, content_key) DO UPDATE SET
			content_value = excluded.content_value,
			content_type = excluded.content_type,
			updated_at = excluded.updated_at
		RETURNING `+websiteContentColumns,
		arg.Section, arg.ContentKey, util.NullStringFromPtr(arg.ContentValue),
		arg.ContentType, arg.UpdatedAt))
}

// DeleteContent removes the value stored under (section, content_key).
func (q *Queries) DeleteContent(ctx context.Context, section, contentKey string) error {
	return q.execExpectingRow(ctx,
		"DELETE FROM website_content WHERE section = ? AND content_key = ?", section, contentKey)
}
