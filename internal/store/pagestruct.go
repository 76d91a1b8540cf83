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

// Pages

const pageColumns = "id, name, title, created_at, updated_at"

func scanPage(row rowScanner) (model.Page, error) {
	var p model.Page
	err := row.Scan(&p.ID, &p.Name, &p.Title, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// ListPages returns all pages ordered by name.
func (q *Queries) ListPages(ctx context.Context) ([]model.Page, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT "+pageColumns+" FROM pages ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	return collectRows(rows, scanPage)
}

// GetPageByID returns the page with the given id.
func (q *Queries) GetPageByID(ctx context.Context, id int64) (model.Page, error) {
	return scanPage(q.db.QueryRowContext(ctx, "SELECT "+pageColumns+" FROM pages WHERE id = ?", id))
}

// GetPageByName returns the page with the given unique name.
func (q *Queries) GetPageByName(ctx context.Context, name string) (model.Page, error) {
	return scanPage(q.db.QueryRowContext(ctx, "SELECT "+pageColumns+" FROM pages WHERE name = ?", name))
}

// CreatePageParams holds the fields required to insert a page.
type CreatePageParams struct {
	Name      string
	Title     string
	CreatedAt time.Time
}

// CreatePage inserts a page and returns the stored row.
func (q *Queries) CreatePage(ctx context.Context, arg CreatePageParams) (model.Page, error) {
	return scanPage(q.db.QueryRowContext(ctx, `
		INSERT INTO pages (name, title, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		RETURNING `+pageColumns,
		arg.Name, arg.Title, arg.CreatedAt, arg.CreatedAt))
}

// UpdatePageParams holds the mutable fields of a page.
type UpdatePageParams struct {
	ID        int64
	Name      string
	Title     string
	UpdatedAt time.Time
}

// UpdatePage replaces the mutable fields of a page.
func (q *Queries) UpdatePage(ctx context.Context, arg UpdatePageParams) (model.Page, error) {
	err := q.execExpectingRow(ctx,
		"UPDATE pages SET name = ?, title = ?, updated_at = ? WHERE id = ?",
		arg.Name, arg.Title, arg.UpdatedAt, arg.ID)
	if err != nil {
		return model.Page{}, err
	}
	return q.GetPageByID(ctx, arg.ID)
}

// DeletePage removes a page. Sections and content items cascade.
func (q *Queries) DeletePage(ctx context.Context, id int64) error {
	return q.execExpectingRow(ctx, "DELETE FROM pages WHERE id = ?", id)
}

// Sections

const sectionColumns = "id, page_id, heading, body, position, created_at, updated_at"

func scanSection(row rowScanner) (model.Section, error) {
	var s model.Section
	var heading, body sql.NullString
	err := row.Scan(&s.ID, &s.PageID, &heading, &body, &s.Position, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return model.Section{}, err
	}
	s.Heading = util.PtrFromNullString(heading)
	s.Body = util.PtrFromNullString(body)
	return s, nil
}

// ListSectionsByPage returns a page's sections in display order.
func (q *Queries) ListSectionsByPage(ctx context.Context, pageID int64) ([]model.Section, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT "+sectionColumns+
		" FROM sections WHERE page_id = ? ORDER BY position ASC, id ASC", pageID)
	if err != nil {
		return nil, err
	}
	return collectRows(rows, scanSection)
}

// GetSectionByID returns the section with the given id.
func (q *Queries) GetSectionByID(ctx context.Context, id int64) (model.Section, error) {
	return scanSection(q.db.QueryRowContext(ctx, "SELECT "+sectionColumns+" FROM sections WHERE id = ?", id))
}

// CreateSectionParams holds the fields required to insert a section.
type CreateSectionParams struct {
	PageID    int64
	Heading   *string
	Body      *string
	Position  int64
	CreatedAt time.Time
}

// CreateSection inserts a section and returns the stored row.
func (q *Queries) CreateSection(ctx context.Context, arg CreateSectionParams) (model.Section, error) {
	return scanSection(q.db.QueryRowContext(ctx, `
		INSERT INTO sections (page_id, heading, body, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING `+sectionColumns,
		arg.PageID, util.NullStringFromPtr(arg.Heading), util.NullStringFromPtr(arg.Body),
		arg.Position, arg.CreatedAt, arg.CreatedAt))
}

// UpdateSectionParams holds the mutable fields of a section.
type UpdateSectionParams struct {
	ID        int64
	Heading   *string
	Body      *string
	Position  int64
	UpdatedAt time.Time
}

// UpdateSection replaces the mutable fields of a section.
func (q *Queries) UpdateSection(ctx context.Context, arg UpdateSectionParams) (model.Section, error) {
	err := q.execExpectingRow(ctx,
		"UPDATE sections SET heading = ?, body = ?, position = ?, updated_at = ? WHERE id = ?",
		util.NullStringFromPtr(arg.Heading), util.NullStringFromPtr(arg.Body),
		arg.Position, arg.UpdatedAt, arg.ID)
	if err != nil {
		return model.Section{}, err
	}
	return q.GetSectionByID(ctx, arg.ID)
}

// DeleteSection removes a section. Content items cascade.
func (q *Queries) DeleteSection(ctx context.Context, id int64) error {
	return q.execExpectingRow(ctx, "DELETE FROM sections WHERE id = ?", id)
}

// Content items

const contentItemColumns = "id, section_id, label, value, position, created_at, updated_at"

func scanContentItem(row rowScanner) (model.ContentItem, error) {
	var c model.ContentItem
	var value sql.NullString
	err := row.Scan(&c.ID, &c.SectionID, &c.Label, &value, &c.Position, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return model.ContentItem{}, err
	}
	c.Value = util.PtrFromNullString(value)
	return c, nil
}

// ListContentItemsBySection returns a section's content items in display order.
func (q *Queries) ListContentItemsBySection(ctx context.Context, sectionID int64) ([]model.ContentItem, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT "+contentItemColumns+
		" FROM content WHERE section_id = ? ORDER BY position ASC, id ASC", sectionID)
	if err != nil {
		return nil, err
	}
	return collectRows(rows, scanContentItem)
}

// GetContentItemByID returns the content item with the given id.
func (q *Queries) GetContentItemByID(ctx context.Context, id int64) (model.ContentItem, error) {
	return scanContentItem(q.db.QueryRowContext(ctx, "SELECT "+contentItemColumns+" FROM content WHERE id = ?", id))
}

// CreateContentItemParams holds the fields required to insert a content item.
type CreateContentItemParams struct {
	SectionID int64
	Label     string
	Value     *string
	Position  int64
	CreatedAt time.Time
}

// CreateContentItem inserts a content item and returns the stored row.
func (q *Queries) CreateContentItem(ctx context.Context, arg CreateContentItemParams) (model.ContentItem, error) {
	return scanContentItem(q.db.QueryRowContext(ctx, `
		INSERT INTO content (section_id, label, value, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING `+contentItemColumns,
		arg.SectionID, arg.Label, util.NullStringFromPtr(arg.Value),
		arg.Position, arg.CreatedAt, arg.CreatedAt))
}

// UpdateContentItemParams holds the mutable fields of a content item.
type UpdateContentItemParams struct {
	ID        int64
	Label     string
	Value     *string
	Position  int64
	UpdatedAt time.Time
}

// UpdateContentItem replaces the mutable fields of a content item.
func (q *Queries) UpdateContentItem(ctx context.Context, arg UpdateContentItemParams) (model.ContentItem, error) {
	err := q.execExpectingRow(ctx,
		"UPDATE content SET label = ?, value = ?, position = ?, updated_at = ? WHERE id = ?",
		arg.Label, util.NullStringFromPtr(arg.Value), arg.Position, arg.UpdatedAt, arg.ID)
	if err != nil {
		return model.ContentItem{}, err
	}
	return q.GetContentItemByID(ctx, arg.ID)
}

// DeleteContentItem removes a content item row.
func (q *Queries) DeleteContentItem(ctx context.Context, id int64) error {
	return q.execExpectingRow(ctx, "DELETE FROM content WHERE id = ?", id)
}
