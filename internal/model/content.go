package model

import "time"

// Website content value types.
const (
	ContentTypeText  = "text"
	ContentTypeImage = "image"
)

// WebsiteContent is a keyed text/image value owned by a page section.
// (section, content_key) is unique; writes upsert.
type WebsiteContent struct {
	ID           int64     `json:"id"`
	Section      string    `json:"section"`
	ContentKey   string    `json:"content_key"`
	ContentValue *string   `json:"content_value"`
	ContentType  string    `json:"content_type"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Page is a database-backed page shell for the structured page builder.
type Page struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Section is an ordered block within a page.
type Section struct {
	ID        int64     `json:"id"`
	PageID    int64     `json:"page_id"`
	Heading   *string   `json:"heading"`
	Body      *string   `json:"body"`
	Position  int64     `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContentItem is a labelled value within a section.
type ContentItem struct {
	ID        int64     `json:"id"`
	SectionID int64     `json:"section_id"`
	Label     string    `json:"label"`
	Value     *string   `json:"value"`
	Position  int64     `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
