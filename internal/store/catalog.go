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

// Menu items

const menuItemColumns = "id, name, url, position, is_active, created_at"

func scanMenuItem(row rowScanner) (model.MenuItem, error) {
	var m model.MenuItem
	err := row.Scan(&m.ID, &m.Name, &m.URL, &m.Position, &m.IsActive, &m.CreatedAt)
	return m, err
}

// ListActiveMenuItems returns active menu items in display order.
func (q *Queries) ListActiveMenuItems(ctx context.Context) ([]model.MenuItem, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT "+menuItemColumns+
		" FROM menu_items WHERE is_active = 1 ORDER BY position ASC, id ASC")
	if err != nil {
		return nil, err
	}
	return collectRows(rows, scanMenuItem)
}

// ListMenuItems returns every menu item row.
func (q *Queries) ListMenuItems(ctx context.Context) ([]model.MenuItem, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT "+menuItemColumns+" FROM menu_items ORDER BY position ASC, id ASC")
	if err != nil {
		return nil, err
	}
	return collectRows(rows, scanMenuItem)
}

// GetMenuItemByID returns the menu item with the given id.
func (q *Queries) GetMenuItemByID(ctx context.Context, id int64) (model.MenuItem, error) {
	return scanMenuItem(q.db.QueryRowContext(ctx, "SELECT "+menuItemColumns+" FROM menu_items WHERE id = ?", id))
}

// CreateMenuItemParams holds the fields required to insert a menu item.
type CreateMenuItemParams struct {
	Name      string
	URL       string
	Position  int64
	IsActive  bool
	CreatedAt time.Time
}

// CreateMenuItem inserts a menu item and returns the stored row.
func (q *Queries) CreateMenuItem(ctx context.Context, arg CreateMenuItemParams) (model.MenuItem, error) {
	return scanMenuItem(q.db.QueryRowContext(ctx, `
		INSERT INTO menu_items (name, url, position, is_active, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING `+menuItemColumns,
		arg.Name, arg.URL, arg.Position, arg.IsActive, arg.CreatedAt))
}

// UpdateMenuItemParams holds the mutable fields of a menu item.
type UpdateMenuItemParams struct {
	ID       int64
	Name     string
	URL      string
	Position int64
	IsActive bool
}

// UpdateMenuItem replaces the mutable fields of a menu item.
func (q *Queries) UpdateMenuItem(ctx context.Context, arg UpdateMenuItemParams) (model.MenuItem, error) {
	err := q.execExpectingRow(ctx,
		"UPDATE menu_items SET name = ?, url = ?, position = ?, is_active = ? WHERE id = ?",
		arg.Name, arg.URL, arg.Position, arg.IsActive, arg.ID)
	if err != nil {
		return model.MenuItem{}, err
	}
	return q.GetMenuItemByID(ctx, arg.ID)
}

// DeleteMenuItem removes a menu item row.
func (q *Queries) DeleteMenuItem(ctx context.Context, id int64) error {
	return q.execExpectingRow(ctx, "DELETE FROM menu_items WHERE id = ?", id)
}

// Sliders

const sliderColumns = "id, title, subtitle, description, image_url, button_text, button_url, position, is_active, created_at"

func scanSlider(row rowScanner) (model.Slider, error) {
	var s model.Slider
	var title, subtitle, description, imageURL, buttonText, buttonURL sql.NullString
	err := row.Scan(&s.ID, &title, &subtitle, &description, &imageURL, &buttonText, &buttonURL,
		&s.Position, &s.IsActive, &s.CreatedAt)
	if err != nil {
		return model.Slider{}, err
	}
	s.Title = util.PtrFromNullString(title)
	s.Subtitle = util.PtrFromNullString(subtitle)
	s.Description = util.PtrFromNullString(description)
	s.ImageURL = util.PtrFromNullString(imageURL)
	s.ButtonText = util.PtrFromNullString(buttonText)
	s.ButtonURL = util.PtrFromNullString(buttonURL)
	return s, nil
}

// ListActiveSliders returns active sliders in display order.
func (q *Queries) ListActiveSliders(ctx context.Context) ([]model.Slider, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT "+sliderColumns+
		" FROM sliders WHERE is_active = 1 ORDER BY position ASC, id ASC")
	if err != nil {
		return nil, err
	}
	return collectRows(rows, scanSlider)
}

// ListSliders returns every slider row.
func (q *Queries) ListSliders(ctx context.Context) ([]model.Slider, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT "+sliderColumns+" FROM sliders ORDER BY position ASC, id ASC")
	if err != nil {
		return nil, err
	}
	return collectRows(rows, scanSlider)
}

// GetSliderByID returns the slider with the given id.
func (q *Queries) GetSliderByID(ctx context.Context, id int64) (model.Slider, error) {
	return scanSlider(q.db.QueryRowContext(ctx, "SELECT "+sliderColumns+" FROM sliders WHERE id = ?", id))
}

// CreateSliderParams holds the fields required to insert a slider.
type CreateSliderParams struct {
	Title       *string
	Subtitle    *string
	Description *string
	ImageURL    *string
	ButtonText  *string
	ButtonURL   *string
	Position    int64
	IsActive    bool
	CreatedAt   time.Time
}

// CreateSlider inserts a slider and returns the stored row.
func (q *Queries) CreateSlider(ctx context.Context, arg CreateSliderParams) (model.Slider, error) {
	return scanSlider(q.db.QueryRowContext(ctx, `
		INSERT INTO sliders (title, subtitle, description, image_url, button_text, button_url, position, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+sliderColumns,
		util.NullStringFromPtr(arg.Title), util.NullStringFromPtr(arg.Subtitle),
		util.NullStringFromPtr(arg.Description), util.NullStringFromPtr(arg.ImageURL),
		util.NullStringFromPtr(arg.ButtonText), util.NullStringFromPtr(arg.ButtonURL),
		arg.Position, arg.IsActive, arg.CreatedAt))
}

// UpdateSliderParams holds the mutable fields of a slider.
type UpdateSliderParams struct {
	ID          int64
	Title       *string
	Subtitle    *string
	Description *string
	ImageURL    *string
	ButtonText  *string
	ButtonURL   *string
	Position    int64
	IsActive    bool
}

// UpdateSlider replaces the mutable fields of a slider.
func (q *Queries) UpdateSlider(ctx context.Context, arg UpdateSliderParams) (model.Slider, error) {
	err := q.execExpectingRow(ctx, `
		UPDATE sliders SET title = ?, subtitle = ?, description = ?, image_url = ?,
			button_text = ?, button_url = ?, position = ?, is_active = ?
		WHERE id = ?`,
		util.NullStringFromPtr(arg.Title), util.NullStringFromPtr(arg.Subtitle),
		util.NullStringFromPtr(arg.Description), util.NullStringFromPtr(arg.ImageURL),
		util.NullStringFromPtr(arg.ButtonText), util.NullStringFromPtr(arg.ButtonURL),
		arg.Position, arg.IsActive, arg.ID)
	if err != nil {
		return model.Slider{}, err
	}
	return q.GetSliderByID(ctx, arg.ID)
}

// DeleteSlider removes a slider row.
func (q *Queries) DeleteSlider(ctx context.Context, id int64) error {
	return q.execExpectingRow(ctx, "DELETE FROM sliders WHERE id = ?", id)
}

// Gallery items

const galleryItemColumns = "id, title, description, image_url, category, position, is_active, created_at"

func scanGalleryItem(row rowScanner) (model.GalleryItem, error) {
	var g model.GalleryItem
	var title, description, category sql.NullString
	err := row.Scan(&g.ID, &title, &description, &g.ImageURL, &category, &g.Position, &g.IsActive, &g.CreatedAt)
	if err != nil {
		return model.GalleryItem{}, err
	}
	g.Title = util.PtrFromNullString(title)
	g.Description = util.PtrFromNullString(description)
	g.Category = util.PtrFromNullString(category)
	return g, nil
}

// ListActiveGalleryItems returns active gallery items in display order.
func (q *Queries) ListActiveGalleryItems(ctx context.Context) ([]model.GalleryItem, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT "+galleryItemColumns+
		" FROM gallery_items WHERE is_active = 1 ORDER BY position ASC, id ASC")
	if err != nil {
		return nil, err
	}
	return collectRows(rows, scanGalleryItem)
}

// ListGalleryItems returns every gallery item row.
func (q *Queries) ListGalleryItems(ctx context.Context) ([]model.GalleryItem, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT "+galleryItemColumns+" FROM gallery_items ORDER BY position ASC, id ASC")
	if err != nil {
		return nil, err
	}
	return collectRows(rows, scanGalleryItem)
}

// GetGalleryItemByID returns the gallery item with the given id.
func (q *Queries) GetGalleryItemByID(ctx context.Context, id int64) (model.GalleryItem, error) {
	return scanGalleryItem(q.db.QueryRowContext(ctx, "SELECT "+galleryItemColumns+" FROM gallery_items WHERE id = ?", id))
}

// CreateGalleryItemParams holds the fields required to insert a gallery item.
type CreateGalleryItemParams struct {
	Title       *string
	Description *string
	ImageURL    string
	Category    *string
	Position    int64
	IsActive    bool
	CreatedAt   time.Time
}

// CreateGalleryItem inserts a gallery item and returns the stored row.
func (q *Queries) CreateGalleryItem(ctx context.Context, arg CreateGalleryItemParams) (model.GalleryItem, error) {
	return scanGalleryItem(q.db.QueryRowContext(ctx, `
		INSERT INTO gallery_items (title, description, image_url, category, position, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING `+galleryItemColumns,
		util.NullStringFromPtr(arg.Title), util.NullStringFromPtr(arg.Description),
		arg.ImageURL, util.NullStringFromPtr(arg.Category), arg.Position, arg.IsActive, arg.CreatedAt))
}

// UpdateGalleryItemParams holds the mutable fields of a gallery item.
type UpdateGalleryItemParams struct {
	ID          int64
	Title       *string
	Description *string
	ImageURL    string
	Category    *string
	Position    int64
	IsActive    bool
}

// UpdateGalleryItem replaces the mutable fields of a gallery item.
func (q *Queries) UpdateGalleryItem(ctx context.Context, arg UpdateGalleryItemParams) (model.GalleryItem, error) {
	err := q.execExpectingRow(ctx, `
		UPDATE gallery_items SET title = ?, description = ?, image_url = ?, category = ?, position = ?, is_active = ?
		WHERE id = ?`,
		util.NullStringFromPtr(arg.Title), util.NullStringFromPtr(arg.Description),
		arg.ImageURL, util.NullStringFromPtr(arg.Category), arg.Position, arg.IsActive, arg.ID)
	if err != nil {
		return model.GalleryItem{}, err
	}
	return q.GetGalleryItemByID(ctx, arg.ID)
}

// DeleteGalleryItem removes a gallery item row.
func (q *Queries) DeleteGalleryItem(ctx context.Context, id int64) error {
	return q.execExpectingRow(ctx, "DELETE FROM gallery_items WHERE id = ?", id)
}

// Celebrities

const celebrityColumns = "id, name, profession, image_url, position, is_active, created_at"

func scanCelebrity(row rowScanner) (model.Celebrity, error) {
	var c model.Celebrity
	var profession, imageURL sql.NullString
	err := row.Scan(&c.ID, &c.Name, &profession, &imageURL, &c.Position, &c.IsActive, &c.CreatedAt)
	if err != nil {
		return model.Celebrity{}, err
	}
	c.Profession = util.PtrFromNullString(profession)
	c.ImageURL = util.PtrFromNullString(imageURL)
	return c, nil
}

// ListActiveCelebrities returns active celebrities in display order.
func (q *Queries) ListActiveCelebrities(ctx context.Context) ([]model.Celebrity, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT "+celebrityColumns+
		" FROM celebrities WHERE is_active = 1 ORDER BY position ASC, id ASC")
	if err != nil {
		return nil, err
	}
	return collectRows(rows, scanCelebrity)
}

// ListCelebrities returns every celebrity row.
func (q *Queries) ListCelebrities(ctx context.Context) ([]model.Celebrity, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT "+celebrityColumns+" FROM celebrities ORDER BY position ASC, id ASC")
	if err != nil {
		return nil, err
	}
	return collectRows(rows, scanCelebrity)
}

// GetCelebrityByID returns the celebrity with the given id.
func (q *Queries) GetCelebrityByID(ctx context.Context, id int64) (model.Celebrity, error) {
	return scanCelebrity(q.db.QueryRowContext(ctx, "SELECT "+celebrityColumns+" FROM celebrities WHERE id = ?", id))
}

// CreateCelebrityParams holds the fields required to insert a celebrity.
type CreateCelebrityParams struct {
	Name       string
	Profession *string
	ImageURL   *string
	Position   int64
	IsActive   bool
	CreatedAt  time.Time
}

// CreateCelebrity inserts a celebrity and returns the stored row.
func (q *Queries) CreateCelebrity(ctx context.Context, arg CreateCelebrityParams) (model.Celebrity, error) {
	return scanCelebrity(q.db.QueryRowContext(ctx, `
		INSERT INTO celebrities (name, profession, image_url, position, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING `+celebrityColumns,
		arg.Name, util.NullStringFromPtr(arg.Profession), util.NullStringFromPtr(arg.ImageURL),
		arg.Position, arg.IsActive, arg.CreatedAt))
}

// UpdateCelebrityParams holds the mutable fields of a celebrity.
type UpdateCelebrityParams struct {
	ID         int64
	Name       string
	Profession *string
	ImageURL   *string
	Position   int64
	IsActive   bool
}

// UpdateCelebrity replaces the mutable fields of a celebrity.
func (q *Queries) UpdateCelebrity(ctx context.Context, arg UpdateCelebrityParams) (model.Celebrity, error) {
	err := q.execExpectingRow(ctx, `
		UPDATE celebrities SET name = ?, profession = ?, image_url = ?, position = ?, is_active = ?
		WHERE id = ?`,
		arg.Name, util.NullStringFromPtr(arg.Profession), util.NullStringFromPtr(arg.ImageURL),
		arg.Position, arg.IsActive, arg.ID)
	if err != nil {
		return model.Celebrity{}, err
	}
	return q.GetCelebrityByID(ctx, arg.ID)
}

// DeleteCelebrity removes a celebrity row.
func (q *Queries) DeleteCelebrity(ctx context.Context, id int64) error {
	return q.execExpectingRow(ctx, "DELETE FROM celebrities WHERE id = ?", id)
}

// Testimonials

const testimonialColumns = "id, content, customer_name, customer_location, customer_image, position, is_active, created_at"

func scanTestimonial(row rowScanner) (model.Testimonial, error) {
	var t model.Testimonial
	var location, image sql.NullString
	err := row.Scan(&t.ID, &t.Content, &t.CustomerName, &location, &image, &t.Position, &t.IsActive, &t.CreatedAt)
	if err != nil {
		return model.Testimonial{}, err
	}
	t.CustomerLocation = util.PtrFromNullString(location)
	t.CustomerImage = util.PtrFromNullString(image)
	return t, nil
}

// ListActiveTestimonials returns active testimonials in display order.
func (q *Queries) ListActiveTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT "+testimonialColumns+
		" FROM testimonials WHERE is_active = 1 ORDER BY position ASC, id ASC")
	if err != nil {
		return nil, err
	}
	return collectRows(rows, scanTestimonial)
}

// ListTestimonials returns every testimonial row.
func (q *Queries) ListTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT "+testimonialColumns+" FROM testimonials ORDER BY position ASC, id ASC")
	if err != nil {
		return nil, err
	}
	return collectRows(rows, scanTestimonial)
}

// GetTestimonialByID returns the testimonial with the given id.
func (q *Queries) GetTestimonialByID(ctx context.Context, id int64) (model.Testimonial, error) {
	return scanTestimonial(q.db.QueryRowContext(ctx, "SELECT "+testimonialColumns+" FROM testimonials WHERE id = ?", id))
}

// CreateTestimonialParams holds the fields required to insert a testimonial.
type CreateTestimonialParams struct {
	Content          string
	CustomerName     string
	CustomerLocation *string
	CustomerImage    *string
	Position         int64
	IsActive         bool
	CreatedAt        time.Time
}

// CreateTestimonial inserts a testimonial and returns the stored row.
func (q *Queries) CreateTestimonial(ctx context.Context, arg CreateTestimonialParams) (model.Testimonial, error) {
	return scanTestimonial(q.db.QueryRowContext(ctx, `
		INSERT INTO testimonials (content, customer_name, customer_location, customer_image, position, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING `+testimonialColumns,
		arg.Content, arg.CustomerName, util.NullStringFromPtr(arg.CustomerLocation),
		util.NullStringFromPtr(arg.CustomerImage), arg.Position, arg.IsActive, arg.CreatedAt))
}

// UpdateTestimonialParams holds the mutable fields of a testimonial.
type UpdateTestimonialParams struct {
	ID               int64
	Content          string
	CustomerName     string
	CustomerLocation *string
	CustomerImage    *string
	Position         int64
	IsActive         bool
}

// UpdateTestimonial replaces the mutable fields of a testimonial.
func (q *Queries) UpdateTestimonial(ctx context.Context, arg UpdateTestimonialParams) (model.Testimonial, error) {
	err := q.execExpectingRow(ctx, `
		UPDATE testimonials SET content = ?, customer_name = ?, customer_location = ?, customer_image = ?,
			position = ?, is_active = ?
		WHERE id = ?`,
		arg.Content, arg.CustomerName, util.NullStringFromPtr(arg.CustomerLocation),
		util.NullStringFromPtr(arg.CustomerImage), arg.Position, arg.IsActive, arg.ID)
	if err != nil {
		return model.Testimonial{}, err
	}
	return q.GetTestimonialByID(ctx, arg.ID)
}

// DeleteTestimonial removes a testimonial row.
func (q *Queries) DeleteTestimonial(ctx context.Context, id int64) error {
	return q.execExpectingRow(ctx, "DELETE FROM testimonials WHERE id = ?", id)
}

// Store locations

const storeLocationColumns = "id, name, address, phone, working_hours, is_active, created_at"

func scanStoreLocation(row rowScanner) (model.StoreLocation, error) {
	var s model.StoreLocation
	var phone, hours sql.NullString
	err := row.Scan(&s.ID, &s.Name, &s.Address, &phone, &hours, &s.IsActive, &s.CreatedAt)
	if err != nil {
		return model.StoreLocation{}, err
	}
	s.Phone = util.PtrFromNullString(phone)
	s.WorkingHours = util.PtrFromNullString(hours)
	return s, nil
}

// ListActiveStoreLocations returns active store locations. No position
// column exists, so rows come back in insertion order.
func (q *Queries) ListActiveStoreLocations(ctx context.Context) ([]model.StoreLocation, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT "+storeLocationColumns+
		" FROM store_locations WHERE is_active = 1 ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	return collectRows(rows, scanStoreLocation)
}

// ListStoreLocations returns every store location row.
func (q *Queries) ListStoreLocations(ctx context.Context) ([]model.StoreLocation, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT "+storeLocationColumns+" FROM store_locations ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	return collectRows(rows, scanStoreLocation)
}

// GetStoreLocationByID returns the store location with the given id.
func (q *Queries) GetStoreLocationByID(ctx context.Context, id int64) (model.StoreLocation, error) {
	return scanStoreLocation(q.db.QueryRowContext(ctx, "SELECT "+storeLocationColumns+" FROM store_locations WHERE id = ?", id))
}

// CreateStoreLocationParams holds the fields required to insert a store location.
type CreateStoreLocationParams struct {
	Name         string
	Address      string
	Phone        *string
	WorkingHours *string
	IsActive     bool
	CreatedAt    time.Time
}

// CreateStoreLocation inserts a store location and returns the stored row.
func (q *Queries) CreateStoreLocation(ctx context.Context, arg CreateStoreLocationParams) (model.StoreLocation, error) {
	return scanStoreLocation(q.db.QueryRowContext(ctx, `
		INSERT INTO store_locations (name, address, phone, working_hours, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING `+storeLocationColumns,
		arg.Name, arg.Address, util.NullStringFromPtr(arg.Phone),
		util.NullStringFromPtr(arg.WorkingHours), arg.IsActive, arg.CreatedAt))
}

// UpdateStoreLocationParams holds the mutable fields of a store location.
type UpdateStoreLocationParams struct {
	ID           int64
	Name         string
	Address      string
	Phone        *string
	WorkingHours *string
	IsActive     bool
}

// UpdateStoreLocation replaces the mutable fields of a store location.
func (q *Queries) UpdateStoreLocation(ctx context.Context, arg UpdateStoreLocationParams) (model.StoreLocation, error) {
	err := q.execExpectingRow(ctx, `
		UPDATE store_locations SET name = ?, address = ?, phone = ?, working_hours = ?, is_active = ?
		WHERE id = ?`,
		arg.Name, arg.Address, util.NullStringFromPtr(arg.Phone),
		util.NullStringFromPtr(arg.WorkingHours), arg.IsActive, arg.ID)
	if err != nil {
		return model.StoreLocation{}, err
	}
	return q.GetStoreLocationByID(ctx, arg.ID)
}

// DeleteStoreLocation removes a store location row.
func (q *Queries) DeleteStoreLocation(ctx context.Context, id int64) error {
	return q.execExpectingRow(ctx, "DELETE FROM store_locations WHERE id = ?", id)
}
