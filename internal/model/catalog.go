package model

import "time"

// Service is a priced salon service shown on the marketing site.
type Service struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	Image       *string   `json:"image"`
	Position    int64     `json:"position"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// MenuItem is a navigation entry, ordered by position.
type MenuItem struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Position  int64     `json:"position"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Slider is a hero carousel slide.
type Slider struct {
	ID          int64     `json:"id"`
	Title       *string   `json:"title"`
	Subtitle    *string   `json:"subtitle"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"image_url"`
	ButtonText  *string   `json:"button_text"`
	ButtonURL   *string   `json:"button_url"`
	Position    int64     `json:"position"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// GalleryItem is a portfolio image.
type GalleryItem struct {
	ID          int64     `json:"id"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	ImageURL    string    `json:"image_url"`
	Category    *string   `json:"category"`
	Position    int64     `json:"position"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// Celebrity is a notable customer shown in the KOL section.
type Celebrity struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Profession *string   `json:"profession"`
	ImageURL   *string   `json:"image_url"`
	Position   int64     `json:"position"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// Testimonial is a customer review.
type Testimonial struct {
	ID               int64     `json:"id"`
	Content          string    `json:"content"`
	CustomerName     string    `json:"customer_name"`
	CustomerLocation *string   `json:"customer_location"`
	CustomerImage    *string   `json:"customer_image"`
	Position         int64     `json:"position"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
}

// StoreLocation is a physical salon branch.
type StoreLocation struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Phone        *string   `json:"phone"`
	WorkingHours *string   `json:"working_hours"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
