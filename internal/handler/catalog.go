// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/nailroom/nailroom-go/internal/model"
	"github.com/nailroom/nailroom-go/internal/store"
)

// activeOrDefault treats an absent is_active field as visible, matching how
// the admin forms submit partial payloads.
func activeOrDefault(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}

type menuItemRequest struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Position int64  `json:"position"`
	IsActive *bool  `json:"is_active"`
}

// NewMenuResource builds the /api/menu CRUD resource.
func NewMenuResource(queries *store.Queries) *Resource[model.MenuItem] {
	const msgInvalid = "Vui lòng điền tên và đường dẫn menu"
	return &Resource[model.MenuItem]{
		Name:    "menu",
		ItemKey: "menu",
		ListKey: "menu",
		Msg: Messages{
			ListError:   "Lỗi khi lấy danh sách menu",
			CreateOK:    "Đã thêm menu thành công",
			CreateError: "Lỗi khi thêm menu",
			UpdateOK:    "Đã cập nhật menu thành công",
			UpdateError: "Lỗi khi cập nhật menu",
			DeleteOK:    "Đã xóa menu thành công",
			DeleteError: "Lỗi khi xóa menu",
			NotFound:    "Không tìm thấy menu",
		},
		List: func(ctx context.Context, includeInactive bool) ([]model.MenuItem, error) {
			if includeInactive {
				return queries.ListMenuItems(ctx)
			}
			return queries.ListActiveMenuItems(ctx)
		},
		Get: queries.GetMenuItemByID,
		Create: func(ctx context.Context, r *http.Request) (model.MenuItem, error) {
			var req menuItemRequest
			if err := decodeJSON(r, &req); err != nil {
				return model.MenuItem{}, errValidation(msgInvalid)
			}
			if req.Name == "" || req.URL == "" {
				return model.MenuItem{}, errValidation(msgInvalid)
			}
			return queries.CreateMenuItem(ctx, store.CreateMenuItemParams{
				Name:      req.Name,
				URL:       req.URL,
				Position:  req.Position,
				IsActive:  activeOrDefault(req.IsActive),
				CreatedAt: time.Now(),
			})
		},
		Update: func(ctx context.Context, id int64, r *http.Request) (model.MenuItem, error) {
			var req menuItemRequest
			if err := decodeJSON(r, &req); err != nil {
				return model.MenuItem{}, errValidation(msgInvalid)
			}
			if req.Name == "" || req.URL == "" {
				return model.MenuItem{}, errValidation(msgInvalid)
			}
			return queries.UpdateMenuItem(ctx, store.UpdateMenuItemParams{
				ID:       id,
				Name:     req.Name,
				URL:      req.URL,
				Position: req.Position,
				IsActive: activeOrDefault(req.IsActive),
			})
		},
		Delete: queries.DeleteMenuItem,
	}
}

type sliderRequest struct {
	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	ButtonText  *string `json:"button_text"`
	ButtonURL   *string `json:"button_url"`
	Position    int64   `json:"position"`
	IsActive    *bool   `json:"is_active"`
}

// NewSliderResource builds the /api/sliders CRUD resource.
func NewSliderResource(queries *store.Queries) *Resource[model.Slider] {
	const msgInvalid = "Vui lòng tải lên hình ảnh slider"
	return &Resource[model.Slider]{
		Name:    "slider",
		ItemKey: "slider",
		ListKey: "sliders",
		Msg: Messages{
			ListError:   "Lỗi khi lấy danh sách slider",
			CreateOK:    "Đã thêm slider thành công",
			CreateError: "Lỗi khi thêm slider",
			UpdateOK:    "Đã cập nhật slider thành công",
			UpdateError: "Lỗi khi cập nhật slider",
			DeleteOK:    "Đã xóa slider thành công",
			DeleteError: "Lỗi khi xóa slider",
			NotFound:    "Không tìm thấy slider",
		},
		List: func(ctx context.Context, includeInactive bool) ([]model.Slider, error) {
			if includeInactive {
				return queries.ListSliders(ctx)
			}
			return queries.ListActiveSliders(ctx)
		},
		Get: queries.GetSliderByID,
		Create: func(ctx context.Context, r *http.Request) (model.Slider, error) {
			var req sliderRequest
			if err := decodeJSON(r, &req); err != nil {
				return model.Slider{}, errValidation(msgInvalid)
			}
			if req.ImageURL == nil || *req.ImageURL == "" {
				return model.Slider{}, errValidation(msgInvalid)
			}
			return queries.CreateSlider(ctx, store.CreateSliderParams{
				Title:       req.Title,
				Subtitle:    req.Subtitle,
				Description: req.Description,
				ImageURL:    req.ImageURL,
				ButtonText:  req.ButtonText,
				ButtonURL:   req.ButtonURL,
				Position:    req.Position,
				IsActive:    activeOrDefault(req.IsActive),
				CreatedAt:   time.Now(),
			})
		},
		Update: func(ctx context.Context, id int64, r *http.Request) (model.Slider, error) {
			var req sliderRequest
			if err := decodeJSON(r, &req); err != nil {
				return model.Slider{}, errValidation(msgInvalid)
			}
			if req.ImageURL == nil || *req.ImageURL == "" {
				return model.Slider{}, errValidation(msgInvalid)
			}
			return queries.UpdateSlider(ctx, store.UpdateSliderParams{
				ID:          id,
				Title:       req.Title,
				Subtitle:    req.Subtitle,
				Description: req.Description,
				ImageURL:    req.ImageURL,
				ButtonText:  req.ButtonText,
				ButtonURL:   req.ButtonURL,
				Position:    req.Position,
				IsActive:    activeOrDefault(req.IsActive),
			})
		},
		Delete: queries.DeleteSlider,
	}
}

type galleryItemRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    string  `json:"image_url"`
	Category    *string `json:"category"`
	Position    int64   `json:"position"`
	IsActive    *bool   `json:"is_active"`
}

// NewGalleryResource builds the /api/gallery CRUD resource.
func NewGalleryResource(queries *store.Queries) *Resource[model.GalleryItem] {
	const msgInvalid = "Vui lòng tải lên hình ảnh"
	return &Resource[model.GalleryItem]{
		Name:    "gallery item",
		ItemKey: "gallery",
		ListKey: "gallery",
		Msg: Messages{
			ListError:   "Lỗi khi lấy thư viện ảnh",
			CreateOK:    "Đã thêm ảnh thành công",
			CreateError: "Lỗi khi thêm ảnh",
			UpdateOK:    "Đã cập nhật ảnh thành công",
			UpdateError: "Lỗi khi cập nhật ảnh",
			DeleteOK:    "Đã xóa ảnh thành công",
			DeleteError: "Lỗi khi xóa ảnh",
			NotFound:    "Không tìm thấy ảnh",
		},
		List: func(ctx context.Context, includeInactive bool) ([]model.GalleryItem, error) {
			if includeInactive {
				return queries.ListGalleryItems(ctx)
			}
			return queries.ListActiveGalleryItems(ctx)
		},
		Get: queries.GetGalleryItemByID,
		Create: func(ctx context.Context, r *http.Request) (model.GalleryItem, error) {
			var req galleryItemRequest
			if err := decodeJSON(r, &req); err != nil {
				return model.GalleryItem{}, errValidation(msgInvalid)
			}
			if req.ImageURL == "" {
				return model.GalleryItem{}, errValidation(msgInvalid)
			}
			return queries.CreateGalleryItem(ctx, store.CreateGalleryItemParams{
				Title:       req.Title,
				Description: req.Description,
				ImageURL:    req.ImageURL,
				Category:    req.Category,
				Position:    req.Position,
				IsActive:    activeOrDefault(req.IsActive),
				CreatedAt:   time.Now(),
			})
		},
		Update: func(ctx context.Context, id int64, r *http.Request) (model.GalleryItem, error) {
			var req galleryItemRequest
			if err := decodeJSON(r, &req); err != nil {
				return model.GalleryItem{}, errValidation(msgInvalid)
			}
			if req.ImageURL == "" {
				return model.GalleryItem{}, errValidation(msgInvalid)
			}
			return queries.UpdateGalleryItem(ctx, store.UpdateGalleryItemParams{
				ID:          id,
				Title:       req.Title,
				Description: req.Description,
				ImageURL:    req.ImageURL,
				Category:    req.Category,
				Position:    req.Position,
				IsActive:    activeOrDefault(req.IsActive),
			})
		},
		Delete: queries.DeleteGalleryItem,
	}
}

type celebrityRequest struct {
	Name       string  `json:"name"`
	Profession *string `json:"profession"`
	ImageURL   *string `json:"image_url"`
	Position   int64   `json:"position"`
	IsActive   *bool   `json:"is_active"`
}

// NewCelebrityResource builds the /api/celebrities CRUD resource.
func NewCelebrityResource(queries *store.Queries) *Resource[model.Celebrity] {
	const msgInvalid = "Vui lòng điền tên celebrity"
	return &Resource[model.Celebrity]{
		Name:    "celebrity",
		ItemKey: "celebrity",
		ListKey: "celebrities",
		Msg: Messages{
			ListError:   "Lỗi khi lấy danh sách celebrities",
			CreateOK:    "Đã thêm celebrity thành công",
			CreateError: "Lỗi khi thêm celebrity",
			UpdateOK:    "Đã cập nhật celebrity thành công",
			UpdateError: "Lỗi khi cập nhật celebrity",
			DeleteOK:    "Đã xóa celebrity thành công",
			DeleteError: "Lỗi khi xóa celebrity",
			NotFound:    "Không tìm thấy celebrity",
		},
		List: func(ctx context.Context, includeInactive bool) ([]model.Celebrity, error) {
			if includeInactive {
				return queries.ListCelebrities(ctx)
			}
			return queries.ListActiveCelebrities(ctx)
		},
		Get: queries.GetCelebrityByID,
		Create: func(ctx context.Context, r *http.Request) (model.Celebrity, error) {
			var req celebrityRequest
			if err := decodeJSON(r, &req); err != nil {
				return model.Celebrity{}, errValidation(msgInvalid)
			}
			if req.Name == "" {
				return model.Celebrity{}, errValidation(msgInvalid)
			}
			return queries.CreateCelebrity(ctx, store.CreateCelebrityParams{
				Name:       req.Name,
				Profession: req.Profession,
				ImageURL:   req.ImageURL,
				Position:   req.Position,
				IsActive:   activeOrDefault(req.IsActive),
				CreatedAt:  time.Now(),
			})
		},
		Update: func(ctx context.Context, id int64, r *http.Request) (model.Celebrity, error) {
			var req celebrityRequest
			if err := decodeJSON(r, &req); err != nil {
				return model.Celebrity{}, errValidation(msgInvalid)
			}
			if req.Name == "" {
				return model.Celebrity{}, errValidation(msgInvalid)
			}
			return queries.UpdateCelebrity(ctx, store.UpdateCelebrityParams{
				ID:         id,
				Name:       req.Name,
				Profession: req.Profession,
				ImageURL:   req.ImageURL,
				Position:   req.Position,
				IsActive:   activeOrDefault(req.IsActive),
			})
		},
		Delete: queries.DeleteCelebrity,
	}
}

type testimonialRequest struct {
	Content          string  `json:"content"`
	CustomerName     string  `json:"customer_name"`
	CustomerLocation *string `json:"customer_location"`
	CustomerImage    *string `json:"customer_image"`
	Position         int64   `json:"position"`
	IsActive         *bool   `json:"is_active"`
}

// NewTestimonialResource builds the /api/testimonials CRUD resource.
func NewTestimonialResource(queries *store.Queries) *Resource[model.Testimonial] {
	const msgInvalid = "Vui lòng điền nội dung và tên khách hàng"
	return &Resource[model.Testimonial]{
		Name:    "testimonial",
		ItemKey: "testimonial",
		ListKey: "testimonials",
		Msg: Messages{
			ListError:   "Lỗi khi lấy danh sách testimonials",
			CreateOK:    "Đã thêm testimonial thành công",
			CreateError: "Lỗi khi thêm testimonial",
			UpdateOK:    "Đã cập nhật testimonial thành công",
			UpdateError: "Lỗi khi cập nhật testimonial",
			DeleteOK:    "Đã xóa testimonial thành công",
			DeleteError: "Lỗi khi xóa testimonial",
			NotFound:    "Không tìm thấy testimonial",
		},
		List: func(ctx context.Context, includeInactive bool) ([]model.Testimonial, error) {
			if includeInactive {
				return queries.ListTestimonials(ctx)
			}
			return queries.ListActiveTestimonials(ctx)
		},
		Get: queries.GetTestimonialByID,
		Create: func(ctx context.Context, r *http.Request) (model.Testimonial, error) {
			var req testimonialRequest
			if err := decodeJSON(r, &req); err != nil {
				return model.Testimonial{}, errValidation(msgInvalid)
			}
			if req.Content == "" || req.CustomerName == "" {
				return model.Testimonial{}, errValidation(msgInvalid)
			}
			return queries.CreateTestimonial(ctx, store.CreateTestimonialParams{
				Content:          req.Content,
				CustomerName:     req.CustomerName,
				CustomerLocation: req.CustomerLocation,
				CustomerImage:    req.CustomerImage,
				Position:         req.Position,
				IsActive:         activeOrDefault(req.IsActive),
				CreatedAt:        time.Now(),
			})
		},
		Update: func(ctx context.Context, id int64, r *http.Request) (model.Testimonial, error) {
			var req testimonialRequest
			if err := decodeJSON(r, &req); err != nil {
				return model.Testimonial{}, errValidation(msgInvalid)
			}
			if req.Content == "" || req.CustomerName == "" {
				return model.Testimonial{}, errValidation(msgInvalid)
			}
			return queries.UpdateTestimonial(ctx, store.UpdateTestimonialParams{
				ID:               id,
				Content:          req.Content,
				CustomerName:     req.CustomerName,
				CustomerLocation: req.CustomerLocation,
				CustomerImage:    req.CustomerImage,
				Position:         req.Position,
				IsActive:         activeOrDefault(req.IsActive),
			})
		},
		Delete: queries.DeleteTestimonial,
	}
}

type storeLocationRequest struct {
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Phone        *string `json:"phone"`
	WorkingHours *string `json:"working_hours"`
	IsActive     *bool   `json:"is_active"`
}

// NewStoreResource builds the /api/stores CRUD resource.
func NewStoreResource(queries *store.Queries) *Resource[model.StoreLocation] {
	const msgInvalid = "Vui lòng điền tên và địa chỉ cửa hàng"
	return &Resource[model.StoreLocation]{
		Name:    "store",
		ItemKey: "store",
		ListKey: "stores",
		Msg: Messages{
			ListError:   "Lỗi khi lấy danh sách cửa hàng",
			CreateOK:    "Đã thêm cửa hàng thành công",
			CreateError: "Lỗi khi thêm cửa hàng",
			UpdateOK:    "Đã cập nhật cửa hàng thành công",
			UpdateError: "Lỗi khi cập nhật cửa hàng",
			DeleteOK:    "Đã xóa cửa hàng thành công",
			DeleteError: "Lỗi khi xóa cửa hàng",
			NotFound:    "Không tìm thấy cửa hàng",
		},
		List: func(ctx context.Context, includeInactive bool) ([]model.StoreLocation, error) {
			if includeInactive {
				return queries.ListStoreLocations(ctx)
			}
			return queries.ListActiveStoreLocations(ctx)
		},
		Get: queries.GetStoreLocationByID,
		Create: func(ctx context.Context, r *http.Request) (model.StoreLocation, error) {
			var req storeLocationRequest
			if err := decodeJSON(r, &req); err != nil {
				return model.StoreLocation{}, errValidation(msgInvalid)
			}
			if req.Name == "" || req.Address == "" {
				return model.StoreLocation{}, errValidation(msgInvalid)
			}
			return queries.CreateStoreLocation(ctx, store.CreateStoreLocationParams{
				Name:         req.Name,
				Address:      req.Address,
				Phone:        req.Phone,
				WorkingHours: req.WorkingHours,
				IsActive:     activeOrDefault(req.IsActive),
				CreatedAt:    time.Now(),
			})
		},
		Update: func(ctx context.Context, id int64, r *http.Request) (model.StoreLocation, error) {
			var req storeLocationRequest
			if err := decodeJSON(r, &req); err != nil {
				return model.StoreLocation{}, errValidation(msgInvalid)
			}
			if req.Name == "" || req.Address == "" {
				return model.StoreLocation{}, errValidation(msgInvalid)
			}
			return queries.UpdateStoreLocation(ctx, store.UpdateStoreLocationParams{
				ID:           id,
				Name:         req.Name,
				Address:      req.Address,
				Phone:        req.Phone,
				WorkingHours: req.WorkingHours,
				IsActive:     activeOrDefault(req.IsActive),
			})
		},
		Delete: queries.DeleteStoreLocation,
	}
}
