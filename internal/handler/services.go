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

type serviceRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Image       *string `json:"image"`
	Position    int64   `json:"position"`
	Status      string  `json:"status"`
}

// NewServiceResource builds the /api/services CRUD resource. A service is
// soft-deleted by setting status=inactive through PUT; it drops out of the
// public list but stays addressable by id.
func NewServiceResource(queries *store.Queries) *Resource[model.Service] {
	return &Resource[model.Service]{
		Name:    "service",
		ItemKey: "service",
		ListKey: "services",
		Msg: Messages{
			ListError:   "Lỗi khi lấy danh sách dịch vụ",
			CreateOK:    "Đã thêm dịch vụ thành công",
			CreateError: "Lỗi khi thêm dịch vụ",
			UpdateOK:    "Đã cập nhật dịch vụ thành công",
			UpdateError: "Lỗi khi cập nhật dịch vụ",
			DeleteOK:    "Đã xóa dịch vụ thành công",
			DeleteError: "Lỗi khi xóa dịch vụ",
			NotFound:    "Không tìm thấy dịch vụ",
		},
		List: func(ctx context.Context, includeInactive bool) ([]model.Service, error) {
			if includeInactive {
				return queries.ListServices(ctx)
			}
			return queries.ListActiveServices(ctx)
		},
		Get: queries.GetServiceByID,
		Create: func(ctx context.Context, r *http.Request) (model.Service, error) {
			var req serviceRequest
			if err := decodeJSON(r, &req); err != nil {
				return model.Service{}, errValidation("Vui lòng điền tên và giá dịch vụ")
			}
			if req.Name == "" || req.Price <= 0 {
				return model.Service{}, errValidation("Vui lòng điền tên và giá dịch vụ")
			}
			if req.Status == "" {
				req.Status = store.ServiceStatusActive
			}
			return queries.CreateService(ctx, store.CreateServiceParams{
				Name:        req.Name,
				Description: req.Description,
				Price:       req.Price,
				Image:       req.Image,
				Position:    req.Position,
				Status:      req.Status,
				CreatedAt:   time.Now(),
			})
		},
		Update: func(ctx context.Context, id int64, r *http.Request) (model.Service, error) {
			var req serviceRequest
			if err := decodeJSON(r, &req); err != nil {
				return model.Service{}, errValidation("Vui lòng điền tên và giá dịch vụ")
			}
			if req.Name == "" || req.Price <= 0 {
				return model.Service{}, errValidation("Vui lòng điền tên và giá dịch vụ")
			}
			if req.Status == "" {
				req.Status = store.ServiceStatusActive
			}
			return queries.UpdateService(ctx, store.UpdateServiceParams{
				ID:          id,
				Name:        req.Name,
				Description: req.Description,
				Price:       req.Price,
				Image:       req.Image,
				Position:    req.Position,
				Status:      req.Status,
			})
		},
		Delete: queries.DeleteService,
	}
}
