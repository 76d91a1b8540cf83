// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nailroom/nailroom-go/internal/model"
	"github.com/nailroom/nailroom-go/internal/store"
)

func TestRegisterLoginFlow(t *testing.T) {
	app := newTestApp(t)

	// Missing required fields
	status, env, _ := app.request(t, http.MethodPost, "/api/register", map[string]any{
		"username": "linh",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, env["success"])

	// Successful registration opens a session
	status, env, _ = app.request(t, http.MethodPost, "/api/register", map[string]any{
		"username": "linh",
		"email":    "linh@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Đăng ký thành công", env["message"])
	user, ok := env["user"].(map[string]any)
	require.True(t, ok, "response should carry the public user view")
	assert.Equal(t, "user", user["role"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "password_hash")

	// Duplicate username is a conflict
	status, env, _ = app.request(t, http.MethodPost, "/api/register", map[string]any{
		"username": "linh",
		"email":    "other@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, env["message"], "tồn tại")

	// Wrong password stays a generic 401
	status, env, _ = app.request(t, http.MethodPost, "/api/login", map[string]any{
		"username": "linh",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Tên đăng nhập hoặc mật khẩu không đúng", env["message"])

	status, env, _ = app.request(t, http.MethodPost, "/api/login", map[string]any{
		"username": "linh",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Đăng nhập thành công", env["message"])

	status, env, _ = app.request(t, http.MethodGet, "/api/auth-status", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, env["authenticated"])

	status, _, _ = app.request(t, http.MethodPost, "/api/logout", nil)
	require.Equal(t, http.StatusOK, status)

	status, env, _ = app.request(t, http.MethodGet, "/api/auth-status", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, env["authenticated"])
}

func TestServiceGatingAndSoftDelete(t *testing.T) {
	app := newTestApp(t)

	// Anonymous writes are rejected
	status, env, _ := app.request(t, http.MethodPost, "/api/services", map[string]any{
		"name":  "Sơn gel",
		"price": 150000,
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Chưa đăng nhập", env["message"])

	// A regular account is not enough
	status, _, _ = app.request(t, http.MethodPost, "/api/register", map[string]any{
		"username": "khach",
		"email":    "khach@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, status)
	status, env, _ = app.request(t, http.MethodPost, "/api/services", map[string]any{
		"name":  "Sơn gel",
		"price": 150000,
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Không có quyền truy cập", env["message"])
	status, _, _ = app.request(t, http.MethodPost, "/api/logout", nil)
	require.Equal(t, http.StatusOK, status)

	app.loginAsAdmin(t)

	// Validation before insert
	status, env, _ = app.request(t, http.MethodPost, "/api/services", map[string]any{
		"name": "Sơn gel",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Vui lòng điền tên và giá dịch vụ", env["message"])

	status, env, _ = app.request(t, http.MethodPost, "/api/services", map[string]any{
		"name":  "Sơn gel",
		"price": 150000,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Đã thêm dịch vụ thành công", env["message"])
	created := env["service"].(map[string]any)
	id := int64(created["id"].(float64))

	status, env, _ = app.request(t, http.MethodGet, "/api/services", nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, env["services"], 1)

	// Soft delete: status=inactive hides the row from the public list
	status, _, _ = app.request(t, http.MethodPut, abs("/api/services/", id), map[string]any{
		"name":   "Sơn gel",
		"price":  150000,
		"status": "inactive",
	})
	require.Equal(t, http.StatusOK, status)

	status, env, _ = app.request(t, http.MethodGet, "/api/services", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, env["services"], 0)

	// ...but admins still see it with ?all=1 and by id
	status, env, _ = app.request(t, http.MethodGet, "/api/services?all=1", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, env["services"], 1)

	status, _, _ = app.request(t, http.MethodGet, abs("/api/services/", id), nil)
	assert.Equal(t, http.StatusOK, status)

	// Missing rows are 404s
	status, env, _ = app.request(t, http.MethodPut, "/api/services/9999", map[string]any{
		"name":  "X",
		"price": 1,
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Không tìm thấy dịch vụ", env["message"])

	status, _, _ = app.request(t, http.MethodDelete, abs("/api/services/", id), nil)
	require.Equal(t, http.StatusOK, status)
	status, _, _ = app.request(t, http.MethodDelete, abs("/api/services/", id), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestContentUpsert(t *testing.T) {
	app := newTestApp(t)
	app.loginAsAdmin(t)

	status, _, _ := app.request(t, http.MethodPost, "/api/content/hero", map[string]any{
		"title":      "Xin chào",
		"hero_image": "/images/hero.png",
	})
	require.Equal(t, http.StatusOK, status)

	// Re-posting a key replaces its value, never duplicates
	status, _, _ = app.request(t, http.MethodPost, "/api/content/hero", map[string]any{
		"title": "Nailroom xin chào",
	})
	require.Equal(t, http.StatusOK, status)

	status, env, _ := app.request(t, http.MethodGet, "/api/content/hero", nil)
	require.Equal(t, http.StatusOK, status)
	content := env["content"].(map[string]any)
	require.Len(t, content, 2)

	title := content["title"].(map[string]any)
	assert.Equal(t, "Nailroom xin chào", title["value"])
	assert.Equal(t, model.ContentTypeText, title["type"])

	image := content["hero_image"].(map[string]any)
	assert.Equal(t, model.ContentTypeImage, image["type"])

	// Markup is sanitized on write
	status, _, _ = app.request(t, http.MethodPost, "/api/content/hero", map[string]any{
		"title": "<script>alert(1)</script>Ưu đãi",
	})
	require.Equal(t, http.StatusOK, status)
	status, env, _ = app.request(t, http.MethodGet, "/api/content/hero", nil)
	require.Equal(t, http.StatusOK, status)
	title = env["content"].(map[string]any)["title"].(map[string]any)
	assert.NotContains(t, title["value"], "<script>")
}

func TestRegistrationFlow(t *testing.T) {
	app := newTestApp(t)

	status, env, _ := app.request(t, http.MethodPost, "/api/registrations", map[string]any{
		"full_name": "Nguyễn Thị Linh",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Vui lòng điền họ tên và số điện thoại", env["message"])

	status, env, _ = app.request(t, http.MethodPost, "/api/registrations", map[string]any{
		"full_name":        "Nguyễn Thị Linh",
		"phone":            "0901234567",
		"service_interest": "Sơn gel",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Đã gửi thông tin đăng ký thành công", env["message"])
	reg := env["registration"].(map[string]any)
	assert.Equal(t, model.StatusPending, reg["status"])
	id := int64(reg["id"].(float64))

	// The list is admin only
	status, _, _ = app.request(t, http.MethodGet, "/api/registrations", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	app.loginAsAdmin(t)

	status, env, _ = app.request(t, http.MethodGet, "/api/registrations?service="+url.QueryEscape("Sơn gel"), nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, env["registrations"], 1)

	status, env, _ = app.request(t, http.MethodPut, abs("/api/registrations/", id), map[string]any{
		"status": model.StatusConfirmed,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Đã cập nhật trạng thái thành công", env["message"])

	status, env, _ = app.request(t, http.MethodPut, abs("/api/registrations/", id), map[string]any{
		"status": "nonsense",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _, _ = app.request(t, http.MethodPut, "/api/registrations/9999", map[string]any{
		"status": model.StatusDone,
	})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRegistrationExport(t *testing.T) {
	app := newTestApp(t)

	status, _, _ := app.request(t, http.MethodPost, "/api/registrations", map[string]any{
		"full_name": "Trần Văn An",
		"phone":     "0912345678",
	})
	require.Equal(t, http.StatusOK, status)

	app.loginAsAdmin(t)

	// Default format is JSON rows
	status, env, _ := app.request(t, http.MethodGet, "/api/registrations/export", nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, env["data"], 1)

	// CSV carries a BOM and Vietnamese headers
	status, _, raw := app.request(t, http.MethodGet, "/api/registrations/export?format=csv", nil)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}), "CSV should start with a UTF-8 BOM")

	body := string(raw)
	assert.True(t, strings.Contains(body, "Họ tên"))
	assert.True(t, strings.Contains(body, "Trần Văn An"))
}

func TestAppointmentsAndStats(t *testing.T) {
	app := newTestApp(t)

	status, env, _ := app.request(t, http.MethodPost, "/api/appointments", map[string]any{
		"name":  "Phạm Thu Hà",
		"phone": "0987654321",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	today := time.Now().Format("2006-01-02")
	status, env, _ = app.request(t, http.MethodPost, "/api/appointments", map[string]any{
		"name":    "Phạm Thu Hà",
		"phone":   "0987654321",
		"service": "Sơn gel",
		"date":    today,
		"time":    "14:00",
	})
	require.Equal(t, http.StatusOK, status)
	appt := env["appointment"].(map[string]any)
	assert.Equal(t, model.StatusPending, appt["status"])
	id := int64(appt["id"].(float64))

	app.loginAsAdmin(t)

	status, env, _ = app.request(t, http.MethodGet, "/api/admin/appointments?status=pending", nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, env["appointments"], 1)

	// Mark done so the revenue stat has something to sum
	ctx := context.Background()
	_, err := app.queries.CreateService(ctx, store.CreateServiceParams{
		Name:      "Sơn gel",
		Price:     150000,
		Status:    store.ServiceStatusActive,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	status, _, _ = app.request(t, http.MethodPut, abs("/api/admin/appointments/", id), map[string]any{
		"status": model.StatusDone,
	})
	require.Equal(t, http.StatusOK, status)

	status, env, _ = app.request(t, http.MethodGet, "/api/admin/stats/appointments", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), env["today"])

	status, env, _ = app.request(t, http.MethodGet, "/api/admin/stats/revenue", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(150000), env["total"])

	status, env, _ = app.request(t, http.MethodGet, "/api/admin/stats/services", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), env["total"])
}

func TestCustomerManagement(t *testing.T) {
	app := newTestApp(t)
	app.loginAsAdmin(t)

	status, env, _ := app.request(t, http.MethodPost, "/api/admin/customers", map[string]any{
		"username": "staff",
		"email":    "staff@example.com",
		"password": "secret123",
		"fullName": "Lê Minh Châu",
	})
	require.Equal(t, http.StatusOK, status)
	customer := env["customer"].(map[string]any)
	assert.Equal(t, "user", customer["role"])
	assert.NotContains(t, customer, "password")
	assert.NotContains(t, customer, "password_hash")
	id := int64(customer["id"].(float64))

	status, env, _ = app.request(t, http.MethodGet, "/api/admin/stats/customers", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), env["total"])

	status, env, _ = app.request(t, http.MethodPut, abs("/api/admin/customers/", id), map[string]any{
		"email": "staff@example.com",
		"role":  model.RoleAdmin,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "admin", env["customer"].(map[string]any)["role"])

	status, _, _ = app.request(t, http.MethodDelete, abs("/api/admin/customers/", id), nil)
	require.Equal(t, http.StatusOK, status)

	status, _, _ = app.request(t, http.MethodGet, abs("/api/admin/customers/", id), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestPageBuilder(t *testing.T) {
	app := newTestApp(t)
	app.loginAsAdmin(t)

	ctx := context.Background()
	page, err := app.queries.CreatePage(ctx, store.CreatePageParams{
		Name:      "home",
		Title:     "Trang chủ",
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	status, env, _ := app.request(t, http.MethodGet, "/api/pages", nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, env["pages"], 1)

	heading := "Giới thiệu"
	status, env, _ = app.request(t, http.MethodPost, abs("/api/pages/", page.ID)+"/sections", map[string]any{
		"heading":  heading,
		"position": 1,
	})
	require.Equal(t, http.StatusOK, status)
	section := env["section"].(map[string]any)
	sectionID := int64(section["id"].(float64))

	status, env, _ = app.request(t, http.MethodGet, abs("/api/pages/", page.ID), nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, env["sections"], 1)

	status, env, _ = app.request(t, http.MethodPost, abs("/api/sections/", sectionID)+"/content", map[string]any{
		"label": "intro",
		"value": "Hệ thống tiệm nail",
	})
	require.Equal(t, http.StatusOK, status)

	// Deleting the section cascades to its content
	status, _, _ = app.request(t, http.MethodDelete, abs("/api/sections/", sectionID), nil)
	require.Equal(t, http.StatusOK, status)

	items, err := app.queries.ListContentItemsBySection(ctx, sectionID)
	require.NoError(t, err)
	assert.Len(t, items, 0)

	// Sections on a missing page are a 404
	status, _, _ = app.request(t, http.MethodPost, "/api/pages/9999/sections", map[string]any{
		"heading": heading,
	})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestEventLogEndpoint(t *testing.T) {
	app := newTestApp(t)
	app.loginAsAdmin(t)

	ctx := context.Background()
	for _, e := range []struct {
		level, message string
	}{
		{model.EventLevelInfo, "seeded"},
		{model.EventLevelError, "database lock"},
	} {
		_, err := app.queries.CreateEvent(ctx, store.CreateEventParams{
			Level:     e.level,
			Category:  model.EventCategorySystem,
			Message:   e.message,
			Metadata:  "{}",
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)
	}

	status, env, _ := app.request(t, http.MethodGet, "/api/admin/events", nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, env["events"], 2)

	status, env, _ = app.request(t, http.MethodGet, "/api/admin/events?level=error", nil)
	require.Equal(t, http.StatusOK, status)
	events := env["events"].([]any)
	require.Len(t, events, 1)
	assert.Equal(t, "database lock", events[0].(map[string]any)["message"])
}
