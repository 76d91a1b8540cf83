// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nailroom/nailroom-go/internal/auth"
	"github.com/nailroom/nailroom-go/internal/model"
)

// Default admin credentials
const (
	DefaultAdminUsername = "admin"
	DefaultAdminEmail    = "admin@nailroom.vn"
	DefaultAdminPassword = "admin123"
)

// Seed creates initial data in the database: the default admin account,
// the keyed website content every page section reads, and the starter
// catalog rows (menu, celebrities, testimonials, store locations). Each
// group is skipped when data already exists.
func Seed(ctx context.Context, db *sql.DB) error {
	queries := New(db)

	if err := seedAdmin(ctx, queries); err != nil {
		return err
	}
	if err := seedWebsiteContent(ctx, queries); err != nil {
		return err
	}
	if err := seedMenuItems(ctx, queries); err != nil {
		return err
	}
	if err := seedCelebrities(ctx, queries); err != nil {
		return err
	}
	if err := seedTestimonials(ctx, queries); err != nil {
		return err
	}
	return seedStoreLocations(ctx, queries)
}

func seedAdmin(ctx context.Context, queries *Queries) error {
	_, err := queries.GetUserByUsername(ctx, DefaultAdminUsername)
	if err == nil {
		slog.Info("admin user already exists, skipping seed")
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking for admin user: %w", err)
	}

	passwordHash, err := auth.HashPassword(DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user, err := queries.CreateUser(ctx, CreateUserParams{
		Username:     DefaultAdminUsername,
		Email:        DefaultAdminEmail,
		PasswordHash: passwordHash,
		Role:         model.RoleAdmin,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	slog.Info("created default admin user",
		"id", user.ID,
		"username", user.Username,
		"password", DefaultAdminPassword,
	)
	return nil
}

func seedWebsiteContent(ctx context.Context, queries *Queries) error {
	type entry struct {
		section string
		key     string
		value   string
		typ     string
	}
	defaults := []entry{
		// Header
		{"header", "logo_text", "NAIL ROOM", model.ContentTypeText},
		{"header", "logo_image", "https://nailroom.vn/wp-content/uploads/2023/11/Mit_s-House-Logo-52.png", model.ContentTypeImage},
		{"header", "phone", "1900 1234", model.ContentTypeText},
		{"header", "email", "info@nailroom.vn", model.ContentTypeText},
		{"header", "facebook_url", "https://www.facebook.com/nailroom.official", model.ContentTypeText},
		{"header", "instagram_url", "https://www.instagram.com/nailroom_official", model.ContentTypeText},
		{"header", "app_store_url", "https://apps.apple.com/vn/app/nailroom/id1234567890", model.ContentTypeText},
		{"header", "google_play_url", "https://play.google.com/store/apps/details?id=com.nailroom.app", model.ContentTypeText},

		// Hero
		{"hero", "title", "NAIL ROOM", model.ContentTypeText},
		{"hero", "slogan", "You Love It, We Nail It!", model.ContentTypeText},
		{"hero", "korean_text", "네일룸", model.ContentTypeText},
		{"hero", "background_image", "https://nailroom.vn/wp-content/uploads/bfi_thumb/Cover-odou4k6zt1b7c8hi14o5t9gbrcgbb5tymcd3a41lii.png", model.ContentTypeImage},

		// Instagram
		{"instagram", "title", "NAILROOM INSTAGRAM", model.ContentTypeText},

		// Celebrities
		{"celebrities", "title", "KHÁCH HÀNG CỦA NAILROOM", model.ContentTypeText},

		// Testimonials
		{"testimonials", "title", "CẢM NHẬN VỀ NAILROOM", model.ContentTypeText},

		// About
		{"about", "quote", "You Love It. We Nail It!", model.ContentTypeText},
		{"about", "title", `VỚI NAIL ROOM "AI CŨNG CÓ THỂ TRỞ NÊN ĐẸP HƠN"`, model.ContentTypeText},
		{"about", "description1", "Xuất phát là một hệ thống Nail Hàn Quốc, Nail Room luôn đặt trọn vẹn trái tim & tâm huyết vào việc làm đẹp cho các nàng.", model.ContentTypeText},
		{"about", "description2", `Bởi thế, slogan của Naill Room là "Ai cũng có thể trở nên đẹp hơn". Đến với Nail Room và ra về như những phụ nữ xinh đẹp hơn, hạnh phúc hơn là điều chúng mình hướng tới.`, model.ContentTypeText},
		{"about", "description3", "Hãy ghé chơi với chúng mình để cảm nhận niềm vui từ việc yêu chiều bản thân nhé!", model.ContentTypeText},
		{"about", "image", "https://nailroom.vn/wp-content/uploads/2019/09/Untitled-5.jpg", model.ContentTypeImage},
		{"about", "button1_text", "GIỚI THIỆU", model.ContentTypeText},
		{"about", "button1_url", "/gioi-thieu.html", model.ContentTypeText},
		{"about", "button2_text", "HỆ THỐNG NAILROOM", model.ContentTypeText},
		{"about", "button2_url", "/he-thong-cua-hang.html", model.ContentTypeText},

		// Services
		{"services", "title", "DỊCH VỤ NAILROOM", model.ContentTypeText},

		// Academy
		{"academy", "title", "HỌC VIỆN MH THE BEAUTY LAB", model.ContentTypeText},
		{"academy", "description", "Học viện đào tạo MH THE BEAUTY LAB là học viện Nail, Mi, Spa, Phun thêu chính thức của NAIL ROOM – Hệ thống nail Hàn Quốc hàng đầu tại Việt Nam hiện nay.", model.ContentTypeText},
		{"academy", "image", "https://nailroom.vn/wp-content/uploads/2019/09/H%E1%BB%8Dc-vi%E1%BB%87n-NR.png", model.ContentTypeImage},

		// Store locations
		{"stores", "title", "Hệ thống Nailroom Stores", model.ContentTypeText},
		{"stores", "subtitle", "15 cơ sở trên toàn quốc", model.ContentTypeText},

		// CTA
		{"cta", "title", "Đặt lịch liền tay", model.ContentTypeText},
		{"cta", "subtitle", "HƯỞNG NGAY ƯU ĐÃI", model.ContentTypeText},
		{"cta", "button_text", "Đặt lịch ngay", model.ContentTypeText},
		{"cta", "phone_number", "1900066811", model.ContentTypeText},

		// Footer
		{"footer", "logo_image", "https://nailroom.vn/wp-content/uploads/2023/11/Mit_s-House-Logo-52.png", model.ContentTypeImage},
		{"footer", "description", "Nailroom - Thương hiệu làm đẹp hàng đầu với 7 năm kinh nghiệm và 15 cơ sở trên toàn quốc. Chúng tôi cam kết mang đến dịch vụ chất lượng cao với đội ngũ chuyên nghiệp.", model.ContentTypeText},
		{"footer", "facebook_url", "https://www.facebook.com/nailroom.official", model.ContentTypeText},
		{"footer", "instagram_url", "https://www.instagram.com/nailroom_official", model.ContentTypeText},
		{"footer", "address", "123 Nguyễn Trãi, Q.1, TP.HCM", model.ContentTypeText},
		{"footer", "phone", "1900 1234 (miễn phí)", model.ContentTypeText},
		{"footer", "email", "info@nailroom.vn", model.ContentTypeText},
		{"footer", "working_hours", "9:00 - 21:00 (Hàng ngày)", model.ContentTypeText},
		{"footer", "copyright", "© 2024 Nailroom. All rights reserved.", model.ContentTypeText},
		{"footer", "app_store_url", "https://apps.apple.com/vn/app/nailroom/id1234567890", model.ContentTypeText},
		{"footer", "google_play_url", "https://play.google.com/store/apps/details?id=com.nailroom.app", model.ContentTypeText},

		// SEO
		{"seo", "meta_title", "NAILROOM - Hệ thống làm đẹp chuyên nghiệp", model.ContentTypeText},
		{"seo", "meta_description", "Dịch vụ làm nail, nối mi, điêu khắc chân mày chuyên nghiệp tại NAILROOM. Đặt lịch ngay!", model.ContentTypeText},
		{"seo", "meta_keywords", "nail, nối mi, làm đẹp, spa, salon", model.ContentTypeText},
	}

	now := time.Now()
	for _, e := range defaults {
		// Existing values are kept so admin edits survive restarts.
		_, err := queries.GetContent(ctx, e.section, e.key)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("checking content %s/%s: %w", e.section, e.key, err)
		}
		value := e.value
		if _, err := queries.UpsertContent(ctx, UpsertContentParams{
			Section:      e.section,
			ContentKey:   e.key,
			ContentValue: &value,
			ContentType:  e.typ,
			UpdatedAt:    now,
		}); err != nil {
			return fmt.Errorf("seeding content %s/%s: %w", e.section, e.key, err)
		}
	}
	return nil
}

func seedMenuItems(ctx context.Context, queries *Queries) error {
	existing, err := queries.ListMenuItems(ctx)
	if err != nil {
		return fmt.Errorf("checking menu items: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	items := []struct {
		name string
		url  string
	}{
		{"Trang chủ", "/"},
		{"Giới thiệu", "/gioi-thieu.html"},
		{"Dịch vụ", "/dich-vu.html"},
		{"Thư viện", "/gallery.html"},
		{"Blog", "/blog.html"},
		{"Liên hệ", "/lien-he.html"},
		{"Đặt lịch", "/dat-lich.html"},
	}
	now := time.Now()
	for i, item := range items {
		if _, err := queries.CreateMenuItem(ctx, CreateMenuItemParams{
			Name:      item.name,
			URL:       item.url,
			Position:  int64(i + 1),
			IsActive:  true,
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("seeding menu item %q: %w", item.name, err)
		}
	}
	return nil
}

func seedCelebrities(ctx context.Context, queries *Queries) error {
	existing, err := queries.ListCelebrities(ctx)
	if err != nil {
		return fmt.Errorf("checking celebrities: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	celebs := []struct {
		name       string
		profession string
	}{
		{"Tóc Tiên", "Ca sĩ"},
		{"Angela Phương Trinh", "Diễn viên"},
		{"Nga Wendy", "Hot girl"},
		{"MLee", "Ca sĩ"},
		{"Liz", "Ca sĩ"},
		{"Khả Ngân", "Hot girl"},
		{"Huyền My", "Á hậu"},
		{"Huyền Lizzie", "Diễn viên"},
		{"Hoàng Ku", "Stylist"},
		{"Hiền Hồ", "Ca sĩ"},
		{"Đan Lê", "Diễn viên"},
		{"Bích Phương", "Ca sĩ"},
		{"An Japan", "Hot girl"},
		{"Ngọc Thảo", "Diễn viên"},
	}
	now := time.Now()
	for i, c := range celebs {
		profession := c.profession
		imageURL := fmt.Sprintf("https://nailroom.vn/wp-content/uploads/2019/09/KOLs_%d.png", i+1)
		if _, err := queries.CreateCelebrity(ctx, CreateCelebrityParams{
			Name:       c.name,
			Profession: &profession,
			ImageURL:   &imageURL,
			Position:   int64(i + 1),
			IsActive:   true,
			CreatedAt:  now,
		}); err != nil {
			return fmt.Errorf("seeding celebrity %q: %w", c.name, err)
		}
	}
	return nil
}

func seedTestimonials(ctx context.Context, queries *Queries) error {
	existing, err := queries.ListTestimonials(ctx)
	if err != nil {
		return fmt.Errorf("checking testimonials: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	entries := []struct {
		content  string
		name     string
		location string
		image    string
	}{
		{
			"Làm nail tại Nail Room max xinh mà còn bền kinh khủng. Mình làm một bộ móng mà chơi dài mấy tháng liền, nhân viên lại dễ thương, cute nữa, mãi yêu Nail Room.",
			"Hương Nhi", "Hà Nội",
			"https://nailroom.vn/wp-content/uploads/bfi_thumb/Feedback1-odlxxa2a5gqsejbilvtqr9ym41jzdcxzaayl03v6co.png",
		},
		{
			"パステル紫ネイル?△ 予想外に三角の飾りが大きいけど、色味は可愛いしなんと言ってもネイル代が安いからまあいっか！って感じ?♥️",
			"Kana Umemura", "Nhật Bản",
			"https://nailroom.vn/wp-content/uploads/bfi_thumb/Feedback4-odlxxcvspyundd7f5f1mgr8zw7630g96aox1fxqzu0.png",
		},
		{
			"Trung thành với duy nhất 1 brand làm nail thui nhé 😍. Chưa thấy ở đâu ổn hơn Nail Room luôn đó. Chính xác là giá cả và chất lượng đi đôi với nhau 😍. Nhân viên còn đáng iu hết sức. Định là sơn trơn thôi mà lần nào cũng phải đính tí lấp lánh ánh bình minh mới chịu được 😂 À mi ở đây cũng rất hợp style siêu tự nhiên, siêu đáng yêu của mình. Hỉ ❤️",
			"Diệp Anh", "Đà Nẵng",
			"https://nailroom.vn/wp-content/uploads/bfi_thumb/Feedback3-odlxxbxyj4td1r8sawmzw9hjatapsr5fyk9jynse08.png",
		},
		{
			"The best nail salon I had in Danang City. Full service include nail service, eyelash extension, facial, and hair wash.",
			"Kim Jeong", "Hàn Quốc",
			"https://nailroom.vn/wp-content/uploads/bfi_thumb/Feedback5-odlxx94fympi2xcvrdf46s75inom5nu8y6b3itwkiw.png",
		},
		{
			"Mình làm móng 3 lần ở NAIL ROOM đều làm với chị Trúc và đều làm đúng một bộ ombre + marble. Tiệm đẹp, nhân viên nhẹ nhàng, dễ thương, đi đúng giờ hay gặp người nổi tiếng =)))))",
			"Vũ Thảo", "Hà Nội",
			"https://nailroom.vn/wp-content/uploads/bfi_thumb/Feedback2-odlxxb04cas2q5a5ge8dbrq2pffcl21pmfm2hdts6g.png",
		},
	}
	now := time.Now()
	for i, e := range entries {
		location, image := e.location, e.image
		if _, err := queries.CreateTestimonial(ctx, CreateTestimonialParams{
			Content:          e.content,
			CustomerName:     e.name,
			CustomerLocation: &location,
			CustomerImage:    &image,
			Position:         int64(i + 1),
			IsActive:         true,
			CreatedAt:        now,
		}); err != nil {
			return fmt.Errorf("seeding testimonial %q: %w", e.name, err)
		}
	}
	return nil
}

func seedStoreLocations(ctx context.Context, queries *Queries) error {
	existing, err := queries.ListStoreLocations(ctx)
	if err != nil {
		return fmt.Errorf("checking store locations: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	stores := []struct {
		name    string
		address string
		phone   string
	}{
		{"Nailroom Nguyễn Trãi", "123 Nguyễn Trãi, Q.1, TP.HCM", "028 3123 4567"},
		{"Nailroom Lê Văn Sỹ", "456 Lê Văn Sỹ, Q.3, TP.HCM", "028 3234 5678"},
		{"Nailroom Cầu Giấy", "789 Cầu Giấy, Hà Nội", "024 3345 6789"},
		{"Nailroom Đà Nẵng", "321 Trần Phú, Đà Nẵng", "0236 3456 789"},
		{"Nailroom Cần Thơ", "654 Nguyễn Văn Cừ, Cần Thơ", "0292 3567 890"},
		{"Nailroom Biên Hòa", "987 Võ Thị Sáu, Biên Hòa", "0251 3678 901"},
	}
	now := time.Now()
	hours := "9:00 - 21:00 (Hàng ngày)"
	for _, s := range stores {
		phone := s.phone
		workingHours := hours
		if _, err := queries.CreateStoreLocation(ctx, CreateStoreLocationParams{
			Name:         s.name,
			Address:      s.address,
			Phone:        &phone,
			WorkingHours: &workingHours,
			IsActive:     true,
			CreatedAt:    now,
		}); err != nil {
			return fmt.Errorf("seeding store location %q: %w", s.name, err)
		}
	}
	return nil
}
