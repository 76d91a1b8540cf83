package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/nailroom/nailroom-go/internal/model"
)

// testDB creates a temporary test database.
func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	f, err := os.CreateTemp("", "nailroom-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	f.Close()

	db, err := NewDB(dbPath)
	if err != nil {
		os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return db, cleanup
}

func strPtr(s string) *string { return &s }

func TestCreateUser(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	user, err := q.CreateUser(ctx, CreateUserParams{
		Username:     "lan",
		Email:        "lan@example.com",
		PasswordHash: "hashed-password",
		Role:         model.RoleUser,
		FullName:     strPtr("Lan Pham"),
		CreatedAt:    time.Now(),
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if user.ID == 0 {
		t.Error("user.ID should not be 0")
	}
	if user.Username != "lan" {
		t.Errorf("Username = %q, want %q", user.Username, "lan")
	}
	if user.Role != model.RoleUser {
		t.Errorf("Role = %q, want %q", user.Role, model.RoleUser)
	}
	if user.FullName == nil || *user.FullName != "Lan Pham" {
		t.Errorf("FullName = %v, want %q", user.FullName, "Lan Pham")
	}
}

func TestGetUserByUsername(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	if _, err := q.GetUserByUsername(ctx, "missing"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("GetUserByUsername(missing) error = %v, want sql.ErrNoRows", err)
	}

	created, err := q.CreateUser(ctx, CreateUserParams{
		Username:     "mai",
		Email:        "mai@example.com",
		PasswordHash: "x",
		Role:         model.RoleAdmin,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	got, err := q.GetUserByUsername(ctx, "mai")
	if err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("ID = %d, want %d", got.ID, created.ID)
	}
	if !got.IsAdmin() {
		t.Error("IsAdmin() = false, want true")
	}
}

func TestCountUsersByUsernameOrEmail(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	if _, err := q.CreateUser(ctx, CreateUserParams{
		Username:     "hoa",
		Email:        "hoa@example.com",
		PasswordHash: "x",
		Role:         model.RoleUser,
		CreatedAt:    time.Now(),
	}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	tests := []struct {
		username string
		email    string
		want     int64
	}{
		{"hoa", "other@example.com", 1},
		{"other", "hoa@example.com", 1},
		{"hoa", "hoa@example.com", 1},
		{"other", "other@example.com", 0},
	}
	for _, tt := range tests {
		n, err := q.CountUsersByUsernameOrEmail(ctx, tt.username, tt.email)
		if err != nil {
			t.Fatalf("CountUsersByUsernameOrEmail(%q, %q): %v", tt.username, tt.email, err)
		}
		if n != tt.want {
			t.Errorf("CountUsersByUsernameOrEmail(%q, %q) = %d, want %d", tt.username, tt.email, n, tt.want)
		}
	}
}

func TestListActiveServicesOrdering(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	now := time.Now()

	for _, svc := range []CreateServiceParams{
		{Name: "Gel polish", Price: 250000, Position: 2, Status: ServiceStatusActive, CreatedAt: now},
		{Name: "Nail art", Price: 350000, Position: 1, Status: ServiceStatusActive, CreatedAt: now},
		{Name: "Retired combo", Price: 500000, Position: 0, Status: ServiceStatusInactive, CreatedAt: now},
	} {
		if _, err := q.CreateService(ctx, svc); err != nil {
			t.Fatalf("CreateService(%q): %v", svc.Name, err)
		}
	}

	active, err := q.ListActiveServices(ctx)
	if err != nil {
		t.Fatalf("ListActiveServices: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("len(active) = %d, want 2", len(active))
	}
	if active[0].Name != "Nail art" || active[1].Name != "Gel polish" {
		t.Errorf("active order = [%q, %q], want position order", active[0].Name, active[1].Name)
	}

	all, err := q.ListServices(ctx)
	if err != nil {
		t.Fatalf("ListServices: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("len(all) = %d, want 3", len(all))
	}
}

func TestUpdateServiceNotFound(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	_, err := q.UpdateService(ctx, UpdateServiceParams{
		ID:     9999,
		Name:   "Ghost",
		Price:  1,
		Status: ServiceStatusActive,
	})
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("UpdateService error = %v, want sql.ErrNoRows", err)
	}

	if err := q.DeleteService(ctx, 9999); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("DeleteService error = %v, want sql.ErrNoRows", err)
	}
}

func TestUpsertContent(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	now := time.Now()

	first, err := q.UpsertContent(ctx, UpsertContentParams{
		Section:      "hero",
		ContentKey:   "title",
		ContentValue: strPtr("NAIL ROOM"),
		ContentType:  model.ContentTypeText,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("UpsertContent (insert): %v", err)
	}

	second, err := q.UpsertContent(ctx, UpsertContentParams{
		Section:      "hero",
		ContentKey:   "title",
		ContentValue: strPtr("NAILROOM 2.0"),
		ContentType:  model.ContentTypeText,
		UpdatedAt:    now.Add(time.Minute),
	})
	if err != nil {
		t.Fatalf("UpsertContent (update): %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("upsert created a new row: id %d != %d", second.ID, first.ID)
	}
	if second.ContentValue == nil || *second.ContentValue != "NAILROOM 2.0" {
		t.Errorf("ContentValue = %v, want %q", second.ContentValue, "NAILROOM 2.0")
	}

	all, err := q.ListContentBySection(ctx, "hero")
	if err != nil {
		t.Fatalf("ListContentBySection: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("len(all) = %d, want 1", len(all))
	}
}

func TestRegistrationLifecycle(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	now := time.Now()

	reg, err := q.CreateRegistration(ctx, CreateRegistrationParams{
		FullName:        "Nguyễn Thị Hoa",
		Phone:           "0901234567",
		Email:           strPtr("hoa@example.com"),
		ServiceInterest: strPtr("Nail art"),
		CreatedAt:       now,
	})
	if err != nil {
		t.Fatalf("CreateRegistration: %v", err)
	}
	if reg.Status != model.StatusPending {
		t.Errorf("Status = %q, want %q", reg.Status, model.StatusPending)
	}

	updated, err := q.UpdateRegistrationStatus(ctx, reg.ID, model.StatusConfirmed, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("UpdateRegistrationStatus: %v", err)
	}
	if updated.Status != model.StatusConfirmed {
		t.Errorf("Status = %q, want %q", updated.Status, model.StatusConfirmed)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Error("UpdatedAt should be after CreatedAt")
	}

	byService, err := q.ListRegistrations(ctx, RegistrationFilter{Service: "Nail art"})
	if err != nil {
		t.Fatalf("ListRegistrations: %v", err)
	}
	if len(byService) != 1 {
		t.Errorf("len(byService) = %d, want 1", len(byService))
	}

	none, err := q.ListRegistrations(ctx, RegistrationFilter{Service: "Pedicure"})
	if err != nil {
		t.Fatalf("ListRegistrations: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("len(none) = %d, want 0", len(none))
	}

	if err := q.DeleteRegistration(ctx, reg.ID); err != nil {
		t.Fatalf("DeleteRegistration: %v", err)
	}
	if err := q.DeleteRegistration(ctx, reg.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("second DeleteRegistration error = %v, want sql.ErrNoRows", err)
	}
}

func TestAppointmentFilters(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	now := time.Now()

	for _, a := range []CreateAppointmentParams{
		{Name: "A", Phone: "0901", Service: "Gel polish", Date: "2026-09-01", Time: "10:00", CreatedAt: now},
		{Name: "B", Phone: "0902", Service: "Nail art", Date: "2026-09-02", Time: "14:00", CreatedAt: now.Add(time.Second)},
	} {
		if _, err := q.CreateAppointment(ctx, a); err != nil {
			t.Fatalf("CreateAppointment(%q): %v", a.Name, err)
		}
	}

	byDate, err := q.ListAppointments(ctx, AppointmentFilter{Date: "2026-09-01"})
	if err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}
	if len(byDate) != 1 || byDate[0].Name != "A" {
		t.Errorf("byDate = %v, want single appointment A", byDate)
	}

	pending, err := q.ListAppointments(ctx, AppointmentFilter{Status: model.StatusPending})
	if err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}
	if len(pending) != 2 {
		t.Errorf("len(pending) = %d, want 2", len(pending))
	}
}

func TestPageCascadeDelete(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	now := time.Now()

	page, err := q.CreatePage(ctx, CreatePageParams{Name: "home", Title: "Trang chủ", CreatedAt: now})
	if err != nil {
		t.Fatalf("CreatePage: %v", err)
	}
	section, err := q.CreateSection(ctx, CreateSectionParams{
		PageID:    page.ID,
		Heading:   strPtr("Hero"),
		Position:  1,
		CreatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateSection: %v", err)
	}
	if _, err := q.CreateContentItem(ctx, CreateContentItemParams{
		SectionID: section.ID,
		Label:     "headline",
		Value:     strPtr("You Love It, We Nail It!"),
		Position:  1,
		CreatedAt: now,
	}); err != nil {
		t.Fatalf("CreateContentItem: %v", err)
	}

	if err := q.DeletePage(ctx, page.ID); err != nil {
		t.Fatalf("DeletePage: %v", err)
	}

	if _, err := q.GetSectionByID(ctx, section.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("GetSectionByID after cascade = %v, want sql.ErrNoRows", err)
	}
}

func TestSeed(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()

	if err := Seed(ctx, db); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	q := New(db)
	admin, err := q.GetUserByUsername(ctx, DefaultAdminUsername)
	if err != nil {
		t.Fatalf("GetUserByUsername(admin): %v", err)
	}
	if !admin.IsAdmin() {
		t.Error("seeded admin should have the admin role")
	}

	menu, err := q.ListMenuItems(ctx)
	if err != nil {
		t.Fatalf("ListMenuItems: %v", err)
	}
	if len(menu) != 7 {
		t.Errorf("len(menu) = %d, want 7", len(menu))
	}

	celebs, err := q.ListCelebrities(ctx)
	if err != nil {
		t.Fatalf("ListCelebrities: %v", err)
	}
	if len(celebs) != 14 {
		t.Errorf("len(celebs) = %d, want 14", len(celebs))
	}

	// Seeding again must not duplicate anything.
	if err := Seed(ctx, db); err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	menu, err = q.ListMenuItems(ctx)
	if err != nil {
		t.Fatalf("ListMenuItems: %v", err)
	}
	if len(menu) != 7 {
		t.Errorf("after reseed len(menu) = %d, want 7", len(menu))
	}
}
