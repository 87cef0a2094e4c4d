package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/irisalmeida/registra-ai/internal/ledger"
	"github.com/irisalmeida/registra-ai/internal/models"
	"github.com/irisalmeida/registra-ai/internal/money"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Record{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM records")
		db.Exec("DELETE FROM users")
	})
	return db
}

func amt(t *testing.T, s string) money.Amount {
	t.Helper()
	a, err := money.Parse(s)
	if err != nil {
		t.Fatalf("parse amount %q: %v", s, err)
	}
	return a
}

func TestUsers_GetMissing(t *testing.T) {
	users := NewUsers(openTestDB(t))

	_, err := users.Get(context.Background(), "nonexistent")
	if !errors.Is(err, ledger.ErrUserNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrUserNotFound", err)
	}
}

func TestUsers_CreateAndGet(t *testing.T) {
	users := NewUsers(openTestDB(t))
	ctx := context.Background()

	user := &models.User{ID: "sub-1", Name: "Iris", Email: "iris@example.com"}
	if err := users.Create(ctx, user); err != nil {
		t.Fatalf("Create error = %v", err)
	}

	got, err := users.Get(ctx, "sub-1")
	if err != nil {
		t.Fatalf("Get error = %v", err)
	}
	if got.Name != "Iris" || got.Email != "iris@example.com" {
		t.Errorf("Get = %+v, want created fields", got)
	}
}

func TestUsers_DuplicateInsertIsConflict(t *testing.T) {
	users := NewUsers(openTestDB(t))
	ctx := context.Background()

	if err := users.Create(ctx, &models.User{ID: "sub-1", Name: "First"}); err != nil {
		t.Fatalf("Create error = %v", err)
	}

	err := users.Create(ctx, &models.User{ID: "sub-1", Name: "Second"})
	if !errors.Is(err, ledger.ErrConflict) {
		t.Errorf("duplicate Create error = %v, want ErrConflict", err)
	}

	// first write wins
	got, err := users.Get(ctx, "sub-1")
	if err != nil {
		t.Fatalf("Get error = %v", err)
	}
	if got.Name != "First" {
		t.Errorf("stored name = %s, want First", got.Name)
	}
}

func TestRecords_InsertAssignsID(t *testing.T) {
	records := NewRecords(openTestDB(t))

	rec, err := records.Insert(context.Background(), "u1", amt(t, "100.50"), "found money", time.Now())
	if err != nil {
		t.Fatalf("Insert error = %v", err)
	}
	if rec.ID == 0 {
		t.Error("Insert did not assign an id")
	}
	if got := rec.Amount.String(); got != "100.50" {
		t.Errorf("stored amount = %s, want 100.50", got)
	}
}

func TestRecords_ListByUserOrderAndIsolation(t *testing.T) {
	records := NewRecords(openTestDB(t))
	ctx := context.Background()

	base := time.Date(2024, 5, 23, 10, 0, 0, 0, time.UTC)
	inserts := []struct {
		user   string
		amount string
		desc   string
	}{
		{"u1", "100.50", "found money"},
		{"u1", "-30.25", "coffee"},
		{"u2", "7.00", "someone else's gain"},
	}
	for i, in := range inserts {
		if _, err := records.Insert(ctx, in.user, amt(t, in.amount), in.desc, base.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatalf("Insert %d error = %v", i, err)
		}
	}

	list, err := records.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByUser error = %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("ListByUser length = %d, want 2 (no cross-user rows)", len(list))
	}
	if got := list[0].Amount.String(); got != "100.50" {
		t.Errorf("list[0].Amount = %s, want 100.50 (oldest first)", got)
	}
	if got := list[1].Amount.String(); got != "-30.25" {
		t.Errorf("list[1].Amount = %s, want -30.25", got)
	}
}

func TestRecords_ListByUserEmpty(t *testing.T) {
	records := NewRecords(openTestDB(t))

	list, err := records.ListByUser(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("ListByUser error = %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("ListByUser = %v, want empty non-nil slice", list)
	}
}
