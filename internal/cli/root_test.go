package cli

import (
	"path/filepath"
	"testing"

	"github.com/SyreeseOfficial/Momentum/internal/dates"
	"github.com/SyreeseOfficial/Momentum/internal/models"
	"github.com/SyreeseOfficial/Momentum/internal/storage"
)

func setupTestContext(t *testing.T) (*Context, func()) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := storage.NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}

	ctx := &Context{Store: store}

	cleanup := func() {
		store.Close()
	}

	return ctx, cleanup
}

func TestReconcile_SameDayIsNoOp(t *testing.T) {
	ctx, cleanup := setupTestContext(t)
	defer cleanup()

	tracker := models.Tracker{
		ID:        "t1",
		Name:      "Pushups",
		Count:     5,
		DailyGoal: 10,
		IsActive:  true,
	}
	if err := ctx.Store.AddTracker(tracker); err != nil {
		t.Fatal(err)
	}
	if err := ctx.Store.SetLastActiveDate(dates.Today()); err != nil {
		t.Fatal(err)
	}

	if err := Reconcile(ctx); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	got, err := ctx.Store.GetTracker("t1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Count != 5 {
		t.Errorf("expected count preserved at 5, got %d", got.Count)
	}
	history, err := ctx.Store.GetHistory()
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 0 {
		t.Errorf("expected no history for same-day reconcile, got %d records", len(history))
	}
}

func TestReconcile_ArchivesStaleDayAndResets(t *testing.T) {
	ctx, cleanup := setupTestContext(t)
	defer cleanup()

	yesterday := dates.AddDays(dates.Today(), -1)
	tracker := models.Tracker{
		ID:        "t1",
		Name:      "Pushups",
		Count:     12,
		DailyGoal: 10,
		IsActive:  true,
	}
	if err := ctx.Store.AddTracker(tracker); err != nil {
		t.Fatal(err)
	}
	if err := ctx.Store.SetLastActiveDate(yesterday); err != nil {
		t.Fatal(err)
	}

	if err := Reconcile(ctx); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	got, err := ctx.Store.GetTracker("t1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Count != 0 {
		t.Errorf("expected count reset to 0, got %d", got.Count)
	}

	history, err := ctx.Store.GetHistory()
	if err != nil {
		t.Fatal(err)
	}
	record, ok := history.Find(yesterday)
	if !ok {
		t.Fatalf("expected history record for %s", yesterday)
	}
	if record.TotalVolume != 12 {
		t.Errorf("expected archived volume 12, got %d", record.TotalVolume)
	}

	lastActive, err := ctx.Store.GetLastActiveDate()
	if err != nil {
		t.Fatal(err)
	}
	if lastActive != dates.Today() {
		t.Errorf("expected last-active date advanced to today, got %s", lastActive)
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	ctx, cleanup := setupTestContext(t)
	defer cleanup()

	yesterday := dates.AddDays(dates.Today(), -1)
	tracker := models.Tracker{ID: "t1", Name: "Reading", Count: 3, DailyGoal: 1, IsActive: true}
	if err := ctx.Store.AddTracker(tracker); err != nil {
		t.Fatal(err)
	}
	if err := ctx.Store.SetLastActiveDate(yesterday); err != nil {
		t.Fatal(err)
	}

	if err := Reconcile(ctx); err != nil {
		t.Fatal(err)
	}
	if err := Reconcile(ctx); err != nil {
		t.Fatal(err)
	}

	history, err := ctx.Store.GetHistory()
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 1 {
		t.Errorf("expected exactly 1 history record after repeated reconcile, got %d", len(history))
	}
}

func TestFindTracker_ByNameAndID(t *testing.T) {
	ctx, cleanup := setupTestContext(t)
	defer cleanup()

	tracker := models.Tracker{ID: "abc-123", Name: "Water", DailyGoal: 8, IsActive: true}
	if err := ctx.Store.AddTracker(tracker); err != nil {
		t.Fatal(err)
	}

	byName, err := findTracker(ctx, "Water")
	if err != nil {
		t.Fatalf("lookup by name failed: %v", err)
	}
	if byName.ID != "abc-123" {
		t.Errorf("expected ID abc-123, got %s", byName.ID)
	}

	byID, err := findTracker(ctx, "abc-123")
	if err != nil {
		t.Fatalf("lookup by ID failed: %v", err)
	}
	if byID.Name != "Water" {
		t.Errorf("expected name Water, got %s", byID.Name)
	}

	if _, err := findTracker(ctx, "nope"); err == nil {
		t.Error("expected error for unknown tracker")
	}
}
