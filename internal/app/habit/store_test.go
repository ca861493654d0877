package habit

import (
	"errors"
	"testing"
	"time"

	"github.com/habitloop/habitloop/internal/domain"
	"github.com/habitloop/habitloop/internal/infra/sqlite"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	db, err := sqlite.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewStore(db)
}

func TestAdd(t *testing.T) {
	s := testStore(t)

	h, err := s.Add(domain.Habit{Name: "Read", Category: "learning"})
	if err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if h.ID == "" {
		t.Error("id should be assigned")
	}
	if h.Frequency != domain.FreqDaily {
		t.Errorf("frequency = %q, want daily default", h.Frequency)
	}
}

func TestAdd_EmptyName(t *testing.T) {
	s := testStore(t)

	if _, err := s.Add(domain.Habit{}); err == nil {
		t.Error("Add() should reject an empty name")
	}
}

func TestComplete_IdempotentPerDay(t *testing.T) {
	s := testStore(t)
	h, _ := s.Add(domain.Habit{Name: "Read"})

	now := time.Now()
	recorded, err := s.Complete(h.ID, now)
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if !recorded {
		t.Error("first completion should be recorded")
	}

	// Later the same day: no second completion
	recorded, err = s.Complete(h.ID, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if recorded {
		t.Error("same-day completion should be a no-op")
	}
}

func TestComplete_UnknownHabit(t *testing.T) {
	s := testStore(t)

	if _, err := s.Complete("no-such-habit", time.Now()); !errors.Is(err, domain.ErrHabitNotFound) {
		t.Errorf("error = %v, want ErrHabitNotFound", err)
	}
}

func TestComplete_Archived(t *testing.T) {
	s := testStore(t)
	h, _ := s.Add(domain.Habit{Name: "Read"})
	s.Archive(h.ID)

	if _, err := s.Complete(h.ID, time.Now()); !errors.Is(err, domain.ErrHabitArchived) {
		t.Errorf("error = %v, want ErrHabitArchived", err)
	}
}

func TestStreak(t *testing.T) {
	s := testStore(t)
	h, _ := s.Add(domain.Habit{Name: "Read"})

	now := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := s.Complete(h.ID, now.AddDate(0, 0, -i)); err != nil {
			t.Fatalf("Complete() error: %v", err)
		}
	}

	streak, err := s.Streak(h.ID, now)
	if err != nil {
		t.Fatalf("Streak() error: %v", err)
	}
	if streak != 3 {
		t.Errorf("streak = %d, want 3", streak)
	}
}

func TestStreak_BrokenByGap(t *testing.T) {
	s := testStore(t)
	h, _ := s.Add(domain.Habit{Name: "Read"})

	now := time.Now()
	s.Complete(h.ID, now)
	s.Complete(h.ID, now.AddDate(0, 0, -2)) // gap at -1

	streak, _ := s.Streak(h.ID, now)
	if streak != 1 {
		t.Errorf("streak = %d, want 1", streak)
	}
}

func TestArchiveHidesFromList(t *testing.T) {
	s := testStore(t)
	a, _ := s.Add(domain.Habit{Name: "Read"})
	b, _ := s.Add(domain.Habit{Name: "Stretch"})
	s.Archive(b.ID)

	visible, err := s.List(false)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(visible) != 1 || visible[0].ID != a.ID {
		t.Errorf("List(false) = %v, want just the active habit", visible)
	}

	all, _ := s.List(true)
	if len(all) != 2 {
		t.Errorf("List(true) = %d habits, want 2", len(all))
	}

	// Unarchive restores visibility
	s.Unarchive(b.ID)
	visible, _ = s.List(false)
	if len(visible) != 2 {
		t.Errorf("after unarchive List(false) = %d, want 2", len(visible))
	}
}

func TestDelete_RemovesCompletions(t *testing.T) {
	s := testStore(t)
	h, _ := s.Add(domain.Habit{Name: "Read", Category: "learning"})
	s.Complete(h.ID, time.Now())

	if err := s.Delete(h.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	got, _ := s.ByID(h.ID)
	if got != nil {
		t.Error("habit should be gone after delete")
	}

	n, _ := s.CategoriesCovered()
	if n != 0 {
		t.Errorf("CategoriesCovered() = %d after delete, want 0", n)
	}
}

func TestCategoriesCovered(t *testing.T) {
	s := testStore(t)

	now := time.Now()
	for _, cat := range []string{"health", "learning", "learning", ""} {
		h, _ := s.Add(domain.Habit{Name: "h-" + cat, Category: cat})
		s.Complete(h.ID, now)
	}

	// Duplicate categories collapse; blank categories never count
	n, err := s.CategoriesCovered()
	if err != nil {
		t.Fatalf("CategoriesCovered() error: %v", err)
	}
	if n != 2 {
		t.Errorf("CategoriesCovered() = %d, want 2", n)
	}

	// A habit with no completions does not cover its category
	s.Add(domain.Habit{Name: "idle", Category: "music"})
	n, _ = s.CategoriesCovered()
	if n != 2 {
		t.Errorf("CategoriesCovered() = %d after uncompleted habit, want 2", n)
	}
}
