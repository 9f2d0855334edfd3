package repos

import (
	"context"
	"testing"
	"time"

	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/types"
)

func TestJournalEntriesDescendingByTimestamp(t *testing.T) {
	db := newTestDB(t)
	repo := NewJournalEntryRepo(db, newTestLogger(t))
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 21, 0, 0, 0, time.UTC)
	inserts := []struct {
		content string
		offset  time.Duration
	}{
		{"oldest", 0},
		{"newest", 2 * time.Hour},
		{"middle", time.Hour},
	}
	for _, in := range inserts {
		if _, err := repo.Append(ctx, nil, &types.JournalEntry{
			UserID:    "student-1",
			Mood:      "Sad 🌧️",
			Content:   in.content,
			Timestamp: base.Add(in.offset),
		}); err != nil {
			t.Fatalf("Append(%q): %v", in.content, err)
		}
	}

	got, err := repo.ListByUser(ctx, nil, "student-1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	want := []string{"newest", "middle", "oldest"}
	if len(got) != len(want) {
		t.Fatalf("entries length: want=%d got=%d", len(want), len(got))
	}
	for i, entry := range got {
		if entry.Content != want[i] {
			t.Fatalf("entries[%d]: want=%q got=%q", i, want[i], entry.Content)
		}
	}
}

func TestJournalAppendPreservesMood(t *testing.T) {
	repo := NewJournalEntryRepo(newTestDB(t), newTestLogger(t))

	entry, err := repo.Append(context.Background(), nil, &types.JournalEntry{
		UserID:  "student-1",
		Mood:    "Anxious 🌪️",
		Content: "Today I felt overwhelmed because...",
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := repo.ListByUser(context.Background(), nil, "student-1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("entries length: want=1 got=%d", len(got))
	}
	if got[0].ID != entry.ID || got[0].Mood != "Anxious 🌪️" {
		t.Fatalf("stored entry mismatch: %+v", got[0])
	}
}
