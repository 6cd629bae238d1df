package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/mithaqhq/mithaq/internal/model"
)

func TestReadinessScore(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{"no items", 0, 0, 0},
		{"nothing done", 0, 13, 0},
		{"all done", 13, 13, 100},
		{"rounds up", 2, 3, 67},
		{"rounds down", 1, 3, 33},
		{"half", 5, 10, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := readinessScore(tt.completed, tt.total); got != tt.want {
				t.Errorf("readinessScore(%d, %d) = %d, want %d", tt.completed, tt.total, got, tt.want)
			}
		})
	}
}

func TestDaysUntil(t *testing.T) {
	t.Run("nil date", func(t *testing.T) {
		if got := daysUntil(nil); got != nil {
			t.Errorf("daysUntil(nil) = %v, want nil", *got)
		}
	})

	t.Run("future date", func(t *testing.T) {
		date := time.Now().AddDate(0, 0, 14)
		got := daysUntil(&date)
		if got == nil || *got != 14 {
			t.Errorf("daysUntil(+14d) = %v, want 14", got)
		}
	})

	t.Run("today", func(t *testing.T) {
		date := time.Now()
		got := daysUntil(&date)
		if got == nil || *got != 0 {
			t.Errorf("daysUntil(today) = %v, want 0", got)
		}
	})

	t.Run("past date clamps to zero", func(t *testing.T) {
		date := time.Now().AddDate(0, 0, -10)
		got := daysUntil(&date)
		if got == nil || *got != 0 {
			t.Errorf("daysUntil(-10d) = %v, want 0", got)
		}
	})

	t.Run("ignores time of day", func(t *testing.T) {
		now := time.Now()
		// Tomorrow at 00:01 is one day out even late in the evening
		date := time.Date(now.Year(), now.Month(), now.Day(), 0, 1, 0, 0, now.Location()).AddDate(0, 0, 1)
		got := daysUntil(&date)
		if got == nil || *got != 1 {
			t.Errorf("daysUntil(tomorrow 00:01) = %v, want 1", got)
		}
	})
}

func TestMergeFeed(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("orders newest first", func(t *testing.T) {
		activities := []model.Activity{
			{ID: "a", Timestamp: base},
			{ID: "b", Timestamp: base.Add(2 * time.Hour)},
			{ID: "c", Timestamp: base.Add(time.Hour)},
		}

		got := mergeFeed(activities)
		want := []string{"b", "c", "a"}
		for i, id := range want {
			if got[i].ID != id {
				t.Errorf("feed[%d] = %q, want %q", i, got[i].ID, id)
			}
		}
	})

	t.Run("truncates to ten", func(t *testing.T) {
		activities := make([]model.Activity, 15)
		for i := range activities {
			activities[i] = model.Activity{
				ID:        fmt.Sprintf("act-%d", i),
				Timestamp: base.Add(time.Duration(i) * time.Minute),
			}
		}

		got := mergeFeed(activities)
		if len(got) != 10 {
			t.Fatalf("len = %d, want 10", len(got))
		}
		// The newest entry leads, the five oldest are dropped
		if got[0].ID != "act-14" || got[9].ID != "act-5" {
			t.Errorf("got %q..%q, want act-14..act-5", got[0].ID, got[9].ID)
		}
	})

	t.Run("stable for equal timestamps", func(t *testing.T) {
		activities := []model.Activity{
			{ID: "first", Timestamp: base},
			{ID: "second", Timestamp: base},
		}

		got := mergeFeed(activities)
		if got[0].ID != "first" || got[1].ID != "second" {
			t.Errorf("equal timestamps reordered: %q, %q", got[0].ID, got[1].ID)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := mergeFeed(nil); len(got) != 0 {
			t.Errorf("mergeFeed(nil) = %v", got)
		}
	})
}
