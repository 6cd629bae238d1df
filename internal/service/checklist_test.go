package service

import (
	"testing"
	"time"

	"github.com/mithaqhq/mithaq/internal/model"
)

func TestChecklistOverview(t *testing.T) {
	repo := &stubChecklistRepo{
		categories: []model.ChecklistCategory{
			{ID: "cat-legal", Name: "Legal & Contract"},
			{ID: "cat-financial", Name: "Financial"},
		},
		items: []model.ChecklistItem{
			{ID: "chk-wali", CategoryID: "cat-legal"},
			{ID: "chk-witnesses", CategoryID: "cat-legal"},
			{ID: "chk-mahr", CategoryID: "cat-financial"},
		},
		statuses: []model.ChecklistStatus{
			{ItemID: "chk-wali", CompletedAt: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)},
		},
	}

	svc := NewChecklistService(repo)

	views, err := svc.Overview("u1")
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("got %d categories, want 2", len(views))
	}

	legal := views[0]
	if legal.TotalCount != 2 || legal.CompletedCount != 1 {
		t.Errorf("legal counts = %d/%d, want 1/2", legal.CompletedCount, legal.TotalCount)
	}
	if !legal.Items[0].Completed || legal.Items[0].CompletedAt == nil {
		t.Error("chk-wali should be completed with a timestamp")
	}
	if legal.Items[1].Completed {
		t.Error("chk-witnesses should not be completed")
	}

	financial := views[1]
	if financial.TotalCount != 1 || financial.CompletedCount != 0 {
		t.Errorf("financial counts = %d/%d, want 0/1", financial.CompletedCount, financial.TotalCount)
	}
}
