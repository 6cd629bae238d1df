package service

import (
	"errors"
	"testing"

	"github.com/mithaqhq/mithaq/internal/model"
)

type recordingBudgetRepo struct {
	stubBudgetRepo
	saved *model.Budget
}

func (r *recordingBudgetRepo) Upsert(budget *model.Budget) error {
	r.saved = budget
	return nil
}

func TestBudgetSaveValid(t *testing.T) {
	repo := &recordingBudgetRepo{}
	svc := NewBudgetService(repo)

	saved, err := svc.Save("u1", &model.Budget{
		IncomePrimary: 3000,
		ExpHousing:    1200,
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if repo.saved == nil {
		t.Fatal("Upsert was not called")
	}
	if saved.UserID != "u1" {
		t.Errorf("UserID = %q, want u1", saved.UserID)
	}
}

func TestBudgetSaveRejectsNegativeFields(t *testing.T) {
	repo := &recordingBudgetRepo{}
	svc := NewBudgetService(repo)

	_, err := svc.Save("u1", &model.Budget{
		IncomePrimary: -100,
		ExpCharity:    -5,
	})

	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("Save() error = %v, want FieldErrors", err)
	}
	if _, ok := fieldErrs["income_primary"]; !ok {
		t.Errorf("missing income_primary in %v", fieldErrs)
	}
	if _, ok := fieldErrs["exp_charity"]; !ok {
		t.Errorf("missing exp_charity in %v", fieldErrs)
	}
	if repo.saved != nil {
		t.Error("invalid budget must not reach the repository")
	}
}

func TestWeddingSaveWarnsOnOverspend(t *testing.T) {
	svc := NewWeddingService(&stubWeddingRepo{})

	saved, warning, err := svc.Save("u1", &model.WeddingItem{Name: "Venue", Planned: 1000, Spent: 1200})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if saved == nil {
		t.Fatal("expected the item to be saved")
	}
	if warning == "" {
		t.Error("overspend should carry a warning")
	}
}

func TestWeddingSaveRejectsNegativeSpend(t *testing.T) {
	svc := NewWeddingService(&stubWeddingRepo{})

	_, _, err := svc.Save("u1", &model.WeddingItem{Name: "Venue", Planned: 1000, Spent: -1})

	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("Save() error = %v, want FieldErrors", err)
	}
	if _, ok := fieldErrs["spent"]; !ok {
		t.Errorf("missing spent in %v", fieldErrs)
	}
}

func TestWeddingSaveRequiresName(t *testing.T) {
	svc := NewWeddingService(&stubWeddingRepo{})

	_, _, err := svc.Save("u1", &model.WeddingItem{Name: "   ", Planned: 100})

	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("Save() error = %v, want FieldErrors", err)
	}
	if _, ok := fieldErrs["name"]; !ok {
		t.Errorf("missing name in %v", fieldErrs)
	}
}

type stubWeddingRepo struct{}

func (s *stubWeddingRepo) Items(userID string) ([]model.WeddingItem, error) { return nil, nil }
func (s *stubWeddingRepo) ByID(userID, itemID string) (*model.WeddingItem, error) {
	return nil, nil
}
func (s *stubWeddingRepo) Create(item *model.WeddingItem) error { return nil }
func (s *stubWeddingRepo) Update(item *model.WeddingItem) error { return nil }
func (s *stubWeddingRepo) Delete(userID, itemID string) error   { return nil }
