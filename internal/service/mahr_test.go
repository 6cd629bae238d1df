package service

import (
	"errors"
	"testing"

	"github.com/mithaqhq/mithaq/internal/model"
	"github.com/mithaqhq/mithaq/internal/repository"
)

type stubMahrRepo struct {
	record *model.MahrRecord
	saved  *model.MahrRecord
}

func (s *stubMahrRepo) ByUserID(userID string) (*model.MahrRecord, error) {
	if s.record == nil {
		return nil, repository.ErrMahrNotFound
	}
	return s.record, nil
}

func (s *stubMahrRepo) Upsert(record *model.MahrRecord) error {
	s.saved = record
	return nil
}

func TestMahrSave(t *testing.T) {
	tests := []struct {
		name       string
		record     model.MahrRecord
		wantFields []string
	}{
		{
			name:   "valid split arrangement",
			record: model.MahrRecord{Amount: 5000, Paid: 1000, Kind: model.MahrKindSplit},
		},
		{
			name:       "paid exceeds amount",
			record:     model.MahrRecord{Amount: 5000, Paid: 6000, Kind: model.MahrKindImmediate},
			wantFields: []string{"paid"},
		},
		{
			name:       "negative paid",
			record:     model.MahrRecord{Amount: 5000, Paid: -1, Kind: model.MahrKindDeferred},
			wantFields: []string{"paid"},
		},
		{
			name:       "unknown kind",
			record:     model.MahrRecord{Amount: 5000, Kind: "installments"},
			wantFields: []string{"kind"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubMahrRepo{}
			svc := NewMahrService(repo)

			saved, err := svc.Save("u1", &tt.record)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Save() error = %v", err)
				}
				if saved.UserID != "u1" {
					t.Errorf("UserID = %q", saved.UserID)
				}
				return
			}

			var fieldErrs FieldErrors
			if !errors.As(err, &fieldErrs) {
				t.Fatalf("Save() error = %v, want FieldErrors", err)
			}
			for _, field := range tt.wantFields {
				if _, ok := fieldErrs[field]; !ok {
					t.Errorf("missing %q in %v", field, fieldErrs)
				}
			}
			if repo.saved != nil {
				t.Error("invalid record must not reach the repository")
			}
		})
	}
}

func TestMahrSaveDefaultsKind(t *testing.T) {
	repo := &stubMahrRepo{}
	svc := NewMahrService(repo)

	saved, err := svc.Save("u1", &model.MahrRecord{Amount: 2000})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if saved.Kind != model.MahrKindImmediate {
		t.Errorf("Kind = %q, want %q", saved.Kind, model.MahrKindImmediate)
	}
}

func TestMahrSavePreservesExistingIdentity(t *testing.T) {
	repo := &stubMahrRepo{
		record: &model.MahrRecord{ID: "m1", UserID: "u1", Amount: 1000},
	}
	svc := NewMahrService(repo)

	saved, err := svc.Save("u1", &model.MahrRecord{Amount: 3000, Paid: 500})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if saved.ID != "m1" {
		t.Errorf("ID = %q, want m1", saved.ID)
	}
}

func TestMahrGetMissingIsNil(t *testing.T) {
	svc := NewMahrService(&stubMahrRepo{})

	record, err := svc.Get("u1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if record != nil {
		t.Errorf("Get() = %+v, want nil", record)
	}
}
