package service

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/mithaqhq/mithaq/internal/model"
	"github.com/mithaqhq/mithaq/internal/repository"
	"github.com/mithaqhq/mithaq/internal/validation"
)

type MahrService struct {
	repo repository.MahrRepository
}

func NewMahrService(repo repository.MahrRepository) *MahrService {
	return &MahrService{repo: repo}
}

// Get returns the user's mahr record, or nil when none has been created yet.
func (s *MahrService) Get(userID string) (*model.MahrRecord, error) {
	record, err := s.repo.ByUserID(userID)
	if errors.Is(err, repository.ErrMahrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Save guards the amounts before the record is persisted: the amount paid
// never exceeds the amount agreed.
func (s *MahrService) Save(userID string, record *model.MahrRecord) (*model.MahrRecord, error) {
	fieldErrors := FieldErrors{}

	amount := record.Amount
	result := validation.Amount(&amount, validation.AmountOpts{Field: "Mahr amount", Required: true})
	if !result.Valid {
		fieldErrors["amount"] = result.Message
	}

	result = validation.PaidAmount(record.Paid, record.Amount, "Amount paid")
	if !result.Valid {
		fieldErrors["paid"] = result.Message
	}

	switch record.Kind {
	case model.MahrKindImmediate, model.MahrKindDeferred, model.MahrKindSplit:
	case "":
		record.Kind = model.MahrKindImmediate
	default:
		fieldErrors["kind"] = fmt.Sprintf("unknown mahr kind: %s", record.Kind)
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}

	existing, err := s.Get(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
	}
	record.UserID = userID

	err = s.repo.Upsert(record)
	if err != nil {
		return nil, fmt.Errorf("failed to save mahr record: %w", err)
	}

	return record, nil
}

// ExportRows shapes the mahr record for CSV download; at most one row.
func (s *MahrService) ExportRows(userID string) (columns []string, rows [][]string, err error) {
	record, err := s.Get(userID)
	if err != nil {
		return nil, nil, err
	}

	columns = []string{"amount", "paid", "remaining", "kind", "notes"}
	if record == nil {
		return columns, nil, nil
	}

	rows = [][]string{{
		strconv.FormatFloat(record.Amount, 'f', 2, 64),
		strconv.FormatFloat(record.Paid, 'f', 2, 64),
		strconv.FormatFloat(record.Remaining(), 'f', 2, 64),
		record.Kind,
		record.Notes,
	}}

	return columns, rows, nil
}
