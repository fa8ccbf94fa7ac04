package expenses

import (
	"fmt"

	"github.com/manudejuan/home-finance/internal/id"
	"github.com/manudejuan/home-finance/internal/model"
)

// BeginEdit stages a copy of the expense with the given id as the draft,
// replacing any draft already staged. Committed state is untouched until
// SaveEdit.
func (s *Store) BeginEdit(expenseID int64) (model.Expense, error) {
	e, ok := s.Get(expenseID)
	if !ok {
		return model.Expense{}, fmt.Errorf("expense %s: %w", id.Format(expenseID), model.ErrNotFound)
	}
	s.draft = &e
	return e, nil
}

// UpdateDraft applies patch to the staged draft only.
func (s *Store) UpdateDraft(patch model.ExpensePatch) (model.Expense, error) {
	if s.draft == nil {
		return model.Expense{}, model.ErrNoDraft
	}
	updated := patch.Apply(*s.draft)
	s.draft = &updated
	return updated, nil
}

// Draft returns the staged edit, if any.
func (s *Store) Draft() (model.Expense, bool) {
	if s.draft == nil {
		return model.Expense{}, false
	}
	return *s.draft, true
}

// SaveEdit commits the draft over the stored expense and clears it. A draft
// that fails validation stays staged so it can be corrected.
func (s *Store) SaveEdit() (model.Expense, error) {
	if s.draft == nil {
		return model.Expense{}, model.ErrNoDraft
	}
	saved, err := s.Edit(*s.draft)
	if err != nil {
		return model.Expense{}, err
	}
	s.draft = nil
	return saved, nil
}

// CancelEdit discards the draft without touching committed state.
func (s *Store) CancelEdit() {
	s.draft = nil
}
