package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ImportState is a step of the import run lifecycle.
type ImportState string

const (
	ImportStateIdle             ImportState = "idle"
	ImportStateValidating       ImportState = "validating"
	ImportStateParsing          ImportState = "parsing"
	ImportStateInsertingItems   ImportState = "inserting_items"
	ImportStateInsertingLedgers ImportState = "inserting_ledgers"
	ImportStateInsertingParties ImportState = "inserting_parties"
	ImportStateCompleted        ImportState = "completed"
	ImportStateFailed           ImportState = "failed"
)

// importTransitions lists the legal next states. Completed and failed are
// terminal: a failed run is never resumed.
var importTransitions = map[ImportState][]ImportState{
	ImportStateIdle:             {ImportStateValidating},
	ImportStateValidating:       {ImportStateParsing, ImportStateFailed},
	ImportStateParsing:          {ImportStateInsertingItems, ImportStateFailed},
	ImportStateInsertingItems:   {ImportStateInsertingLedgers, ImportStateFailed},
	ImportStateInsertingLedgers: {ImportStateInsertingParties, ImportStateFailed},
	ImportStateInsertingParties: {ImportStateCompleted, ImportStateFailed},
}

// Inserting reports whether s is one of the destination write phases.
func (s ImportState) Inserting() bool {
	switch s {
	case ImportStateInsertingItems, ImportStateInsertingLedgers, ImportStateInsertingParties:
		return true
	}
	return false
}

// Terminal reports whether no transition leaves s.
func (s ImportState) Terminal() bool {
	return s == ImportStateCompleted || s == ImportStateFailed
}

// CanTransition reports whether moving from s to next is allowed.
func (s ImportState) CanTransition(next ImportState) bool {
	for _, allowed := range importTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ImportRun tracks one import invocation. It lives for the duration of a
// single request and is never persisted.
type ImportRun struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	State     ImportState
	StartedAt time.Time
	// Committed lists the insert phases with at least one successful write.
	// Under the transactional policy it is cleared when the run rolls back.
	Committed []ImportState
}

// NewImportRun creates a run in the idle state.
func NewImportRun(userID uuid.UUID) *ImportRun {
	return &ImportRun{
		ID:        uuid.New(),
		UserID:    userID,
		State:     ImportStateIdle,
		StartedAt: time.Now().UTC(),
	}
}

// MarkCommitted records that state wrote rows. Repeated calls for the same
// phase are recorded once.
func (r *ImportRun) MarkCommitted(state ImportState) {
	if n := len(r.Committed); n > 0 && r.Committed[n-1] == state {
		return
	}
	r.Committed = append(r.Committed, state)
}

// Transition moves the run to next or returns ErrInvalidTransition.
func (r *ImportRun) Transition(next ImportState) error {
	if !r.State.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.State, next)
	}
	r.State = next
	return nil
}

// ImportCounts holds parse-time record cardinalities of a run.
type ImportCounts struct {
	Items    int `json:"items"`
	Ledgers  int `json:"ledgers"`
	Parties  int `json:"parties"`
	Vouchers int `json:"vouchers"`
}

// ImportResult is produced once per import run and returned to the caller.
type ImportResult struct {
	ImportID uuid.UUID       `json:"import_id"`
	Document *ParsedDocument `json:"-"`
	Counts   ImportCounts    `json:"counts"`
	Warnings []ImportWarning `json:"warnings"`
	Success  bool            `json:"success"`
	Error    string          `json:"error,omitempty"`
}

// ImportWarning is a format or plausibility issue found in a parsed record.
// Warnings never stop an import.
type ImportWarning struct {
	RuleKey     string `json:"rule_key"`
	FieldPath   string `json:"field_path"`
	ActualValue string `json:"actual_value"`
	Message     string `json:"message"`
}
