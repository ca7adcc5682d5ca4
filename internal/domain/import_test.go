package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerly/internal/domain"
)

func TestImportRun_Transition(t *testing.T) {
	run := domain.NewImportRun(uuid.New())
	assert.Equal(t, domain.ImportStateIdle, run.State)

	for _, next := range []domain.ImportState{
		domain.ImportStateValidating,
		domain.ImportStateParsing,
		domain.ImportStateInsertingItems,
		domain.ImportStateInsertingLedgers,
		domain.ImportStateInsertingParties,
		domain.ImportStateCompleted,
	} {
		require.NoError(t, run.Transition(next))
	}
	assert.True(t, run.State.Terminal())

	err := run.Transition(domain.ImportStateFailed)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestImportRun_TransitionRejectsSkippingValidation(t *testing.T) {
	run := domain.NewImportRun(uuid.New())

	assert.ErrorIs(t, run.Transition(domain.ImportStateParsing), domain.ErrInvalidTransition)
	assert.Equal(t, domain.ImportStateIdle, run.State)
}

func TestImportRun_MarkCommitted(t *testing.T) {
	run := domain.NewImportRun(uuid.New())

	run.MarkCommitted(domain.ImportStateInsertingItems)
	run.MarkCommitted(domain.ImportStateInsertingParties)
	run.MarkCommitted(domain.ImportStateInsertingParties)

	assert.Equal(t, []domain.ImportState{
		domain.ImportStateInsertingItems,
		domain.ImportStateInsertingParties,
	}, run.Committed)
}
