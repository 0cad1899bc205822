package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

func TestNewDebitAndCredit(t *testing.T) {
	debit, err := domain.NewDebit(50)
	require.NoError(t, err)
	assert.Equal(t, domain.Debit, debit.Type)
	assert.Equal(t, uint32(50), debit.Amount)

	credit, err := domain.NewCredit(50)
	require.NoError(t, err)
	assert.Equal(t, domain.Credit, credit.Type)
	assert.Equal(t, uint32(50), credit.Amount)
}

func TestZeroAmountsAreRejected(t *testing.T) {
	_, err := domain.NewDebit(0)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.NewCredit(0)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSignedConvention(t *testing.T) {
	// Debits are positive, credits negative.
	debit, err := domain.NewDebit(75)
	require.NoError(t, err)
	assert.Equal(t, int64(75), debit.Signed())

	credit, err := domain.NewCredit(75)
	require.NoError(t, err)
	assert.Equal(t, int64(-75), credit.Signed())
}
