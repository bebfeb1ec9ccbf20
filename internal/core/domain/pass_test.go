package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stamp/internal/core/domain"
)

func TestPass_HappyPath(t *testing.T) {
	var p domain.Pass
	assert.Equal(t, domain.PassStart, p.State())

	for _, next := range []domain.PassState{
		domain.PassResolved,
		domain.PassArrayEmitted,
		domain.PassMapEmitted,
		domain.PassVerified,
		domain.PassPublished,
	} {
		require.NoError(t, p.Advance(next), "advance to %s", next)
		assert.Equal(t, next, p.State())
	}

	assert.True(t, p.State().IsTerminal())
	assert.NoError(t, p.Reason())
}

func TestPass_RejectsSkippedState(t *testing.T) {
	var p domain.Pass
	require.NoError(t, p.Advance(domain.PassResolved))

	err := p.Advance(domain.PassVerified)
	require.ErrorIs(t, err, domain.ErrInvalidPassTransition)
	assert.Equal(t, domain.PassResolved, p.State())
}

func TestPass_RejectsAdvanceAfterTerminal(t *testing.T) {
	var p domain.Pass
	p.Fail(errors.New("boom"))

	err := p.Advance(domain.PassResolved)
	require.ErrorIs(t, err, domain.ErrInvalidPassTransition)
	assert.Equal(t, domain.PassFailed, p.State())
}

func TestPass_FailRecordsReason(t *testing.T) {
	var p domain.Pass
	require.NoError(t, p.Advance(domain.PassResolved))

	reason := errors.New("emit failed")
	p.Fail(reason)

	assert.Equal(t, domain.PassFailed, p.State())
	assert.Equal(t, reason, p.Reason())

	// The first failure wins.
	p.Fail(errors.New("later"))
	assert.Equal(t, reason, p.Reason())
}

func TestPassState_String(t *testing.T) {
	assert.Equal(t, "start", domain.PassStart.String())
	assert.Equal(t, "map-emitted", domain.PassMapEmitted.String())
	assert.Equal(t, "failed", domain.PassFailed.String())
	assert.Equal(t, "unknown", domain.PassState(42).String())
}
