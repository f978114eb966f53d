package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ysalhi/tamwil-backend/internal/apperr"
)

func TestKindOf(t *testing.T) {
	err := apperr.E(apperr.NotFound, "wallet not found")
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	wrapped := fmt.Errorf("loading wallet: %w", err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(wrapped))

	assert.Equal(t, apperr.Internal, apperr.KindOf(errors.New("boom")))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperr.Wrap(apperr.Internal, "query failed", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "internal: query failed", err.Error())
}

func TestIs(t *testing.T) {
	assert.True(t, apperr.Is(apperr.E(apperr.Conflict, "dup"), apperr.Conflict))
	assert.False(t, apperr.Is(nil, apperr.Conflict))
	assert.False(t, apperr.Is(errors.New("x"), apperr.Conflict))
}
