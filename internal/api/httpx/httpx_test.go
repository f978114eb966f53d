package httpx_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ysalhi/tamwil-backend/internal/api/httpx"
	"github.com/ysalhi/tamwil-backend/internal/apperr"
)

func TestWriteAppErrorStatusMapping(t *testing.T) {
	cases := []struct {
		kind   apperr.Kind
		status int
	}{
		{apperr.NotFound, http.StatusNotFound},
		{apperr.Unauthorized, http.StatusForbidden},
		{apperr.Unverified, http.StatusForbidden},
		{apperr.InvalidState, http.StatusConflict},
		{apperr.Conflict, http.StatusConflict},
		{apperr.InsufficientFunds, http.StatusUnprocessableEntity},
		{apperr.Validation, http.StatusBadRequest},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		httpx.WriteAppError(rec, apperr.E(tc.kind, "x"))
		assert.Equal(t, tc.status, rec.Code, string(tc.kind))
	}
}

func TestWriteAppErrorHidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteAppError(rec, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.Contains(t, rec.Body.String(), "internal error")
}
