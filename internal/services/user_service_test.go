package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ysalhi/tamwil-backend/internal/apperr"
	"github.com/ysalhi/tamwil-backend/internal/models"
)

func TestRegisterCreatesUserAndWallet(t *testing.T) {
	e := newEnv(t)

	u, err := e.svc.Users.Register(e.ctx, "Yassine Salhi", "Yassine@Example.MA", "s3cret-pass", models.RoleInvestor)
	require.NoError(t, err)
	assert.Equal(t, "yassine@example.ma", u.Email)
	assert.Equal(t, models.KYCPending, u.KYCStatus)

	w, err := e.repos.Wallets.GetByUser(e.ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), w.Balance)
	assert.Equal(t, "MAD", w.Currency)
}

func TestRegisterValidation(t *testing.T) {
	e := newEnv(t)

	_, err := e.svc.Users.Register(e.ctx, "Admin", "a@b.ma", "s3cret-pass", models.RoleAdminFinance)
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	_, err = e.svc.Users.Register(e.ctx, "Short Pass", "a@b.ma", "short", models.RoleInvestor)
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	_, err = e.svc.Users.Register(e.ctx, "ab", "a@b.ma", "s3cret-pass", models.RoleInvestor)
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	e := newEnv(t)

	_, err := e.svc.Users.Register(e.ctx, "First User", "dup@example.ma", "s3cret-pass", models.RoleInvestor)
	require.NoError(t, err)

	_, err = e.svc.Users.Register(e.ctx, "Second User", "dup@example.ma", "s3cret-pass", models.RoleInvestor)
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
}

func TestLoginAndRefresh(t *testing.T) {
	e := newEnv(t)

	_, err := e.svc.Users.Register(e.ctx, "Yassine Salhi", "login@example.ma", "s3cret-pass", models.RoleInvestor)
	require.NoError(t, err)

	pair, err := e.svc.Users.Login(e.ctx, "login@example.ma", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	_, err = e.svc.Users.Login(e.ctx, "login@example.ma", "wrong-pass")
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))

	next, err := e.svc.Users.Refresh(e.ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, next.AccessToken)

	// an access token is not accepted as a refresh token
	_, err = e.svc.Users.Refresh(e.ctx, pair.AccessToken)
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))
}
