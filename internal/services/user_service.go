package services

import (
	"context"
	"strings"

	"github.com/ysalhi/tamwil-backend/internal/apperr"
	"github.com/ysalhi/tamwil-backend/internal/auth"
	"github.com/ysalhi/tamwil-backend/internal/models"
	repo "github.com/ysalhi/tamwil-backend/internal/repository"
)

type UserService struct {
	users   repo.Users
	wallets repo.Wallets
	tm      *auth.TokenManager
}

func NewUserService(u repo.Users, w repo.Wallets, tm *auth.TokenManager) *UserService {
	return &UserService{users: u, wallets: w, tm: tm}
}

// Register creates the user (KYC pending) and an empty wallet alongside it.
// Only the two public roles are accepted; admin accounts are provisioned
// out of band.
func (s *UserService) Register(ctx context.Context, fullName, email, password string, role models.Role) (models.User, error) {
	if role != models.RoleInvestor && role != models.RoleProjectOwner {
		return models.User{}, apperr.E(apperr.Validation, "role must be investor or project_owner")
	}
	if len(password) < 8 {
		return models.User{}, apperr.E(apperr.Validation, "password too short")
	}
	u := models.User{
		FullName:  strings.TrimSpace(fullName),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Role:      role,
		KYCStatus: models.KYCPending,
	}
	if err := u.Validate(); err != nil {
		return models.User{}, apperr.E(apperr.Validation, err.Error())
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	u.PasswordHash = hash

	created, err := s.users.Create(ctx, u)
	if err != nil {
		return models.User{}, err
	}
	if _, err := s.wallets.Create(ctx, models.Wallet{UserID: created.ID, Currency: "MAD"}); err != nil {
		return models.User{}, err
	}
	return created, nil
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (s *UserService) Login(ctx context.Context, email, password string) (TokenPair, error) {
	u, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return TokenPair{}, apperr.E(apperr.Unauthorized, "invalid credentials")
	}
	if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
		return TokenPair{}, apperr.E(apperr.Unauthorized, "invalid credentials")
	}
	access, refresh, exp, err := s.tm.GeneratePair(u.ID, string(u.Role))
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresIn: exp.Unix()}, nil
}

func (s *UserService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, isRefresh, err := s.tm.ParseAny(refreshToken)
	if err != nil || !isRefresh {
		return TokenPair{}, apperr.E(apperr.Unauthorized, "invalid refresh token")
	}
	access, refresh, exp, err := s.tm.GeneratePair(claims.UserID, claims.Role)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresIn: exp.Unix()}, nil
}

func (s *UserService) Get(ctx context.Context, id string) (models.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}
