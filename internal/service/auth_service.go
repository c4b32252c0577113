package service

import (
	"context"
	"time"

	"github.com/NightFoX54/ERP-Proje/internal/config"
	"github.com/NightFoX54/ERP-Proje/internal/dto"
	"github.com/NightFoX54/ERP-Proje/internal/model"
	"github.com/NightFoX54/ERP-Proje/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Register(ctx context.Context, req dto.RegisterAccountRequest) (*model.Account, error)
}

type authService struct {
	accounts repository.AccountRepository
	cfg      *config.Config
}

func NewAuthService(accounts repository.AccountRepository, cfg *config.Config) AuthService {
	return &authService{accounts: accounts, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	account, err := s.accounts.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueTokens(account)
}

// Refresh validates a refresh token and issues a fresh pair. The account is
// reloaded so a deactivated user cannot keep refreshing forever.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(refreshToken, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidCredentials
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}
	if kind, _ := claims["kind"].(string); kind != "refresh" {
		return nil, ErrInvalidCredentials
	}
	rawID, _ := claims["account_id"].(string)
	accountID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil || !account.Active {
		return nil, ErrInvalidCredentials
	}
	return s.issueTokens(account)
}

func (s *authService) Register(ctx context.Context, req dto.RegisterAccountRequest) (*model.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	var branchID *uuid.UUID
	if req.BranchID != nil {
		id, err := uuid.Parse(*req.BranchID)
		if err != nil {
			return nil, ErrBranchNotFound
		}
		branchID = &id
	}

	account := &model.Account{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         req.Role,
		BranchID:     branchID,
		Email:        req.Email,
		Active:       true,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *authService) issueTokens(account *model.Account) (*dto.TokenResponse, error) {
	now := time.Now()
	accessTTL := time.Duration(s.cfg.JWTExpirationHours) * time.Hour
	refreshTTL := time.Duration(s.cfg.JWTRefreshHours) * time.Hour

	var branchID string
	if account.BranchID != nil {
		branchID = account.BranchID.String()
	}

	accessClaims := jwt.MapClaims{
		"account_id": account.ID.String(),
		"username":   account.Username,
		"role":       account.Role,
		"branch_id":  branchID,
		"kind":       "access",
		"iat":        now.Unix(),
		"exp":        now.Add(accessTTL).Unix(),
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	refreshClaims := jwt.MapClaims{
		"account_id": account.ID.String(),
		"kind":       "refresh",
		"iat":        now.Unix(),
		"exp":        now.Add(refreshTTL).Unix(),
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
		TokenType:    "Bearer",
	}, nil
}
