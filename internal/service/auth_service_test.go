package service_test

import (
	"context"
	"testing"

	"github.com/NightFoX54/ERP-Proje/internal/config"
	"github.com/NightFoX54/ERP-Proje/internal/dto"
	"github.com/NightFoX54/ERP-Proje/internal/model"
	"github.com/NightFoX54/ERP-Proje/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAuthSvc() (service.AuthService, *stubAccountRepo) {
	accounts := newStubAccountRepo()
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	}
	return service.NewAuthService(accounts, cfg), accounts
}

func TestLogin_Success(t *testing.T) {
	svc, _ := buildAuthSvc()

	_, err := svc.Register(context.Background(), dto.RegisterAccountRequest{
		Username: "operator",
		Password: "correct horse",
		Role:     model.RoleBranch,
	})
	require.NoError(t, err)

	tokens, err := svc.Login(context.Background(), dto.LoginRequest{Username: "operator", Password: "correct horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "Bearer", tokens.TokenType)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := buildAuthSvc()

	_, err := svc.Register(context.Background(), dto.RegisterAccountRequest{
		Username: "operator",
		Password: "correct horse",
		Role:     model.RoleBranch,
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "operator", Password: "wrong"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestRefresh_RotatesTokens(t *testing.T) {
	svc, _ := buildAuthSvc()

	_, err := svc.Register(context.Background(), dto.RegisterAccountRequest{
		Username: "operator",
		Password: "correct horse",
		Role:     model.RoleAdmin,
	})
	require.NoError(t, err)

	tokens, err := svc.Login(context.Background(), dto.LoginRequest{Username: "operator", Password: "correct horse"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	svc, _ := buildAuthSvc()

	_, err := svc.Register(context.Background(), dto.RegisterAccountRequest{
		Username: "operator",
		Password: "correct horse",
		Role:     model.RoleAdmin,
	})
	require.NoError(t, err)

	tokens, err := svc.Login(context.Background(), dto.LoginRequest{Username: "operator", Password: "correct horse"})
	require.NoError(t, err)

	// An access token must not work as a refresh token.
	_, err = svc.Refresh(context.Background(), tokens.AccessToken)
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestRefresh_DeactivatedAccount(t *testing.T) {
	svc, accounts := buildAuthSvc()

	account, err := svc.Register(context.Background(), dto.RegisterAccountRequest{
		Username: "operator",
		Password: "correct horse",
		Role:     model.RoleAdmin,
	})
	require.NoError(t, err)

	tokens, err := svc.Login(context.Background(), dto.LoginRequest{Username: "operator", Password: "correct horse"})
	require.NoError(t, err)

	account.Active = false
	require.NoError(t, accounts.Save(context.Background(), account))

	_, err = svc.Refresh(context.Background(), tokens.RefreshToken)
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}
