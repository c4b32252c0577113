package handler

import (
	"net/http"

	"github.com/NightFoX54/ERP-Proje/internal/dto"
	"github.com/NightFoX54/ERP-Proje/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary      Login
// @Description  Exchanges username/password for an access + refresh token pair.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.LoginRequest true "Credentials"
// @Success      200  {object} dto.TokenResponse
// @Failure      401  {object} apierror.APIError
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tokens, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// Refresh godoc
// @Summary      Refresh tokens
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.RefreshRequest true "Refresh token"
// @Success      200  {object} dto.TokenResponse
// @Failure      401  {object} apierror.APIError
// @Router       /v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tokens, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// Register godoc
// @Summary      Register an account
// @Description  Admin only. Branch accounts must carry a branch id.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegisterAccountRequest true "New account"
// @Success      201  {object} dto.AccountResponse
// @Failure      403  {object} apierror.APIError
// @Router       /v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterAccountRequest
	if !bindAndValidate(c, &req) {
		return
	}
	account, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp := dto.AccountResponse{
		ID:       account.ID.String(),
		Username: account.Username,
		Role:     account.Role,
		Email:    account.Email,
		Active:   account.Active,
	}
	if account.BranchID != nil {
		s := account.BranchID.String()
		resp.BranchID = &s
	}
	c.JSON(http.StatusCreated, resp)
}
