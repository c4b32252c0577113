package handler

import (
	"net/http"

	"github.com/NightFoX54/ERP-Proje/internal/dto"
	"github.com/NightFoX54/ERP-Proje/internal/service"

	"github.com/gin-gonic/gin"
)

type BranchesHandler struct{ svc service.BranchService }

func NewBranchesHandler(svc service.BranchService) *BranchesHandler {
	return &BranchesHandler{svc: svc}
}

// Create godoc
// @Summary      Create a branch
// @Description  Admin only. Branch names are unique.
// @Tags         branches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateBranchRequest true "Branch"
// @Success      201  {object} dto.BranchResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/branches [post]
func (h *BranchesHandler) Create(c *gin.Context) {
	var req dto.CreateBranchRequest
	if !bindAndValidate(c, &req) {
		return
	}
	branch, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewBranchResponse(branch))
}

// List godoc
// @Summary      List branches
// @Tags         branches
// @Produce      json
// @Security     BearerAuth
// @Param        stock_enabled query bool false "Only branches holding stock"
// @Success      200 {array} dto.BranchResponse
// @Router       /v1/branches [get]
func (h *BranchesHandler) List(c *gin.Context) {
	var (
		branches []dto.BranchResponse
		err      error
	)
	if c.Query("stock_enabled") == "true" {
		list, e := h.svc.ListStockEnabled(c.Request.Context())
		branches, err = dto.NewBranchResponses(list), e
	} else {
		list, e := h.svc.List(c.Request.Context())
		branches, err = dto.NewBranchResponses(list), e
	}
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, branches)
}

// Get godoc
// @Summary      Get one branch
// @Tags         branches
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Branch UUID"
// @Success      200 {object} dto.BranchResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/branches/{id} [get]
func (h *BranchesHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	branch, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBranchResponse(branch))
}

// Update godoc
// @Summary      Update a branch
// @Tags         branches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                  true "Branch UUID"
// @Param        body body dto.UpdateBranchRequest true "Fields to patch"
// @Success      200  {object} dto.BranchResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/branches/{id} [patch]
func (h *BranchesHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateBranchRequest
	if !bindAndValidate(c, &req) {
		return
	}
	branch, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBranchResponse(branch))
}

// Delete godoc
// @Summary      Delete a branch
// @Tags         branches
// @Security     BearerAuth
// @Param        id path string true "Branch UUID"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/branches/{id} [delete]
func (h *BranchesHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
