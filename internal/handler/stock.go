package handler

import (
	"net/http"
	"strconv"

	"github.com/NightFoX54/ERP-Proje/internal/apierror"
	"github.com/NightFoX54/ERP-Proje/internal/dto"
	"github.com/NightFoX54/ERP-Proje/internal/service"

	"github.com/gin-gonic/gin"
)

type StockHandler struct{ svc service.StockService }

func NewStockHandler(svc service.StockService) *StockHandler { return &StockHandler{svc: svc} }

// CreateItem godoc
// @Summary      Register a stock lot
// @Description  Records an acquired lot; derives kg price from purchase price (or the reverse) and snapshots the purchase quantities.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateStockItemRequest true "Lot details"
// @Success      201  {object} dto.StockItemResponse
// @Failure      403  {object} apierror.APIError
// @Router       /v1/stock/items [post]
func (h *StockHandler) CreateItem(c *gin.Context) {
	var req dto.CreateStockItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	item, err := h.svc.CreateItem(c.Request.Context(), actorFromClaims(c), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewStockItemResponse(item))
}

// GetItem godoc
// @Summary      Get one stock lot
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Stock item UUID"
// @Success      200 {object} dto.StockItemResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/stock/items/{id} [get]
func (h *StockHandler) GetItem(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	item, err := h.svc.GetItem(c.Request.Context(), actorFromClaims(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewStockItemResponse(item))
}

// ListItems godoc
// @Summary      List stock lots
// @Description  Admins see everything; branch users see their branch's categories. Optional category and diameter filters.
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Param        category_id query string false "Filter by category UUID"
// @Param        diameter    query int    false "Filter by diameter (mm), requires category_id"
// @Success      200 {array} dto.StockItemResponse
// @Router       /v1/stock/items [get]
func (h *StockHandler) ListItems(c *gin.Context) {
	actor := actorFromClaims(c)
	ctx := c.Request.Context()

	if rawCategory := c.Query("category_id"); rawCategory != "" {
		categoryID, ok := queryUUID(c, rawCategory)
		if !ok {
			return
		}
		if rawDiameter := c.Query("diameter"); rawDiameter != "" {
			diameter, err := strconv.Atoi(rawDiameter)
			if err != nil {
				c.JSON(http.StatusBadRequest, apierror.New("invalid diameter"))
				return
			}
			items, err := h.svc.ListItemsByCategoryAndDiameter(ctx, actor, categoryID, diameter)
			if err != nil {
				writeServiceError(c, err)
				return
			}
			c.JSON(http.StatusOK, dto.NewStockItemResponses(items))
			return
		}
		items, err := h.svc.ListItemsByCategory(ctx, actor, categoryID)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewStockItemResponses(items))
		return
	}

	items, err := h.svc.ListItems(ctx, actor)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewStockItemResponses(items))
}

// UpdateItem godoc
// @Summary      Update a stock lot
// @Description  Patches mutable attributes. The purchase snapshot never changes.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                     true "Stock item UUID"
// @Param        body body dto.UpdateStockItemRequest true "Fields to patch"
// @Success      200  {object} dto.StockItemResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/stock/items/{id} [patch]
func (h *StockHandler) UpdateItem(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateStockItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	item, err := h.svc.UpdateItem(c.Request.Context(), actorFromClaims(c), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewStockItemResponse(item))
}

// DeleteItem godoc
// @Summary      Delete a stock lot
// @Tags         stock
// @Security     BearerAuth
// @Param        id path string true "Stock item UUID"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/stock/items/{id} [delete]
func (h *StockHandler) DeleteItem(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteItem(c.Request.Context(), actorFromClaims(c), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateCategory godoc
// @Summary      Create a product category
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateCategoryRequest true "Category"
// @Success      201  {object} dto.CategoryResponse
// @Failure      403  {object} apierror.APIError
// @Router       /v1/catalog/categories [post]
func (h *StockHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	category, err := h.svc.CreateCategory(c.Request.Context(), actorFromClaims(c), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCategoryResponse(category))
}

// ListCategories godoc
// @Summary      List categories of a branch
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        branch_id query string true "Branch UUID"
// @Success      200 {array} dto.CategoryResponse
// @Router       /v1/catalog/categories [get]
func (h *StockHandler) ListCategories(c *gin.Context) {
	branchID, ok := queryUUID(c, c.Query("branch_id"))
	if !ok {
		return
	}
	categories, err := h.svc.ListCategoriesByBranch(c.Request.Context(), branchID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, *dto.NewCategoryResponse(&categories[i]))
	}
	c.JSON(http.StatusOK, out)
}

// DeleteCategory godoc
// @Summary      Delete a category and its lots
// @Tags         catalog
// @Security     BearerAuth
// @Param        id path string true "Category UUID"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/catalog/categories/{id} [delete]
func (h *StockHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteCategory(c.Request.Context(), actorFromClaims(c), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateProductType godoc
// @Summary      Create a profile type
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateProductTypeRequest true "Profile type"
// @Success      201  {object} dto.ProductTypeResponse
// @Router       /v1/catalog/types [post]
func (h *StockHandler) CreateProductType(c *gin.Context) {
	var req dto.CreateProductTypeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	t, err := h.svc.CreateProductType(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewProductTypeResponse(t))
}

// ListProductTypes godoc
// @Summary      List profile types
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ProductTypeResponse
// @Router       /v1/catalog/types [get]
func (h *StockHandler) ListProductTypes(c *gin.Context) {
	types, err := h.svc.ListProductTypes(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]dto.ProductTypeResponse, 0, len(types))
	for i := range types {
		out = append(out, *dto.NewProductTypeResponse(&types[i]))
	}
	c.JSON(http.StatusOK, out)
}
