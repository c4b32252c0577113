package handler

import (
	"net/http"

	"github.com/NightFoX54/ERP-Proje/internal/apierror"
	"github.com/NightFoX54/ERP-Proje/internal/dto"
	"github.com/NightFoX54/ERP-Proje/internal/infra"
	"github.com/NightFoX54/ERP-Proje/internal/model"
	"github.com/NightFoX54/ERP-Proje/internal/service"

	"github.com/gin-gonic/gin"
)

type OrdersHandler struct {
	svc service.OrderService
	pdf *infra.PDFGenerator
}

func NewOrdersHandler(svc service.OrderService, pdf *infra.PDFGenerator) *OrdersHandler {
	return &OrdersHandler{svc: svc, pdf: pdf}
}

// Create godoc
// @Summary      Create an order
// @Description  Registers a customer order in Created state with empty totals. Fan-out notifications are dispatched asynchronously.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateOrderRequest true "Order header"
// @Success      201  {object} dto.OrderResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/orders [post]
func (h *OrdersHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	order, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewOrderResponse(order))
}

// Get godoc
// @Summary      Get one order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Order UUID"
// @Success      200 {object} dto.OrderResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/orders/{id} [get]
func (h *OrdersHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	order, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

// List godoc
// @Summary      List orders
// @Description  Newest first. Optional status filter.
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "Created | Confirmed | Ready | Dispatched | Cancelled"
// @Success      200 {array} dto.OrderResponse
// @Router       /v1/orders [get]
func (h *OrdersHandler) List(c *gin.Context) {
	var (
		orders []model.Order
		err    error
	)
	if status := c.Query("status"); status != "" {
		orders, err = h.svc.ListByStatus(c.Request.Context(), model.OrderStatus(status))
	} else {
		orders, err = h.svc.List(c.Request.Context())
	}
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *dto.NewOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Fulfill godoc
// @Summary      Fulfill an order
// @Description  Applies the cutting batch line by line: computes trim wastage for solid profiles, deducts stock, accumulates order totals, and moves the order to Ready. An empty batch is legal and still readies the order.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                  true "Order UUID"
// @Param        body body dto.FulfillOrderRequest true "Cutting batch"
// @Success      200  {object} dto.OrderResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/orders/{id}/fulfill [post]
func (h *OrdersHandler) Fulfill(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.FulfillOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	order, err := h.svc.Fulfill(c.Request.Context(), id, req.CuttingInfo)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

// SetStatus godoc
// @Summary      Set order status
// @Description  Forces the order to any of the five statuses. No transition rules are enforced.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                       true "Order UUID"
// @Param        body body dto.UpdateOrderStatusRequest true "New status"
// @Success      200  {object} dto.OrderResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/orders/{id}/status [put]
func (h *OrdersHandler) SetStatus(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateOrderStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	order, err := h.svc.SetStatus(c.Request.Context(), id, model.OrderStatus(req.Status))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

// DeliveryNote godoc
// @Summary      Download delivery note PDF
// @Tags         orders
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id path string true "Order UUID"
// @Success      200 {file} file
// @Failure      404 {object} apierror.APIError
// @Router       /v1/orders/{id}/delivery-note [get]
func (h *OrdersHandler) DeliveryNote(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	order, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	path, err := h.pdf.GenerateOrderPDF(order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("could not render delivery note"))
		return
	}
	c.FileAttachment(path, "delivery-note.pdf")
}
