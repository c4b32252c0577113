package handler

import (
	"net/http"
	"time"

	"github.com/NightFoX54/ERP-Proje/internal/apierror"
	"github.com/NightFoX54/ERP-Proje/internal/service"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct{ svc service.StatisticsService }

func NewStatisticsHandler(svc service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{svc: svc}
}

// dateWindow parses the mandatory start/end query params (YYYY-MM-DD).
// The end date is inclusive — the window runs to end-of-day.
func dateWindow(c *gin.Context) (time.Time, time.Time, bool) {
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid start date, expected YYYY-MM-DD"))
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid end date, expected YYYY-MM-DD"))
		return time.Time{}, time.Time{}, false
	}
	return start, end.Add(24*time.Hour - time.Nanosecond), true
}

// Purchases godoc
// @Summary      Purchase statistics
// @Description  Stock bought in the window, grouped branch then category. Branch users see only their branch.
// @Tags         statistics
// @Produce      json
// @Security     BearerAuth
// @Param        start query string true "YYYY-MM-DD"
// @Param        end   query string true "YYYY-MM-DD (inclusive)"
// @Success      200   {object} dto.PurchaseStatistics
// @Router       /v1/statistics/purchases [get]
func (h *StatisticsHandler) Purchases(c *gin.Context) {
	start, end, ok := dateWindow(c)
	if !ok {
		return
	}
	stats, err := h.svc.Purchases(c.Request.Context(), actorFromClaims(c), start, end)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Sales godoc
// @Summary      Sales statistics
// @Description  Sold-item ledger lines of orders dated in the window, grouped branch then customer then category.
// @Tags         statistics
// @Produce      json
// @Security     BearerAuth
// @Param        start query string true "YYYY-MM-DD"
// @Param        end   query string true "YYYY-MM-DD (inclusive)"
// @Success      200   {object} dto.SalesStatistics
// @Router       /v1/statistics/sales [get]
func (h *StatisticsHandler) Sales(c *gin.Context) {
	start, end, ok := dateWindow(c)
	if !ok {
		return
	}
	stats, err := h.svc.Sales(c.Request.Context(), actorFromClaims(c), start, end)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
