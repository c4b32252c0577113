package handler

import (
	"net/http"

	"github.com/NightFoX54/ERP-Proje/internal/dto"
	"github.com/NightFoX54/ERP-Proje/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationsHandler struct{ svc service.NotificationService }

func NewNotificationsHandler(svc service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{svc: svc}
}

// List godoc
// @Summary      List the caller's notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        unread query bool false "Only unread"
// @Success      200 {array} dto.NotificationResponse
// @Router       /v1/notifications [get]
func (h *NotificationsHandler) List(c *gin.Context) {
	actor := actorFromClaims(c)
	var (
		notifications []dto.NotificationResponse
		err           error
	)
	if c.Query("unread") == "true" {
		list, e := h.svc.ListUnreadForAccount(c.Request.Context(), actor.AccountID)
		notifications, err = dto.NewNotificationResponses(list), e
	} else {
		list, e := h.svc.ListForAccount(c.Request.Context(), actor.AccountID)
		notifications, err = dto.NewNotificationResponses(list), e
	}
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkRead godoc
// @Summary      Mark a notification as read
// @Tags         notifications
// @Security     BearerAuth
// @Param        id path string true "Notification UUID"
// @Success      204
// @Router       /v1/notifications/{id}/read [post]
func (h *NotificationsHandler) MarkRead(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	actor := actorFromClaims(c)
	if err := h.svc.MarkRead(c.Request.Context(), actor.AccountID, id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
