package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/civicdesk/civicdesk/internal/application/notification/usecases"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
	"github.com/civicdesk/civicdesk/internal/shared/utils"
)

type NotificationHandler struct {
	listUseCase     usecases.ListNotificationsExecutor
	markReadUseCase usecases.MarkNotificationAsReadExecutor
	logger          logger.Interface
}

func NewNotificationHandler(
	listUC usecases.ListNotificationsExecutor,
	markReadUC usecases.MarkNotificationAsReadExecutor,
	logger logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		listUseCase:     listUC,
		markReadUseCase: markReadUC,
		logger:          logger,
	}
}

// List godoc
// @Summary List the caller's notifications, newest first
// @Security Bearer
// @Tags notifications
// @Produce json
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListNotificationsQuery{
		UserID:   utils.CurrentUserID(c),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Security Bearer
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.markReadUseCase.Execute(c.Request.Context(), usecases.MarkNotificationAsReadCommand{
		ID:     id,
		UserID: utils.CurrentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
