package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/civicdesk/civicdesk/internal/application/department/usecases"
	"github.com/civicdesk/civicdesk/internal/interfaces/dto"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
	"github.com/civicdesk/civicdesk/internal/shared/utils"
)

type DepartmentUseCases struct {
	Create      usecases.CreateDepartmentExecutor
	Update      usecases.UpdateDepartmentExecutor
	Delete      usecases.DeleteDepartmentExecutor
	Get         usecases.GetDepartmentExecutor
	List        usecases.ListDepartmentsExecutor
	ListAdmins  usecases.ListDepartmentAdminsExecutor
	UpsertAdmin usecases.UpsertAdminProfileExecutor
}

type DepartmentHandler struct {
	ucs    DepartmentUseCases
	logger logger.Interface
}

func NewDepartmentHandler(ucs DepartmentUseCases, logger logger.Interface) *DepartmentHandler {
	return &DepartmentHandler{
		ucs:    ucs,
		logger: logger,
	}
}

// List godoc
// @Summary List departments
// @Tags departments
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /departments [get]
func (h *DepartmentHandler) List(c *gin.Context) {
	result, err := h.ucs.List.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Get godoc
// @Summary Get a department
// @Tags departments
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /departments/{id} [get]
func (h *DepartmentHandler) Get(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.ucs.Get.Execute(c.Request.Context(), usecases.GetDepartmentQuery{ID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Create godoc
// @Summary Create a department
// @Security Bearer
// @Tags departments
// @Accept json
// @Produce json
// @Param request body dto.DepartmentRequest true "Department"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /departments [post]
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req dto.DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create department", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.ucs.Create.Execute(c.Request.Context(), req.ToCreateCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// Update godoc
// @Summary Replace a department
// @Security Bearer
// @Tags departments
// @Accept json
// @Produce json
// @Param id path int true "Department ID"
// @Param request body dto.DepartmentRequest true "Department"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /departments/{id} [put]
func (h *DepartmentHandler) Update(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.ucs.Update.Execute(c.Request.Context(), req.ToUpdateCommand(id))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Delete godoc
// @Summary Delete a department
// @Security Bearer
// @Tags departments
// @Param id path int true "Department ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /departments/{id} [delete]
func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.ucs.Delete.Execute(c.Request.Context(), usecases.DeleteDepartmentCommand{ID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListAdmins godoc
// @Summary Staff attached to a department
// @Security Bearer
// @Tags departments
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /departments/{id}/admins [get]
func (h *DepartmentHandler) ListAdmins(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.ucs.ListAdmins.Execute(c.Request.Context(), usecases.ListDepartmentAdminsQuery{DepartmentID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpsertAdminProfile godoc
// @Summary Set a staff account's role and department
// @Security Bearer
// @Tags departments
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param request body dto.UpsertAdminProfileRequest true "Profile"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin-profiles/{user_id} [put]
func (h *DepartmentHandler) UpsertAdminProfile(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "user_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpsertAdminProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.ucs.UpsertAdmin.Execute(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
