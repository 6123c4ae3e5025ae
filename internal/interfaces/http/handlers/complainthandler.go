package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/civicdesk/civicdesk/internal/application/complaint/usecases"
	"github.com/civicdesk/civicdesk/internal/interfaces/dto"
	"github.com/civicdesk/civicdesk/internal/shared/authorization"
	"github.com/civicdesk/civicdesk/internal/shared/constants"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
	"github.com/civicdesk/civicdesk/internal/shared/utils"
)

// ComplaintUseCases groups the executors behind ComplaintHandler.
type ComplaintUseCases struct {
	Create usecases.CreateComplaintExecutor
	Get    usecases.GetComplaintExecutor
	Track  usecases.TrackComplaintExecutor
	List   usecases.ListComplaintsExecutor
	Update usecases.UpdateComplaintExecutor
	Delete usecases.DeleteComplaintExecutor
	Assign usecases.AssignComplaintExecutor
	Feed   usecases.PublicFeedExecutor
	Upvote usecases.ToggleUpvoteExecutor
}

type ComplaintHandler struct {
	ucs    ComplaintUseCases
	logger logger.Interface
}

func NewComplaintHandler(ucs ComplaintUseCases, logger logger.Interface) *ComplaintHandler {
	return &ComplaintHandler{
		ucs:    ucs,
		logger: logger,
	}
}

// Create godoc
// @Summary Submit a complaint
// @Description Accepts JSON or multipart/form-data. Multipart requests may attach one "image" and any number of "images".
// @Tags complaints
// @Accept json,mpfd
// @Produce json
// @Param request body dto.CreateComplaintRequest true "Complaint"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /complaints [post]
func (h *ComplaintHandler) Create(c *gin.Context) {
	var (
		req   *dto.CreateComplaintRequest
		files []*multipart.FileHeader
		image *multipart.FileHeader
	)

	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		form, err := c.MultipartForm()
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid multipart body", err.Error()))
			return
		}
		if req, err = dto.ParseCreateComplaintForm(c); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		if single := form.File["image"]; len(single) > 0 {
			image = single[0]
		}
		files = form.File["images"]
	} else {
		req = &dto.CreateComplaintRequest{}
		if err := c.ShouldBindJSON(req); err != nil {
			h.logger.Warnw("invalid request body for create complaint", "error", err)
			utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
			return
		}
	}

	cmd := req.ToCommand(utils.CurrentUserID(c))

	var opened []multipart.File
	defer func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}()
	open := func(fh *multipart.FileHeader) (usecases.ImageUpload, error) {
		f, err := fh.Open()
		if err != nil {
			return usecases.ImageUpload{}, errors.NewValidationError("Validation failed", errors.FieldError("images", "Upload a valid image."))
		}
		opened = append(opened, f)
		return usecases.ImageUpload{Filename: fh.Filename, Content: f}, nil
	}

	if image != nil {
		upload, err := open(image)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		cmd.Image = &upload
	}
	for _, fh := range files {
		upload, err := open(fh)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		cmd.Images = append(cmd.Images, upload)
	}

	result, err := h.ucs.Create.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, constants.MsgComplaintSubmitted)
}

// Track godoc
// @Summary Track a complaint by its public identifier
// @Tags complaints
// @Produce json
// @Param complaint_id path string true "Public identifier, e.g. HA-2025-001"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /complaints/track/{complaint_id} [get]
func (h *ComplaintHandler) Track(c *gin.Context) {
	result, err := h.ucs.Track.Execute(c.Request.Context(), usecases.TrackComplaintQuery{
		ComplaintID: c.Param("complaint_id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// PublicFeed godoc
// @Summary Public complaint feed
// @Tags complaints
// @Produce json
// @Param category query string false "Category code"
// @Param status query string false "Status"
// @Param date_from query string false "YYYY-MM-DD, inclusive"
// @Param date_to query string false "YYYY-MM-DD, inclusive"
// @Param sort query string false "recent, oldest or most_upvoted"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /complaints/public [get]
func (h *ComplaintHandler) PublicFeed(c *gin.Context) {
	result, err := h.ucs.Feed.Execute(c.Request.Context(), dto.ParsePublicFeedRequest(c, utils.CurrentUserID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// ToggleUpvote godoc
// @Summary Toggle the caller's upvote
// @Security Bearer
// @Tags complaints
// @Produce json
// @Param id path int true "Complaint ID"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /complaints/{id}/upvote [post]
func (h *ComplaintHandler) ToggleUpvote(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.ucs.Upvote.Execute(c.Request.Context(), usecases.ToggleUpvoteCommand{
		ComplaintID: id,
		UserID:      utils.CurrentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Mine godoc
// @Summary Complaints submitted by the caller
// @Security Bearer
// @Tags complaints
// @Produce json
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /complaints/mine [get]
func (h *ComplaintHandler) Mine(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if userID == 0 {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("Authentication credentials were not provided."))
		return
	}

	p := utils.ParsePagination(c)
	result, err := h.ucs.List.Execute(c.Request.Context(), usecases.ListComplaintsQuery{
		SubmitterID: &userID,
		Page:        p.Page,
		PageSize:    p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Complaints, result.Total, result.Page, result.PageSize)
}

// List godoc
// @Summary List all complaints
// @Security Bearer
// @Tags complaints
// @Produce json
// @Param status query string false "Status"
// @Param category query string false "Category code"
// @Param department query int false "Assigned department ID"
// @Param assigned_to query int false "Assignee user ID"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 403 {object} utils.APIResponse
// @Router /complaints [get]
func (h *ComplaintHandler) List(c *gin.Context) {
	query, err := dto.ParseListComplaintsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.ucs.List.Execute(c.Request.Context(), *query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Complaints, result.Total, result.Page, result.PageSize)
}

// Get godoc
// @Summary Get a complaint
// @Security Bearer
// @Tags complaints
// @Produce json
// @Param id path int true "Complaint ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /complaints/{id} [get]
func (h *ComplaintHandler) Get(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.ucs.Get.Execute(c.Request.Context(), usecases.GetComplaintQuery{ID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update godoc
// @Summary Update complaint fields or status
// @Security Bearer
// @Tags complaints
// @Accept json
// @Produce json
// @Param id path int true "Complaint ID"
// @Param request body dto.UpdateComplaintRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /complaints/{id} [patch]
func (h *ComplaintHandler) Update(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update complaint", "id", id, "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.ucs.Update.Execute(c.Request.Context(), usecases.UpdateComplaintCommand{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Category:    req.Category,
		Status:      req.Status,
		ActorID:     utils.CurrentUserID(c),
		ActorRole:   authorization.CurrentRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Delete godoc
// @Summary Delete a complaint
// @Security Bearer
// @Tags complaints
// @Param id path int true "Complaint ID"
// @Success 204
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /complaints/{id} [delete]
func (h *ComplaintHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.ucs.Delete.Execute(c.Request.Context(), usecases.DeleteComplaintCommand{
		ID:      id,
		ActorID: utils.CurrentUserID(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// Assign godoc
// @Summary Assign a complaint to a department and/or staff member
// @Description Each key may be omitted (unchanged), null (cleared) or an id.
// @Security Bearer
// @Tags complaints
// @Accept json
// @Produce json
// @Param id path int true "Complaint ID"
// @Param request body dto.AssignComplaintRequest true "Assignment"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /complaints/{id}/assign [post]
func (h *ComplaintHandler) Assign(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	req, err := dto.ParseAssignComplaintRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.ucs.Assign.Execute(c.Request.Context(), usecases.AssignComplaintCommand{
		ComplaintID: id,
		Department:  req.AssignedDepartment.RefChange(),
		AssignedTo:  req.AssignedTo.RefChange(),
		ActorID:     utils.CurrentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
