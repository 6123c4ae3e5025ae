package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/civicdesk/civicdesk/internal/shared/errors"
)

// APIResponse is the envelope every JSON endpoint answers with.
type APIResponse struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Message string     `json:"message,omitempty"`
}

type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ListResponse wraps a page of items.
type ListResponse struct {
	Items      any   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data any) {
	c.JSON(statusCode, APIResponse{Success: true, Data: data, Message: message})
}

// CreatedResponse answers 201 with an optional message.
func CreatedResponse(c *gin.Context, data any, message ...string) {
	msg := "Resource created successfully"
	if len(message) > 0 {
		msg = message[0]
	}
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data, Message: msg})
}

// ErrorResponseWithError maps an AppError to its status code. Anything else becomes
// an opaque 500 so driver messages never leak to clients.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		c.JSON(http.StatusInternalServerError, APIResponse{
			Error: &ErrorInfo{
				Type:    string(errors.ErrorTypeInternal),
				Message: "Internal server error occurred",
			},
		})
		return
	}

	c.JSON(appErr.Code, APIResponse{
		Error: &ErrorInfo{
			Type:    string(appErr.Type),
			Message: appErr.Message,
			Details: appErr.Details,
		},
	})
}

// AbortWithError renders err and stops the handler chain; used by middleware.
func AbortWithError(c *gin.Context, err error) {
	ErrorResponseWithError(c, err)
	c.Abort()
}

func ListSuccessResponse(c *gin.Context, items any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data: ListResponse{
			Items:      items,
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: TotalPages(total, pageSize),
		},
	})
}

func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
