package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/civicdesk/civicdesk/internal/application/complaint/usecases"
	"github.com/civicdesk/civicdesk/internal/domain/complaint"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/utils"
)

// CreateComplaintRequest is the JSON form of a submission. Multipart submissions
// carry the same fields as form values plus image files.
type CreateComplaintRequest struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

func (r *CreateComplaintRequest) ToCommand(submitterID uint) usecases.CreateComplaintCommand {
	cmd := usecases.CreateComplaintCommand{
		Title:       r.Title,
		Category:    r.Category,
		Description: r.Description,
		Location:    r.Location,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
	}
	if submitterID != 0 {
		cmd.SubmitterID = &submitterID
	}
	return cmd
}

// ParseCreateComplaintForm reads the text fields of a multipart submission.
// Blank coordinates are treated as absent.
func ParseCreateComplaintForm(c *gin.Context) (*CreateComplaintRequest, error) {
	req := &CreateComplaintRequest{
		Title:       c.PostForm("title"),
		Category:    c.PostForm("category"),
		Description: c.PostForm("description"),
		Location:    c.PostForm("location"),
	}

	var details []string
	var err error
	if req.Latitude, err = parseOptionalFloat(c.PostForm("latitude")); err != nil {
		details = append(details, errors.FieldError("latitude", "A valid number is required."))
	}
	if req.Longitude, err = parseOptionalFloat(c.PostForm("longitude")); err != nil {
		details = append(details, errors.FieldError("longitude", "A valid number is required."))
	}
	if len(details) > 0 {
		return nil, errors.NewValidationError("Validation failed", details...)
	}
	return req, nil
}

func parseOptionalFloat(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// UpdateComplaintRequest is a partial update; nil fields are left alone.
type UpdateComplaintRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Category    *string `json:"category"`
	Status      *string `json:"status"`
}

// NullableID distinguishes an omitted key, an explicit null and an id.
type NullableID struct {
	Set   bool
	Valid bool
	ID    uint
}

func (n *NullableID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Valid = false
		return nil
	}

	var raw json.Number
	if err := json.Unmarshal(data, &raw); err != nil {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = json.Number(s)
	}
	id, err := strconv.ParseUint(raw.String(), 10, 64)
	if err != nil || id == 0 {
		return errors.NewValidationError("Incorrect type. Expected pk value.")
	}
	n.Valid = true
	n.ID = uint(id)
	return nil
}

func (n NullableID) RefChange() complaint.RefChange {
	switch {
	case !n.Set:
		return complaint.Keep()
	case !n.Valid:
		return complaint.Clear()
	}
	return complaint.SetRef(n.ID)
}

type AssignComplaintRequest struct {
	AssignedDepartment NullableID `json:"assigned_department"`
	AssignedTo         NullableID `json:"assigned_to"`
}

// ParseAssignComplaintRequest decodes the assignment body, reporting malformed ids
// per field.
func ParseAssignComplaintRequest(c *gin.Context) (*AssignComplaintRequest, error) {
	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		return nil, errors.NewValidationError("Invalid request body", err.Error())
	}

	req := &AssignComplaintRequest{}
	var details []string
	for field, target := range map[string]*NullableID{
		"assigned_department": &req.AssignedDepartment,
		"assigned_to":         &req.AssignedTo,
	} {
		value, ok := raw[field]
		if !ok {
			continue
		}
		if err := target.UnmarshalJSON(value); err != nil {
			details = append(details, errors.FieldError(field, "Incorrect type. Expected pk value."))
		}
	}
	if len(details) > 0 {
		return nil, errors.NewValidationError("Validation failed", details...)
	}
	return req, nil
}

// ParseListComplaintsRequest reads admin list filters. Enum values are validated
// by the use case.
func ParseListComplaintsRequest(c *gin.Context) (*usecases.ListComplaintsQuery, error) {
	p := utils.ParsePagination(c)
	query := &usecases.ListComplaintsQuery{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Page:     p.Page,
		PageSize: p.PageSize,
	}

	var details []string
	for name, target := range map[string]**uint{
		"department":  &query.DepartmentID,
		"assigned_to": &query.AssigneeID,
	} {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			details = append(details, errors.FieldError(name, "must be a positive integer"))
			continue
		}
		v := uint(id)
		*target = &v
	}
	if len(details) > 0 {
		return nil, errors.NewValidationError("Invalid query parameters", details...)
	}
	return query, nil
}

func ParsePublicFeedRequest(c *gin.Context, viewerID uint) usecases.PublicFeedQuery {
	p := utils.ParsePagination(c)
	return usecases.PublicFeedQuery{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
		Sort:     c.Query("sort"),
		Page:     p.Page,
		PageSize: p.PageSize,
		ViewerID: viewerID,
	}
}
