package dto

import (
	"time"

	"github.com/civicdesk/civicdesk/internal/domain/complaint"
)

type ImageDTO struct {
	ID         uint      `json:"id"`
	Image      string    `json:"image"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// ComplaintDTO is the full representation returned to submitters and staff.
type ComplaintDTO struct {
	ID                     uint       `json:"id"`
	ComplaintID            string     `json:"complaint_id"`
	UserID                 *uint      `json:"user"`
	Title                  string     `json:"title"`
	Category               string     `json:"category"`
	CategoryDisplay        string     `json:"category_display"`
	Description            string     `json:"description"`
	Location               string     `json:"location"`
	Latitude               *float64   `json:"latitude"`
	Longitude              *float64   `json:"longitude"`
	Status                 string     `json:"status"`
	Image                  string     `json:"image"`
	Images                 []ImageDTO `json:"images"`
	AssignedDepartmentID   *uint      `json:"assigned_department"`
	AssignedDepartmentName *string    `json:"assigned_department_name"`
	AssignedToID           *uint      `json:"assigned_to"`
	AssignedToUsername     *string    `json:"assigned_to_username"`
	Date                   string     `json:"date"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

// FeedItemDTO is the public projection of a complaint. It never exposes the
// submitter or the assignment.
type FeedItemDTO struct {
	ID              uint      `json:"id"`
	ComplaintID     string    `json:"complaint_id"`
	Title           string    `json:"title"`
	Category        string    `json:"category"`
	CategoryDisplay string    `json:"category_display"`
	Location        string    `json:"location"`
	Status          string    `json:"status"`
	Image           string    `json:"image"`
	Latitude        *float64  `json:"latitude"`
	Longitude       *float64  `json:"longitude"`
	Date            string    `json:"date"`
	CreatedAt       time.Time `json:"created_at"`
	UpvoteCount     int64     `json:"upvote_count"`
	IsUpvoted       bool      `json:"is_upvoted"`
}

// References holds display names for the ids a complaint points at.
type References struct {
	DepartmentNames map[uint]string
	Usernames       map[uint]string
}

// ImageURLFunc turns a stored image reference into a client-facing URL.
type ImageURLFunc func(ref string) string

func identityURL(ref string) string { return ref }

func lookup(m map[uint]string, id *uint) *string {
	if id == nil || m == nil {
		return nil
	}
	if name, ok := m[*id]; ok {
		return &name
	}
	return nil
}

func ToComplaintDTO(c *complaint.Complaint, refs References, imageURL ImageURLFunc) *ComplaintDTO {
	if c == nil {
		return nil
	}
	if imageURL == nil {
		imageURL = identityURL
	}

	images := make([]ImageDTO, 0, len(c.Images()))
	for _, img := range c.Images() {
		images = append(images, ImageDTO{
			ID:         img.ID(),
			Image:      imageURL(img.Path()),
			UploadedAt: img.UploadedAt(),
		})
	}

	image := ""
	if c.Image() != "" {
		image = imageURL(c.Image())
	}

	return &ComplaintDTO{
		ID:                     c.ID(),
		ComplaintID:            c.ComplaintID(),
		UserID:                 c.UserID(),
		Title:                  c.Title(),
		Category:               c.Category().String(),
		CategoryDisplay:        c.CategoryDisplay(),
		Description:            c.Description(),
		Location:               c.Location(),
		Latitude:               c.Latitude(),
		Longitude:              c.Longitude(),
		Status:                 c.Status().String(),
		Image:                  image,
		Images:                 images,
		AssignedDepartmentID:   c.AssignedDepartmentID(),
		AssignedDepartmentName: lookup(refs.DepartmentNames, c.AssignedDepartmentID()),
		AssignedToID:           c.AssignedToID(),
		AssignedToUsername:     lookup(refs.Usernames, c.AssignedToID()),
		Date:                   c.Date(),
		CreatedAt:              c.CreatedAt(),
		UpdatedAt:              c.UpdatedAt(),
	}
}

func ToComplaintDTOList(list []*complaint.Complaint, refs References, imageURL ImageURLFunc) []*ComplaintDTO {
	out := make([]*ComplaintDTO, 0, len(list))
	for _, c := range list {
		out = append(out, ToComplaintDTO(c, refs, imageURL))
	}
	return out
}

func ToFeedItemDTO(e *complaint.FeedEntry, isUpvoted bool, imageURL ImageURLFunc) FeedItemDTO {
	if imageURL == nil {
		imageURL = identityURL
	}
	c := e.Complaint
	image := ""
	if c.Image() != "" {
		image = imageURL(c.Image())
	}
	return FeedItemDTO{
		ID:              c.ID(),
		ComplaintID:     c.ComplaintID(),
		Title:           c.Title(),
		Category:        c.Category().String(),
		CategoryDisplay: c.CategoryDisplay(),
		Location:        c.Location(),
		Status:          c.Status().String(),
		Image:           image,
		Latitude:        c.Latitude(),
		Longitude:       c.Longitude(),
		Date:            c.Date(),
		CreatedAt:       c.CreatedAt(),
		UpvoteCount:     e.UpvoteCount,
		IsUpvoted:       isUpvoted,
	}
}

// UpvoteResultDTO answers a toggle.
type UpvoteResultDTO struct {
	Upvoted     bool  `json:"upvoted"`
	UpvoteCount int64 `json:"upvote_count"`
}
