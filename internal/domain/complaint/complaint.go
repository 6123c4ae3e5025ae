package complaint

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	vo "github.com/civicdesk/civicdesk/internal/domain/complaint/valueobjects"
	"github.com/civicdesk/civicdesk/internal/domain/shared/events"
	"github.com/civicdesk/civicdesk/internal/shared/biztime"
)

const (
	MaxTitleLength    = 200
	MaxLocationLength = 300
)

type Complaint struct {
	id                   uint
	complaintID          string
	userID               *uint
	title                string
	category             vo.Category
	description          string
	location             string
	latitude             *float64
	longitude            *float64
	status               vo.Status
	image                string
	images               []*Image
	assignedDepartmentID *uint
	assignedToID         *uint
	createdAt            time.Time
	updatedAt            time.Time
	events               []events.DomainEvent
}

// ComplaintState is the full persisted state used to rebuild an aggregate.
type ComplaintState struct {
	ID                   uint
	ComplaintID          string
	UserID               *uint
	Title                string
	Category             vo.Category
	Description          string
	Location             string
	Latitude             *float64
	Longitude            *float64
	Status               vo.Status
	Image                string
	Images               []*Image
	AssignedDepartmentID *uint
	AssignedToID         *uint
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewComplaint builds an unsaved complaint in the Submitted state. userID is nil for
// anonymous submissions.
func NewComplaint(
	title string,
	category vo.Category,
	description string,
	location string,
	latitude, longitude *float64,
	userID *uint,
) (*Complaint, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	location = strings.TrimSpace(location)

	if err := validateText(title, description, location); err != nil {
		return nil, err
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	if err := validateCoordinates(latitude, longitude); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Complaint{
		userID:      userID,
		title:       title,
		category:    category,
		description: description,
		location:    location,
		latitude:    latitude,
		longitude:   longitude,
		status:      vo.StatusSubmitted,
		images:      []*Image{},
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructComplaint(s ComplaintState) (*Complaint, error) {
	if s.ID == 0 {
		return nil, fmt.Errorf("complaint ID cannot be zero")
	}
	if s.ComplaintID == "" {
		return nil, fmt.Errorf("complaint identifier is required")
	}
	if !s.Category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", s.Category)
	}
	if !s.Status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", s.Status)
	}

	images := s.Images
	if images == nil {
		images = []*Image{}
	}

	return &Complaint{
		id:                   s.ID,
		complaintID:          s.ComplaintID,
		userID:               s.UserID,
		title:                s.Title,
		category:             s.Category,
		description:          s.Description,
		location:             s.Location,
		latitude:             s.Latitude,
		longitude:            s.Longitude,
		status:               s.Status,
		image:                s.Image,
		images:               images,
		assignedDepartmentID: s.AssignedDepartmentID,
		assignedToID:         s.AssignedToID,
		createdAt:            s.CreatedAt,
		updatedAt:            s.UpdatedAt,
	}, nil
}

func validateText(title, description, location string) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	if description == "" {
		return fmt.Errorf("description is required")
	}
	if location == "" {
		return fmt.Errorf("location is required")
	}
	if utf8.RuneCountInString(location) > MaxLocationLength {
		return fmt.Errorf("location exceeds maximum length of %d characters", MaxLocationLength)
	}
	return nil
}

func validateCoordinates(lat, lng *float64) error {
	if lat != nil && (*lat < -90 || *lat > 90) {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if lng != nil && (*lng < -180 || *lng > 180) {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}

func (c *Complaint) ID() uint                    { return c.id }
func (c *Complaint) ComplaintID() string         { return c.complaintID }
func (c *Complaint) UserID() *uint               { return c.userID }
func (c *Complaint) Title() string               { return c.title }
func (c *Complaint) Category() vo.Category       { return c.category }
func (c *Complaint) Description() string         { return c.description }
func (c *Complaint) Location() string            { return c.location }
func (c *Complaint) Latitude() *float64          { return c.latitude }
func (c *Complaint) Longitude() *float64         { return c.longitude }
func (c *Complaint) Status() vo.Status           { return c.status }
func (c *Complaint) Image() string               { return c.image }
func (c *Complaint) AssignedDepartmentID() *uint { return c.assignedDepartmentID }
func (c *Complaint) AssignedToID() *uint         { return c.assignedToID }
func (c *Complaint) CreatedAt() time.Time        { return c.createdAt }
func (c *Complaint) UpdatedAt() time.Time        { return c.updatedAt }

func (c *Complaint) Images() []*Image {
	imagesCopy := make([]*Image, len(c.images))
	copy(imagesCopy, c.images)
	return imagesCopy
}

// CategoryDisplay is the label of the category code.
func (c *Complaint) CategoryDisplay() string {
	return c.category.Label()
}

// Date is the creation day in the business timezone, formatted YYYY-MM-DD.
func (c *Complaint) Date() string {
	return biztime.FormatDate(c.createdAt)
}

func (c *Complaint) IsPersisted() bool {
	return c.id != 0
}

func (c *Complaint) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("complaint ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("complaint ID cannot be zero")
	}
	c.id = id
	for _, img := range c.images {
		img.SetComplaintID(id)
	}
	return nil
}

// SetComplaintID stamps the public identifier. It may be re-stamped while the complaint
// is unsaved (a retry after an identifier collision) and never afterwards.
func (c *Complaint) SetComplaintID(complaintID string) error {
	if c.IsPersisted() {
		return ErrIdentifierImmutable
	}
	if complaintID == "" {
		return fmt.Errorf("complaint identifier cannot be empty")
	}
	c.complaintID = complaintID
	return nil
}

// SetImage records the primary image path.
func (c *Complaint) SetImage(path string) {
	c.image = path
}

func (c *Complaint) AddImage(img *Image) error {
	if img == nil {
		return fmt.Errorf("image cannot be nil")
	}
	if c.id != 0 {
		img.SetComplaintID(c.id)
	}
	c.images = append(c.images, img)
	return nil
}

// RefChange describes an update to a nullable reference: absent leaves it alone,
// Clear nulls it, a set ID replaces it.
type RefChange struct {
	Present bool
	ID      *uint
}

// Keep leaves a reference untouched.
func Keep() RefChange { return RefChange{} }

// Clear nulls a reference.
func Clear() RefChange { return RefChange{Present: true} }

// SetRef points a reference at id.
func SetRef(id uint) RefChange { return RefChange{Present: true, ID: &id} }

func (r RefChange) IsClear() bool { return r.Present && r.ID == nil }

func (r RefChange) apply(current *uint) *uint {
	if !r.Present {
		return current
	}
	if r.ID == nil {
		return nil
	}
	id := *r.ID
	return &id
}

// Assign applies department and assignee changes. Existence checks on the referenced
// rows belong to the caller; this only mutates state. A Submitted complaint that ends up
// with a department or an assignee advances to Assigned. It reports whether the status moved.
func (c *Complaint) Assign(department, assignee RefChange, changedBy *uint) bool {
	c.assignedDepartmentID = department.apply(c.assignedDepartmentID)
	c.assignedToID = assignee.apply(c.assignedToID)
	c.updatedAt = biztime.NowUTC()

	if c.status.IsSubmitted() && (c.assignedDepartmentID != nil || c.assignedToID != nil) {
		c.transition(vo.StatusAssigned, changedBy)
		return true
	}
	return false
}

// ChangeStatus moves the complaint through its lifecycle. Backward moves are only
// accepted with allowRegression. It reports whether the status changed.
func (c *Complaint) ChangeStatus(next vo.Status, allowRegression bool, changedBy *uint) (bool, error) {
	if !next.IsValid() {
		return false, fmt.Errorf("invalid status: %s", next)
	}
	if next == c.status {
		return false, nil
	}
	if c.status.IsRegressionTo(next) && !allowRegression {
		return false, fmt.Errorf("cannot move complaint from %s back to %s", c.status, next)
	}

	c.transition(next, changedBy)
	c.updatedAt = biztime.NowUTC()
	return true, nil
}

func (c *Complaint) transition(next vo.Status, changedBy *uint) {
	old := c.status
	c.status = next
	c.recordEvent(NewStatusChangedEvent(c, old, changedBy))
}

// DetailsUpdate carries optional replacements for the descriptive fields.
type DetailsUpdate struct {
	Title       *string
	Description *string
	Location    *string
	Category    *vo.Category
}

func (d DetailsUpdate) IsEmpty() bool {
	return d.Title == nil && d.Description == nil && d.Location == nil && d.Category == nil
}

// UpdateDetails replaces the provided fields after validating the combined result.
func (c *Complaint) UpdateDetails(u DetailsUpdate) error {
	title, description, location, category := c.title, c.description, c.location, c.category
	if u.Title != nil {
		title = strings.TrimSpace(*u.Title)
	}
	if u.Description != nil {
		description = strings.TrimSpace(*u.Description)
	}
	if u.Location != nil {
		location = strings.TrimSpace(*u.Location)
	}
	if u.Category != nil {
		category = *u.Category
	}

	if err := validateText(title, description, location); err != nil {
		return err
	}
	if !category.IsValid() {
		return fmt.Errorf("invalid category: %s", category)
	}

	c.title, c.description, c.location, c.category = title, description, location, category
	c.updatedAt = biztime.NowUTC()
	return nil
}

// MarkCreated records the creation event once the complaint has its identity.
func (c *Complaint) MarkCreated() {
	c.recordEvent(NewCreatedEvent(c))
}

func (c *Complaint) recordEvent(e events.DomainEvent) {
	c.events = append(c.events, e)
}

// PullEvents returns and clears the recorded events.
func (c *Complaint) PullEvents() []events.DomainEvent {
	out := c.events
	c.events = nil
	return out
}

// IsSubmittedBy reports whether userID submitted the complaint.
func (c *Complaint) IsSubmittedBy(userID uint) bool {
	return c.userID != nil && *c.userID == userID
}
