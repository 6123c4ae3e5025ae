package complaint

import (
	"fmt"

	vo "github.com/civicdesk/civicdesk/internal/domain/complaint/valueobjects"
	"github.com/civicdesk/civicdesk/internal/domain/shared/events"
	"github.com/civicdesk/civicdesk/internal/shared/biztime"
)

const (
	EventTypeCreated       = "complaint.created"
	EventTypeStatusChanged = "complaint.status_changed"
)

type CreatedEvent struct {
	events.BaseEvent
	ComplaintPK uint   `json:"complaint_pk"`
	ComplaintID string `json:"complaint_id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	SubmitterID *uint  `json:"submitter_id,omitempty"`
}

func NewCreatedEvent(c *Complaint) CreatedEvent {
	return CreatedEvent{
		BaseEvent:   events.NewBaseEvent(c.ComplaintID(), EventTypeCreated, biztime.NowUTC()),
		ComplaintPK: c.ID(),
		ComplaintID: c.ComplaintID(),
		Title:       c.Title(),
		Category:    c.Category().String(),
		SubmitterID: c.UserID(),
	}
}

// Message is the notification text for a new complaint.
func (e CreatedEvent) Message() string {
	return fmt.Sprintf("New complaint submitted: %s (%s)", e.Title, e.ComplaintID)
}

type StatusChangedEvent struct {
	events.BaseEvent
	ComplaintPK uint      `json:"complaint_pk"`
	ComplaintID string    `json:"complaint_id"`
	OldStatus   vo.Status `json:"old_status"`
	NewStatus   vo.Status `json:"new_status"`
	SubmitterID *uint     `json:"submitter_id,omitempty"`
	ChangedBy   *uint     `json:"changed_by,omitempty"`
}

func NewStatusChangedEvent(c *Complaint, old vo.Status, changedBy *uint) StatusChangedEvent {
	return StatusChangedEvent{
		BaseEvent:   events.NewBaseEvent(c.ComplaintID(), EventTypeStatusChanged, biztime.NowUTC()),
		ComplaintPK: c.ID(),
		ComplaintID: c.ComplaintID(),
		OldStatus:   old,
		NewStatus:   c.Status(),
		SubmitterID: c.UserID(),
		ChangedBy:   changedBy,
	}
}

// Message is the notification text for a status change.
func (e StatusChangedEvent) Message() string {
	return fmt.Sprintf("Complaint %s status updated to: %s", e.ComplaintID, e.NewStatus)
}
