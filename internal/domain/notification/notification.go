package notification

import (
	"errors"
	"fmt"
	"time"

	"github.com/civicdesk/civicdesk/internal/shared/biztime"
)

const maxMessageLength = 500

var ErrNotificationNotFound = errors.New("notification not found")

// Kind says which complaint event produced the notification.
type Kind string

const (
	KindComplaintCreated Kind = "complaint_created"
	KindStatusChanged    Kind = "status_changed"
)

func (k Kind) IsValid() bool {
	return k == KindComplaintCreated || k == KindStatusChanged
}

// Notification is an inbox row addressed to a single account.
type Notification struct {
	id          uint
	userID      uint
	complaintID *uint
	kind        Kind
	message     string
	payload     map[string]any
	isRead      bool
	createdAt   time.Time
}

func NewNotification(userID uint, complaintID *uint, kind Kind, message string, payload map[string]any) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid notification kind: %s", kind)
	}
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}
	if len(message) > maxMessageLength {
		message = message[:maxMessageLength]
	}

	return &Notification{
		userID:      userID,
		complaintID: complaintID,
		kind:        kind,
		message:     message,
		payload:     payload,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructNotification(
	id, userID uint,
	complaintID *uint,
	kind Kind,
	message string,
	payload map[string]any,
	isRead bool,
	createdAt time.Time,
) *Notification {
	return &Notification{
		id:          id,
		userID:      userID,
		complaintID: complaintID,
		kind:        kind,
		message:     message,
		payload:     payload,
		isRead:      isRead,
		createdAt:   createdAt,
	}
}

func (n *Notification) ID() uint                { return n.id }
func (n *Notification) UserID() uint            { return n.userID }
func (n *Notification) ComplaintID() *uint      { return n.complaintID }
func (n *Notification) Kind() Kind              { return n.kind }
func (n *Notification) Message() string         { return n.message }
func (n *Notification) Payload() map[string]any { return n.payload }
func (n *Notification) IsRead() bool            { return n.isRead }
func (n *Notification) CreatedAt() time.Time    { return n.createdAt }

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// MarkAsRead reports whether the flag actually changed.
func (n *Notification) MarkAsRead() bool {
	if n.isRead {
		return false
	}
	n.isRead = true
	return true
}

// BelongsTo is used to hide other users' notifications behind a not-found.
func (n *Notification) BelongsTo(userID uint) bool {
	return n.userID == userID
}
