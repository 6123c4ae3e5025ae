// Package services reacts to complaint events by notifying the people involved.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/civicdesk/civicdesk/internal/domain/complaint"
	"github.com/civicdesk/civicdesk/internal/domain/notification"
	"github.com/civicdesk/civicdesk/internal/domain/shared/events"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

const deliveryTimeout = 30 * time.Second

// MailSender delivers one notification by e-mail.
type MailSender interface {
	SendNotification(ctx context.Context, to, subject, message, complaintID string) error
}

// BrokerPublisher forwards the raw event to a message broker.
type BrokerPublisher interface {
	Publish(ctx context.Context, event events.DomainEvent) error
}

// ComplaintNotifier turns complaint events into inbox rows and, when configured,
// e-mails and broker messages. Every sink failure is logged and swallowed.
type ComplaintNotifier struct {
	notificationRepo notification.Repository
	userRepo         user.Repository
	mailer           MailSender
	broker           BrokerPublisher
	logger           logger.Interface
}

// NewComplaintNotifier accepts nil for mailer or broker to disable that sink.
func NewComplaintNotifier(
	notificationRepo notification.Repository,
	userRepo user.Repository,
	mailer MailSender,
	broker BrokerPublisher,
	logger logger.Interface,
) *ComplaintNotifier {
	return &ComplaintNotifier{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		mailer:           mailer,
		broker:           broker,
		logger:           logger,
	}
}

// Register subscribes the notifier to both complaint event types.
func (n *ComplaintNotifier) Register(subscriber events.EventSubscriber) error {
	for _, eventType := range []string{complaint.EventTypeCreated, complaint.EventTypeStatusChanged} {
		if err := subscriber.Subscribe(eventType, events.NewSimpleEventHandler(eventType, n.Handle)); err != nil {
			return fmt.Errorf("subscribe %s: %w", eventType, err)
		}
	}
	return nil
}

// Handle never returns an error for sink failures so the dispatcher does not
// report a delivered event as failed.
func (n *ComplaintNotifier) Handle(event events.DomainEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	var msg delivery
	switch e := event.(type) {
	case complaint.CreatedEvent:
		msg = delivery{
			kind:        notification.KindComplaintCreated,
			subject:     "New complaint submitted",
			message:     e.Message(),
			complaintPK: e.ComplaintPK,
			complaintID: e.ComplaintID,
			payload: map[string]any{
				"complaint_id": e.ComplaintID,
				"category":     e.Category,
			},
		}
	case complaint.StatusChangedEvent:
		msg = delivery{
			kind:        notification.KindStatusChanged,
			subject:     "Complaint status updated",
			message:     e.Message(),
			complaintPK: e.ComplaintPK,
			complaintID: e.ComplaintID,
			submitterID: e.SubmitterID,
			payload: map[string]any{
				"complaint_id": e.ComplaintID,
				"old_status":   e.OldStatus.String(),
				"new_status":   e.NewStatus.String(),
			},
		}
	default:
		n.logger.Warnw("ignoring unexpected event", "event_type", event.GetEventType())
		return nil
	}

	targets := n.targets(ctx, msg.submitterID)
	n.storeInbox(ctx, msg, targets)
	n.sendMail(ctx, msg, targets)
	n.publish(ctx, event)
	return nil
}

type delivery struct {
	kind        notification.Kind
	subject     string
	message     string
	complaintPK uint
	complaintID string
	submitterID *uint
	payload     map[string]any
}

// targets returns the active superusers plus the submitter, without duplicates.
func (n *ComplaintNotifier) targets(ctx context.Context, submitterID *uint) []*user.Account {
	admins, err := n.userRepo.ListSuperusers(ctx)
	if err != nil {
		n.logger.Errorw("failed to list superusers", "error", err)
	}

	seen := make(map[uint]bool, len(admins)+1)
	out := make([]*user.Account, 0, len(admins)+1)
	for _, a := range admins {
		if !seen[a.ID()] {
			seen[a.ID()] = true
			out = append(out, a)
		}
	}

	if submitterID != nil && !seen[*submitterID] {
		submitter, err := n.userRepo.GetByID(ctx, *submitterID)
		switch {
		case err != nil:
			n.logger.Warnw("failed to load complaint submitter", "user_id", *submitterID, "error", err)
		case submitter.IsActive():
			out = append(out, submitter)
		}
	}
	return out
}

func (n *ComplaintNotifier) storeInbox(ctx context.Context, msg delivery, targets []*user.Account) {
	var complaintPK *uint
	if msg.complaintPK != 0 {
		pk := msg.complaintPK
		complaintPK = &pk
	}

	rows := make([]*notification.Notification, 0, len(targets))
	for _, t := range targets {
		row, err := notification.NewNotification(t.ID(), complaintPK, msg.kind, msg.message, msg.payload)
		if err != nil {
			n.logger.Warnw("skipping invalid notification", "user_id", t.ID(), "error", err)
			continue
		}
		rows = append(rows, row)
	}

	if err := n.notificationRepo.BulkCreate(ctx, rows); err != nil {
		n.logger.Errorw("failed to store notifications",
			"complaint_id", msg.complaintID,
			"count", len(rows),
			"error", err)
		return
	}
	n.logger.Infow("notifications stored", "complaint_id", msg.complaintID, "count", len(rows))
}

func (n *ComplaintNotifier) sendMail(ctx context.Context, msg delivery, targets []*user.Account) {
	if n.mailer == nil {
		return
	}
	for _, t := range targets {
		if t.Email() == "" {
			continue
		}
		if err := n.mailer.SendNotification(ctx, t.Email(), msg.subject, msg.message, msg.complaintID); err != nil {
			n.logger.Warnw("failed to send notification email",
				"user_id", t.ID(),
				"complaint_id", msg.complaintID,
				"error", err)
		}
	}
}

func (n *ComplaintNotifier) publish(ctx context.Context, event events.DomainEvent) {
	if n.broker == nil {
		return
	}
	if err := n.broker.Publish(ctx, event); err != nil {
		n.logger.Warnw("failed to publish event to broker",
			"event_type", event.GetEventType(),
			"aggregate_id", event.GetAggregateID(),
			"error", err)
	}
}
