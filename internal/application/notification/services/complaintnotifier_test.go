package services

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicdesk/civicdesk/internal/domain/complaint"
	vo "github.com/civicdesk/civicdesk/internal/domain/complaint/valueobjects"
	"github.com/civicdesk/civicdesk/internal/domain/notification"
	"github.com/civicdesk/civicdesk/internal/domain/shared/events"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

type recordingInbox struct {
	notification.Repository
	mu      sync.Mutex
	stored  []*notification.Notification
	failing bool
}

func (r *recordingInbox) BulkCreate(ctx context.Context, items []*notification.Notification) error {
	if r.failing {
		return stderrors.New("db down")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stored = append(r.stored, items...)
	return nil
}

func (r *recordingInbox) recipients() []uint {
	ids := make([]uint, 0, len(r.stored))
	for _, n := range r.stored {
		ids = append(ids, n.UserID())
	}
	return ids
}

type stubAccounts struct {
	user.Repository
	superusers []*user.Account
	byID       map[uint]*user.Account
}

func (s *stubAccounts) ListSuperusers(ctx context.Context) ([]*user.Account, error) {
	return s.superusers, nil
}

func (s *stubAccounts) GetByID(ctx context.Context, id uint) (*user.Account, error) {
	if a, ok := s.byID[id]; ok {
		return a, nil
	}
	return nil, user.ErrAccountNotFound
}

type sentMail struct {
	to, subject, message, complaintID string
}

type recordingMailer struct {
	sent []sentMail
	err  error
}

func (m *recordingMailer) SendNotification(ctx context.Context, to, subject, message, complaintID string) error {
	m.sent = append(m.sent, sentMail{to, subject, message, complaintID})
	return m.err
}

type recordingBroker struct {
	published []events.DomainEvent
}

func (b *recordingBroker) Publish(ctx context.Context, event events.DomainEvent) error {
	b.published = append(b.published, event)
	return nil
}

type warnCounter struct {
	logger.Interface
	mu    sync.Mutex
	warns int
}

func (w *warnCounter) Warnw(msg string, keysAndValues ...any) {
	w.mu.Lock()
	w.warns++
	w.mu.Unlock()
}
func (w *warnCounter) Infow(msg string, keysAndValues ...any)  {}
func (w *warnCounter) Errorw(msg string, keysAndValues ...any) {}

func account(id uint, email string, superuser bool) *user.Account {
	return user.ReconstructAccount(user.AccountState{
		ID:          id,
		Username:    "user" + string(rune('0'+id)),
		Email:       email,
		IsStaff:     superuser,
		IsSuperuser: superuser,
		IsActive:    true,
	})
}

func uintPtr(v uint) *uint { return &v }

func newAccounts() *stubAccounts {
	admin := account(1, "admin@city.gov", true)
	citizen := account(7, "", false)
	return &stubAccounts{
		superusers: []*user.Account{admin},
		byID:       map[uint]*user.Account{1: admin, 7: citizen},
	}
}

func TestComplaintNotifier_CreatedNotifiesSuperusers(t *testing.T) {
	inbox := &recordingInbox{}
	mailer := &recordingMailer{}
	broker := &recordingBroker{}
	n := NewComplaintNotifier(inbox, newAccounts(), mailer, broker, &warnCounter{})

	event := complaint.CreatedEvent{
		BaseEvent:   events.NewBaseEvent("HA-2025-004", complaint.EventTypeCreated, testTime),
		ComplaintPK: 4,
		ComplaintID: "HA-2025-004",
		Title:       "Broken streetlight",
		SubmitterID: uintPtr(7),
	}
	require.NoError(t, n.Handle(event))

	assert.Equal(t, []uint{1}, inbox.recipients())
	assert.Equal(t, "New complaint submitted: Broken streetlight (HA-2025-004)", inbox.stored[0].Message())
	assert.Equal(t, notification.KindComplaintCreated, inbox.stored[0].Kind())
	assert.Equal(t, uint(4), *inbox.stored[0].ComplaintID())

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "admin@city.gov", mailer.sent[0].to)
	assert.Equal(t, "HA-2025-004", mailer.sent[0].complaintID)
	assert.Len(t, broker.published, 1)
}

func TestComplaintNotifier_StatusChangeAlsoNotifiesSubmitter(t *testing.T) {
	inbox := &recordingInbox{}
	mailer := &recordingMailer{}
	n := NewComplaintNotifier(inbox, newAccounts(), mailer, nil, &warnCounter{})

	event := complaint.StatusChangedEvent{
		BaseEvent:   events.NewBaseEvent("HA-2025-004", complaint.EventTypeStatusChanged, testTime),
		ComplaintPK: 4,
		ComplaintID: "HA-2025-004",
		OldStatus:   vo.StatusAssigned,
		NewStatus:   vo.StatusResolved,
		SubmitterID: uintPtr(7),
	}
	require.NoError(t, n.Handle(event))

	assert.ElementsMatch(t, []uint{1, 7}, inbox.recipients())
	assert.Equal(t, "Complaint HA-2025-004 status updated to: Resolved", inbox.stored[0].Message())
	assert.Equal(t, "Resolved", inbox.stored[0].Payload()["new_status"])
	// the submitter has no e-mail address
	assert.Len(t, mailer.sent, 1)
}

func TestComplaintNotifier_SuperuserSubmitterNotDuplicated(t *testing.T) {
	inbox := &recordingInbox{}
	n := NewComplaintNotifier(inbox, newAccounts(), nil, nil, &warnCounter{})

	event := complaint.StatusChangedEvent{
		BaseEvent:   events.NewBaseEvent("HA-2025-004", complaint.EventTypeStatusChanged, testTime),
		ComplaintID: "HA-2025-004",
		NewStatus:   vo.StatusInProgress,
		SubmitterID: uintPtr(1),
	}
	require.NoError(t, n.Handle(event))

	assert.Equal(t, []uint{1}, inbox.recipients())
}

func TestComplaintNotifier_SinkFailuresAreSwallowed(t *testing.T) {
	inbox := &recordingInbox{failing: true}
	mailer := &recordingMailer{err: stderrors.New("smtp refused")}
	log := &warnCounter{}
	n := NewComplaintNotifier(inbox, newAccounts(), mailer, nil, log)

	event := complaint.CreatedEvent{
		BaseEvent:   events.NewBaseEvent("HA-2025-005", complaint.EventTypeCreated, testTime),
		ComplaintID: "HA-2025-005",
		Title:       "Garbage pile",
	}

	assert.NoError(t, n.Handle(event))
	assert.Equal(t, 1, log.warns)
}

type subscriptions struct {
	types []string
}

func (s *subscriptions) Subscribe(eventType string, handler events.EventHandler) error {
	if !handler.CanHandle(eventType) {
		return stderrors.New("handler rejects its own event type")
	}
	s.types = append(s.types, eventType)
	return nil
}

func TestComplaintNotifier_Register(t *testing.T) {
	subs := &subscriptions{}
	n := NewComplaintNotifier(&recordingInbox{}, newAccounts(), nil, nil, &warnCounter{})

	require.NoError(t, n.Register(subs))
	assert.Equal(t, []string{complaint.EventTypeCreated, complaint.EventTypeStatusChanged}, subs.types)
}

var testTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
