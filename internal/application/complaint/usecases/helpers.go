package usecases

import (
	"context"
	"fmt"

	"github.com/civicdesk/civicdesk/internal/application/complaint/dto"
	"github.com/civicdesk/civicdesk/internal/domain/complaint"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/shared/events"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

// referenceResolver loads the names shown next to assignment ids.
type referenceResolver struct {
	departmentRepo department.Repository
	userRepo       user.Repository
}

func (r referenceResolver) resolve(ctx context.Context, list ...*complaint.Complaint) (dto.References, error) {
	var deptIDs, userIDs []uint
	for _, c := range list {
		if id := c.AssignedDepartmentID(); id != nil {
			deptIDs = append(deptIDs, *id)
		}
		if id := c.AssignedToID(); id != nil {
			userIDs = append(userIDs, *id)
		}
	}

	refs := dto.References{
		DepartmentNames: make(map[uint]string, len(deptIDs)),
		Usernames:       make(map[uint]string, len(userIDs)),
	}
	if len(deptIDs) > 0 {
		depts, err := r.departmentRepo.GetByIDs(ctx, deptIDs)
		if err != nil {
			return refs, fmt.Errorf("failed to load departments: %w", err)
		}
		for id, d := range depts {
			refs.DepartmentNames[id] = d.Name()
		}
	}
	if len(userIDs) > 0 {
		accounts, err := r.userRepo.GetByIDs(ctx, userIDs)
		if err != nil {
			return refs, fmt.Errorf("failed to load accounts: %w", err)
		}
		for id, a := range accounts {
			refs.Usernames[id] = a.Username()
		}
	}
	return refs, nil
}

// publishEvents hands the complaint's recorded events to the dispatcher. Failures are
// logged only; the write has already been committed.
func publishEvents(dispatcher events.EventPublisher, log logger.Interface, c *complaint.Complaint) {
	for _, event := range c.PullEvents() {
		if err := dispatcher.Publish(event); err != nil {
			log.Warnw("failed to dispatch event",
				"event_type", event.GetEventType(),
				"complaint_id", c.ComplaintID(),
				"error", err)
		}
	}
}
