package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicdesk/civicdesk/internal/domain/complaint"
	vo "github.com/civicdesk/civicdesk/internal/domain/complaint/valueobjects"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
)

type assignFixture struct {
	complaint  *complaint.Complaint
	repo       *mockComplaintRepository
	deptRepo   *mockDepartmentRepository
	userRepo   *mockUserRepository
	dispatcher *mockEventDispatcher
	updated    bool
}

func newAssignFixture(status vo.Status) *assignFixture {
	f := &assignFixture{complaint: storedComplaint(1, status), dispatcher: &mockEventDispatcher{}}
	f.repo = &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return f.complaint, nil
		},
		UpdateFunc: func(ctx context.Context, c *complaint.Complaint) error {
			f.updated = true
			return nil
		},
	}
	f.deptRepo = &mockDepartmentRepository{
		ExistsFunc: func(ctx context.Context, id uint) (bool, error) { return id == 3, nil },
		GetByIDsFunc: func(ctx context.Context, ids []uint) (map[uint]*department.Department, error) {
			d, _ := department.NewDepartment("Roads", "roads", "", []string{"road"})
			return map[uint]*department.Department{3: d}, nil
		},
	}
	f.userRepo = &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.Account, error) {
			switch id {
			case 10:
				return staffAccount(10), nil
			case 11:
				return citizenAccount(11), nil
			}
			return nil, user.ErrAccountNotFound
		},
		GetByIDsFunc: func(ctx context.Context, ids []uint) (map[uint]*user.Account, error) {
			return map[uint]*user.Account{10: staffAccount(10)}, nil
		},
	}
	return f
}

func (f *assignFixture) useCase() *AssignComplaintUseCase {
	return NewAssignComplaintUseCase(f.repo, f.deptRepo, f.userRepo, &mockImageStore{}, f.dispatcher, &mockLogger{})
}

func TestAssignComplaintUseCase_Execute_AdvancesSubmitted(t *testing.T) {
	f := newAssignFixture(vo.StatusSubmitted)

	result, err := f.useCase().Execute(context.Background(), AssignComplaintCommand{
		ComplaintID: 1,
		Department:  complaint.SetRef(3),
		AssignedTo:  complaint.Keep(),
		ActorID:     99,
	})

	require.NoError(t, err)
	assert.True(t, f.updated)
	assert.Equal(t, "Assigned", result.Status)
	require.NotNil(t, result.AssignedDepartmentID)
	assert.Equal(t, uint(3), *result.AssignedDepartmentID)
	require.NotNil(t, result.AssignedDepartmentName)
	assert.Equal(t, "Roads", *result.AssignedDepartmentName)
	require.Len(t, f.dispatcher.published, 1)
	assert.Equal(t, "complaint.status_changed", f.dispatcher.published[0].GetEventType())
}

func TestAssignComplaintUseCase_Execute_KeepsLaterStatus(t *testing.T) {
	f := newAssignFixture(vo.StatusInProgress)

	result, err := f.useCase().Execute(context.Background(), AssignComplaintCommand{
		ComplaintID: 1,
		Department:  complaint.Keep(),
		AssignedTo:  complaint.SetRef(10),
	})

	require.NoError(t, err)
	assert.Equal(t, "In Progress", result.Status)
	require.NotNil(t, result.AssignedToUsername)
	assert.Equal(t, "officer", *result.AssignedToUsername)
	assert.Empty(t, f.dispatcher.published)
}

func TestAssignComplaintUseCase_Execute_ClearLeavesStatus(t *testing.T) {
	f := newAssignFixture(vo.StatusSubmitted)

	result, err := f.useCase().Execute(context.Background(), AssignComplaintCommand{
		ComplaintID: 1,
		Department:  complaint.Clear(),
		AssignedTo:  complaint.Clear(),
	})

	require.NoError(t, err)
	assert.Equal(t, "Submitted", result.Status)
	assert.Nil(t, result.AssignedDepartmentID)
	assert.Nil(t, result.AssignedToID)
}

func TestAssignComplaintUseCase_Execute_RejectsBadReferences(t *testing.T) {
	tests := []struct {
		name  string
		cmd   AssignComplaintCommand
		field string
	}{
		{"unknown department", AssignComplaintCommand{ComplaintID: 1, Department: complaint.SetRef(404), AssignedTo: complaint.SetRef(10)}, "assigned_department:"},
		{"unknown assignee", AssignComplaintCommand{ComplaintID: 1, Department: complaint.SetRef(3), AssignedTo: complaint.SetRef(404)}, "assigned_to:"},
		{"assignee not staff", AssignComplaintCommand{ComplaintID: 1, AssignedTo: complaint.SetRef(11)}, "assigned_to:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAssignFixture(vo.StatusSubmitted)

			_, err := f.useCase().Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, errors.GetAppError(err).Details, tt.field)
			assert.False(t, f.updated)
			assert.Nil(t, f.complaint.AssignedDepartmentID())
			assert.Equal(t, vo.StatusSubmitted, f.complaint.Status())
		})
	}
}

func TestAssignComplaintUseCase_Execute_NotFound(t *testing.T) {
	f := newAssignFixture(vo.StatusSubmitted)
	f.repo.GetByIDFunc = nil

	_, err := f.useCase().Execute(context.Background(), AssignComplaintCommand{ComplaintID: 5, Department: complaint.SetRef(3)})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
