package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicdesk/civicdesk/internal/domain/complaint"
	vo "github.com/civicdesk/civicdesk/internal/domain/complaint/valueobjects"
	"github.com/civicdesk/civicdesk/internal/shared/authorization"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
)

func newUpdateUseCase(c *complaint.Complaint, updated *bool, dispatcher *mockEventDispatcher) *UpdateComplaintUseCase {
	repo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) { return c, nil },
		UpdateFunc: func(ctx context.Context, _ *complaint.Complaint) error {
			*updated = true
			return nil
		},
	}
	return NewUpdateComplaintUseCase(repo, &mockDepartmentRepository{}, &mockUserRepository{}, &mockImageStore{}, identitySanitizer{}, dispatcher, &mockLogger{})
}

func TestUpdateComplaintUseCase_Execute_StatusRules(t *testing.T) {
	tests := []struct {
		name    string
		from    vo.Status
		to      string
		role    authorization.UserRole
		wantErr bool
		want    vo.Status
	}{
		{"forward by staff", vo.StatusAssigned, "In Progress", authorization.RoleStaff, false, vo.StatusInProgress},
		{"skip ahead by staff", vo.StatusSubmitted, "Resolved", authorization.RoleWardOfficer, false, vo.StatusResolved},
		{"regression by staff", vo.StatusResolved, "In Progress", authorization.RoleDepartmentHead, true, vo.StatusResolved},
		{"regression by super admin", vo.StatusResolved, "Submitted", authorization.RoleSuperAdmin, false, vo.StatusSubmitted},
		{"unknown status", vo.StatusAssigned, "Closed", authorization.RoleSuperAdmin, true, vo.StatusAssigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := storedComplaint(1, tt.from)
			updated := false
			dispatcher := &mockEventDispatcher{}
			uc := newUpdateUseCase(c, &updated, dispatcher)

			_, err := uc.Execute(context.Background(), UpdateComplaintCommand{
				ID:        1,
				Status:    ptr(tt.to),
				ActorID:   2,
				ActorRole: tt.role,
			})

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
				assert.Contains(t, errors.GetAppError(err).Details, "status:")
				assert.False(t, updated)
				assert.Empty(t, dispatcher.published)
			} else {
				require.NoError(t, err)
				assert.True(t, updated)
				require.Len(t, dispatcher.published, 1)
			}
			assert.Equal(t, tt.want, c.Status())
		})
	}
}

func TestUpdateComplaintUseCase_Execute_Details(t *testing.T) {
	c := storedComplaint(1, vo.StatusSubmitted)
	updated := false
	dispatcher := &mockEventDispatcher{}
	uc := newUpdateUseCase(c, &updated, dispatcher)

	result, err := uc.Execute(context.Background(), UpdateComplaintCommand{
		ID:       1,
		Title:    ptr("  Deep pothole  "),
		Category: ptr("water"),
		ActorID:  2,
	})

	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, "Deep pothole", result.Title)
	assert.Equal(t, "water", result.Category)
	assert.Equal(t, "Main St & 3rd Ave", result.Location)
	assert.Empty(t, dispatcher.published)
}

func TestUpdateComplaintUseCase_Execute_RejectsBlankTitle(t *testing.T) {
	c := storedComplaint(1, vo.StatusSubmitted)
	updated := false
	uc := newUpdateUseCase(c, &updated, &mockEventDispatcher{})

	_, err := uc.Execute(context.Background(), UpdateComplaintCommand{ID: 1, Title: ptr("  ")})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.False(t, updated)
	assert.Equal(t, "Pothole on Main St", c.Title())
}

func TestUpdateComplaintUseCase_Execute_InvalidCategoryBeforeLoad(t *testing.T) {
	loaded := false
	repo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			loaded = true
			return storedComplaint(id, vo.StatusSubmitted), nil
		},
	}
	uc := NewUpdateComplaintUseCase(repo, &mockDepartmentRepository{}, &mockUserRepository{}, &mockImageStore{}, identitySanitizer{}, &mockEventDispatcher{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), UpdateComplaintCommand{ID: 1, Category: ptr("noise"), Status: ptr("Done")})

	require.Error(t, err)
	details := errors.GetAppError(err).Details
	assert.Contains(t, details, "category:")
	assert.Contains(t, details, "status:")
	assert.False(t, loaded)
}
