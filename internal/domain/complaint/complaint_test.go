package complaint

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/civicdesk/civicdesk/internal/domain/complaint/valueobjects"
)

func ptr[T any](v T) *T { return &v }

func newTestComplaint(t *testing.T) *Complaint {
	t.Helper()
	c, err := NewComplaint("Pothole on Main St", vo.CategoryRoad, "Deep pothole near the bus stop", "Main St & 3rd", ptr(27.7), ptr(85.3), ptr(uint(7)))
	require.NoError(t, err)
	return c
}

func reconstructed(t *testing.T, status vo.Status, dept, assignee *uint) *Complaint {
	t.Helper()
	c, err := ReconstructComplaint(ComplaintState{
		ID:                   1,
		ComplaintID:          "HA-2025-001",
		Title:                "Streetlight out",
		Category:             vo.CategoryStreetlight,
		Description:          "Dark for a week",
		Location:             "Ward 4",
		Status:               status,
		AssignedDepartmentID: dept,
		AssignedToID:         assignee,
		CreatedAt:            time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:            time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return c
}

func TestNewComplaint(t *testing.T) {
	c := newTestComplaint(t)

	assert.Equal(t, vo.StatusSubmitted, c.Status())
	assert.Equal(t, "Road Issues", c.CategoryDisplay())
	assert.Equal(t, c.CreatedAt(), c.UpdatedAt())
	assert.False(t, c.IsPersisted())
	assert.True(t, c.IsSubmittedBy(7))
}

func TestNewComplaint_Validation(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		category    vo.Category
		description string
		location    string
		lat, lng    *float64
		errContains string
	}{
		{"missing title", "  ", vo.CategoryRoad, "d", "l", nil, nil, "title is required"},
		{"long title", strings.Repeat("x", 201), vo.CategoryRoad, "d", "l", nil, nil, "title exceeds"},
		{"missing description", "t", vo.CategoryRoad, "", "l", nil, nil, "description is required"},
		{"missing location", "t", vo.CategoryRoad, "d", "", nil, nil, "location is required"},
		{"long location", "t", vo.CategoryRoad, "d", strings.Repeat("y", 301), nil, nil, "location exceeds"},
		{"bad category", "t", vo.Category("sewer"), "d", "l", nil, nil, "invalid category"},
		{"bad latitude", "t", vo.CategoryRoad, "d", "l", ptr(91.0), nil, "latitude"},
		{"bad longitude", "t", vo.CategoryRoad, "d", "l", nil, ptr(-181.0), "longitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewComplaint(tt.title, tt.category, tt.description, tt.location, tt.lat, tt.lng, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestSetComplaintID_ImmutableOncePersisted(t *testing.T) {
	c := newTestComplaint(t)

	require.NoError(t, c.SetComplaintID("HA-2025-001"))
	// a collision retry may re-stamp before the first successful insert
	require.NoError(t, c.SetComplaintID("HA-2025-002"))
	require.NoError(t, c.SetID(10))

	err := c.SetComplaintID("HA-2025-003")
	assert.ErrorIs(t, err, ErrIdentifierImmutable)
	assert.Equal(t, "HA-2025-002", c.ComplaintID())
}

func TestAssign_AutoAdvance(t *testing.T) {
	tests := []struct {
		name           string
		status         vo.Status
		dept, assignee *uint
		deptChange     RefChange
		assigneeChange RefChange
		wantStatus     vo.Status
		wantAdvanced   bool
	}{
		{"department only advances", vo.StatusSubmitted, nil, nil, SetRef(3), Keep(), vo.StatusAssigned, true},
		{"assignee only advances", vo.StatusSubmitted, nil, nil, Keep(), SetRef(9), vo.StatusAssigned, true},
		{"clearing everything does not advance", vo.StatusSubmitted, ptr(uint(3)), nil, Clear(), Clear(), vo.StatusSubmitted, false},
		{"empty payload keeps submitted", vo.StatusSubmitted, nil, nil, Keep(), Keep(), vo.StatusSubmitted, false},
		{"untouched existing department advances", vo.StatusSubmitted, ptr(uint(3)), nil, Keep(), Keep(), vo.StatusAssigned, true},
		{"in progress never regresses", vo.StatusInProgress, nil, nil, SetRef(3), SetRef(9), vo.StatusInProgress, false},
		{"resolved stays resolved when cleared", vo.StatusResolved, ptr(uint(3)), ptr(uint(9)), Clear(), Clear(), vo.StatusResolved, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := reconstructed(t, tt.status, tt.dept, tt.assignee)
			before := c.UpdatedAt()

			advanced := c.Assign(tt.deptChange, tt.assigneeChange, ptr(uint(1)))

			assert.Equal(t, tt.wantAdvanced, advanced)
			assert.Equal(t, tt.wantStatus, c.Status())
			assert.True(t, c.UpdatedAt().After(before))

			evts := c.PullEvents()
			if tt.wantAdvanced {
				require.Len(t, evts, 1)
				ev := evts[0].(StatusChangedEvent)
				assert.Equal(t, vo.StatusSubmitted, ev.OldStatus)
				assert.Equal(t, vo.StatusAssigned, ev.NewStatus)
				assert.Equal(t, "Complaint HA-2025-001 status updated to: Assigned", ev.Message())
			} else {
				assert.Empty(t, evts)
			}
		})
	}
}

func TestAssign_TriStateFields(t *testing.T) {
	c := reconstructed(t, vo.StatusAssigned, ptr(uint(3)), ptr(uint(9)))

	c.Assign(Keep(), Clear(), nil)
	require.NotNil(t, c.AssignedDepartmentID())
	assert.Equal(t, uint(3), *c.AssignedDepartmentID())
	assert.Nil(t, c.AssignedToID())

	c.Assign(SetRef(5), SetRef(11), nil)
	assert.Equal(t, uint(5), *c.AssignedDepartmentID())
	assert.Equal(t, uint(11), *c.AssignedToID())
}

func TestChangeStatus(t *testing.T) {
	c := reconstructed(t, vo.StatusInProgress, nil, nil)

	changed, err := c.ChangeStatus(vo.StatusInProgress, false, nil)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = c.ChangeStatus(vo.StatusAssigned, false, nil)
	assert.Error(t, err)
	assert.Equal(t, vo.StatusInProgress, c.Status())

	changed, err = c.ChangeStatus(vo.StatusResolved, false, nil)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = c.ChangeStatus(vo.StatusInProgress, true, nil)
	require.NoError(t, err)
	assert.True(t, changed)

	_, err = c.ChangeStatus(vo.Status("Closed"), true, nil)
	assert.Error(t, err)

	assert.Len(t, c.PullEvents(), 2)
	assert.Empty(t, c.PullEvents())
}

func TestUpdateDetails(t *testing.T) {
	c := reconstructed(t, vo.StatusSubmitted, nil, nil)

	err := c.UpdateDetails(DetailsUpdate{Title: ptr("  "), Location: ptr("Ward 5")})
	require.Error(t, err)
	assert.Equal(t, "Ward 4", c.Location(), "failed update must not partially apply")

	cat := vo.CategoryElectricity
	require.NoError(t, c.UpdateDetails(DetailsUpdate{Location: ptr("Ward 5"), Category: &cat}))
	assert.Equal(t, "Ward 5", c.Location())
	assert.Equal(t, "Electricity", c.CategoryDisplay())
	assert.True(t, DetailsUpdate{}.IsEmpty())
}

func TestMarkCreated(t *testing.T) {
	c := newTestComplaint(t)
	require.NoError(t, c.SetComplaintID("HA-2025-014"))
	require.NoError(t, c.SetID(14))
	c.MarkCreated()

	evts := c.PullEvents()
	require.Len(t, evts, 1)
	ev := evts[0].(CreatedEvent)
	assert.Equal(t, EventTypeCreated, ev.GetEventType())
	assert.Equal(t, "HA-2025-014", ev.GetAggregateID())
	assert.Equal(t, "New complaint submitted: Pothole on Main St (HA-2025-014)", ev.Message())
}

func TestDate_UsesCreationDay(t *testing.T) {
	c := reconstructed(t, vo.StatusSubmitted, nil, nil)
	assert.Equal(t, "2025-02-01", c.Date())
}
