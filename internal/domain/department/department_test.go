package department

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/civicdesk/civicdesk/internal/domain/complaint/valueobjects"
	"github.com/civicdesk/civicdesk/internal/shared/authorization"
)

func TestNewDepartment(t *testing.T) {
	d, err := NewDepartment("Roads & Transport", "", "Handles **roads**", []string{" road", "streetlight", "road", ""})
	require.NoError(t, err)

	assert.Equal(t, "roads-transport", d.Slug())
	assert.Equal(t, []vo.Category{vo.CategoryRoad, vo.CategoryStreetlight}, d.Categories())
	assert.Equal(t, "road,streetlight", d.CategoriesString())
	assert.True(t, d.Handles(vo.CategoryRoad))
	assert.False(t, d.Handles(vo.CategoryWater))
}

func TestNewDepartment_RejectsUnknownCategories(t *testing.T) {
	_, err := NewDepartment("Parks", "", "", []string{"road", "parks"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parks")
}

func TestNewDepartment_Validation(t *testing.T) {
	_, err := NewDepartment(" ", "", "", nil)
	assert.Error(t, err)

	_, err = NewDepartment("Water", "Water Board", "", nil)
	assert.Error(t, err)
}

func TestReconstructDepartment_ParsesStoredList(t *testing.T) {
	d := ReconstructDepartment(4, "Water", "water", "", " water, ,waste ", time.Time{}, time.Time{})
	assert.Equal(t, []vo.Category{vo.CategoryWater, vo.CategoryWaste}, d.Categories())
}

func TestUpdate_DoesNotPartiallyApply(t *testing.T) {
	d, err := NewDepartment("Water", "", "", []string{"water"})
	require.NoError(t, err)

	err = d.Update("Water Supply", "", "", []string{"plumbing"})
	require.Error(t, err)
	assert.Equal(t, "Water", d.Name())

	require.NoError(t, d.Update("Water Supply", "", "Pipes", []string{"water", "waste"}))
	assert.Equal(t, "water-supply", d.Slug())
}

func TestAdminProfile(t *testing.T) {
	p, err := NewAdminProfile(3, nil, "")
	require.NoError(t, err)
	assert.Equal(t, authorization.RoleWardOfficer, p.Role())

	_, err = NewAdminProfile(3, nil, authorization.RoleCitizen)
	assert.Error(t, err)

	dept := uint(2)
	require.NoError(t, p.Reassign(&dept, authorization.RoleDepartmentHead))
	assert.Equal(t, authorization.RoleDepartmentHead, p.Role())
	assert.Equal(t, uint(2), *p.DepartmentID())

	assert.Error(t, p.Reassign(nil, authorization.RoleStaff))
}
