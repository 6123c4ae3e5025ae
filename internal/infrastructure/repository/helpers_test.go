package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/civicdesk/civicdesk/internal/domain/complaint"
	vo "github.com/civicdesk/civicdesk/internal/domain/complaint/valueobjects"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every connection to :memory: is a separate database.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(models.All()...))
	return gdb
}

func newTestComplaint(t *testing.T, complaintID string, category vo.Category) *complaint.Complaint {
	t.Helper()
	c, err := complaint.NewComplaint("Broken streetlight", category, "Dark at night", "Ward 4", nil, nil, nil)
	require.NoError(t, err)
	require.NoError(t, c.SetComplaintID(complaintID))
	return c
}

// saveComplaintAt persists a complaint whose creation time is forced to createdAt.
func saveComplaintAt(t *testing.T, gdb *gorm.DB, complaintID string, category vo.Category, status vo.Status, createdAt time.Time) *complaint.Complaint {
	t.Helper()
	model := &models.ComplaintModel{
		ComplaintID: complaintID,
		Title:       "Complaint " + complaintID,
		Category:    category.String(),
		Description: "description",
		Location:    "somewhere",
		Status:      status.String(),
		CreatedAt:   createdAt.UnixMilli(),
		UpdatedAt:   createdAt.UnixMilli(),
	}
	require.NoError(t, gdb.Omit("Images").Create(model).Error)

	stored, err := NewComplaintRepository(gdb).GetByID(context.Background(), model.ID)
	require.NoError(t, err)
	return stored
}

func createTestAccount(t *testing.T, gdb *gorm.DB, username string, staff, superuser bool) *user.Account {
	t.Helper()
	a, err := user.NewAccount(username, username+"@example.com", "", "", "")
	require.NoError(t, err)
	if staff {
		a.GrantStaff(superuser)
	}
	require.NoError(t, NewAccountRepository(gdb).Create(context.Background(), a))
	return a
}

func uintPtr(v uint) *uint { return &v }
