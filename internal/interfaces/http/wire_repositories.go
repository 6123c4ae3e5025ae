package http

import (
	"github.com/civicdesk/civicdesk/internal/domain/complaint"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/notification"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/infrastructure/repository"
	"github.com/civicdesk/civicdesk/internal/shared/db"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo         user.Repository
	complaintRepo    complaint.Repository
	upvoteRepo       complaint.UpvoteRepository
	departmentRepo   department.Repository
	adminProfileRepo department.AdminProfileRepository
	notificationRepo notification.Repository
	txMgr            *db.TransactionManager
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		userRepo:         repository.NewAccountRepository(c.db),
		complaintRepo:    repository.NewComplaintRepository(c.db),
		upvoteRepo:       repository.NewUpvoteRepository(c.db),
		departmentRepo:   repository.NewDepartmentRepository(c.db),
		adminProfileRepo: repository.NewAdminProfileRepository(c.db),
		notificationRepo: repository.NewNotificationRepository(c.db),
		txMgr:            db.NewTransactionManager(c.db),
	}
}
