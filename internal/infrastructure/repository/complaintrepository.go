package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/civicdesk/civicdesk/internal/domain/complaint"
	"github.com/civicdesk/civicdesk/internal/infrastructure/database"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/mappers"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/models"
	"github.com/civicdesk/civicdesk/internal/shared/constants"
	"github.com/civicdesk/civicdesk/internal/shared/db"
)

// complaintUpdateColumns are written on every update so cleared references reach the row.
var complaintUpdateColumns = []string{
	"title", "category", "description", "location", "latitude", "longitude",
	"status", "image", "assigned_department_id", "assigned_to_id", "updated_at",
}

type ComplaintRepository struct {
	db     *gorm.DB
	mapper mappers.ComplaintMapper
}

func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{
		db:     db,
		mapper: mappers.NewComplaintMapper(),
	}
}

func (r *ComplaintRepository) Create(ctx context.Context, c *complaint.Complaint) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Omit("Images").Create(model).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return complaint.ErrDuplicateComplaintID
		}
		return fmt.Errorf("failed to create complaint: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}

	images := r.mapper.ImagesToModels(c)
	if len(images) == 0 {
		return nil
	}
	if err := tx.Create(images).Error; err != nil {
		return fmt.Errorf("failed to create complaint images: %w", err)
	}
	for i, img := range c.Images() {
		img.SetID(images[i].ID)
	}
	return nil
}

func (r *ComplaintRepository) Update(ctx context.Context, c *complaint.Complaint) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.ComplaintModel{}).
		Where("id = ?", model.ID).
		Select(complaintUpdateColumns).
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update complaint: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

// Delete removes the complaint together with its images and upvotes.
func (r *ComplaintRepository) Delete(ctx context.Context, id uint) error {
	return db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("complaint_id = ?", id).Delete(&models.ComplaintUpvoteModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete complaint upvotes: %w", err)
		}
		if err := tx.Where("complaint_id = ?", id).Delete(&models.ComplaintImageModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete complaint images: %w", err)
		}
		if err := tx.Model(&models.NotificationModel{}).Where("complaint_id = ?", id).
			Update("complaint_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach notifications: %w", err)
		}

		result := tx.Delete(&models.ComplaintModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete complaint: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return complaint.ErrComplaintNotFound
		}
		return nil
	})
}

func (r *ComplaintRepository) GetByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	return r.getOne(ctx, "id = ?", id)
}

func (r *ComplaintRepository) GetByComplaintID(ctx context.Context, complaintID string) (*complaint.Complaint, error) {
	return r.getOne(ctx, "complaint_id = ?", complaintID)
}

func (r *ComplaintRepository) getOne(ctx context.Context, cond string, arg any) (*complaint.Complaint, error) {
	var model models.ComplaintModel
	err := db.GetTxFromContext(ctx, r.db).
		Preload("Images", orderByID).
		Where(cond, arg).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, complaint.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *ComplaintRepository) List(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.ComplaintModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Category != nil {
		query = query.Where("category = ?", filter.Category.String())
	}
	if filter.DepartmentID != nil {
		query = query.Where("assigned_department_id = ?", *filter.DepartmentID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assigned_to_id = ?", *filter.AssigneeID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count complaints: %w", err)
	}

	var rows []*models.ComplaintModel
	if err := query.
		Preload("Images", orderByID).
		Order("created_at DESC").Order("id DESC").
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list complaints: %w", err)
	}

	complaints, err := r.mapper.ToDomainList(rows)
	if err != nil {
		return nil, 0, err
	}
	return complaints, total, nil
}

// PublicFeed returns complaints with their upvote totals in a single query.
func (r *ComplaintRepository) PublicFeed(ctx context.Context, filter complaint.FeedFilter) ([]*complaint.FeedEntry, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	filtered := func() *gorm.DB {
		q := tx.Table(constants.TableComplaints + " AS c")
		if filter.Category != nil {
			q = q.Where("c.category = ?", filter.Category.String())
		}
		if filter.Status != nil {
			q = q.Where("c.status = ?", filter.Status.String())
		}
		var from, before *int64
		if filter.CreatedFrom != nil {
			ms := filter.CreatedFrom.UnixMilli()
			from = &ms
		}
		if filter.CreatedBefore != nil {
			ms := filter.CreatedBefore.UnixMilli()
			before = &ms
		}
		return q.Scopes(db.CreatedBetween("c.created_at", from, before))
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count public feed: %w", err)
	}

	query := filtered().Select("c.*, (SELECT COUNT(*) FROM " + constants.TableUpvotes +
		" u WHERE u.complaint_id = c.id) AS upvote_count")

	switch filter.Sort {
	case complaint.FeedSortOldest:
		query = query.Order("c.created_at ASC").Order("c.id ASC")
	case complaint.FeedSortMostUpvoted:
		query = query.Order("upvote_count DESC").Order("c.created_at DESC").Order("c.id DESC")
	default:
		query = query.Order("c.created_at DESC").Order("c.id DESC")
	}

	var rows []*models.ComplaintFeedRow
	if err := query.Scopes(db.Paginate(filter.Page, filter.PageSize)).Scan(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to query public feed: %w", err)
	}

	entries := make([]*complaint.FeedEntry, 0, len(rows))
	for _, row := range rows {
		c, err := r.mapper.ToDomain(&row.ComplaintModel)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, &complaint.FeedEntry{Complaint: c, UpvoteCount: row.UpvoteCount})
	}
	return entries, total, nil
}

func orderByID(tx *gorm.DB) *gorm.DB {
	return tx.Order("id ASC")
}
