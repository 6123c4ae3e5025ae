package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/civicdesk/civicdesk/internal/domain/complaint"
	"github.com/civicdesk/civicdesk/internal/infrastructure/database"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/models"
	"github.com/civicdesk/civicdesk/internal/shared/db"
)

type UpvoteRepository struct {
	db *gorm.DB
}

func NewUpvoteRepository(db *gorm.DB) *UpvoteRepository {
	return &UpvoteRepository{db: db}
}

func (r *UpvoteRepository) Exists(ctx context.Context, complaintID, userID uint) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ComplaintUpvoteModel{}).
		Where("complaint_id = ? AND user_id = ?", complaintID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check upvote: %w", err)
	}
	return count > 0, nil
}

func (r *UpvoteRepository) Add(ctx context.Context, upvote *complaint.Upvote) error {
	model := &models.ComplaintUpvoteModel{
		UserID:      upvote.UserID(),
		ComplaintID: upvote.ComplaintID(),
		CreatedAt:   upvote.CreatedAt().UnixMilli(),
	}
	// The insert runs under a savepoint so a unique violation leaves an enclosing
	// transaction usable on PostgreSQL.
	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		return tx.Create(model).Error
	})
	if err != nil {
		if database.IsDuplicateKey(err) {
			return complaint.ErrUpvoteExists
		}
		return fmt.Errorf("failed to add upvote: %w", err)
	}
	return nil
}

func (r *UpvoteRepository) Remove(ctx context.Context, complaintID, userID uint) (bool, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("complaint_id = ? AND user_id = ?", complaintID, userID).
		Delete(&models.ComplaintUpvoteModel{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to remove upvote: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *UpvoteRepository) Count(ctx context.Context, complaintID uint) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ComplaintUpvoteModel{}).
		Where("complaint_id = ?", complaintID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count upvotes: %w", err)
	}
	return count, nil
}

func (r *UpvoteRepository) UpvotedAmong(ctx context.Context, userID uint, complaintIDs []uint) (map[uint]bool, error) {
	result := make(map[uint]bool, len(complaintIDs))
	if userID == 0 || len(complaintIDs) == 0 {
		return result, nil
	}

	var ids []uint
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ComplaintUpvoteModel{}).
		Where("user_id = ? AND complaint_id IN ?", userID, complaintIDs).
		Pluck("complaint_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load upvotes: %w", err)
	}
	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}
