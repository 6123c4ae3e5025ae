package usecases

import (
	"context"
	stderrors "errors"

	"github.com/civicdesk/civicdesk/internal/application/complaint/dto"
	"github.com/civicdesk/civicdesk/internal/domain/complaint"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

type ToggleUpvoteCommand struct {
	ComplaintID uint
	UserID      uint
}

type ToggleUpvoteUseCase struct {
	complaintRepo complaint.Repository
	upvoteRepo    complaint.UpvoteRepository
	txMgr         TransactionRunner
	logger        logger.Interface
}

func NewToggleUpvoteUseCase(
	complaintRepo complaint.Repository,
	upvoteRepo complaint.UpvoteRepository,
	txMgr TransactionRunner,
	logger logger.Interface,
) *ToggleUpvoteUseCase {
	return &ToggleUpvoteUseCase{
		complaintRepo: complaintRepo,
		upvoteRepo:    upvoteRepo,
		txMgr:         txMgr,
		logger:        logger,
	}
}

// Execute flips the caller's upvote and returns the new state with the fresh count.
func (uc *ToggleUpvoteUseCase) Execute(ctx context.Context, cmd ToggleUpvoteCommand) (*dto.UpvoteResultDTO, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	result := &dto.UpvoteResultDTO{}
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.complaintRepo.GetByID(txCtx, cmd.ComplaintID); err != nil {
			return complaintLoadError(uc.logger, err, "id", cmd.ComplaintID)
		}

		upvoted, err := uc.flip(txCtx, cmd)
		if err != nil {
			return err
		}

		count, err := uc.upvoteRepo.Count(txCtx, cmd.ComplaintID)
		if err != nil {
			return err
		}
		result.Upvoted = upvoted
		result.UpvoteCount = count
		return nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to toggle upvote",
			"complaint_id", cmd.ComplaintID,
			"user_id", cmd.UserID,
			"error", err)
		return nil, errors.NewInternalError("failed to toggle upvote")
	}

	uc.logger.Infow("upvote toggled",
		"complaint_id", cmd.ComplaintID,
		"user_id", cmd.UserID,
		"upvoted", result.Upvoted,
		"upvote_count", result.UpvoteCount)
	return result, nil
}

// flip removes an existing upvote or adds a new one. An insert that loses a race to a
// concurrent toggle from the same user is treated as the row existing, and removed.
func (uc *ToggleUpvoteUseCase) flip(ctx context.Context, cmd ToggleUpvoteCommand) (bool, error) {
	exists, err := uc.upvoteRepo.Exists(ctx, cmd.ComplaintID, cmd.UserID)
	if err != nil {
		return false, err
	}
	if exists {
		if _, err := uc.upvoteRepo.Remove(ctx, cmd.ComplaintID, cmd.UserID); err != nil {
			return false, err
		}
		return false, nil
	}

	upvote, err := complaint.NewUpvote(cmd.ComplaintID, cmd.UserID)
	if err != nil {
		return false, errors.NewValidationError("Validation failed", err.Error())
	}
	err = uc.upvoteRepo.Add(ctx, upvote)
	if err == nil {
		return true, nil
	}
	if !stderrors.Is(err, complaint.ErrUpvoteExists) {
		return false, err
	}
	if _, err := uc.upvoteRepo.Remove(ctx, cmd.ComplaintID, cmd.UserID); err != nil {
		return false, err
	}
	return false, nil
}
