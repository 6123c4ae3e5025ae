package usecases

import (
	"context"
	stderrors "errors"

	"github.com/civicdesk/civicdesk/internal/application/user/dto"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

type GetCurrentUserQuery struct {
	UserID uint
}

type GetCurrentUserUseCase struct {
	userRepo   user.Repository
	identities identityResolver
	logger     logger.Interface
}

func NewGetCurrentUserUseCase(
	userRepo user.Repository,
	profileRepo department.AdminProfileRepository,
	logger logger.Interface,
) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{
		userRepo:   userRepo,
		identities: identityResolver{profileRepo: profileRepo},
		logger:     logger,
	}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, query GetCurrentUserQuery) (*dto.AccountDTO, error) {
	account, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		if stderrors.Is(err, user.ErrAccountNotFound) {
			return nil, errors.NewUnauthorizedError("user not found")
		}
		uc.logger.Errorw("failed to load account", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError("failed to load user")
	}

	resolved, err := uc.identities.resolve(ctx, account)
	if err != nil {
		uc.logger.Errorw("failed to resolve role", "user_id", account.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load user")
	}
	return resolved.account(account), nil
}
