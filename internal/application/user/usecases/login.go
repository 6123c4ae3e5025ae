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

type LoginCommand struct {
	Username string
	Password string
}

type LoginUseCase struct {
	userRepo     user.Repository
	hasher       PasswordHasher
	tokenService TokenService
	identities   identityResolver
	logger       logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	profileRepo department.AdminProfileRepository,
	hasher PasswordHasher,
	tokenService TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		identities:   identityResolver{profileRepo: profileRepo},
		logger:       logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.AuthResultDTO, error) {
	account, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		if stderrors.Is(err, user.ErrAccountNotFound) {
			return nil, errors.NewUnauthorizedError("Invalid username or password.")
		}
		uc.logger.Errorw("failed to load account", "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}

	// Same answer for unknown users and wrong passwords.
	if err := uc.hasher.Verify(cmd.Password, account.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "user_id", account.ID())
		return nil, errors.NewUnauthorizedError("Invalid username or password.")
	}
	if !account.IsActive() {
		return nil, errors.NewUnauthorizedError("User account is disabled.")
	}

	account.RecordLogin()
	if err := uc.userRepo.Update(ctx, account); err != nil {
		uc.logger.Warnw("failed to record login", "user_id", account.ID(), "error", err)
	}

	resolved, err := uc.identities.resolve(ctx, account)
	if err != nil {
		uc.logger.Errorw("failed to resolve role", "user_id", account.ID(), "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}
	pair, err := uc.tokenService.Generate(resolved.identity)
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", account.ID(), "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}

	uc.logger.Infow("user logged in", "user_id", account.ID(), "role", resolved.identity.Role)
	return authResult(pair, resolved.account(account)), nil
}
