package usecases

import (
	"context"
	stderrors "errors"

	"github.com/civicdesk/civicdesk/internal/application/user/dto"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	vo "github.com/civicdesk/civicdesk/internal/domain/user/valueobjects"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

type RegisterCommand struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// RegisterUseCase creates a citizen account and signs it in.
type RegisterUseCase struct {
	userRepo     user.Repository
	hasher       PasswordHasher
	tokenService TokenService
	identities   identityResolver
	logger       logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	profileRepo department.AdminProfileRepository,
	hasher PasswordHasher,
	tokenService TokenService,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		identities:   identityResolver{profileRepo: profileRepo},
		logger:       logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.AuthResultDTO, error) {
	uc.logger.Infow("executing register use case", "username", cmd.Username)

	if err := vo.ValidatePassword(cmd.Password); err != nil {
		return nil, errors.NewValidationError("Validation failed", errors.FieldError("password", err.Error()))
	}

	if _, err := uc.userRepo.GetByUsername(ctx, cmd.Username); err == nil {
		return nil, errors.NewValidationError("Validation failed", errors.FieldError("username", "Username already exists."))
	} else if !stderrors.Is(err, user.ErrAccountNotFound) {
		uc.logger.Errorw("failed to check username", "error", err)
		return nil, errors.NewInternalError("failed to register")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to register")
	}

	account, err := user.NewAccount(cmd.Username, cmd.Email, cmd.FirstName, cmd.LastName, hash)
	if err != nil {
		return nil, errors.NewValidationError("Validation failed", err.Error())
	}

	if err := uc.userRepo.Create(ctx, account); err != nil {
		if stderrors.Is(err, user.ErrDuplicateUsername) {
			return nil, errors.NewValidationError("Validation failed", errors.FieldError("username", "Username already exists."))
		}
		uc.logger.Errorw("failed to create account", "username", account.Username(), "error", err)
		return nil, errors.NewInternalError("failed to register")
	}

	resolved, err := uc.identities.resolve(ctx, account)
	if err != nil {
		uc.logger.Errorw("failed to resolve role", "user_id", account.ID(), "error", err)
		return nil, errors.NewInternalError("failed to register")
	}
	pair, err := uc.tokenService.Generate(resolved.identity)
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", account.ID(), "error", err)
		return nil, errors.NewInternalError("failed to register")
	}

	uc.logger.Infow("account registered", "user_id", account.ID(), "username", account.Username())
	return authResult(pair, resolved.account(account)), nil
}
