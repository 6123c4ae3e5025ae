package usecases

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/civicdesk/civicdesk/internal/application/user/dto"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	vo "github.com/civicdesk/civicdesk/internal/domain/user/valueobjects"
	"github.com/civicdesk/civicdesk/internal/infrastructure/auth"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

type GoogleAuthURLResult struct {
	AuthURL string
	State   string
}

type GoogleAuthURLUseCase struct {
	client     GoogleClient
	stateStore StateStore
	logger     logger.Interface
}

func NewGoogleAuthURLUseCase(client GoogleClient, stateStore StateStore, logger logger.Interface) *GoogleAuthURLUseCase {
	return &GoogleAuthURLUseCase{client: client, stateStore: stateStore, logger: logger}
}

func (uc *GoogleAuthURLUseCase) Execute(ctx context.Context) (*GoogleAuthURLResult, error) {
	state, err := generateState()
	if err != nil {
		uc.logger.Errorw("failed to generate state", "error", err)
		return nil, errors.NewInternalError("failed to start google login")
	}

	authURL, verifier, err := uc.client.AuthURL(state)
	if err != nil {
		uc.logger.Errorw("failed to build google auth url", "error", err)
		return nil, errors.NewInternalError("failed to start google login")
	}

	if err := uc.stateStore.Set(ctx, state, verifier); err != nil {
		uc.logger.Errorw("failed to store oauth state", "error", err)
		return nil, errors.NewInternalError("failed to start google login")
	}

	return &GoogleAuthURLResult{AuthURL: authURL, State: state}, nil
}

func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

type GoogleCallbackCommand struct {
	Code  string
	State string
	// Error is the error query parameter Google sends when the user declines.
	Error string
}

// GoogleCallbackResult carries ErrorCode instead of an error for failures the
// frontend should display on its login page.
type GoogleCallbackResult struct {
	Auth      *dto.AuthResultDTO
	IsNewUser bool
	ErrorCode string
}

const (
	GoogleErrorDenied     = "google_denied"
	GoogleErrorNoCode     = "no_code"
	GoogleErrorBadState   = "invalid_state"
	GoogleErrorNoEmail    = "no_email"
	GoogleErrorDisabled   = "account_disabled"
	GoogleErrorAuthFailed = "google_auth_failed"
)

type GoogleCallbackUseCase struct {
	userRepo     user.Repository
	txMgr        TransactionRunner
	client       GoogleClient
	stateStore   StateStore
	tokenService TokenService
	identities   identityResolver
	logger       logger.Interface
}

func NewGoogleCallbackUseCase(
	userRepo user.Repository,
	profileRepo department.AdminProfileRepository,
	txMgr TransactionRunner,
	client GoogleClient,
	stateStore StateStore,
	tokenService TokenService,
	logger logger.Interface,
) *GoogleCallbackUseCase {
	return &GoogleCallbackUseCase{
		userRepo:     userRepo,
		txMgr:        txMgr,
		client:       client,
		stateStore:   stateStore,
		tokenService: tokenService,
		identities:   identityResolver{profileRepo: profileRepo},
		logger:       logger,
	}
}

func (uc *GoogleCallbackUseCase) Execute(ctx context.Context, cmd GoogleCallbackCommand) (*GoogleCallbackResult, error) {
	switch {
	case cmd.Error != "":
		return &GoogleCallbackResult{ErrorCode: GoogleErrorDenied}, nil
	case cmd.Code == "":
		return &GoogleCallbackResult{ErrorCode: GoogleErrorNoCode}, nil
	}

	info, err := uc.stateStore.VerifyAndGet(ctx, cmd.State)
	if err != nil {
		uc.logger.Warnw("rejected oauth state", "error", err)
		return &GoogleCallbackResult{ErrorCode: GoogleErrorBadState}, nil
	}

	profile, err := uc.client.Profile(ctx, cmd.Code, info.CodeVerifier)
	if err != nil {
		uc.logger.Errorw("failed to fetch google profile", "error", err)
		return &GoogleCallbackResult{ErrorCode: GoogleErrorAuthFailed}, nil
	}
	if profile.Email == "" {
		return &GoogleCallbackResult{ErrorCode: GoogleErrorNoEmail}, nil
	}

	account, created, err := uc.findOrCreate(ctx, profile)
	if err != nil {
		uc.logger.Errorw("failed to find or create google account", "error", err)
		return &GoogleCallbackResult{ErrorCode: GoogleErrorAuthFailed}, nil
	}
	if !account.IsActive() {
		return &GoogleCallbackResult{ErrorCode: GoogleErrorDisabled}, nil
	}

	resolved, err := uc.identities.resolve(ctx, account)
	if err != nil {
		uc.logger.Errorw("failed to resolve role", "user_id", account.ID(), "error", err)
		return nil, errors.NewInternalError("failed to complete google login")
	}
	pair, err := uc.tokenService.Generate(resolved.identity)
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", account.ID(), "error", err)
		return nil, errors.NewInternalError("failed to complete google login")
	}

	uc.logger.Infow("google login completed", "user_id", account.ID(), "new_user", created)
	return &GoogleCallbackResult{Auth: authResult(pair, resolved.account(account)), IsNewUser: created}, nil
}

// findOrCreate matches on e-mail. New accounts take the address' local part as
// username, or <base>_<id> when that username is already taken.
func (uc *GoogleCallbackUseCase) findOrCreate(ctx context.Context, profile *auth.GoogleProfile) (*user.Account, bool, error) {
	email, err := vo.NormalizeEmail(profile.Email)
	if err != nil {
		return nil, false, err
	}

	account, err := uc.userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		account.RecordLogin()
		account.SyncNames(profile.GivenName, profile.FamilyName)
		if err := uc.userRepo.Update(ctx, account); err != nil {
			uc.logger.Warnw("failed to update google account", "user_id", account.ID(), "error", err)
		}
		return account, false, nil
	case !stderrors.Is(err, user.ErrAccountNotFound):
		return nil, false, err
	}

	base := vo.UsernameFromEmail(email)
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		username := base
		taken, err := uc.usernameTaken(txCtx, base)
		if err != nil {
			return err
		}
		if taken {
			username = base + "_" + uuid.NewString()[:8]
		}

		account, err = user.NewAccount(username, email, profile.GivenName, profile.FamilyName, "")
		if err != nil {
			return err
		}
		account.RecordLogin()
		if err := uc.userRepo.Create(txCtx, account); err != nil {
			return err
		}

		if taken {
			if err := account.ChangeUsername(fmt.Sprintf("%s_%d", base, account.ID())); err != nil {
				return err
			}
			return uc.userRepo.Update(txCtx, account)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return account, true, nil
}

func (uc *GoogleCallbackUseCase) usernameTaken(ctx context.Context, username string) (bool, error) {
	_, err := uc.userRepo.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return true, nil
	case stderrors.Is(err, user.ErrAccountNotFound):
		return false, nil
	}
	return false, err
}
