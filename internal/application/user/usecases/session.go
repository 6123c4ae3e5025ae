package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/civicdesk/civicdesk/internal/application/user/dto"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/infrastructure/auth"
	"github.com/civicdesk/civicdesk/internal/shared/authorization"
)

// identityResolver derives the effective role of an account from its flags and admin profile.
type identityResolver struct {
	profileRepo department.AdminProfileRepository
}

type resolvedIdentity struct {
	identity     auth.Identity
	departmentID *uint
}

func (r identityResolver) resolve(ctx context.Context, a *user.Account) (*resolvedIdentity, error) {
	var profileRole authorization.UserRole
	var departmentID *uint

	if a.IsStaff() {
		profile, err := r.profileRepo.GetByUserID(ctx, a.ID())
		switch {
		case err == nil:
			profileRole = profile.Role()
			departmentID = profile.DepartmentID()
		case stderrors.Is(err, department.ErrAdminProfileNotFound):
		default:
			return nil, fmt.Errorf("failed to load admin profile: %w", err)
		}
	}

	return &resolvedIdentity{
		identity: auth.Identity{
			UserID:  a.ID(),
			IsStaff: a.IsStaff(),
			Role:    authorization.ResolveRole(a.IsStaff(), a.IsSuperuser(), profileRole),
		},
		departmentID: departmentID,
	}, nil
}

func (r *resolvedIdentity) account(a *user.Account) *dto.AccountDTO {
	return dto.ToAccountDTO(a, r.identity.Role, r.departmentID)
}

func authResult(pair *auth.TokenPair, account *dto.AccountDTO) *dto.AuthResultDTO {
	return &dto.AuthResultDTO{
		Access:    pair.AccessToken,
		Refresh:   pair.RefreshToken,
		ExpiresIn: pair.ExpiresIn,
		User:      account,
	}
}
