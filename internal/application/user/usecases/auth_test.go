package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/infrastructure/auth"
	"github.com/civicdesk/civicdesk/internal/infrastructure/cache"
	"github.com/civicdesk/civicdesk/internal/shared/authorization"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
)

func hashedAccount(t *testing.T, id uint, username, password string, staff, active bool) *user.Account {
	hash, err := testHasher().Hash(password)
	require.NoError(t, err)
	return user.ReconstructAccount(user.AccountState{
		ID:           id,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		IsStaff:      staff,
		IsActive:     active,
	})
}

func TestRegisterUseCase_Execute(t *testing.T) {
	store := newAccountStore()
	uc := NewRegisterUseCase(store, &mockAdminProfileRepository{}, testHasher(), testTokens(), nopLogger{})

	result, err := uc.Execute(context.Background(), RegisterCommand{
		Username:  "maya",
		Email:     "Maya@Example.com",
		Password:  "secret123",
		FirstName: "maya",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Access)
	assert.NotEmpty(t, result.Refresh)
	assert.Equal(t, "citizen", result.User.Role)
	assert.Equal(t, "maya@example.com", result.User.Email)

	claims, err := testTokens().Verify(result.Access)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)

	_, err = uc.Execute(context.Background(), RegisterCommand{Username: "maya", Password: "secret123"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, errors.GetAppError(err).Details, "username:")
}

func TestRegisterUseCase_Execute_ShortPassword(t *testing.T) {
	uc := NewRegisterUseCase(newAccountStore(), &mockAdminProfileRepository{}, testHasher(), testTokens(), nopLogger{})

	_, err := uc.Execute(context.Background(), RegisterCommand{Username: "maya", Password: "123"})

	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Details, "password:")
}

func TestLoginUseCase_Execute(t *testing.T) {
	deptID := uint(2)
	store := newAccountStore(
		hashedAccount(t, 1, "citizen", "pass1234", false, true),
		hashedAccount(t, 2, "officer", "pass1234", true, true),
		hashedAccount(t, 3, "retired", "pass1234", true, false),
	)
	profiles := &mockAdminProfileRepository{
		GetByUserIDFunc: func(ctx context.Context, userID uint) (*department.AdminProfile, error) {
			if userID == 2 {
				return department.ReconstructAdminProfile(1, 2, &deptID, authorization.RoleCDO), nil
			}
			return nil, department.ErrAdminProfileNotFound
		},
	}
	uc := NewLoginUseCase(store, profiles, testHasher(), testTokens(), nopLogger{})

	t.Run("staff with profile gets profile role", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), LoginCommand{Username: "officer", Password: "pass1234"})
		require.NoError(t, err)
		assert.Equal(t, "cdo", result.User.Role)
		assert.Equal(t, &deptID, result.User.DepartmentID)

		claims, err := testTokens().Verify(result.Access)
		require.NoError(t, err)
		assert.True(t, claims.IsStaff)
		assert.Equal(t, authorization.RoleCDO, claims.Role)
	})

	t.Run("records last login", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), LoginCommand{Username: "citizen", Password: "pass1234"})
		require.NoError(t, err)
		a, _ := store.GetByID(context.Background(), 1)
		assert.NotNil(t, a.LastLoginAt())
	})

	failures := []struct {
		name string
		cmd  LoginCommand
	}{
		{"wrong password", LoginCommand{Username: "citizen", Password: "nope"}},
		{"unknown user", LoginCommand{Username: "ghost", Password: "pass1234"}},
		{"inactive account", LoginCommand{Username: "retired", Password: "pass1234"}},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, errors.IsUnauthorizedError(err))
		})
	}
}

func TestRefreshTokenUseCase_Execute(t *testing.T) {
	store := newAccountStore(hashedAccount(t, 1, "citizen", "pass1234", false, true))
	tokens := testTokens()
	sessions := cache.NewMemorySessionStore()
	pair, err := tokens.Generate(auth.Identity{UserID: 1, Role: authorization.RoleCitizen})
	require.NoError(t, err)

	uc := NewRefreshTokenUseCase(store, &mockAdminProfileRepository{}, tokens, sessions, nopLogger{})

	result, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: pair.RefreshToken})
	require.NoError(t, err)

	previous, err := tokens.VerifyRefresh(pair.RefreshToken)
	require.NoError(t, err)
	rotated, err := tokens.Verify(result.Access)
	require.NoError(t, err)
	assert.NotEqual(t, previous.SessionID, rotated.SessionID)

	revoked, err := sessions.IsRevoked(context.Background(), previous.SessionID)
	require.NoError(t, err)
	assert.True(t, revoked, "the replaced session is revoked")

	_, err = uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: pair.RefreshToken})
	assert.True(t, errors.IsUnauthorizedError(err), "a rotated refresh token cannot be replayed")

	_, err = uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: result.Refresh})
	assert.NoError(t, err, "the new refresh token keeps working")

	_, err = uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: pair.AccessToken})
	assert.True(t, errors.IsUnauthorizedError(err))
}

func TestLogoutUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	store := newAccountStore(hashedAccount(t, 1, "citizen", "pass1234", false, true))
	tokens := testTokens()
	sessions := cache.NewMemorySessionStore()
	pair, err := tokens.Generate(auth.Identity{UserID: 1, Role: authorization.RoleCitizen})
	require.NoError(t, err)
	access, err := tokens.Verify(pair.AccessToken)
	require.NoError(t, err)

	uc := NewLogoutUseCase(tokens, sessions, nopLogger{})
	require.NoError(t, uc.Execute(ctx, LogoutCommand{UserID: 1, SessionID: access.SessionID, RefreshToken: pair.RefreshToken}))

	revoked, err := sessions.IsRevoked(ctx, access.SessionID)
	require.NoError(t, err)
	assert.True(t, revoked)

	refresh := NewRefreshTokenUseCase(store, &mockAdminProfileRepository{}, tokens, sessions, nopLogger{})
	_, err = refresh.Execute(ctx, RefreshTokenCommand{RefreshToken: pair.RefreshToken})
	assert.True(t, errors.IsUnauthorizedError(err), "refresh after logout is rejected")
}

func TestLogoutUseCase_Execute_RevokesCallerSession(t *testing.T) {
	ctx := context.Background()
	tokens := testTokens()
	sessions := cache.NewMemorySessionStore()
	first, err := tokens.Generate(auth.Identity{UserID: 1})
	require.NoError(t, err)
	second, err := tokens.Generate(auth.Identity{UserID: 1})
	require.NoError(t, err)
	caller, err := tokens.Verify(second.AccessToken)
	require.NoError(t, err)
	target, err := tokens.VerifyRefresh(first.RefreshToken)
	require.NoError(t, err)

	uc := NewLogoutUseCase(tokens, sessions, nopLogger{})
	require.NoError(t, uc.Execute(ctx, LogoutCommand{UserID: 1, SessionID: caller.SessionID, RefreshToken: first.RefreshToken}))

	for _, id := range []string{caller.SessionID, target.SessionID} {
		revoked, err := sessions.IsRevoked(ctx, id)
		require.NoError(t, err)
		assert.True(t, revoked, id)
	}
}

func TestLogoutUseCase_Execute_InvalidRefresh(t *testing.T) {
	tokens := testTokens()
	other, err := tokens.Generate(auth.Identity{UserID: 2})
	require.NoError(t, err)

	uc := NewLogoutUseCase(tokens, cache.NewMemorySessionStore(), nopLogger{})

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"access token", other.AccessToken},
		{"another user's token", other.RefreshToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.Execute(context.Background(), LogoutCommand{UserID: 1, RefreshToken: tt.token})
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, errors.GetAppError(err).Details, "refresh:")
		})
	}
}

func TestGetCurrentUserUseCase_Execute_SuperuserRole(t *testing.T) {
	admin := user.ReconstructAccount(user.AccountState{ID: 1, Username: "admin", IsStaff: true, IsSuperuser: true, IsActive: true})
	uc := NewGetCurrentUserUseCase(newAccountStore(admin), &mockAdminProfileRepository{}, nopLogger{})

	me, err := uc.Execute(context.Background(), GetCurrentUserQuery{UserID: 1})

	require.NoError(t, err)
	assert.Equal(t, "super_admin", me.Role)
	assert.Equal(t, "Super Admin", me.RoleDisplay)
}

func googleFlow(t *testing.T, store *accountStore, profile *auth.GoogleProfile) (*GoogleCallbackResult, error) {
	t.Helper()
	states := cache.NewMemoryStateStore(time.Minute)
	client := &mockGoogleClient{
		ProfileFunc: func(ctx context.Context, code, verifier string) (*auth.GoogleProfile, error) {
			return profile, nil
		},
	}

	start, err := NewGoogleAuthURLUseCase(client, states, nopLogger{}).Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, start.AuthURL, start.State)

	uc := NewGoogleCallbackUseCase(store, &mockAdminProfileRepository{}, passthroughTx{}, client, states, testTokens(), nopLogger{})
	return uc.Execute(context.Background(), GoogleCallbackCommand{Code: "code", State: start.State})
}

func TestGoogleCallbackUseCase_Execute_CreatesAccount(t *testing.T) {
	store := newAccountStore()

	result, err := googleFlow(t, store, &auth.GoogleProfile{Email: "Asha.Rai@gmail.com", GivenName: "Asha", FamilyName: "Rai"})

	require.NoError(t, err)
	require.Empty(t, result.ErrorCode)
	assert.True(t, result.IsNewUser)
	assert.Equal(t, "asha.rai", result.Auth.User.Username)
	assert.Equal(t, "Asha", result.Auth.User.FirstName)
}

func TestGoogleCallbackUseCase_Execute_UsernameCollision(t *testing.T) {
	store := newAccountStore(hashedAccount(t, 1, "asha", "pass1234", false, true))

	result, err := googleFlow(t, store, &auth.GoogleProfile{Email: "asha@gmail.com"})

	require.NoError(t, err)
	require.Empty(t, result.ErrorCode)
	assert.Equal(t, "asha_2", result.Auth.User.Username)
}

func TestGoogleCallbackUseCase_Execute_ExistingAccountByEmail(t *testing.T) {
	existing := hashedAccount(t, 1, "ram", "pass1234", false, true)
	store := newAccountStore(existing)

	result, err := googleFlow(t, store, &auth.GoogleProfile{Email: "RAM@example.com", FamilyName: "thapa"})

	require.NoError(t, err)
	assert.False(t, result.IsNewUser)
	assert.Equal(t, uint(1), result.Auth.User.ID)
	assert.Equal(t, "Thapa", existing.LastName())
}

func TestGoogleCallbackUseCase_Execute_Rejections(t *testing.T) {
	store := newAccountStore()
	states := cache.NewMemoryStateStore(time.Minute)
	uc := NewGoogleCallbackUseCase(store, &mockAdminProfileRepository{}, passthroughTx{}, &mockGoogleClient{}, states, testTokens(), nopLogger{})

	tests := []struct {
		name string
		cmd  GoogleCallbackCommand
		code string
	}{
		{"user declined", GoogleCallbackCommand{Error: "access_denied"}, GoogleErrorDenied},
		{"missing code", GoogleCallbackCommand{State: "x"}, GoogleErrorNoCode},
		{"unknown state", GoogleCallbackCommand{Code: "c", State: "forged"}, GoogleErrorBadState},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.Execute(context.Background(), tt.cmd)
			require.NoError(t, err)
			assert.Equal(t, tt.code, result.ErrorCode)
			assert.Nil(t, result.Auth)
		})
	}
}
