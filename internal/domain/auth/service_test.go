package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

type stubTokens struct{}

func (stubTokens) GenerateToken(userID, role string) (string, error) {
	return "token-" + userID + "-" + role, nil
}

func userWithPassword(t *testing.T, password string) *User {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	return &User{ID: "u1", Email: "jane@jobvibe.test", PasswordHash: hash, Role: RoleCandidate, IsActive: true, Status: StatusActive}
}

func TestRegister_DefaultsToCandidate(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewService(repo, stubTokens{})
	ctx := context.Background()

	repo.On("ExistsByEmail", ctx, "jane@jobvibe.test").Return(false, nil)
	repo.On("Create", ctx, mock.MatchedBy(func(u *User) bool {
		u.ID = "u1"
		return u.Role == RoleCandidate && u.Email == "jane@jobvibe.test" && u.PasswordHash != "secret1"
	})).Return(nil)

	res, err := svc.Register(ctx, RegisterRequest{Name: "Jane", Email: " Jane@JobVibe.test ", Password: "secret1"})
	require.NoError(t, err)

	assert.Equal(t, "token-u1-candidate", res.Token)
	repo.AssertExpectations(t)
}

func TestRegister_Rejects(t *testing.T) {
	ctx := context.Background()

	t.Run("admin role", func(t *testing.T) {
		svc := NewService(new(mockUserRepo), stubTokens{})
		_, err := svc.Register(ctx, RegisterRequest{Email: "a@b.co", Password: "secret1", Role: RoleAdmin})
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("ExistsByEmail", ctx, "a@b.co").Return(true, nil)

		_, err := NewService(repo, stubTokens{}).Register(ctx, RegisterRequest{Email: "a@b.co", Password: "secret1"})
		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	})

	t.Run("weak password", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("ExistsByEmail", ctx, "a@b.co").Return(false, nil)

		_, err := NewService(repo, stubTokens{}).Register(ctx, RegisterRequest{Email: "a@b.co", Password: "123"})
		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}

func TestLogin_Success(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewService(repo, stubTokens{})
	ctx := context.Background()
	user := userWithPassword(t, "secret1")

	repo.On("GetByEmail", ctx, "jane@jobvibe.test").Return(user, nil)
	repo.On("Update", ctx, "u1", mock.MatchedBy(func(f map[string]any) bool {
		return f["failed_login_attempts"] == 0
	})).Return(nil)

	res, err := svc.Login(ctx, LoginRequest{Email: "jane@jobvibe.test", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "token-u1-candidate", res.Token)
	assert.NotNil(t, res.User.LastLoginAt)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := new(mockUserRepo)
	ctx := context.Background()
	repo.On("GetByEmail", ctx, "nobody@jobvibe.test").Return(nil, ErrUserNotFound)

	_, err := NewService(repo, stubTokens{}).Login(ctx, LoginRequest{Email: "nobody@jobvibe.test", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_LocksAfterRepeatedFailures(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewService(repo, stubTokens{})
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	user := userWithPassword(t, "secret1")
	user.FailedLoginAttempts = maxFailedLoginAttempts - 1

	repo.On("GetByEmail", ctx, user.Email).Return(user, nil)
	repo.On("Update", ctx, "u1", map[string]any{
		"failed_login_attempts": maxFailedLoginAttempts,
		"locked_until":          now.Add(lockoutDuration),
	}).Return(nil)

	_, err := svc.Login(ctx, LoginRequest{Email: user.Email, Password: "wrong"})
	assert.ErrorIs(t, err, ErrAccountLocked)
	repo.AssertExpectations(t)
}

func TestLogin_LockedAccount(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewService(repo, stubTokens{})
	ctx := context.Background()

	user := userWithPassword(t, "secret1")
	until := time.Now().Add(time.Hour)
	user.LockedUntil = &until
	repo.On("GetByEmail", ctx, user.Email).Return(user, nil)

	_, err := svc.Login(ctx, LoginRequest{Email: user.Email, Password: "secret1"})
	assert.ErrorIs(t, err, ErrAccountLocked)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_InactiveAccount(t *testing.T) {
	repo := new(mockUserRepo)
	ctx := context.Background()

	user := userWithPassword(t, "secret1")
	user.IsActive = false
	repo.On("GetByEmail", ctx, user.Email).Return(user, nil)

	_, err := NewService(repo, stubTokens{}).Login(ctx, LoginRequest{Email: user.Email, Password: "secret1"})
	assert.ErrorIs(t, err, ErrAccountInactive)
}

func TestChangePassword(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewService(repo, stubTokens{})
	ctx := context.Background()
	user := userWithPassword(t, "secret1")

	repo.On("GetByID", ctx, "u1").Return(user, nil)
	repo.On("Update", ctx, "u1", mock.AnythingOfType("map[string]interface {}")).Return(nil)

	assert.ErrorIs(t, svc.ChangePassword(ctx, "u1", "nope", "newsecret"), ErrWrongPassword)
	assert.NoError(t, svc.ChangePassword(ctx, "u1", "secret1", "newsecret"))
	repo.AssertNumberOfCalls(t, "Update", 1)
}

func TestRoleCounterpart(t *testing.T) {
	r, ok := RoleEmployer.Counterpart()
	assert.True(t, ok)
	assert.Equal(t, RoleCandidate, r)

	r, ok = RoleCandidate.Counterpart()
	assert.True(t, ok)
	assert.Equal(t, RoleEmployer, r)

	_, ok = RoleAdmin.Counterpart()
	assert.False(t, ok)
}
