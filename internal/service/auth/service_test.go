package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/auth"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/user"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testSecret     = "test-secret-key-for-jwt"
)

type fakeUserRepo struct {
	users map[string]user.User // keyed by email
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := f.users[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ListAdminEmails(ctx context.Context) ([]string, error) {
	return nil, nil
}

type fakeCaptcha struct {
	err    error
	called bool
}

func (f *fakeCaptcha) Verify(ctx context.Context, token, remoteIP string) error {
	f.called = true
	return f.err
}

func newTestRepo(t *testing.T) *fakeUserRepo {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	return &fakeUserRepo{users: map[string]user.User{
		"an@example.com": {
			ID:           "user-1",
			Email:        "an@example.com",
			PasswordHash: string(hash),
			FullName:     "Nguyen Van An",
			Role:         user.RoleEmployee,
		},
	}}
}

func TestLogin_Success(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp, false)
	captcha := &fakeCaptcha{}
	svc := NewAuthService(nil, newTestRepo(t), jwtService, captcha)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "an@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.True(t, captcha.called)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "user-1", resp.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp, false)
	svc := NewAuthService(nil, newTestRepo(t), jwtService, &fakeCaptcha{})

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "an@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp, false)
	svc := NewAuthService(nil, newTestRepo(t), jwtService, &fakeCaptcha{})

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_CaptchaRejected(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp, false)
	captcha := &fakeCaptcha{err: auth.ErrCaptchaRejected}
	svc := NewAuthService(nil, newTestRepo(t), jwtService, captcha)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "an@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrCaptchaRejected)
}

func TestRefresh_Success(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp, false)
	svc := NewAuthService(nil, newTestRepo(t), jwtService, &fakeCaptcha{})

	loginResp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "an@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	refreshResp, err := svc.Refresh(context.Background(), loginResp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshResp.AccessToken)
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp, false)
	svc := NewAuthService(nil, newTestRepo(t), jwtService, &fakeCaptcha{})

	loginResp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "an@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	// An access token must not pass as a refresh token
	_, err = svc.Refresh(context.Background(), loginResp.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefresh_RevokedAfterLogout(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp, false)
	svc := NewAuthService(nil, newTestRepo(t), jwtService, &fakeCaptcha{})

	loginResp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "an@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), loginResp.RefreshToken))

	_, err = svc.Refresh(context.Background(), loginResp.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}

func TestRefresh_GarbageToken(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp, false)
	svc := NewAuthService(nil, newTestRepo(t), jwtService, &fakeCaptcha{})

	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, auth.ErrTokenExpired))
}
