package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"linkly-be/internal/apperrors"
	"linkly-be/internal/jwt"
	"linkly-be/internal/models"
)

func newAuthFixture() (AuthService, *fakeUserRepo, *jwt.JWTService) {
	repo := newFakeUserRepo()
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	return NewAuthService(repo, jwtService), repo, jwtService
}

func signupReq() *models.SignupRequest {
	return &models.SignupRequest{
		Email:           "alice@example.com",
		Password:        "s3cret",
		ConfirmPassword: "s3cret",
		Name:            "Alice",
		Phone:           "1234567890",
	}
}

func TestSignup(t *testing.T) {
	svc, repo, jwtService := newAuthFixture()

	resp, err := svc.Signup(context.Background(), signupReq())
	require.NoError(t, err)
	assert.Equal(t, "User created successfully", resp.Message)
	assert.NotEmpty(t, resp.ID)

	email, err := jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)

	stored := repo.users["alice@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")))
}

func TestSignupPasswordMismatch(t *testing.T) {
	svc, repo, _ := newAuthFixture()

	req := signupReq()
	req.ConfirmPassword = "other"

	_, err := svc.Signup(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrPasswordMismatch)
	assert.Empty(t, repo.users, "no user record should be created")
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), signupReq())
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestSignin(t *testing.T) {
	svc, _, jwtService := newAuthFixture()

	signup, err := svc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	resp, err := svc.Signin(context.Background(), &models.SigninRequest{
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, signup.ID, resp.ID)
	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.Equal(t, "1234567890", resp.Phone)

	email, err := jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestSigninWrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	resp, err := svc.Signin(context.Background(), &models.SigninRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Nil(t, resp)
}

func TestSigninUnknownEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()

	// Same error as a wrong password so callers cannot probe registered emails.
	_, err := svc.Signin(context.Background(), &models.SigninRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, repo, _ := newAuthFixture()

	_, err := svc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	err = svc.UpdateProfile(context.Background(), "alice@example.com", &models.UpdateUserRequest{
		Phone: "0987654321",
	})
	require.NoError(t, err)

	stored := repo.users["alice@example.com"]
	require.NotNil(t, stored)
	assert.Equal(t, "Alice", stored.Name)
	assert.Equal(t, "0987654321", stored.Phone)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc, _, _ := newAuthFixture()

	err := svc.UpdateProfile(context.Background(), "nobody@example.com", &models.UpdateUserRequest{Name: "X"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestDeleteAccount(t *testing.T) {
	svc, repo, _ := newAuthFixture()

	_, err := svc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(context.Background(), "alice@example.com"))
	assert.Empty(t, repo.users)

	err = svc.DeleteAccount(context.Background(), "alice@example.com")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestProfile(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	profile, err := svc.Profile(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, &models.ProfileResponse{
		Name:  "Alice",
		Email: "alice@example.com",
		Phone: "1234567890",
	}, profile)
}
