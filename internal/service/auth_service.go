package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"linkly-be/internal/apperrors"
	"linkly-be/internal/entities"
	"linkly-be/internal/jwt"
	"linkly-be/internal/models"
	"linkly-be/internal/repository"
)

// AuthService defines the interface for account and authentication logic.
// The acting identity for profile operations is the email extracted from the
// bearer token, so an email change invalidates previously issued tokens.
type AuthService interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*models.SignupResponse, error)
	Signin(ctx context.Context, req *models.SigninRequest) (*models.SigninResponse, error)
	UpdateProfile(ctx context.Context, email string, req *models.UpdateUserRequest) error
	DeleteAccount(ctx context.Context, email string) error
	Profile(ctx context.Context, email string) (*models.ProfileResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthService creates a new auth service.
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Signup creates a new user account and issues a token for it.
func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*models.SignupResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.ErrPasswordMismatch
	}

	// Check if user already exists
	if existing, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, &entities.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Phone:        req.Phone,
	})
	if err != nil {
		// Concurrent signup with the same email races past the existence
		// check; the unique index reports it here.
		if errors.Is(err, apperrors.ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.SignupResponse{
		Message: "User created successfully",
		Token:   token,
		ID:      user.ID.Hex(),
	}, nil
}

// Signin authenticates a user by email and password. The failure message is
// uniform so callers cannot probe which emails are registered.
func (s *authService) Signin(ctx context.Context, req *models.SigninRequest) (*models.SigninResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.SigninResponse{
		Message: "Login successfully",
		Token:   token,
		ID:      user.ID.Hex(),
		Name:    user.Name,
		Email:   user.Email,
		Phone:   user.Phone,
	}, nil
}

// UpdateProfile patches the non-empty fields of the user resolved by email.
func (s *authService) UpdateProfile(ctx context.Context, email string, req *models.UpdateUserRequest) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	return s.userRepo.Replace(ctx, user)
}

// DeleteAccount removes the user. Links owned by the user are deliberately
// left in place.
func (s *authService) DeleteAccount(ctx context.Context, email string) error {
	return s.userRepo.DeleteByEmail(ctx, email)
}

// Profile returns the public profile fields of the user resolved by email.
func (s *authService) Profile(ctx context.Context, email string) (*models.ProfileResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return &models.ProfileResponse{
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
	}, nil
}
