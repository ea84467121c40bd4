package identity

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/foodiejunction/backend/internal/domain/identity"
	"github.com/foodiejunction/backend/internal/domain/shared"
	"github.com/foodiejunction/backend/internal/infrastructure/auth"
)

// AuthService handles registration, login, and the current session
type AuthService struct {
	userRepo    identity.UserRepository
	profileRepo identity.ProfileRepository
	sessionRepo identity.SessionRepository
	jwtService  *auth.JWTService
	eventBus    shared.EventPublisher
	logger      *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo identity.UserRepository,
	profileRepo identity.ProfileRepository,
	sessionRepo identity.SessionRepository,
	jwtService *auth.JWTService,
	eventBus shared.EventPublisher,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
		eventBus:    eventBus,
		logger:      logger,
	}
}

// Register creates a customer account and signs it in. The delivery
// profile picks up the new account's name.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Email already registered")
	}

	user, err := identity.NewUser(req.Name, email, req.Password, identity.RoleCustomer)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	if err := s.sessionRepo.SetCurrentUser(ctx, user); err != nil {
		return nil, err
	}

	profile := identity.DefaultProfile()
	profile.Update(user.Name, "", "")
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	s.publishUserEvents(ctx, user)

	s.logger.Info("user registered",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email),
	)

	return s.authResponse(user)
}

// Login verifies credentials and signs the user in. When the delivery
// profile still carries the guest name, it adopts the user's name.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.VerifyPassword(req.Password) {
		return nil, shared.ErrInvalidCredentials
	}

	if err := s.sessionRepo.SetCurrentUser(ctx, user); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if profile.Name == "" || profile.Name == "Guest User" {
		profile.Name = user.Name
		if err := s.profileRepo.Save(ctx, profile); err != nil {
			return nil, err
		}
	}

	user.AddDomainEvent(identity.NewUserLoggedInEvent(user))
	s.publishUserEvents(ctx, user)

	return s.authResponse(user)
}

// Logout clears the current session
func (s *AuthService) Logout(ctx context.Context) error {
	userID, err := s.sessionRepo.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	if err := s.sessionRepo.ClearCurrentUser(ctx); err != nil {
		return err
	}

	if userID != "" {
		_ = s.eventBus.Publish(ctx, identity.NewUserLoggedOutEvent(userID))
	}
	return nil
}

// CurrentUser returns the signed-in account, or nil when signed out
func (s *AuthService) CurrentUser(ctx context.Context) (*UserResponse, error) {
	userID, err := s.sessionRepo.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, nil
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			// Stale session pointing at a deleted account
			_ = s.sessionRepo.ClearCurrentUser(ctx)
			return nil, nil
		}
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

func (s *AuthService) authResponse(user *identity.User) (*AuthResponse, error) {
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		User:      ToUserResponse(user),
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt,
	}, nil
}

func (s *AuthService) publishUserEvents(ctx context.Context, user *identity.User) {
	events := user.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	user.ClearDomainEvents()
	_ = s.eventBus.Publish(ctx, events...)
}
