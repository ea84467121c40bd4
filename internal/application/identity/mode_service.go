package identity

import (
	"context"
	"errors"

	"github.com/foodiejunction/backend/internal/domain/identity"
	"github.com/foodiejunction/backend/internal/domain/shared"
)

// ModeService handles the customer/admin storefront toggle
type ModeService struct {
	modeRepo    identity.ModeRepository
	userRepo    identity.UserRepository
	sessionRepo identity.SessionRepository
}

// NewModeService creates a new ModeService
func NewModeService(
	modeRepo identity.ModeRepository,
	userRepo identity.UserRepository,
	sessionRepo identity.SessionRepository,
) *ModeService {
	return &ModeService{
		modeRepo:    modeRepo,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
	}
}

// Get returns the active storefront mode
func (s *ModeService) Get(ctx context.Context) (*ModeResponse, error) {
	mode, err := s.modeRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &ModeResponse{Mode: string(mode)}, nil
}

// Switch changes the storefront mode. Admin mode requires a signed-in
// admin account.
func (s *ModeService) Switch(ctx context.Context, req SwitchModeRequest) (*ModeResponse, error) {
	mode := identity.Mode(req.Mode)
	if !mode.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Unknown mode: "+req.Mode)
	}

	if mode == identity.ModeAdmin {
		admin, err := s.signedInAdmin(ctx)
		if err != nil {
			return nil, err
		}
		if !admin {
			return nil, shared.ErrForbidden
		}
	}

	if err := s.modeRepo.Save(ctx, mode); err != nil {
		return nil, err
	}

	return &ModeResponse{Mode: string(mode)}, nil
}

func (s *ModeService) signedInAdmin(ctx context.Context) (bool, error) {
	userID, err := s.sessionRepo.CurrentUserID(ctx)
	if err != nil {
		return false, err
	}
	if userID == "" {
		return false, nil
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin(), nil
}
