package identity

import (
	"context"

	"github.com/foodiejunction/backend/internal/domain/identity"
)

// ProfileService handles the storefront's delivery profile
type ProfileService struct {
	profileRepo identity.ProfileRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo identity.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// Get returns the current delivery profile
func (s *ProfileService) Get(ctx context.Context) (*ProfileResponse, error) {
	profile, err := s.profileRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	response := ToProfileResponse(profile)
	return &response, nil
}

// Update replaces the delivery profile. A blank name falls back to
// the guest default.
func (s *ProfileService) Update(ctx context.Context, req UpdateProfileRequest) (*ProfileResponse, error) {
	profile, err := s.profileRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	profile.Update(req.Name, req.Phone, req.Address)

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	response := ToProfileResponse(profile)
	return &response, nil
}
