package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"eventapi/internal/domain"
)

const (
	maxFullNameLen = 255
	maxBioLen      = 500
)

type profileService struct {
	profileRepo    domain.ProfileRepository
	contextTimeout time.Duration
}

// NewProfileService returns a ProfileService backed by profileRepo.
func NewProfileService(profileRepo domain.ProfileRepository, timeout time.Duration) domain.ProfileService {
	return &profileService{profileRepo: profileRepo, contextTimeout: timeout}
}

func (s *profileService) GetOwnProfile(ctx context.Context, principal domain.Principal) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !principal.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	profile, err := s.profileRepo.GetOrCreate(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) UpdateOwnProfile(ctx context.Context, principal domain.Principal, fields domain.ProfileFields) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !principal.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	profile, err := s.profileRepo.GetOrCreate(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	if fields.FullName != nil {
		profile.FullName = strings.TrimSpace(*fields.FullName)
	}
	if fields.Bio != nil {
		profile.Bio = *fields.Bio
	}
	if fields.Location != nil {
		profile.Location = strings.TrimSpace(*fields.Location)
	}
	if fields.ProfilePicture != nil {
		if pic := strings.TrimSpace(*fields.ProfilePicture); pic != "" {
			profile.ProfilePicture = &pic
		} else {
			profile.ProfilePicture = nil
		}
	}
	if len([]rune(profile.FullName)) > maxFullNameLen {
		return nil, domain.NewValidationError("full_name", fmt.Sprintf("full_name: Ensure this field has no more than %d characters.", maxFullNameLen))
	}
	if len([]rune(profile.Bio)) > maxBioLen {
		return nil, domain.NewValidationError("bio", fmt.Sprintf("bio: Ensure this field has no more than %d characters.", maxBioLen))
	}
	if len([]rune(profile.Location)) > maxLocationLen {
		return nil, domain.NewValidationError("location", fmt.Sprintf("location: Ensure this field has no more than %d characters.", maxLocationLen))
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return profile, nil
}
