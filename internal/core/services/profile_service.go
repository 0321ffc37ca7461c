package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/google/uuid"
)

// profileService serves the aggregation read-models and the subscription and
// watch-history writes that feed them.
type profileService struct {
	profileRepo      portsrepo.ProfileRepository
	subscriptionRepo portsrepo.SubscriptionRepository
	videoRepo        portsrepo.VideoRepository
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(
	profileRepo portsrepo.ProfileRepository,
	subscriptionRepo portsrepo.SubscriptionRepository,
	videoRepo portsrepo.VideoRepository,
) portssvc.ProfileSvcFacade {
	return &profileService{
		profileRepo:      profileRepo,
		subscriptionRepo: subscriptionRepo,
		videoRepo:        videoRepo,
	}
}

var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

func (s *profileService) GetChannelProfile(ctx context.Context, viewerID, username string) (*domain.ChannelProfile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required: %w", apperrors.ErrValidation)
	}
	return s.profileRepo.GetChannelProfile(ctx, viewerID, username)
}

func (s *profileService) GetWatchHistory(ctx context.Context, userID string) ([]domain.WatchHistoryEntry, error) {
	return s.profileRepo.GetWatchHistory(ctx, userID)
}

// RecordView appends the video to the user's watch history and bumps the view
// counter. The video is resolved first so a bogus id fails with NotFound before
// any write happens.
func (s *profileService) RecordView(ctx context.Context, userID, videoID string) (*domain.Video, error) {
	video, err := s.videoRepo.FindVideoByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if err := s.videoRepo.AppendWatchHistory(ctx, userID, videoID); err != nil {
		return nil, err
	}
	if err := s.videoRepo.IncrementViews(ctx, videoID); err != nil {
		return nil, err
	}
	video.Views++
	return video, nil
}

// ToggleSubscription flips the subscriber->channel edge and reports the
// resulting state. Self-subscription is not prevented.
func (s *profileService) ToggleSubscription(ctx context.Context, subscriberID, channelID string) (bool, error) {
	exists, err := s.subscriptionRepo.SubscriptionExists(ctx, subscriberID, channelID)
	if err != nil {
		return false, err
	}
	if exists {
		if err := s.subscriptionRepo.DeleteSubscription(ctx, subscriberID, channelID); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return true, err
		}
		return false, nil
	}

	sub := domain.Subscription{
		SubscriptionID: uuid.NewString(),
		SubscriberID:   subscriberID,
		ChannelID:      channelID,
		CreatedAt:      time.Now(),
	}
	if err := s.subscriptionRepo.SaveSubscription(ctx, sub); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Concurrent subscribe won the race; the desired state holds.
			return true, nil
		}
		return false, err
	}
	return true, nil
}
