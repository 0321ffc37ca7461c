package services_test

import (
	"context"
	"testing"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ProfileRepository ---
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetChannelProfile(ctx context.Context, viewerID, username string) (*domain.ChannelProfile, error) {
	args := m.Called(ctx, viewerID, username)
	var profile *domain.ChannelProfile
	if args.Get(0) != nil {
		profile = args.Get(0).(*domain.ChannelProfile)
	}
	return profile, args.Error(1)
}

func (m *MockProfileRepository) GetWatchHistory(ctx context.Context, userID string) ([]domain.WatchHistoryEntry, error) {
	args := m.Called(ctx, userID)
	var entries []domain.WatchHistoryEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.WatchHistoryEntry)
	}
	return entries, args.Error(1)
}

// --- Mock SubscriptionRepository ---
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) SaveSubscription(ctx context.Context, sub domain.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) DeleteSubscription(ctx context.Context, subscriberID, channelID string) error {
	args := m.Called(ctx, subscriberID, channelID)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) SubscriptionExists(ctx context.Context, subscriberID, channelID string) (bool, error) {
	args := m.Called(ctx, subscriberID, channelID)
	return args.Bool(0), args.Error(1)
}

// --- Mock VideoRepository ---
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) FindVideoByID(ctx context.Context, videoID string) (*domain.Video, error) {
	args := m.Called(ctx, videoID)
	var video *domain.Video
	if args.Get(0) != nil {
		video = args.Get(0).(*domain.Video)
	}
	return video, args.Error(1)
}

func (m *MockVideoRepository) AppendWatchHistory(ctx context.Context, userID, videoID string) error {
	args := m.Called(ctx, userID, videoID)
	return args.Error(0)
}

func (m *MockVideoRepository) IncrementViews(ctx context.Context, videoID string) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

// --- Test Suite ---
type ProfileServiceTestSuite struct {
	suite.Suite
	mockProfileRepo      *MockProfileRepository
	mockSubscriptionRepo *MockSubscriptionRepository
	mockVideoRepo        *MockVideoRepository
	service              portssvc.ProfileSvcFacade
}

func (suite *ProfileServiceTestSuite) SetupTest() {
	suite.mockProfileRepo = new(MockProfileRepository)
	suite.mockSubscriptionRepo = new(MockSubscriptionRepository)
	suite.mockVideoRepo = new(MockVideoRepository)
	suite.service = services.NewProfileService(suite.mockProfileRepo, suite.mockSubscriptionRepo, suite.mockVideoRepo)
}

// --- GetChannelProfile Tests ---

func (suite *ProfileServiceTestSuite) TestGetChannelProfile_Success() {
	ctx := context.Background()
	viewerID := uuid.NewString()
	expected := &domain.ChannelProfile{
		Username:        "somechannel",
		SubscriberCount: 42,
		IsSubscribed:    true,
	}

	suite.mockProfileRepo.On("GetChannelProfile", ctx, viewerID, "somechannel").Return(expected, nil).Once()

	profile, err := suite.service.GetChannelProfile(ctx, viewerID, "somechannel")

	suite.Require().NoError(err)
	suite.Equal(expected, profile)
	suite.mockProfileRepo.AssertExpectations(suite.T())
}

func (suite *ProfileServiceTestSuite) TestGetChannelProfile_BlankUsername() {
	ctx := context.Background()

	profile, err := suite.service.GetChannelProfile(ctx, uuid.NewString(), "   ")

	suite.Require().Error(err)
	suite.Nil(profile)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockProfileRepo.AssertNotCalled(suite.T(), "GetChannelProfile", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProfileServiceTestSuite) TestGetChannelProfile_NotFound() {
	ctx := context.Background()

	suite.mockProfileRepo.On("GetChannelProfile", ctx, "", "ghost").Return(nil, apperrors.ErrNotFound).Once()

	profile, err := suite.service.GetChannelProfile(ctx, "", "ghost")

	suite.Require().Error(err)
	suite.Nil(profile)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- GetWatchHistory Tests ---

func (suite *ProfileServiceTestSuite) TestGetWatchHistory_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	expected := []domain.WatchHistoryEntry{
		{Video: domain.Video{VideoID: uuid.NewString(), Title: "first"}, Owner: domain.OwnerSummary{Username: "alice"}},
		{Video: domain.Video{VideoID: uuid.NewString(), Title: "second"}, Owner: domain.OwnerSummary{Username: "bob"}},
	}

	suite.mockProfileRepo.On("GetWatchHistory", ctx, userID).Return(expected, nil).Once()

	entries, err := suite.service.GetWatchHistory(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(expected, entries)
}

func (suite *ProfileServiceTestSuite) TestGetWatchHistory_Empty() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockProfileRepo.On("GetWatchHistory", ctx, userID).Return([]domain.WatchHistoryEntry{}, nil).Once()

	entries, err := suite.service.GetWatchHistory(ctx, userID)

	suite.Require().NoError(err)
	suite.NotNil(entries)
	suite.Empty(entries)
}

// --- RecordView Tests ---

func (suite *ProfileServiceTestSuite) TestRecordView_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	videoID := uuid.NewString()
	video := &domain.Video{VideoID: videoID, Title: "a video", Views: 7}

	suite.mockVideoRepo.On("FindVideoByID", ctx, videoID).Return(video, nil).Once()
	suite.mockVideoRepo.On("AppendWatchHistory", ctx, userID, videoID).Return(nil).Once()
	suite.mockVideoRepo.On("IncrementViews", ctx, videoID).Return(nil).Once()

	viewed, err := suite.service.RecordView(ctx, userID, videoID)

	suite.Require().NoError(err)
	suite.Require().NotNil(viewed)
	suite.Equal(int64(8), viewed.Views)
	suite.mockVideoRepo.AssertExpectations(suite.T())
}

func (suite *ProfileServiceTestSuite) TestRecordView_VideoNotFound() {
	ctx := context.Background()
	videoID := uuid.NewString()

	suite.mockVideoRepo.On("FindVideoByID", ctx, videoID).Return(nil, apperrors.ErrNotFound).Once()

	viewed, err := suite.service.RecordView(ctx, uuid.NewString(), videoID)

	suite.Require().Error(err)
	suite.Nil(viewed)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockVideoRepo.AssertNotCalled(suite.T(), "AppendWatchHistory", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProfileServiceTestSuite) TestRecordView_AppendFails() {
	ctx := context.Background()
	userID := uuid.NewString()
	videoID := uuid.NewString()
	video := &domain.Video{VideoID: videoID}
	expectedErr := assert.AnError

	suite.mockVideoRepo.On("FindVideoByID", ctx, videoID).Return(video, nil).Once()
	suite.mockVideoRepo.On("AppendWatchHistory", ctx, userID, videoID).Return(expectedErr).Once()

	viewed, err := suite.service.RecordView(ctx, userID, videoID)

	suite.Require().Error(err)
	suite.Nil(viewed)
	suite.ErrorIs(err, expectedErr)
	suite.mockVideoRepo.AssertNotCalled(suite.T(), "IncrementViews", mock.Anything, mock.Anything)
}

// --- ToggleSubscription Tests ---

func (suite *ProfileServiceTestSuite) TestToggleSubscription_Subscribe() {
	ctx := context.Background()
	subscriberID := uuid.NewString()
	channelID := uuid.NewString()

	suite.mockSubscriptionRepo.On("SubscriptionExists", ctx, subscriberID, channelID).Return(false, nil).Once()
	suite.mockSubscriptionRepo.On("SaveSubscription", ctx, mock.MatchedBy(func(sub domain.Subscription) bool {
		return sub.SubscriberID == subscriberID && sub.ChannelID == channelID && sub.SubscriptionID != ""
	})).Return(nil).Once()

	subscribed, err := suite.service.ToggleSubscription(ctx, subscriberID, channelID)

	suite.Require().NoError(err)
	suite.True(subscribed)
	suite.mockSubscriptionRepo.AssertExpectations(suite.T())
}

func (suite *ProfileServiceTestSuite) TestToggleSubscription_Unsubscribe() {
	ctx := context.Background()
	subscriberID := uuid.NewString()
	channelID := uuid.NewString()

	suite.mockSubscriptionRepo.On("SubscriptionExists", ctx, subscriberID, channelID).Return(true, nil).Once()
	suite.mockSubscriptionRepo.On("DeleteSubscription", ctx, subscriberID, channelID).Return(nil).Once()

	subscribed, err := suite.service.ToggleSubscription(ctx, subscriberID, channelID)

	suite.Require().NoError(err)
	suite.False(subscribed)
}

func (suite *ProfileServiceTestSuite) TestToggleSubscription_ConcurrentSubscribe() {
	ctx := context.Background()
	subscriberID := uuid.NewString()
	channelID := uuid.NewString()

	suite.mockSubscriptionRepo.On("SubscriptionExists", ctx, subscriberID, channelID).Return(false, nil).Once()
	// Another request inserted the edge between the check and the insert.
	suite.mockSubscriptionRepo.On("SaveSubscription", ctx, mock.AnythingOfType("domain.Subscription")).
		Return(apperrors.ErrDuplicate).Once()

	subscribed, err := suite.service.ToggleSubscription(ctx, subscriberID, channelID)

	suite.Require().NoError(err)
	suite.True(subscribed)
}

func (suite *ProfileServiceTestSuite) TestToggleSubscription_ConcurrentUnsubscribe() {
	ctx := context.Background()
	subscriberID := uuid.NewString()
	channelID := uuid.NewString()

	suite.mockSubscriptionRepo.On("SubscriptionExists", ctx, subscriberID, channelID).Return(true, nil).Once()
	suite.mockSubscriptionRepo.On("DeleteSubscription", ctx, subscriberID, channelID).
		Return(apperrors.ErrNotFound).Once()

	subscribed, err := suite.service.ToggleSubscription(ctx, subscriberID, channelID)

	suite.Require().NoError(err)
	suite.False(subscribed)
}

func (suite *ProfileServiceTestSuite) TestToggleSubscription_ExistsCheckFails() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockSubscriptionRepo.On("SubscriptionExists", ctx, mock.Anything, mock.Anything).
		Return(false, expectedErr).Once()

	_, err := suite.service.ToggleSubscription(ctx, uuid.NewString(), uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Suite ---
func TestProfileService(t *testing.T) {
	suite.Run(t, new(ProfileServiceTestSuite))
}
