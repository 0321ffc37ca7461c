package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
	"github.com/vidtube/vidtube_backend/internal/handlers"
	"github.com/vidtube/vidtube_backend/internal/platform/config"
	"github.com/vidtube/vidtube_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ChannelHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	cfg                *config.Config
	mockProfileService *MockProfileService
	mockUserService    *MockUserService
}

func (suite *ChannelHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.cfg = &config.Config{
		IsProduction:           true,
		AccessTokenSecret:      "test-secret-key-that-is-long-enough",
		AccessTokenCookieName:  "accessToken",
		RefreshTokenCookieName: "refreshToken",
		CookiePath:             "/",
		MediaDir:               suite.T().TempDir(),
		AuthRateLimit:          "100-M",
		JWTIssuer:              "vidtube-test",
	}

	suite.mockProfileService = new(MockProfileService)
	suite.mockUserService = new(MockUserService)

	container := &portssvc.ServiceContainer{
		Auth:    new(MockAuthService),
		Profile: suite.mockProfileService,
		User:    suite.mockUserService,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, suite.cfg, container, &utils.PosthogClientWrapper{})
}

func (suite *ChannelHandlerTestSuite) generateTestToken(userID string) string {
	token, err := utils.GenerateJWT(userID, suite.cfg.AccessTokenSecret, time.Hour, suite.cfg.JWTIssuer)
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *ChannelHandlerTestSuite) decodeEnvelope(w *httptest.ResponseRecorder) dto.Envelope {
	var envelope dto.Envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

// --- GetChannelProfile Tests ---

func (suite *ChannelHandlerTestSuite) TestGetChannelProfile_Anonymous() {
	profile := &domain.ChannelProfile{
		UserID:          uuid.NewString(),
		Username:        "somechannel",
		SubscriberCount: 10,
		IsSubscribed:    false,
	}

	// Anonymous viewers pass an empty viewer ID.
	suite.mockProfileService.On("GetChannelProfile", mock.Anything, "", "somechannel").
		Return(profile, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/channels/somechannel", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	envelope := suite.decodeEnvelope(w)
	suite.True(envelope.Success)

	data, ok := envelope.Data.(map[string]any)
	suite.Require().True(ok)
	suite.Equal("somechannel", data["username"])
	suite.Equal(float64(10), data["subscriberCount"])
	suite.Equal(false, data["isSubscribed"])
	suite.mockProfileService.AssertExpectations(suite.T())
}

func (suite *ChannelHandlerTestSuite) TestGetChannelProfile_AuthenticatedViewer() {
	viewerID := uuid.NewString()
	profile := &domain.ChannelProfile{
		UserID:       uuid.NewString(),
		Username:     "somechannel",
		IsSubscribed: true,
	}

	suite.mockProfileService.On("GetChannelProfile", mock.Anything, viewerID, "somechannel").
		Return(profile, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/channels/somechannel", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(viewerID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockProfileService.AssertExpectations(suite.T())
}

func (suite *ChannelHandlerTestSuite) TestGetChannelProfile_NotFound() {
	suite.mockProfileService.On("GetChannelProfile", mock.Anything, "", "ghost").
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/channels/ghost", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	envelope := suite.decodeEnvelope(w)
	suite.False(envelope.Success)
}

// --- Watch History Tests ---

func (suite *ChannelHandlerTestSuite) TestGetWatchHistory_Success() {
	userID := uuid.NewString()
	history := []domain.WatchHistoryEntry{
		{
			Video: domain.Video{VideoID: uuid.NewString(), Title: "first watched"},
			Owner: domain.OwnerSummary{Username: "alice", FullName: "Alice"},
		},
		{
			Video: domain.Video{VideoID: uuid.NewString(), Title: "second watched"},
			Owner: domain.OwnerSummary{Username: "bob", FullName: "Bob"},
		},
	}

	suite.mockProfileService.On("GetWatchHistory", mock.Anything, userID).
		Return(history, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/users/me/history", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	envelope := suite.decodeEnvelope(w)
	entries, ok := envelope.Data.([]any)
	suite.Require().True(ok)
	suite.Len(entries, 2)
}

func (suite *ChannelHandlerTestSuite) TestGetWatchHistory_RequiresAuth() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/users/me/history", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockProfileService.AssertNotCalled(suite.T(), "GetWatchHistory", mock.Anything, mock.Anything)
}

// --- RecordView Tests ---

func (suite *ChannelHandlerTestSuite) TestRecordView_Success() {
	userID := uuid.NewString()
	videoID := uuid.NewString()
	video := &domain.Video{VideoID: videoID, Title: "a video", Views: 101}

	suite.mockProfileService.On("RecordView", mock.Anything, userID, videoID).
		Return(video, nil).Once()

	url := fmt.Sprintf("/api/v1/videos/%s/view", videoID)
	req, _ := http.NewRequest(http.MethodPost, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	envelope := suite.decodeEnvelope(w)
	data, ok := envelope.Data.(map[string]any)
	suite.Require().True(ok)
	suite.Equal(float64(101), data["views"])
}

func (suite *ChannelHandlerTestSuite) TestRecordView_VideoNotFound() {
	userID := uuid.NewString()
	videoID := uuid.NewString()

	suite.mockProfileService.On("RecordView", mock.Anything, userID, videoID).
		Return(nil, apperrors.ErrNotFound).Once()

	url := fmt.Sprintf("/api/v1/videos/%s/view", videoID)
	req, _ := http.NewRequest(http.MethodPost, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- ToggleSubscription Tests ---

func (suite *ChannelHandlerTestSuite) TestToggleSubscription_Subscribe() {
	userID := uuid.NewString()
	channel := &domain.User{UserID: uuid.NewString(), Username: "somechannel"}

	suite.mockUserService.On("GetUserByUsername", mock.Anything, "somechannel").
		Return(channel, nil).Once()
	suite.mockProfileService.On("ToggleSubscription", mock.Anything, userID, channel.UserID).
		Return(true, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/channels/somechannel/subscription", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	envelope := suite.decodeEnvelope(w)
	data, ok := envelope.Data.(map[string]any)
	suite.Require().True(ok)
	suite.Equal(true, data["subscribed"])
}

func (suite *ChannelHandlerTestSuite) TestToggleSubscription_ChannelNotFound() {
	userID := uuid.NewString()

	suite.mockUserService.On("GetUserByUsername", mock.Anything, "ghost").
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/channels/ghost/subscription", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockProfileService.AssertNotCalled(suite.T(), "ToggleSubscription", mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestChannelHandler(t *testing.T) {
	suite.Run(t, new(ChannelHandlerTestSuite))
}
