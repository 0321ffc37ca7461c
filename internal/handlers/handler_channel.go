package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/middleware"
	"github.com/vidtube/vidtube_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// channelHandler serves the aggregation read-models: channel profiles and
// watch history, plus the subscription toggle and view recording that feed them.
type channelHandler struct {
	profileService portssvc.ProfileSvcFacade
	userService    portssvc.UserSvcFacade
	posthogClient  *utils.PosthogClientWrapper
}

func newChannelHandler(services *portssvc.ServiceContainer, posthogClient *utils.PosthogClientWrapper) *channelHandler {
	return &channelHandler{
		profileService: services.Profile,
		userService:    services.User,
		posthogClient:  posthogClient,
	}
}

// registerChannelRoutes registers channel and history routes. The channel
// profile route uses optional auth: anonymous viewers get IsSubscribed=false.
func registerChannelRoutes(r *gin.Engine, authRequired, authOptional gin.HandlerFunc, services *portssvc.ServiceContainer, posthogClient *utils.PosthogClientWrapper) {
	h := newChannelHandler(services, posthogClient)

	public := r.Group("/api/v1", authOptional)
	{
		public.GET("/channels/:username", h.getChannelProfile)
	}

	private := r.Group("/api/v1", authRequired)
	{
		private.GET("/users/me/history", h.getWatchHistory)
		private.POST("/videos/:videoID/view", h.recordView)
		private.POST("/channels/:username/subscription", h.toggleSubscription)
	}
}

// getChannelProfile godoc
// @Summary Get a channel profile
// @Description Returns the channel view with subscriber counts and the viewer's isSubscribed flag.
// @Tags channels
// @Produce json
// @Param username path string true "Channel username"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router /channels/{username} [get]
func (h *channelHandler) getChannelProfile(c *gin.Context) {
	username := c.Param("username")
	viewerID, _ := middleware.GetUserIDFromContext(c) // empty for anonymous viewers

	profile, err := h.profileService.GetChannelProfile(c.Request.Context(), viewerID, username)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, profile, "Channel profile fetched successfully")
}

// getWatchHistory godoc
// @Summary Get the current user's watch history
// @Description Returns previously viewed videos in stored order, each with an owner summary.
// @Tags channels
// @Produce json
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Security BearerAuth
// @Router /users/me/history [get]
func (h *channelHandler) getWatchHistory(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, errUnauthorizedRequest)
		return
	}

	history, err := h.profileService.GetWatchHistory(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, history, "Watch history fetched successfully")
}

// recordView godoc
// @Summary Record a video view
// @Description Appends the video to the current user's watch history and bumps the view counter.
// @Tags channels
// @Produce json
// @Param videoID path string true "Video ID"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /videos/{videoID}/view [post]
func (h *channelHandler) recordView(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, errUnauthorizedRequest)
		return
	}
	videoID := c.Param("videoID")

	video, err := h.profileService.RecordView(c.Request.Context(), userID, videoID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Video view recorded", slog.String("video_id", videoID))
	middleware.PosthogEvent(c, h.posthogClient, "video_viewed", map[string]any{
		"video_id": videoID,
		"owner_id": video.OwnerID,
	})
	respondSuccess(c, http.StatusOK, video, "View recorded successfully")
}

// toggleSubscription godoc
// @Summary Subscribe to or unsubscribe from a channel
// @Tags channels
// @Produce json
// @Param username path string true "Channel username"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /channels/{username}/subscription [post]
func (h *channelHandler) toggleSubscription(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, errUnauthorizedRequest)
		return
	}

	channel, err := h.userService.GetUserByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	subscribed, err := h.profileService.ToggleSubscription(c.Request.Context(), userID, channel.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"subscribed": subscribed}, "Subscription updated successfully")
}
