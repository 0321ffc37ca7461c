package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
	"github.com/vidtube/vidtube_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests for the current user's profile.
type userHandler struct {
	userService portssvc.UserSvcFacade
	uploader    portssvc.UploaderSvc
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade, uploader portssvc.UploaderSvc) *userHandler {
	return &userHandler{
		userService: us,
		uploader:    uploader,
	}
}

// registerUserRoutes registers all current-user routes.
func registerUserRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newUserHandler(services.User, services.Uploader)

	users := rg.Group("/users")
	{
		users.GET("/me", h.getCurrentUser)
		users.PATCH("/me", h.updateAccountDetails)
		users.PATCH("/me/avatar", h.updateAvatar)
		users.PATCH("/me/cover-image", h.updateCoverImage)
	}
}

// getCurrentUser godoc
// @Summary Get the current user
// @Tags users
// @Produce json
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getCurrentUser(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, errUnauthorizedRequest)
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToUserResponse(user), "Current user fetched successfully")
}

// updateAccountDetails godoc
// @Summary Update full name and/or email
// @Tags users
// @Accept json
// @Produce json
// @Param update body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope "Email already taken"
// @Security BearerAuth
// @Router /users/me [patch]
func (h *userHandler) updateAccountDetails(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, errUnauthorizedRequest)
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.userService.UpdateAccountDetails(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToUserResponse(user), "Account details updated successfully")
}

// updateAvatar godoc
// @Summary Replace the current user's avatar
// @Tags users
// @Accept mpfd
// @Produce json
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 502 {object} dto.Envelope "Upload failed"
// @Security BearerAuth
// @Router /users/me/avatar [patch]
func (h *userHandler) updateAvatar(c *gin.Context) {
	h.updateImage(c, "avatar", h.userService.UpdateAvatar)
}

// updateCoverImage godoc
// @Summary Replace the current user's cover image
// @Tags users
// @Accept mpfd
// @Produce json
// @Param coverImage formData file true "Cover image"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 502 {object} dto.Envelope "Upload failed"
// @Security BearerAuth
// @Router /users/me/cover-image [patch]
func (h *userHandler) updateCoverImage(c *gin.Context) {
	h.updateImage(c, "coverImage", h.userService.UpdateCoverImage)
}

// updateImage stages the uploaded file, pushes it through the upload
// collaborator and stores the resulting URL with the given update function.
func (h *userHandler) updateImage(c *gin.Context, field string, update func(ctx context.Context, userID, url string) (*domain.User, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, errUnauthorizedRequest)
		return
	}

	stagedPath, err := stageUploadedFile(c, field)
	if err != nil {
		logger.Error("Failed to stage uploaded file", slog.String("field", field), slog.String("error", err.Error()))
		respondBadRequest(c, "Could not read "+field+" file")
		return
	}
	if stagedPath == "" {
		respondBadRequest(c, field+" file is required")
		return
	}

	url, err := h.uploader.Upload(c.Request.Context(), stagedPath)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := update(c.Request.Context(), userID, url)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToUserResponse(user), field+" updated successfully")
}
