package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	"github.com/vidtube/vidtube_backend/internal/core/services"
	"github.com/vidtube/vidtube_backend/internal/platform/config"
	"github.com/vidtube/vidtube_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type TokenServiceTestSuite struct {
	suite.Suite
	cfg  *config.Config
	user *domain.User
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		AccessTokenSecret:          "test-access-secret",
		AccessTokenExpiryDuration:  15 * time.Minute,
		RefreshTokenSecret:         "test-refresh-secret",
		RefreshTokenExpiryDuration: 240 * time.Hour,
		JWTIssuer:                  "vidtube-test",
	}
	suite.user = &domain.User{UserID: uuid.NewString(), Username: "tokenuser"}
}

func (suite *TokenServiceTestSuite) TestGenerateAccessToken() {
	svc := services.NewTokenService(suite.cfg)

	token, expiry, err := svc.GenerateAccessToken(context.Background(), suite.user)

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.WithinDuration(time.Now().Add(suite.cfg.AccessTokenExpiryDuration), expiry, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.AccessTokenSecret)
	suite.Require().NoError(err)
	suite.Equal(suite.user.UserID, claims.Subject)
	suite.Equal("vidtube-test", claims.Issuer)
}

func (suite *TokenServiceTestSuite) TestRefreshTokenRoundTrip() {
	svc := services.NewTokenService(suite.cfg)
	ctx := context.Background()

	token, expiry, err := svc.GenerateRefreshToken(ctx, suite.user)
	suite.Require().NoError(err)
	suite.WithinDuration(time.Now().Add(suite.cfg.RefreshTokenExpiryDuration), expiry, 5*time.Second)

	userID, err := svc.ValidateRefreshToken(ctx, token)
	suite.Require().NoError(err)
	suite.Equal(suite.user.UserID, userID)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_WrongSecret() {
	svc := services.NewTokenService(suite.cfg)
	ctx := context.Background()

	// A token signed with the access secret must not validate as a refresh token.
	accessToken, _, err := svc.GenerateAccessToken(ctx, suite.user)
	suite.Require().NoError(err)

	userID, err := svc.ValidateRefreshToken(ctx, accessToken)

	suite.Require().Error(err)
	suite.Empty(userID)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Expired() {
	expiredCfg := *suite.cfg
	expiredCfg.RefreshTokenExpiryDuration = -time.Minute
	svc := services.NewTokenService(&expiredCfg)
	ctx := context.Background()

	token, _, err := svc.GenerateRefreshToken(ctx, suite.user)
	suite.Require().NoError(err)

	userID, err := svc.ValidateRefreshToken(ctx, token)

	suite.Require().Error(err)
	suite.Empty(userID)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Garbage() {
	svc := services.NewTokenService(suite.cfg)

	userID, err := svc.ValidateRefreshToken(context.Background(), "not-a-jwt")

	suite.Require().Error(err)
	suite.Empty(userID)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestTokenService(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
