package authhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hiring-hare-backend/db"
	usersstore "hiring-hare-backend/lib/users/store"
	authutils "hiring-hare-backend/lib/utils/auth-utils"
	"hiring-hare-backend/models"
	authapimodels "hiring-hare-backend/models/api/auth"
)

type Provider interface {
	Login(data authapimodels.LoginRequest) (authapimodels.JWTResponse, error)
	Refresh(refreshToken string) (authapimodels.JWTResponse, error)
	Profile(userID string) (authapimodels.ProfileView, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewProvider(db.DB)
}

func NewProvider(database *gorm.DB) Provider {
	return impl{
		usersStore: usersstore.NewInstance(database),
	}
}

type impl struct {
	usersStore usersstore.Provider
}

func (i impl) Login(data authapimodels.LoginRequest) (authapimodels.JWTResponse, error) {
	logger := log.WithField("email", data.Email)
	user, err := i.usersStore.FindByEmail(data.Email)
	if err != nil {
		logger.WithError(err).Error("user lookup failed")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil || !authutils.CheckPassword(data.Password, user.Password) {
		return authapimodels.JWTResponse{}, errors.Wrap(models.ErrAuthorizationDenied, "invalid credentials")
	}
	if !user.IsActive {
		return authapimodels.JWTResponse{}, errors.Wrap(models.ErrAuthorizationDenied, "user account is inactive")
	}
	return i.issueTokens(user.ID, user.GetFullName())
}

func (i impl) Refresh(refreshToken string) (authapimodels.JWTResponse, error) {
	claims, err := authutils.ParseToken(refreshToken)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(models.ErrAuthorizationDenied, "invalid refresh token")
	}
	if tokenType, _ := claims["type"].(string); tokenType != authutils.TokenTypeRefresh {
		return authapimodels.JWTResponse{}, errors.Wrap(models.ErrAuthorizationDenied, "invalid token type")
	}
	userID, _ := claims["sub"].(string)
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if user == nil || !user.IsActive {
		return authapimodels.JWTResponse{}, errors.Wrap(models.ErrAuthorizationDenied, "user account is inactive")
	}
	return i.issueTokens(user.ID, user.GetFullName())
}

func (i impl) Profile(userID string) (authapimodels.ProfileView, error) {
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return authapimodels.ProfileView{}, err
	}
	if user == nil {
		return authapimodels.ProfileView{}, errors.Wrap(models.ErrNotFound, "user not found")
	}
	return authapimodels.ProfileView{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		IsActive:    user.IsActive,
		IsSuperuser: user.IsSuperuser,
		Roles:       user.RoleNames(),
	}, nil
}

func (i impl) issueTokens(userID, name string) (authapimodels.JWTResponse, error) {
	accessToken, err := authutils.GetToken(userID, name)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	refreshToken, err := authutils.GetRefreshToken(userID, name)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}
