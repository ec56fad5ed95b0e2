package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wyrmsheet/backend/internal/entity"
	"github.com/wyrmsheet/backend/internal/model"
	"github.com/wyrmsheet/backend/internal/repository"
	"github.com/wyrmsheet/backend/pkg/authenticator"
	"github.com/wyrmsheet/backend/pkg/crypto"
	"github.com/wyrmsheet/backend/pkg/errorx"
	"github.com/wyrmsheet/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type AuthDomain interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, req *model.LogoutRequest) (*model.LogoutResponse, error)
	OAuth2Login(ctx context.Context, req *model.OAuth2LoginRequest) (*model.OAuth2LoginResponse, error)
	OAuth2Callback(ctx context.Context, req *model.OAuth2CallbackRequest) (*model.OAuth2CallbackResponse, error)
	Refresh(ctx context.Context, req *model.RefreshTokenRequest) (*model.RefreshTokenResponse, error)
}

type authDomain struct {
	userRepo         repository.UserRepository
	oauth2Repo       repository.OAuth2Repository
	refreshTokenRepo repository.RefreshTokenRepository
	oauth2Services   []authenticator.IOAuth2Service
}

func NewAuthDomain(
	userRepo repository.UserRepository,
	oauth2Repo repository.OAuth2Repository,
	refreshTokenRepo repository.RefreshTokenRepository,
	oauth2Services []authenticator.IOAuth2Service,
) AuthDomain {
	return &authDomain{
		userRepo:         userRepo,
		oauth2Repo:       oauth2Repo,
		refreshTokenRepo: refreshTokenRepo,
		oauth2Services:   oauth2Services,
	}
}

func (d *authDomain) Register(
	ctx context.Context, req *model.RegisterRequest,
) (*model.RegisterResponse, error) {
	if req.Name == "" || req.Password == "" {
		return nil, errorx.New(errorx.BadRequest, "Please provide a username and password")
	}

	if _, err := d.userRepo.GetByName(ctx, req.Name); err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "This username has been taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get user by name: %v", err)
		return nil, errorx.Unknown
	}

	hashedPassword, err := crypto.HashPassword(req.Password)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash password: %v", err)
		return nil, errorx.Unknown
	}

	user := &entity.User{
		Base:           entity.Base{ID: uuid.NewString()},
		Name:           req.Name,
		HashedPassword: hashedPassword,
	}

	if err := d.userRepo.Create(ctx, user); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	accessToken, refreshToken, err := d.generateTokens(ctx, user)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate tokens: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RegisterResponse{
		RedirectURL:  redirectOrHome(req.Next),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (d *authDomain) Login(
	ctx context.Context, req *model.LoginRequest,
) (*model.LoginResponse, error) {
	user, err := d.userRepo.GetByName(ctx, req.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unauthenticated, "Invalid username or password")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user by name: %v", err)
		return nil, errorx.Unknown
	}

	if err := crypto.ComparePassword(user.HashedPassword, req.Password); err != nil {
		return nil, errorx.New(errorx.Unauthenticated, "Invalid username or password")
	}

	accessToken, refreshToken, err := d.generateTokens(ctx, user)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate tokens: %v", err)
		return nil, errorx.Unknown
	}

	return &model.LoginResponse{
		RedirectURL:  redirectOrHome(req.Next),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (d *authDomain) Logout(
	ctx context.Context, req *model.LogoutRequest,
) (*model.LogoutResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID != "" {
		if err := d.refreshTokenRepo.DeleteByUserID(ctx, userID); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot revoke refresh tokens: %v", err)
			return nil, errorx.Unknown
		}
	}

	return &model.LogoutResponse{}, nil
}

func (d *authDomain) OAuth2Login(
	ctx context.Context, req *model.OAuth2LoginRequest,
) (*model.OAuth2LoginResponse, error) {
	service, ok := d.getOAuth2Service(req.Type)
	if !ok {
		return nil, errorx.New(errorx.BadRequest, "Unsupported type %s", req.Type)
	}

	state, err := crypto.GenerateRandomString()
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate oauth2 state: %v", err)
		return nil, errorx.Unknown
	}

	return &model.OAuth2LoginResponse{
		RedirectURL: service.AuthCodeURL(state),
		State:       state,
	}, nil
}

func (d *authDomain) OAuth2Callback(
	ctx context.Context, req *model.OAuth2CallbackRequest,
) (*model.OAuth2CallbackResponse, error) {
	service, ok := d.getOAuth2Service(req.Type)
	if !ok {
		return nil, errorx.New(errorx.BadRequest, "Unsupported type %s", req.Type)
	}

	if req.State == "" || req.State != req.SessionState {
		return nil, errorx.New(errorx.BadRequest, "Mismatched oauth2 state")
	}

	token, err := service.Exchange(ctx, req.Code)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot exchange authorization code: %v", err)
		return nil, errorx.Unknown
	}

	serviceUser, err := service.VerifyIDToken(ctx, token)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot verify id token: %v", err)
		return nil, errorx.Unknown
	}

	user, err := d.getOrCreateOAuth2User(ctx, service.Service(), serviceUser)
	if err != nil {
		return nil, err
	}

	accessToken, refreshToken, err := d.generateTokens(ctx, user)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate tokens: %v", err)
		return nil, errorx.Unknown
	}

	return &model.OAuth2CallbackResponse{
		RedirectURL:  "/",
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (d *authDomain) Refresh(
	ctx context.Context, req *model.RefreshTokenRequest,
) (*model.RefreshTokenResponse, error) {
	refreshToken := model.RefreshToken{}
	err := xcontext.TokenEngine(ctx).Verify(req.RefreshToken, &refreshToken)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Failed to verify refresh token: %v", err)
		return nil, errorx.Unknown
	}

	hashedFamily := crypto.SHA256([]byte(refreshToken.Family))
	storageToken, err := d.refreshTokenRepo.Get(ctx, hashedFamily)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get refresh token family: %v", err)
		return nil, errorx.Unknown
	}

	if storageToken.Expiration.Before(time.Now()) {
		return nil, errorx.New(errorx.TokenExpired, "Your refresh token is expired")
	}

	// A counter mismatch means this token was already used. Revoke the whole
	// family. No transaction here, the delete and rotate are independent.
	if refreshToken.Counter != storageToken.Counter {
		if err := d.refreshTokenRepo.Delete(ctx, hashedFamily); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot delete refresh token: %v", err)
			return nil, errorx.Unknown
		}

		return nil, errorx.New(errorx.StolenDetected,
			"Your refresh token will be revoked because it is detected as stolen")
	}

	if err := d.refreshTokenRepo.Rotate(ctx, hashedFamily); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot rotate the refresh token: %v", err)
		return nil, errorx.Unknown
	}

	newRefreshToken, err := xcontext.TokenEngine(ctx).Generate(
		xcontext.Configs(ctx).Auth.RefreshToken.Expiration,
		model.RefreshToken{
			Family:  refreshToken.Family,
			Counter: refreshToken.Counter + 1,
		})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate refresh token: %v", err)
		return nil, errorx.Unknown
	}

	user, err := d.userRepo.GetByID(ctx, storageToken.UserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	newAccessToken, err := xcontext.TokenEngine(ctx).Generate(
		xcontext.Configs(ctx).Auth.AccessToken.Expiration,
		model.AccessToken{ID: user.ID, Name: user.Name})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RefreshTokenResponse{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

func (d *authDomain) getOAuth2Service(service string) (authenticator.IOAuth2Service, bool) {
	for i := range d.oauth2Services {
		if d.oauth2Services[i].Service() == service {
			return d.oauth2Services[i], true
		}
	}
	return nil, false
}

func (d *authDomain) getOrCreateOAuth2User(
	ctx context.Context, service string, serviceUser authenticator.OAuth2User,
) (*entity.User, error) {
	record, err := d.oauth2Repo.GetByServiceUserID(ctx, service, serviceUser.ID)
	if err == nil {
		user, err := d.userRepo.GetByID(ctx, record.UserID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get user of oauth2 record: %v", err)
			return nil, errorx.Unknown
		}

		return user, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get oauth2 record: %v", err)
		return nil, errorx.Unknown
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	user := &entity.User{
		Base: entity.Base{ID: uuid.NewString()},
		Name: serviceUser.Username,
	}

	if err := d.userRepo.Create(ctx, user); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	err = d.oauth2Repo.Create(ctx, &entity.OAuth2{
		UserID:        user.ID,
		Service:       service,
		ServiceUserID: serviceUser.ID,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create oauth2 record: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)
	return user, nil
}

func (d *authDomain) generateTokens(ctx context.Context, user *entity.User) (string, string, error) {
	accessToken, err := xcontext.TokenEngine(ctx).Generate(
		xcontext.Configs(ctx).Auth.AccessToken.Expiration,
		model.AccessToken{ID: user.ID, Name: user.Name})
	if err != nil {
		return "", "", err
	}

	refreshTokenFamily, err := crypto.GenerateRandomString()
	if err != nil {
		return "", "", err
	}

	refreshToken, err := xcontext.TokenEngine(ctx).Generate(
		xcontext.Configs(ctx).Auth.RefreshToken.Expiration,
		model.RefreshToken{Family: refreshTokenFamily, Counter: 0})
	if err != nil {
		return "", "", err
	}

	err = d.refreshTokenRepo.Create(ctx, &entity.RefreshToken{
		Family:     crypto.SHA256([]byte(refreshTokenFamily)),
		UserID:     user.ID,
		Counter:    0,
		Expiration: time.Now().Add(xcontext.Configs(ctx).Auth.RefreshToken.Expiration),
	})
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func redirectOrHome(next string) string {
	// Only allow local redirect targets.
	if next == "" || next[0] != '/' || (len(next) > 1 && next[1] == '/') {
		return "/"
	}

	return next
}
