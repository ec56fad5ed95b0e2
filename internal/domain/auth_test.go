package domain

import (
	"testing"

	"github.com/wyrmsheet/backend/internal/model"
	"github.com/wyrmsheet/backend/internal/repository"
	"github.com/wyrmsheet/backend/pkg/errorx"
	"github.com/wyrmsheet/backend/pkg/testutil"
	"github.com/wyrmsheet/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newAuthDomainForTest() AuthDomain {
	return NewAuthDomain(
		repository.NewUserRepository(),
		repository.NewOAuth2Repository(),
		repository.NewRefreshTokenRepository(),
		nil,
	)
}

func Test_authDomain_RegisterAndLogin(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newAuthDomainForTest()

	registerResp, err := domain.Register(ctx, &model.RegisterRequest{
		Name:     "moiraine",
		Password: "secret-password",
	})
	require.NoError(t, err)
	require.NotEmpty(t, registerResp.AccessToken)
	require.Equal(t, "/", registerResp.RedirectURL)

	loginResp, err := domain.Login(ctx, &model.LoginRequest{
		Name:     "moiraine",
		Password: "secret-password",
		Next:     "/new_character",
	})
	require.NoError(t, err)
	require.NotEmpty(t, loginResp.AccessToken)
	require.Equal(t, "/new_character", loginResp.RedirectURL)

	var accessToken model.AccessToken
	err = xcontext.TokenEngine(ctx).Verify(loginResp.AccessToken, &accessToken)
	require.NoError(t, err)
	require.Equal(t, "moiraine", accessToken.Name)
}

func Test_authDomain_Register_DuplicatedName(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newAuthDomainForTest()

	_, err := domain.Register(ctx, &model.RegisterRequest{
		Name:     testutil.User1.Name,
		Password: "whatever",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.AlreadyExists, errx.Code)
}

func Test_authDomain_Login_WrongPassword(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newAuthDomainForTest()

	_, err := domain.Login(ctx, &model.LoginRequest{
		Name:     testutil.User1.Name,
		Password: "wrong",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unauthenticated, errx.Code)
}

func Test_authDomain_Login_OpenRedirect(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newAuthDomainForTest()

	resp, err := domain.Login(ctx, &model.LoginRequest{
		Name:     testutil.User1.Name,
		Password: testutil.UserPassword,
		Next:     "https://evil.example.com",
	})
	require.NoError(t, err)
	require.Equal(t, "/", resp.RedirectURL)
}

func Test_authDomain_Refresh(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newAuthDomainForTest()

	loginResp, err := domain.Login(ctx, &model.LoginRequest{
		Name:     testutil.User1.Name,
		Password: testutil.UserPassword,
	})
	require.NoError(t, err)

	refreshResp, err := domain.Refresh(ctx, &model.RefreshTokenRequest{
		RefreshToken: loginResp.RefreshToken,
	})
	require.NoError(t, err)
	require.NotEmpty(t, refreshResp.AccessToken)
	require.NotEmpty(t, refreshResp.RefreshToken)

	// Replaying the first refresh token trips the stolen-token detection and
	// revokes the whole family.
	_, err = domain.Refresh(ctx, &model.RefreshTokenRequest{
		RefreshToken: loginResp.RefreshToken,
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.StolenDetected, errx.Code)

	// The rotated token is dead too.
	_, err = domain.Refresh(ctx, &model.RefreshTokenRequest{
		RefreshToken: refreshResp.RefreshToken,
	})
	require.Error(t, err)
}
