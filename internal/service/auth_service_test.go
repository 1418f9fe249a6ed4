package service

import (
	"context"
	"testing"

	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/config"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService() (AuthService, *stubAccountRepo) {
	repo := newStubAccountRepo()
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	}
	return NewAuthService(repo, nil, cfg), repo
}

func TestSignUpIssuesSession(t *testing.T) {
	svc, _ := newAuthService()

	resp, err := svc.SignUp(context.Background(), dto.SignUpRequest{
		Email:    "Seller@Vinnx.App",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	// Email is normalized on the way in.
	assert.Equal(t, "seller@vinnx.app", resp.User.Email)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.SignUp(context.Background(), dto.SignUpRequest{Email: "a@b.c", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.SignUp(context.Background(), dto.SignUpRequest{Email: "a@b.c", Password: "outra123"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSignInWrongPassword(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.SignUp(context.Background(), dto.SignUpRequest{Email: "a@b.c", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.SignIn(context.Background(), dto.SignInRequest{Email: "a@b.c", Password: "errada"})
	require.Error(t, err)
	assert.Equal(t, "credenciais inválidas", err.Error())

	_, err = svc.SignIn(context.Background(), dto.SignInRequest{Email: "nao@existe.com", Password: "secret123"})
	require.Error(t, err)
	assert.Equal(t, "credenciais inválidas", err.Error())
}

func TestSignInAndRefresh(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.SignUp(context.Background(), dto.SignUpRequest{Email: "a@b.c", Password: "secret123"})
	require.NoError(t, err)

	session, err := svc.SignIn(context.Background(), dto.SignInRequest{Email: "a@b.c", Password: "secret123"})
	require.NoError(t, err)

	renewed, err := svc.Refresh(context.Background(), session.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, renewed.User.ID)
	assert.NotEmpty(t, renewed.AccessToken)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc, _ := newAuthService()
	_, err := svc.Refresh(context.Background(), "not-a-token")
	assert.Error(t, err)
}

func TestRefreshRejectsInactiveAccount(t *testing.T) {
	svc, repo := newAuthService()

	session, err := svc.SignUp(context.Background(), dto.SignUpRequest{Email: "a@b.c", Password: "secret123"})
	require.NoError(t, err)

	for _, a := range repo.accounts {
		a.Active = false
	}
	_, err = svc.Refresh(context.Background(), session.RefreshToken)
	assert.Error(t, err)
}

func TestSignOutWithoutRedisIsNoop(t *testing.T) {
	svc, _ := newAuthService()

	session, err := svc.SignUp(context.Background(), dto.SignUpRequest{Email: "a@b.c", Password: "secret123"})
	require.NoError(t, err)

	assert.NoError(t, svc.SignOut(context.Background(), session.AccessToken))
	assert.NoError(t, svc.SignOut(context.Background(), "lixo"))
}
