package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/config"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/dto"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/model"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// RevokedTokenPrefix namespaces the sign-out denylist in Redis. Keys expire
// together with the token they revoke.
const RevokedTokenPrefix = "revoked:"

// AuthService owns account creation and the session lifecycle. Sign-out
// denylists the token's jti so the session dies server-side, not just in the
// client.
type AuthService interface {
	SignUp(ctx context.Context, req dto.SignUpRequest) (*dto.SessionResponse, error)
	SignIn(ctx context.Context, req dto.SignInRequest) (*dto.SessionResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.SessionResponse, error)
	SignOut(ctx context.Context, accessToken string) error
}

type authService struct {
	repo repository.AccountRepository
	rdb  *redis.Client
	cfg  *config.Config
}

func NewAuthService(repo repository.AccountRepository, rdb *redis.Client, cfg *config.Config) AuthService {
	return &authService{repo: repo, rdb: rdb, cfg: cfg}
}

func (s *authService) SignUp(ctx context.Context, req dto.SignUpRequest) (*dto.SessionResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, validationf("e-mail já cadastrado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	account := &model.Account{
		Email:        email,
		PasswordHash: string(hash),
		Active:       true,
	}
	if err := s.repo.Create(ctx, account); err != nil {
		return nil, WriteFailed("criação da conta", err)
	}
	return s.buildSession(account)
}

func (s *authService) SignIn(ctx context.Context, req dto.SignInRequest) (*dto.SessionResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, errors.New("credenciais inválidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("credenciais inválidas")
	}
	return s.buildSession(account)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.SessionResponse, error) {
	claims, err := s.parseToken(refreshToken)
	if err != nil {
		return nil, errors.New("refresh token inválido ou expirado")
	}
	if revoked, _ := s.isRevoked(ctx, claims["jti"]); revoked {
		return nil, errors.New("sessão encerrada")
	}

	accountIDStr, ok := claims["account_id"].(string)
	if !ok {
		return nil, errors.New("token malformado")
	}
	accountID, err := uuid.Parse(accountIDStr)
	if err != nil {
		return nil, errors.New("token malformado")
	}

	account, err := s.repo.FindByID(ctx, accountID)
	if err != nil || !account.Active {
		return nil, errors.New("conta não encontrada ou inativa")
	}
	return s.buildSession(account)
}

func (s *authService) SignOut(ctx context.Context, accessToken string) error {
	claims, err := s.parseToken(accessToken)
	if err != nil {
		// An invalid token is already not a session; signing out of it is a no-op.
		return nil
	}
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return nil
	}

	ttl := time.Duration(s.cfg.JWTRefreshHours) * time.Hour
	if exp, ok := claims["exp"].(float64); ok {
		if until := time.Until(time.Unix(int64(exp), 0)); until > 0 {
			ttl = until
		}
	}
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Set(ctx, RevokedTokenPrefix+jti, "1", ttl).Err()
}

func (s *authService) isRevoked(ctx context.Context, jtiClaim interface{}) (bool, error) {
	jti, _ := jtiClaim.(string)
	if jti == "" || s.rdb == nil {
		return false, nil
	}
	n, err := s.rdb.Exists(ctx, RevokedTokenPrefix+jti).Result()
	return n > 0, err
}

func (s *authService) parseToken(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token inválido")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}

func (s *authService) buildSession(account *model.Account) (*dto.SessionResponse, error) {
	accessToken, err := s.generateToken(account, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.generateToken(account, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		User: dto.AccountResponse{
			ID:    account.ID.String(),
			Email: account.Email,
		},
	}, nil
}

func (s *authService) generateToken(account *model.Account, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"account_id": account.ID.String(),
		"email":      account.Email,
		"jti":        uuid.NewString(),
		"exp":        time.Now().Add(duration).Unix(),
		"iat":        time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
