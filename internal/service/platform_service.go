package service

import (
	"context"

	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/dto"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/model"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlatformService owns the sales channels. The first listing of a fresh
// account seeds the default Brazilian channel set so the sale form is never
// empty.
type PlatformService interface {
	List(ctx context.Context, accountID uuid.UUID) ([]dto.PlatformResponse, error)
	Create(ctx context.Context, accountID uuid.UUID, req dto.PlatformRequest) (*dto.PlatformResponse, error)
}

type platformService struct {
	repo repository.PlatformRepository
}

func NewPlatformService(repo repository.PlatformRepository) PlatformService {
	return &platformService{repo: repo}
}

// DefaultPlatforms returns the channel set seeded for a new account.
func DefaultPlatforms(accountID uuid.UUID) []model.Platform {
	fee := func(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }
	return []model.Platform{
		{AccountID: accountID, Name: "Shopee", FeePercent: fee(14), Color: "#EA501F"},
		{AccountID: accountID, Name: "TikTok Shop", FeePercent: fee(10), Color: "#000000"},
		{AccountID: accountID, Name: "Mercado Livre", FeePercent: fee(18), Color: "#FFE600"},
		{AccountID: accountID, Name: "OLX", FeePercent: fee(12), Color: "#6E0AD6"},
		{AccountID: accountID, Name: "Venda Direta / WhatsApp", FeePercent: fee(0), Color: "#25D366"},
	}
}

func (s *platformService) List(ctx context.Context, accountID uuid.UUID) ([]dto.PlatformResponse, error) {
	if accountID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	n, err := s.repo.CountByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		if err := s.repo.SeedDefaults(ctx, DefaultPlatforms(accountID)); err != nil {
			return nil, WriteFailed("criação das plataformas padrão", err)
		}
	}

	platforms, err := s.repo.List(ctx, accountID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PlatformResponse, 0, len(platforms))
	for i := range platforms {
		resp = append(resp, *platformToResponse(&platforms[i]))
	}
	return resp, nil
}

func (s *platformService) Create(ctx context.Context, accountID uuid.UUID, req dto.PlatformRequest) (*dto.PlatformResponse, error) {
	if accountID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	color := req.Color
	if color == "" {
		color = model.UnknownColor
	}
	platform := &model.Platform{
		AccountID:  accountID,
		Name:       req.Name,
		FeePercent: req.FeePercent,
		Color:      color,
	}
	if err := s.repo.Create(ctx, platform); err != nil {
		return nil, WriteFailed("criação da plataforma", err)
	}
	return platformToResponse(platform), nil
}

func platformToResponse(p *model.Platform) *dto.PlatformResponse {
	return &dto.PlatformResponse{
		ID:         p.ID.String(),
		Name:       p.Name,
		FeePercent: p.FeePercent,
		Color:      p.Color,
	}
}
