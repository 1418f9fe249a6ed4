package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/dto"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/infra"
	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/repository"

	"github.com/google/uuid"
)

// MaxImageSize is the upload ceiling, checked before any disk I/O.
const MaxImageSize = 5 * 1024 * 1024

// AssetService stores product images and keeps the product's image_url in
// sync. Replacing an image removes the previous file; removal failures are
// logged and swallowed, the new URL always wins.
type AssetService interface {
	UploadProductImage(ctx context.Context, accountID, productID uuid.UUID, filename, contentType string, data []byte) (*dto.UploadImageResponse, error)
	DeleteProductImage(ctx context.Context, accountID, productID uuid.UUID) error
}

type assetService struct {
	store *infra.ImageStore
	repo  repository.ProductRepository
}

func NewAssetService(store *infra.ImageStore, repo repository.ProductRepository) AssetService {
	return &assetService{store: store, repo: repo}
}

func (s *assetService) UploadProductImage(ctx context.Context, accountID, productID uuid.UUID, filename, contentType string, data []byte) (*dto.UploadImageResponse, error) {
	if accountID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, validationf("apenas arquivos de imagem são aceitos")
	}
	if len(data) > MaxImageSize {
		return nil, validationf("imagem excede o limite de 5MB")
	}

	product, err := s.repo.FindByID(ctx, accountID, productID)
	if err != nil {
		return nil, fmt.Errorf("produto %s: %w", productID, ErrNotFound)
	}

	objectPath := fmt.Sprintf("products/%s-%d%s", productID, time.Now().UnixMilli(), imageExt(filename, contentType))
	url, err := s.store.Save(objectPath, data)
	if err != nil {
		return nil, WriteFailed("gravação da imagem", err)
	}

	if err := s.repo.UpdateImageURL(ctx, accountID, productID, &url); err != nil {
		s.store.RemoveByURL(url)
		return nil, WriteFailed("vínculo da imagem ao produto", err)
	}
	if product.ImageURL != nil && *product.ImageURL != url {
		s.store.RemoveByURL(*product.ImageURL)
	}
	return &dto.UploadImageResponse{URL: url}, nil
}

func (s *assetService) DeleteProductImage(ctx context.Context, accountID, productID uuid.UUID) error {
	if accountID == uuid.Nil {
		return ErrUnauthenticated
	}
	product, err := s.repo.FindByID(ctx, accountID, productID)
	if err != nil {
		return fmt.Errorf("produto %s: %w", productID, ErrNotFound)
	}
	if product.ImageURL == nil {
		return nil
	}
	if err := s.repo.UpdateImageURL(ctx, accountID, productID, nil); err != nil {
		return WriteFailed("remoção da imagem do produto", err)
	}
	s.store.RemoveByURL(*product.ImageURL)
	return nil
}

// imageExt picks the stored extension from the original filename, falling
// back to the content type's subtype.
func imageExt(filename, contentType string) string {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" {
		return ext
	}
	if sub, ok := strings.CutPrefix(contentType, "image/"); ok && sub != "" {
		return "." + sub
	}
	return ".jpg"
}
