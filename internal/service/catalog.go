package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Noshedme/vendismarket/internal/models"
	"github.com/Noshedme/vendismarket/internal/repo"
	"github.com/Noshedme/vendismarket/internal/transport"
	"github.com/elastic/go-elasticsearch/v9"
	"gorm.io/gorm"
)

type CatalogService struct {
	Repo    *repo.GormRepo
	ES      *elasticsearch.Client
	ESIndex string
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: producto %d", ErrNotFound, id)
	}
	return product, err
}

func (s *CatalogService) GetProducts(ctx context.Context, offset, limit int) (int64, []models.Product, error) {
	return s.Repo.GetProducts(ctx, offset, limit)
}

func (s *CatalogService) CreateProduct(ctx context.Context, product *models.Product) error {
	if product.Code == "" {
		return fmt.Errorf("%w: code requerido", ErrValidation)
	}
	if product.Name == "" {
		return fmt.Errorf("%w: name requerido", ErrValidation)
	}
	if product.Price.IsNegative() {
		return fmt.Errorf("%w: el precio no puede ser negativo", ErrValidation)
	}
	if product.Stock < 0 {
		return fmt.Errorf("%w: el stock no puede ser negativo", ErrValidation)
	}
	return s.Repo.CreateProduct(ctx, product)
}

func (s *CatalogService) PatchProduct(ctx context.Context, req transport.PatchProductRequest, id uint) (*models.Product, error) {
	if req.Price != nil && req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", ErrValidation)
	}
	if req.Stock != nil && *req.Stock < 0 {
		return nil, fmt.Errorf("%w: el stock no puede ser negativo", ErrValidation)
	}

	product, err := s.Repo.PatchProduct(ctx, req, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: producto %d", ErrNotFound, id)
	}
	return product, err
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	err := s.Repo.DeleteProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: producto %d", ErrNotFound, id)
	}
	return err
}

// SearchProducts prefers Elasticsearch and falls back to the database
// when no client is configured.
func (s *CatalogService) SearchProducts(ctx context.Context, q string, offset, limit int) (int64, []models.Product, error) {
	if q == "" {
		return 0, nil, fmt.Errorf("%w: q requerido", ErrValidation)
	}
	if s.ES != nil {
		return searchES(ctx, s.ES, s.ESIndex, q, offset, limit)
	}
	return s.Repo.SearchProductsLike(ctx, q, offset, limit)
}
