package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Noshedme/vendismarket/internal/models"
	"github.com/Noshedme/vendismarket/internal/repo"
	"github.com/Noshedme/vendismarket/internal/transport"
	"gorm.io/gorm"
)

// CartService holds the pending-purchase lines per customer. Cart
// operations read stock but never mutate it; stock only moves at
// checkout or by an administrative edit.
type CartService struct {
	Repo *repo.GormRepo
}

func (s *CartService) GetCart(ctx context.Context, userID uint) ([]transport.CartView, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: customer_id requerido", ErrValidation)
	}
	return s.Repo.GetCartLines(ctx, userID)
}

// SetLine validates against live stock and upserts with replace
// semantics: an existing (customer, product) line takes the submitted
// quantity instead of accumulating it.
func (s *CartService) SetLine(ctx context.Context, userID, productID uint, quantity int) error {
	if userID == 0 {
		return fmt.Errorf("%w: customer_id requerido", ErrValidation)
	}
	if productID == 0 {
		return fmt.Errorf("%w: product_id requerido", ErrValidation)
	}
	if quantity < 1 {
		return fmt.Errorf("%w: la cantidad debe ser mayor a cero", ErrValidation)
	}

	product, err := s.Repo.GetProduct(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: producto %d", ErrNotFound, productID)
	}
	if err != nil {
		return err
	}

	if quantity > product.Stock {
		return &InsufficientStockError{
			ProductID: productID,
			Requested: quantity,
			Available: product.Stock,
		}
	}

	return s.Repo.UpsertLine(ctx, &models.CartLine{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	})
}

// UpdateLine treats a non-positive quantity as removal.
func (s *CartService) UpdateLine(ctx context.Context, userID, productID uint, quantity int) error {
	if quantity <= 0 {
		return s.RemoveLine(ctx, userID, productID)
	}
	return s.SetLine(ctx, userID, productID, quantity)
}

func (s *CartService) RemoveLine(ctx context.Context, userID, productID uint) error {
	if userID == 0 {
		return fmt.Errorf("%w: customer_id requerido", ErrValidation)
	}
	if productID == 0 {
		return fmt.Errorf("%w: product_id requerido", ErrValidation)
	}
	return s.Repo.DeleteLine(ctx, userID, productID)
}

func (s *CartService) ClearCart(ctx context.Context, userID uint) error {
	if userID == 0 {
		return fmt.Errorf("%w: customer_id requerido", ErrValidation)
	}
	return s.Repo.ClearCart(ctx, userID)
}
