package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Noshedme/vendismarket/internal/models"
	"github.com/Noshedme/vendismarket/internal/repo"
	"github.com/Noshedme/vendismarket/internal/transport"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const complaintStatusOpen = "abierto"

type FeedbackService struct {
	Repo *repo.GormRepo
}

func (s *FeedbackService) CreateComplaint(ctx context.Context, req transport.ComplaintRequest) (*models.Complaint, error) {
	if req.UserID == 0 {
		return nil, fmt.Errorf("%w: user_id requerido", ErrValidation)
	}
	if req.Message == "" {
		return nil, fmt.Errorf("%w: message requerido", ErrValidation)
	}

	complaint := &models.Complaint{
		Folio:     uuid.NewString(),
		UserID:    req.UserID,
		Category:  req.Category,
		Message:   req.Message,
		Status:    complaintStatusOpen,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.CreateComplaint(ctx, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

func (s *FeedbackService) ListComplaints(ctx context.Context) ([]models.Complaint, error) {
	return s.Repo.ListComplaints(ctx)
}

func (s *FeedbackService) UpdateComplaintStatus(ctx context.Context, id uint, status string) error {
	if status == "" {
		return fmt.Errorf("%w: status requerido", ErrValidation)
	}

	err := s.Repo.UpdateComplaintStatus(ctx, id, status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: reclamo %d", ErrNotFound, id)
	}
	return err
}

// RateProduct upserts the rating, so a shopper re-rating a product
// replaces their previous stars instead of adding a second row.
func (s *FeedbackService) RateProduct(ctx context.Context, req transport.RatingRequest) (*models.Rating, error) {
	if req.UserID == 0 {
		return nil, fmt.Errorf("%w: user_id requerido", ErrValidation)
	}
	if req.ProductID == 0 {
		return nil, fmt.Errorf("%w: product_id requerido", ErrValidation)
	}
	if req.Stars < 1 || req.Stars > 5 {
		return nil, fmt.Errorf("%w: stars debe estar entre 1 y 5", ErrValidation)
	}

	if _, err := s.Repo.GetProduct(ctx, req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: producto %d", ErrNotFound, req.ProductID)
		}
		return nil, err
	}

	rating := &models.Rating{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Stars:     req.Stars,
		Comment:   req.Comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.UpsertRating(ctx, rating); err != nil {
		return nil, err
	}
	return rating, nil
}

func (s *FeedbackService) ProductRatings(ctx context.Context, productID uint) (*transport.RatingSummary, []models.Rating, error) {
	if _, err := s.Repo.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: producto %d", ErrNotFound, productID)
		}
		return nil, nil, err
	}

	summary, err := s.Repo.RatingSummary(ctx, productID)
	if err != nil {
		return nil, nil, err
	}
	ratings, err := s.Repo.ListRatingsByProduct(ctx, productID)
	if err != nil {
		return nil, nil, err
	}
	return summary, ratings, nil
}
