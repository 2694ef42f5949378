package repo

import (
	"context"

	"github.com/Noshedme/vendismarket/internal/models"
	"github.com/Noshedme/vendismarket/internal/transport"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (r *GormRepo) CreateComplaint(ctx context.Context, complaint *models.Complaint) error {
	return r.DB.WithContext(ctx).Create(complaint).Error
}

func (r *GormRepo) ListComplaints(ctx context.Context) ([]models.Complaint, error) {
	complaints := make([]models.Complaint, 0)
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *GormRepo) UpdateComplaintStatus(ctx context.Context, id uint, status string) error {
	res := r.DB.WithContext(ctx).
		Model(&models.Complaint{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpsertRating keeps at most one rating per (user, product) pair and
// replaces stars and comment on repeat submissions.
func (r *GormRepo) UpsertRating(ctx context.Context, rating *models.Rating) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{"stars": rating.Stars, "comment": rating.Comment}),
		}).
		Create(rating).Error
}

func (r *GormRepo) ListRatingsByProduct(ctx context.Context, productID uint) ([]models.Rating, error) {
	ratings := make([]models.Rating, 0)
	if err := r.DB.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *GormRepo) RatingSummary(ctx context.Context, productID uint) (*transport.RatingSummary, error) {
	summary := transport.RatingSummary{ProductID: productID}
	err := r.DB.WithContext(ctx).
		Model(&models.Rating{}).
		Select("COUNT(*) AS count, COALESCE(AVG(stars), 0) AS average").
		Where("product_id = ?", productID).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
