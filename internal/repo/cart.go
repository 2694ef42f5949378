package repo

import (
	"context"

	"github.com/Noshedme/vendismarket/internal/models"
	"github.com/Noshedme/vendismarket/internal/transport"
	"gorm.io/gorm/clause"
)

func (r *GormRepo) GetCartLines(ctx context.Context, userID uint) ([]transport.CartView, error) {
	views := make([]transport.CartView, 0)
	err := r.DB.WithContext(ctx).
		Table("cart_lines").
		Select("cart_lines.product_id, products.code, products.name, products.category, products.price, products.stock, cart_lines.quantity").
		Joins("JOIN products ON products.id = cart_lines.product_id").
		Where("cart_lines.user_id = ?", userID).
		Order("cart_lines.id ASC").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

// UpsertLine replaces the quantity on conflict: the unique index on
// (user_id, product_id) plus ON CONFLICT DO UPDATE makes two concurrent
// adds for the same pair resolve to a single row.
func (r *GormRepo) UpsertLine(ctx context.Context, line *models.CartLine) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{"quantity": line.Quantity}),
		}).
		Create(line).Error
}

func (r *GormRepo) DeleteLine(ctx context.Context, userID, productID uint) error {
	return r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartLine{}).Error
}

func (r *GormRepo) ClearCart(ctx context.Context, userID uint) error {
	return r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartLine{}).Error
}
