package repo

import (
	"context"

	"github.com/Noshedme/vendismarket/internal/models"
	"github.com/Noshedme/vendismarket/internal/transport"
)

func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Create(order).Error
}

func (r *GormRepo) CreateOrderDetail(ctx context.Context, detail *models.OrderDetail) error {
	return r.DB.WithContext(ctx).Create(detail).Error
}

func (r *GormRepo) GetOrder(ctx context.Context, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).First(&order, orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrdersByUser annotates each order with its detail-row count; the
// LEFT JOIN keeps orders with zero details and the GROUP BY keeps each
// order to a single row.
func (r *GormRepo) ListOrdersByUser(ctx context.Context, userID uint) ([]transport.OrderSummary, error) {
	summaries := make([]transport.OrderSummary, 0)
	err := r.DB.WithContext(ctx).
		Table("orders").
		Select("orders.id, orders.user_id, orders.total, orders.status, orders.payment_method, orders.created_at, COUNT(order_details.id) AS detail_count").
		Joins("LEFT JOIN order_details ON order_details.order_id = orders.id").
		Where("orders.user_id = ?", userID).
		Group("orders.id").
		Order("orders.created_at DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *GormRepo) ListOrdersByUserPaged(ctx context.Context, userID uint, offset, limit int) (int64, []transport.OrderSummary, error) {
	var total int64
	if err := r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return 0, nil, err
	}

	summaries := make([]transport.OrderSummary, 0)
	err := r.DB.WithContext(ctx).
		Table("orders").
		Select("orders.id, orders.user_id, orders.total, orders.status, orders.payment_method, orders.created_at, COUNT(order_details.id) AS detail_count").
		Joins("LEFT JOIN order_details ON order_details.order_id = orders.id").
		Where("orders.user_id = ?", userID).
		Group("orders.id").
		Order("orders.created_at DESC").
		Offset(offset).
		Limit(limit).
		Scan(&summaries).Error
	if err != nil {
		return 0, nil, err
	}
	return total, summaries, nil
}

// ListOrderDetails keeps the historical price/subtotal while joining the
// current product display fields; a deleted product leaves the name blank
// rather than dropping the row.
func (r *GormRepo) ListOrderDetails(ctx context.Context, orderID uint) ([]transport.DetailView, error) {
	details := make([]transport.DetailView, 0)
	err := r.DB.WithContext(ctx).
		Table("order_details").
		Select("order_details.product_id, products.name, products.description, order_details.quantity, order_details.unit_price, order_details.subtotal").
		Joins("LEFT JOIN products ON products.id = order_details.product_id").
		Where("order_details.order_id = ?", orderID).
		Order("order_details.id ASC").
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}
