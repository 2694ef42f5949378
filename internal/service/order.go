package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Noshedme/vendismarket/internal/models"
	"github.com/Noshedme/vendismarket/internal/repo"
	"github.com/Noshedme/vendismarket/internal/transport"
	"github.com/Noshedme/vendismarket/internal/util"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const invoicePrefix = "FAC"

// InvoiceNumber pads the order id to at least six digits; larger ids keep
// all their digits.
func InvoiceNumber(orderID uint) string {
	return fmt.Sprintf("%s-%06d", invoicePrefix, orderID)
}

type OrderService struct {
	Repo           *repo.GormRepo
	DefaultStatus  string
	DecrementStock bool
}

// CreateOrder persists the order row and all detail rows in one
// transaction; with stock enforcement on, each item's quantity is taken
// from inventory via a conditional decrement and any shortage rolls the
// whole order back.
func (s *OrderService) CreateOrder(ctx context.Context, req transport.CreateOrderRequest) (*models.Order, error) {
	if req.UserID == 0 {
		return nil, fmt.Errorf("%w: userId requerido", ErrValidation)
	}
	if len(req.Productos) == 0 {
		return nil, fmt.Errorf("%w: productos requeridos", ErrValidation)
	}
	if req.Total.IsNegative() {
		return nil, fmt.Errorf("%w: el total no puede ser negativo", ErrValidation)
	}

	details := make([]models.OrderDetail, 0, len(req.Productos))
	computed := decimal.Zero
	for _, item := range req.Productos {
		if item.ID == 0 {
			return nil, fmt.Errorf("%w: id de producto requerido", ErrValidation)
		}
		if item.Cantidad <= 0 {
			return nil, fmt.Errorf("%w: la cantidad debe ser mayor a cero", ErrValidation)
		}
		if item.Precio.IsNegative() {
			return nil, fmt.Errorf("%w: el precio no puede ser negativo", ErrValidation)
		}

		subtotal := item.Precio.Mul(decimal.NewFromInt(int64(item.Cantidad)))
		details = append(details, models.OrderDetail{
			ProductID: item.ID,
			Quantity:  item.Cantidad,
			UnitPrice: item.Precio,
			Subtotal:  subtotal,
		})
		computed = computed.Add(subtotal)
	}

	total := req.Total
	if total.IsZero() {
		total = computed
	}

	status := req.Estado
	if status == "" {
		status = s.DefaultStatus
	}

	order := &models.Order{
		UserID:          req.UserID,
		Total:           total,
		Status:          status,
		PaymentMethod:   req.MetodoPago,
		ShippingAddress: req.DatosEnvio,
		Notes:           req.Notas,
		CreatedAt:       time.Now().UTC(),
	}

	err := s.Repo.WithinTx(ctx, func(r *repo.GormRepo) error {
		if err := r.CreateOrder(ctx, order); err != nil {
			return err
		}
		for i := range details {
			details[i].OrderID = order.ID

			if s.DecrementStock {
				ok, err := r.DecreaseStockIfEnough(ctx, details[i].ProductID, details[i].Quantity)
				if err != nil {
					return err
				}
				if !ok {
					product, perr := r.GetProduct(ctx, details[i].ProductID)
					if errors.Is(perr, gorm.ErrRecordNotFound) {
						return fmt.Errorf("%w: producto %d", ErrNotFound, details[i].ProductID)
					}
					if perr != nil {
						return perr
					}
					return &InsufficientStockError{
						ProductID: details[i].ProductID,
						Requested: details[i].Quantity,
						Available: product.Stock,
					}
				}
			}

			if err := r.CreateOrderDetail(ctx, &details[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID uint) ([]transport.OrderSummary, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: userId requerido", ErrValidation)
	}

	summaries, err := s.Repo.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range summaries {
		summaries[i].NumeroFactura = InvoiceNumber(summaries[i].ID)
	}
	return summaries, nil
}

func (s *OrderService) GetOrderDetail(ctx context.Context, orderID uint) (*transport.OrderDetailResponse, error) {
	if orderID == 0 {
		return nil, fmt.Errorf("%w: pedidoId requerido", ErrValidation)
	}

	order, err := s.Repo.GetOrder(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: pedido %d", ErrNotFound, orderID)
	}
	if err != nil {
		return nil, err
	}

	pedido := transport.PedidoView{
		ID:              order.ID,
		NumeroFactura:   InvoiceNumber(order.ID),
		UserID:          order.UserID,
		Total:           order.Total,
		Status:          order.Status,
		PaymentMethod:   order.PaymentMethod,
		ShippingAddress: order.ShippingAddress,
		Notes:           order.Notes,
		CreatedAt:       order.CreatedAt,
	}

	// A missing owner only blanks the display fields.
	if user, uerr := s.Repo.GetUser(ctx, order.UserID); uerr == nil {
		pedido.Cliente = user.FirstName + " " + user.LastName
		pedido.Email = user.Email
	} else if !errors.Is(uerr, gorm.ErrRecordNotFound) {
		return nil, uerr
	}

	detalles, err := s.Repo.ListOrderDetails(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return &transport.OrderDetailResponse{Pedido: pedido, Detalles: detalles}, nil
}

func (s *OrderService) History(ctx context.Context, userID uint, page, limit int) (*transport.HistoryResponse, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: userId requerido", ErrValidation)
	}

	offset, limit := util.Calculate(page, limit)
	if page < 1 {
		page = 1
	}

	total, summaries, err := s.Repo.ListOrdersByUserPaged(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}
	for i := range summaries {
		summaries[i].NumeroFactura = InvoiceNumber(summaries[i].ID)
	}

	return &transport.HistoryResponse{
		Success: true,
		Compras: summaries,
		Pagination: transport.Pagination{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: util.TotalPages(total, limit),
		},
	}, nil
}
