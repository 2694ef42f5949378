package httpserver

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Noshedme/vendismarket/internal/logging"
	"github.com/Noshedme/vendismarket/internal/mykafka"
	"github.com/Noshedme/vendismarket/internal/service"
	"github.com/Noshedme/vendismarket/internal/transport"
	"github.com/Noshedme/vendismarket/internal/util"
	"github.com/labstack/echo/v4"
)

type OrderHTTP struct {
	Svc      *service.OrderService
	Producer *mykafka.Producer
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.StatusResponse{Success: false, Message: "cuerpo invalido"})
	}

	order, err := h.Svc.CreateOrder(ctx, req)
	if err != nil {
		return respondError(c, l, err)
	}

	publish(c, h.Producer, "order_events", fmt.Sprint(order.UserID), map[string]any{
		"type":     "order_created",
		"orderID":  order.ID,
		"userID":   order.UserID,
		"total":    order.Total,
		"status":   order.Status,
		"invoice":  service.InvoiceNumber(order.ID),
	})

	l.Info("create_order_success", "orderID", order.ID)
	return c.JSON(http.StatusCreated, transport.CreateOrderResponse{
		Message:       "pedido creado",
		PedidoID:      order.ID,
		NumeroFactura: service.InvoiceNumber(order.ID),
	})
}

func (h *OrderHTTP) ListByCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list")

	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil || userID <= 0 {
		l.Warn("list_orders_error", "status", 400, "reason", "invalid userId")
		return c.JSON(http.StatusBadRequest, transport.StatusResponse{Success: false, Message: "userId invalido"})
	}

	summaries, err := h.Svc.ListOrders(ctx, uint(userID))
	if err != nil {
		return respondError(c, l, err)
	}
	return c.JSON(http.StatusOK, summaries)
}

func (h *OrderHTTP) GetDetail(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.detail")

	orderID, err := strconv.Atoi(c.Param("pedidoId"))
	if err != nil || orderID <= 0 {
		l.Warn("order_detail_error", "status", 400, "reason", "invalid pedidoId")
		return c.JSON(http.StatusBadRequest, transport.StatusResponse{Success: false, Message: "pedidoId invalido"})
	}

	detail, err := h.Svc.GetOrderDetail(ctx, uint(orderID))
	if err != nil {
		return respondError(c, l, err)
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *OrderHTTP) History(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.history")

	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil || userID <= 0 {
		l.Warn("history_error", "status", 400, "reason", "invalid userId")
		return c.JSON(http.StatusBadRequest, transport.StatusResponse{Success: false, Message: "userId invalido"})
	}

	page := parseIntDefault(c.QueryParam("page"), 1)
	limit := parseIntDefault(c.QueryParam("limit"), util.DefaultPageSize)

	history, err := h.Svc.History(ctx, uint(userID), page, limit)
	if err != nil {
		return respondError(c, l, err)
	}
	return c.JSON(http.StatusOK, history)
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}
