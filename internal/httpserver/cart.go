package httpserver

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Noshedme/vendismarket/internal/logging"
	"github.com/Noshedme/vendismarket/internal/mykafka"
	"github.com/Noshedme/vendismarket/internal/service"
	"github.com/Noshedme/vendismarket/internal/transport"
	"github.com/labstack/echo/v4"
)

type CartHTTP struct {
	Svc      *service.CartService
	Producer *mykafka.Producer
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	idParam := c.QueryParam("customer_id")
	userID, err := strconv.Atoi(idParam)
	if idParam == "" || err != nil || userID <= 0 {
		l.Warn("get_cart_error", "status", 400, "reason", "missing customer_id")
		return c.JSON(http.StatusBadRequest, transport.CartResponse{
			Success: false,
			Message: "customer_id requerido",
			Cart:    []transport.CartView{},
		})
	}

	views, err := h.Svc.GetCart(ctx, uint(userID))
	if err != nil {
		l.Error("get_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.CartResponse{
			Success: false,
			Message: internalErrorMessage,
			Cart:    []transport.CartView{},
		})
	}

	return c.JSON(http.StatusOK, transport.CartResponse{Success: true, Cart: views})
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	var req transport.CartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.StatusResponse{Success: false, Message: "cuerpo invalido"})
	}

	if err := h.Svc.SetLine(ctx, req.CustomerID, req.ProductID, req.Quantity); err != nil {
		return respondError(c, l, err)
	}

	publish(c, h.Producer, "cart_events", fmt.Sprint(req.CustomerID), map[string]any{
		"type":       "cart_line_set",
		"customerID": req.CustomerID,
		"productID":  req.ProductID,
		"quantity":   req.Quantity,
	})
	return c.JSON(http.StatusOK, transport.StatusResponse{Success: true, Message: "producto agregado al carrito"})
}

func (h *CartHTTP) UpdateCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update")

	var req transport.CartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.StatusResponse{Success: false, Message: "cuerpo invalido"})
	}

	if err := h.Svc.UpdateLine(ctx, req.CustomerID, req.ProductID, req.Quantity); err != nil {
		return respondError(c, l, err)
	}

	publish(c, h.Producer, "cart_events", fmt.Sprint(req.CustomerID), map[string]any{
		"type":       "cart_line_updated",
		"customerID": req.CustomerID,
		"productID":  req.ProductID,
		"quantity":   req.Quantity,
	})
	return c.JSON(http.StatusOK, transport.StatusResponse{Success: true, Message: "carrito actualizado"})
}

func (h *CartHTTP) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	var req transport.CartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("remove_from_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.StatusResponse{Success: false, Message: "cuerpo invalido"})
	}

	if err := h.Svc.RemoveLine(ctx, req.CustomerID, req.ProductID); err != nil {
		return respondError(c, l, err)
	}

	publish(c, h.Producer, "cart_events", fmt.Sprint(req.CustomerID), map[string]any{
		"type":       "cart_line_removed",
		"customerID": req.CustomerID,
		"productID":  req.ProductID,
	})
	return c.JSON(http.StatusOK, transport.StatusResponse{Success: true, Message: "producto eliminado del carrito"})
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear")

	var req transport.CartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("clear_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.StatusResponse{Success: false, Message: "cuerpo invalido"})
	}

	if err := h.Svc.ClearCart(ctx, req.CustomerID); err != nil {
		return respondError(c, l, err)
	}

	publish(c, h.Producer, "cart_events", fmt.Sprint(req.CustomerID), map[string]any{
		"type":       "cart_cleared",
		"customerID": req.CustomerID,
	})
	return c.JSON(http.StatusOK, transport.StatusResponse{Success: true, Message: "carrito vaciado"})
}
