package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Noshedme/vendismarket/internal/mykafka"
	"github.com/Noshedme/vendismarket/internal/service"
	"github.com/Noshedme/vendismarket/internal/transport"
	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "error interno del servidor"

// respondError maps service errors onto the JSON error contract. The
// stored cause is logged here and never included in 500 bodies.
func respondError(c echo.Context, l *slog.Logger, err error) error {
	var stockErr *service.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		l.Warn("request rejected", "status", http.StatusBadRequest, "error", err)
		return c.JSON(http.StatusBadRequest, transport.StatusResponse{Success: false, Message: stockErr.Error()})
	case errors.Is(err, service.ErrValidation):
		l.Warn("request rejected", "status", http.StatusBadRequest, "error", err)
		return c.JSON(http.StatusBadRequest, transport.StatusResponse{Success: false, Message: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		l.Warn("request rejected", "status", http.StatusNotFound, "error", err)
		return c.JSON(http.StatusNotFound, transport.StatusResponse{Success: false, Message: err.Error()})
	case errors.Is(err, service.ErrUnauthorized):
		l.Warn("request rejected", "status", http.StatusUnauthorized, "error", err)
		return c.JSON(http.StatusUnauthorized, transport.StatusResponse{Success: false, Message: err.Error()})
	default:
		l.Error("request failed", "status", http.StatusInternalServerError, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.StatusResponse{Success: false, Message: internalErrorMessage})
	}
}

// publish fires a domain event without blocking the response path;
// publish errors are logged and dropped.
func publish(c echo.Context, producer *mykafka.Producer, topic, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := producer.PublishEvent(ctx, topic, key, event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}
