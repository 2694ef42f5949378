package httpserver

import (
	"net/http"
	"strconv"

	"github.com/Noshedme/vendismarket/internal/logging"
	"github.com/Noshedme/vendismarket/internal/service"
	"github.com/Noshedme/vendismarket/internal/transport"
	"github.com/labstack/echo/v4"
)

type FeedbackHTTP struct {
	Svc *service.FeedbackService
}

func (h *FeedbackHTTP) CreateComplaint(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "feedback.complaint.create")

	var req transport.ComplaintRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_complaint_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.StatusResponse{Success: false, Message: "cuerpo invalido"})
	}

	complaint, err := h.Svc.CreateComplaint(ctx, req)
	if err != nil {
		return respondError(c, l, err)
	}
	return c.JSON(http.StatusCreated, complaint)
}

func (h *FeedbackHTTP) ListComplaints(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "feedback.complaint.list")

	complaints, err := h.Svc.ListComplaints(ctx)
	if err != nil {
		return respondError(c, l, err)
	}
	return c.JSON(http.StatusOK, complaints)
}

func (h *FeedbackHTTP) UpdateComplaintStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "feedback.complaint.status")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		l.Warn("complaint_status_error", "status", 400, "reason", "invalid id")
		return c.JSON(http.StatusBadRequest, transport.StatusResponse{Success: false, Message: "id invalido"})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("complaint_status_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.StatusResponse{Success: false, Message: "cuerpo invalido"})
	}

	if err := h.Svc.UpdateComplaintStatus(ctx, uint(id), req.Status); err != nil {
		return respondError(c, l, err)
	}
	return c.JSON(http.StatusOK, transport.StatusResponse{Success: true, Message: "estado actualizado"})
}

func (h *FeedbackHTTP) RateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "feedback.rating.create")

	var req transport.RatingRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("rate_product_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.StatusResponse{Success: false, Message: "cuerpo invalido"})
	}

	rating, err := h.Svc.RateProduct(ctx, req)
	if err != nil {
		return respondError(c, l, err)
	}
	return c.JSON(http.StatusCreated, rating)
}

func (h *FeedbackHTTP) ProductRatings(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "feedback.rating.list")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		l.Warn("product_ratings_error", "status", 400, "reason", "invalid id")
		return c.JSON(http.StatusBadRequest, transport.StatusResponse{Success: false, Message: "id invalido"})
	}

	summary, ratings, err := h.Svc.ProductRatings(ctx, uint(id))
	if err != nil {
		return respondError(c, l, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"summary": summary,
		"ratings": ratings,
	})
}
