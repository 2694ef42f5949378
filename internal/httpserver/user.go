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

type UserHTTP struct {
	Svc      *service.UserService
	Producer *mykafka.Producer
}

func (h *UserHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.StatusResponse{Success: false, Message: "cuerpo invalido"})
	}

	user, err := h.Svc.Register(ctx, req)
	if err != nil {
		return respondError(c, l, err)
	}

	publish(c, h.Producer, "user_events", fmt.Sprint(user.ID), map[string]any{
		"type":   "user_registered",
		"userID": user.ID,
		"email":  user.Email,
		"role":   user.Role,
	})
	return c.JSON(http.StatusCreated, user)
}

func (h *UserHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.StatusResponse{Success: false, Message: "cuerpo invalido"})
	}

	user, token, err := h.Svc.Login(ctx, req)
	if err != nil {
		return respondError(c, l, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":      true,
		"user":         user,
		"role":         user.Role,
		"access_token": token,
	})
}

func (h *UserHTTP) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.list")

	users, err := h.Svc.ListUsers(ctx)
	if err != nil {
		return respondError(c, l, err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHTTP) GetUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		l.Warn("get_user_error", "status", 400, "reason", "invalid id")
		return c.JSON(http.StatusBadRequest, transport.StatusResponse{Success: false, Message: "id invalido"})
	}

	user, err := h.Svc.GetUser(ctx, uint(id))
	if err != nil {
		return respondError(c, l, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHTTP) PatchUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.patch")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		l.Warn("patch_user_error", "status", 400, "reason", "invalid id")
		return c.JSON(http.StatusBadRequest, transport.StatusResponse{Success: false, Message: "id invalido"})
	}

	var req transport.PatchUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_user_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.StatusResponse{Success: false, Message: "cuerpo invalido"})
	}

	user, err := h.Svc.PatchUser(ctx, req, uint(id))
	if err != nil {
		return respondError(c, l, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHTTP) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.delete")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		l.Warn("delete_user_error", "status", 400, "reason", "invalid id")
		return c.JSON(http.StatusBadRequest, transport.StatusResponse{Success: false, Message: "id invalido"})
	}

	if err := h.Svc.DeleteUser(ctx, uint(id)); err != nil {
		return respondError(c, l, err)
	}
	return c.NoContent(http.StatusNoContent)
}
