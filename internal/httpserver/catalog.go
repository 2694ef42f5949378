package httpserver

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Noshedme/vendismarket/internal/logging"
	"github.com/Noshedme/vendismarket/internal/models"
	"github.com/Noshedme/vendismarket/internal/mykafka"
	"github.com/Noshedme/vendismarket/internal/service"
	"github.com/Noshedme/vendismarket/internal/transport"
	"github.com/Noshedme/vendismarket/internal/util"
	"github.com/labstack/echo/v4"
)

type CatalogHTTP struct {
	Svc      *service.CatalogService
	Producer *mykafka.Producer
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		l.Warn("get_product_error", "status", 400, "reason", "invalid id")
		return c.JSON(http.StatusBadRequest, transport.StatusResponse{Success: false, Message: "id invalido"})
	}

	product, err := h.Svc.GetProduct(ctx, uint(id))
	if err != nil {
		return respondError(c, l, err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.list")

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.GetProducts(ctx, offset, limit)
	if err != nil {
		return respondError(c, l, err)
	}

	return c.JSON(http.StatusOK, productPage(items, page, limit, offset, total))
}

func (h *CatalogHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.search")

	q := c.QueryParam("q")
	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.SearchProducts(ctx, q, offset, limit)
	if err != nil {
		return respondError(c, l, err)
	}

	return c.JSON(http.StatusOK, productPage(items, page, limit, offset, total))
}

func (h *CatalogHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.create")

	var product models.Product
	if err := c.Bind(&product); err != nil {
		l.Warn("create_product_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.StatusResponse{Success: false, Message: "cuerpo invalido"})
	}
	product.ID = 0

	if err := h.Svc.CreateProduct(ctx, &product); err != nil {
		return respondError(c, l, err)
	}

	publish(c, h.Producer, "product_events", fmt.Sprint(product.ID), map[string]any{
		"type":      "product_created",
		"productID": product.ID,
		"code":      product.Code,
		"name":      product.Name,
	})
	return c.JSON(http.StatusCreated, product)
}

func (h *CatalogHTTP) PatchProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.patch")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		l.Warn("patch_product_error", "status", 400, "reason", "invalid id")
		return c.JSON(http.StatusBadRequest, transport.StatusResponse{Success: false, Message: "id invalido"})
	}

	var req transport.PatchProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_product_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.StatusResponse{Success: false, Message: "cuerpo invalido"})
	}

	product, err := h.Svc.PatchProduct(ctx, req, uint(id))
	if err != nil {
		return respondError(c, l, err)
	}

	publish(c, h.Producer, "product_events", fmt.Sprint(product.ID), map[string]any{
		"type":      "product_updated",
		"productID": product.ID,
		"name":      product.Name,
	})
	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.delete")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		l.Warn("delete_product_error", "status", 400, "reason", "invalid id")
		return c.JSON(http.StatusBadRequest, transport.StatusResponse{Success: false, Message: "id invalido"})
	}

	if err := h.Svc.DeleteProduct(ctx, uint(id)); err != nil {
		return respondError(c, l, err)
	}

	publish(c, h.Producer, "product_events", fmt.Sprint(id), map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})
	return c.NoContent(http.StatusNoContent)
}

func productPage(items []models.Product, page, limit, offset int, total int64) map[string]any {
	return map[string]any{
		"data": items,
		"meta": map[string]any{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": util.TotalPages(total, limit),
			"has_prev":    page > 1,
			"has_next":    int64(offset+limit) < total,
		},
	}
}
