package httpserver

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Noshedme/vendismarket/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type productPageResponse struct {
	Data []models.Product `json:"data"`
	Meta struct {
		Page       int   `json:"page"`
		Size       int   `json:"size"`
		Total      int64 `json:"total"`
		TotalPages int64 `json:"total_pages"`
		HasPrev    bool  `json:"has_prev"`
		HasNext    bool  `json:"has_next"`
	} `json:"meta"`
}

func TestGetProduct(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProduct("SKU-1", "cafe", 2.50, 10)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/products/1", nil)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(p.ID))
	require.NoError(t, env.Catalog.GetProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Product
	decodeJSON(t, rec, &got)
	require.Equal(t, p.ID, got.ID)
	require.Equal(t, "SKU-1", got.Code)
	require.True(t, got.Price.Equal(decimal.NewFromFloat(2.50)))
}

func TestGetProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/products/99", nil)
	c.SetParamNames("id")
	c.SetParamValues("99")
	require.NoError(t, env.Catalog.GetProduct(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProductsPagination(t *testing.T) {
	env := newTestEnv(t)
	for i := 1; i <= 25; i++ {
		env.createProduct(fmt.Sprintf("SKU-%d", i), fmt.Sprintf("producto %d", i), 1.00, 5)
	}

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/products?page=2&size=10", nil)
	require.NoError(t, env.Catalog.GetProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp productPageResponse
	decodeJSON(t, rec, &resp)
	require.Len(t, resp.Data, 10)
	require.Equal(t, 2, resp.Meta.Page)
	require.Equal(t, int64(25), resp.Meta.Total)
	require.Equal(t, int64(3), resp.Meta.TotalPages)
	require.True(t, resp.Meta.HasPrev)
	require.True(t, resp.Meta.HasNext)

	rec, c = env.doJSONRequest(http.MethodGet, "/api/v1/products?page=3&size=10", nil)
	require.NoError(t, env.Catalog.GetProducts(c))
	decodeJSON(t, rec, &resp)
	require.Len(t, resp.Data, 5)
	require.False(t, resp.Meta.HasNext)
}

func TestSearchProductsFallsBackToDatabase(t *testing.T) {
	env := newTestEnv(t)
	env.createProduct("SKU-1", "Cafe Molido", 2.50, 10)
	env.createProduct("SKU-2", "Azucar Blanca", 1.20, 10)
	env.createProduct("SKU-3", "cafetera manual", 25.00, 2)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/products/search?q=cafe", nil)
	require.NoError(t, env.Catalog.SearchProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp productPageResponse
	decodeJSON(t, rec, &resp)
	require.Equal(t, int64(2), resp.Meta.Total)
	require.Len(t, resp.Data, 2)
	for _, p := range resp.Data {
		require.Contains(t, []string{"SKU-1", "SKU-3"}, p.Code)
	}
}

func TestSearchProductsMissingQuery(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/products/search", nil)
	require.NoError(t, env.Catalog.SearchProducts(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProduct(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]any{
		"code":        "SKU-9",
		"name":        "galletas",
		"description": "paquete de 6",
		"category":    "snacks",
		"price":       "3.75",
		"stock":       12,
	}
	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/admin/products", body)
	require.NoError(t, env.Catalog.CreateProduct(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Product
	decodeJSON(t, rec, &got)
	require.NotZero(t, got.ID)
	require.True(t, got.Price.Equal(decimal.NewFromFloat(3.75)))

	var stored models.Product
	require.NoError(t, env.DB.First(&stored, got.ID).Error)
	require.Equal(t, "galletas", stored.Name)
	require.Equal(t, 12, stored.Stock)
}

func TestCreateProductMissingCode(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/admin/products", map[string]any{"name": "x"})
	require.NoError(t, env.Catalog.CreateProduct(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPatchProductPartialUpdate(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProduct("SKU-1", "cafe", 2.50, 10)

	rec, c := env.doJSONRequest(http.MethodPatch, "/api/v1/admin/products/1", map[string]any{"stock": 99})
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(p.ID))
	require.NoError(t, env.Catalog.PatchProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Product
	decodeJSON(t, rec, &got)
	require.Equal(t, 99, got.Stock)
	// untouched fields survive the patch
	require.Equal(t, "cafe", got.Name)
	require.True(t, got.Price.Equal(decimal.NewFromFloat(2.50)))
}

func TestPatchProductNegativeStock(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProduct("SKU-1", "cafe", 2.50, 10)

	rec, c := env.doJSONRequest(http.MethodPatch, "/api/v1/admin/products/1", map[string]any{"stock": -1})
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(p.ID))
	require.NoError(t, env.Catalog.PatchProduct(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPatchProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPatch, "/api/v1/admin/products/44", map[string]any{"stock": 1})
	c.SetParamNames("id")
	c.SetParamValues("44")
	require.NoError(t, env.Catalog.PatchProduct(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProduct("SKU-1", "cafe", 2.50, 10)

	rec, c := env.doJSONRequest(http.MethodDelete, "/api/v1/admin/products/1", nil)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(p.ID))
	require.NoError(t, env.Catalog.DeleteProduct(c))
	require.Equal(t, http.StatusNoContent, rec.Code)

	var count int64
	require.NoError(t, env.DB.Model(&models.Product{}).Count(&count).Error)
	require.Zero(t, count)

	// deleting again reports not found
	rec, c = env.doJSONRequest(http.MethodDelete, "/api/v1/admin/products/1", nil)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(p.ID))
	require.NoError(t, env.Catalog.DeleteProduct(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
