package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/Noshedme/vendismarket/internal/config"
	"github.com/Noshedme/vendismarket/internal/models"
	"github.com/Noshedme/vendismarket/internal/repo"
	"github.com/Noshedme/vendismarket/internal/service"
	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	T        *testing.T
	E        *echo.Echo
	DB       *gorm.DB
	Cart     *CartHTTP
	Order    *OrderHTTP
	Catalog  *CatalogHTTP
	User     *UserHTTP
	Feedback *FeedbackHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	r := repo.NewGormRepo(db)

	env := &testEnv{
		T:  t,
		E:  echo.New(),
		DB: db,
		Cart: &CartHTTP{
			Svc: &service.CartService{Repo: r},
		},
		Order: &OrderHTTP{
			Svc: &service.OrderService{
				Repo:           r,
				DefaultStatus:  "pagado",
				DecrementStock: true,
			},
		},
		Catalog: &CatalogHTTP{
			Svc: &service.CatalogService{Repo: r},
		},
		User: &UserHTTP{
			Svc: &service.UserService{Repo: r, JWTSecret: []byte("test_secret")},
		},
		Feedback: &FeedbackHTTP{
			Svc: &service.FeedbackService{Repo: r},
		},
	}
	return env
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) createProduct(code, name string, price float64, stock int) *models.Product {
	env.T.Helper()
	prod := &models.Product{
		Code:  code,
		Name:  name,
		Price: decimal.NewFromFloat(price),
		Stock: stock,
	}
	require.NoError(env.T, env.DB.Create(prod).Error)
	return prod
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
