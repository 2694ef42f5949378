package httpserver

import (
	"github.com/labstack/echo/v4"
)

type Deps struct {
	CartHandler     *CartHTTP
	OrderHandler    *OrderHTTP
	CatalogHandler  *CatalogHTTP
	UserHandler     *UserHTTP
	FeedbackHandler *FeedbackHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")

	v1.POST("/auth/register", d.UserHandler.Register)
	v1.POST("/auth/login", d.UserHandler.Login)

	users := v1.Group("/users")
	users.GET("", d.UserHandler.ListUsers)
	users.GET("/:id", d.UserHandler.GetUser)
	users.PATCH("/:id", d.UserHandler.PatchUser)
	users.DELETE("/:id", d.UserHandler.DeleteUser)

	products := v1.Group("/products")
	products.GET("", d.CatalogHandler.GetProducts)
	products.GET("/search", d.CatalogHandler.SearchProducts)
	products.GET("/:id", d.CatalogHandler.GetProduct)
	products.GET("/:id/ratings", d.FeedbackHandler.ProductRatings)

	admin := v1.Group("/admin")
	admin.POST("/products", d.CatalogHandler.CreateProduct)
	admin.PATCH("/products/:id", d.CatalogHandler.PatchProduct)
	admin.DELETE("/products/:id", d.CatalogHandler.DeleteProduct)

	cart := v1.Group("/cart")
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("/add", d.CartHandler.AddToCart)
	cart.PUT("/update", d.CartHandler.UpdateCart)
	cart.DELETE("/remove", d.CartHandler.RemoveFromCart)
	cart.DELETE("/clear", d.CartHandler.ClearCart)

	v1.POST("/orders", d.OrderHandler.CreateOrder)
	v1.GET("/orders/cliente/:userId", d.OrderHandler.ListByCustomer)
	v1.GET("/orders/detalle/:pedidoId", d.OrderHandler.GetDetail)
	v1.GET("/historial/usuario/:userId", d.OrderHandler.History)

	v1.POST("/complaints", d.FeedbackHandler.CreateComplaint)
	v1.GET("/complaints", d.FeedbackHandler.ListComplaints)
	v1.PATCH("/complaints/:id/status", d.FeedbackHandler.UpdateComplaintStatus)
	v1.POST("/ratings", d.FeedbackHandler.RateProduct)
}
