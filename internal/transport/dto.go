package transport

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartView is one cart line joined with the current product attributes.
type CartView struct {
	ProductID uint            `json:"product_id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	Quantity  int             `json:"quantity"`
}

type CartRequest struct {
	CustomerID uint `json:"customer_id"`
	ProductID  uint `json:"product_id"`
	Quantity   int  `json:"quantity"`
}

type CartResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Cart    []CartView `json:"cart"`
}

type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type CreateOrderItem struct {
	ID       uint            `json:"id"`
	Cantidad int             `json:"cantidad"`
	Precio   decimal.Decimal `json:"precio"`
}

type CreateOrderRequest struct {
	UserID     uint              `json:"userId"`
	Productos  []CreateOrderItem `json:"productos"`
	Total      decimal.Decimal   `json:"total"`
	MetodoPago string            `json:"metodoPago"`
	DatosEnvio *string           `json:"datosEnvio"`
	Notas      string            `json:"notas"`
	Estado     string            `json:"estado"`
}

type CreateOrderResponse struct {
	Message       string `json:"message"`
	PedidoID      uint   `json:"pedidoId"`
	NumeroFactura string `json:"numeroFactura"`
}

type OrderSummary struct {
	ID            uint            `json:"id"`
	UserID        uint            `json:"user_id"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
	DetailCount   int64           `json:"detail_count"`
	NumeroFactura string          `json:"numero_factura" gorm:"-"`
}

// PedidoView is the order row joined with the owning user's display fields.
type PedidoView struct {
	ID              uint            `json:"id"`
	NumeroFactura   string          `json:"numero_factura"`
	UserID          uint            `json:"user_id"`
	Cliente         string          `json:"cliente"`
	Email           string          `json:"email"`
	Total           decimal.Decimal `json:"total"`
	Status          string          `json:"status"`
	PaymentMethod   string          `json:"payment_method"`
	ShippingAddress *string         `json:"shipping_address,omitempty"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
}

// DetailView joins the historical detail row with the current product
// display fields; price and subtotal stay as captured at purchase time.
type DetailView struct {
	ProductID   uint            `json:"product_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type OrderDetailResponse struct {
	Pedido   PedidoView   `json:"pedido"`
	Detalles []DetailView `json:"detalles"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"total_items"`
	TotalPages int64 `json:"total_pages"`
}

type HistoryResponse struct {
	Success    bool           `json:"success"`
	Compras    []OrderSummary `json:"compras"`
	Pagination Pagination     `json:"pagination"`
}

type PatchProductRequest struct {
	Code        *string          `json:"code"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

type PatchUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Role      *string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ComplaintRequest struct {
	UserID   uint   `json:"user_id"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

type RatingRequest struct {
	UserID    uint   `json:"user_id"`
	ProductID uint   `json:"product_id"`
	Stars     int    `json:"stars"`
	Comment   string `json:"comment"`
}

type RatingSummary struct {
	ProductID uint    `json:"product_id"`
	Count     int64   `json:"count"`
	Average   float64 `json:"average"`
}
