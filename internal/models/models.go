package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"    json:"id"`
	Code        string          `gorm:"uniqueIndex;not null"        json:"code"`
	Name        string          `gorm:"not null"                    json:"name"`
	Description string          `json:"description"`
	Category    string          `gorm:"index"                       json:"category"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Stock       int             `gorm:"not null;check:stock >= 0"   json:"stock"`
}

type CartLine struct {
	ID        uint `gorm:"primaryKey"                                 json:"id"`
	UserID    uint `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"user_id"`
	ProductID uint `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"product_id"`
	Quantity  int  `gorm:"not null;check:quantity > 0"                json:"quantity"`
}

type Order struct {
	ID              uint            `gorm:"primaryKey"                  json:"id"`
	UserID          uint            `gorm:"index;not null"              json:"user_id"`
	Total           decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
	Status          string          `gorm:"not null"                    json:"status"`
	PaymentMethod   string          `json:"payment_method"`
	ShippingAddress *string         `json:"shipping_address,omitempty"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `gorm:"not null"                    json:"created_at"`
}

type OrderDetail struct {
	ID        uint            `gorm:"primaryKey"                  json:"id"`
	OrderID   uint            `gorm:"index;not null"              json:"order_id"`
	ProductID uint            `gorm:"not null"                    json:"product_id"`
	Quantity  int             `gorm:"not null;check:quantity > 0" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"unit_price"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"subtotal"`
}

type User struct {
	ID           uint   `gorm:"primaryKey"           json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null"             json:"-"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Phone        string `json:"phone"`
	Role         string `gorm:"not null"             json:"role"`
}

type Complaint struct {
	ID        uint      `gorm:"primaryKey"           json:"id"`
	Folio     string    `gorm:"uniqueIndex;not null" json:"folio"`
	UserID    uint      `gorm:"index;not null"       json:"user_id"`
	Category  string    `json:"category"`
	Message   string    `gorm:"not null"             json:"message"`
	Status    string    `gorm:"not null"             json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type Rating struct {
	ID        uint      `gorm:"primaryKey"                                   json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_rating_user_product;not null" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_rating_user_product;not null" json:"product_id"`
	Stars     int       `gorm:"not null;check:stars >= 1 AND stars <= 5"     json:"stars"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
