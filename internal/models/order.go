package models

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the five order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Cancellable reports whether the buyer may still cancel an order in this status.
func (s OrderStatus) Cancellable() bool {
	return s == StatusPending || s == StatusConfirmed
}

// PaymentStatus tracks payment for an order. Nothing mutates it yet.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// OrderItem is a single produce line within an order.
type OrderItem struct {
	ProductID   int     `json:"productId" bson:"productId"`
	ProductName string  `json:"productName" bson:"productName"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	PricePerKg  float64 `json:"pricePerKg" bson:"pricePerKg"`
	TotalPrice  float64 `json:"totalPrice" bson:"totalPrice"` // Quantity * PricePerKg
	FarmerName  string  `json:"farmerName" bson:"farmerName"`
}

// DeliveryAddress is the address an order ships to, fixed at checkout.
type DeliveryAddress struct {
	Street  string `json:"street" bson:"street" gorm:"type:varchar(255)"`
	City    string `json:"city" bson:"city" gorm:"type:varchar(100)"`
	State   string `json:"state" bson:"state" gorm:"type:varchar(100)"`
	Pincode string `json:"pincode" bson:"pincode" gorm:"type:varchar(20)"`
	Phone   string `json:"phone" bson:"phone" gorm:"type:varchar(20)"`
}

// Order represents a buyer's checkout.
type Order struct {
	ID                 string          `json:"id" bson:"_id" gorm:"primaryKey;type:varchar(36)"`
	BuyerID            string          `json:"buyer" bson:"buyer" gorm:"column:buyer_id;index:idx_orders_buyer_created,priority:1;type:varchar(36);not null"`
	BuyerName          string          `json:"buyerName" bson:"buyerName" gorm:"type:varchar(100)"`
	BuyerEmail         string          `json:"buyerEmail" bson:"buyerEmail" gorm:"type:varchar(255)"`
	Items              []OrderItem     `json:"items" bson:"items" gorm:"serializer:json"`
	TotalAmount        float64         `json:"totalAmount" bson:"totalAmount"`
	Status             OrderStatus     `json:"status" bson:"status" gorm:"type:varchar(20);not null"`
	DeliveryAddress    DeliveryAddress `json:"deliveryAddress" bson:"deliveryAddress" gorm:"embedded;embeddedPrefix:delivery_"`
	PaymentStatus      PaymentStatus   `json:"paymentStatus" bson:"paymentStatus" gorm:"type:varchar(20);not null"`
	Notes              string          `json:"notes" bson:"notes" gorm:"type:varchar(500)"`
	CancellationReason string          `json:"cancellationReason,omitempty" bson:"cancellationReason,omitempty" gorm:"type:varchar(500)"`
	CancelledAt        *time.Time      `json:"cancelledAt,omitempty" bson:"cancelledAt,omitempty"`
	CreatedAt          time.Time       `json:"createdAt" bson:"createdAt" gorm:"index:idx_orders_buyer_created,priority:2"`
	UpdatedAt          time.Time       `json:"updatedAt" bson:"updatedAt"`
}
