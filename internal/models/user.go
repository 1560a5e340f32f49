package models

import (
	"strings"
	"time"
)

// Role is the marketplace side a user signed up for. It never changes.
type Role string

const (
	RoleBuyer  Role = "Buyer"
	RoleSeller Role = "Seller"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleBuyer || r == RoleSeller
}

// Address is a user's saved postal address.
type Address struct {
	Street  string `json:"street" bson:"street" gorm:"type:varchar(255)"`
	City    string `json:"city" bson:"city" gorm:"type:varchar(100)"`
	State   string `json:"state" bson:"state" gorm:"type:varchar(100)"`
	Pincode string `json:"pincode" bson:"pincode" gorm:"type:varchar(20)"`
}

// User represents a buyer or seller account.
type User struct {
	ID               string    `json:"id" bson:"_id" gorm:"primaryKey;type:varchar(36)"`
	Name             string    `json:"name" bson:"name" gorm:"type:varchar(100);not null"`
	Email            string    `json:"email" bson:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Password         string    `json:"-" bson:"password" gorm:"type:varchar(255);not null"` // bcrypt hash, never serialized
	Role             Role      `json:"role" bson:"role" gorm:"type:varchar(10);not null"`
	Phone            string    `json:"phone" bson:"phone" gorm:"type:varchar(20)"`
	Address          Address   `json:"address" bson:"address" gorm:"embedded;embeddedPrefix:address_"`
	ProfilePhoto     string    `json:"profilePhoto" bson:"profilePhoto" gorm:"type:text"`
	ProfileCompleted bool      `json:"profileCompleted" bson:"profileCompleted"`
	CreatedAt        time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt" bson:"updatedAt"`
}

// HasDeliveryDetails reports whether the user has supplied enough contact
// data to receive deliveries.
func (u *User) HasDeliveryDetails() bool {
	return strings.TrimSpace(u.Phone) != "" &&
		strings.TrimSpace(u.Address.Street) != "" &&
		strings.TrimSpace(u.Address.City) != ""
}

// NormalizeEmail lowercases and trims an email so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
