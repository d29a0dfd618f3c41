package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"     json:"id"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string    `gorm:"not null"                     json:"-"`
	UserName  string    `gorm:"size:255;not null"            json:"userName"`
	CreatedAt time.Time `                                    json:"createdAt"`

	BoughtItems          []Bought                `gorm:"foreignKey:UserID" json:"boughtItems,omitempty"`
	WishlistItems        []Wishlist              `gorm:"foreignKey:UserID" json:"wishlistItems,omitempty"`
	Orders               []Order                 `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	SubscribedNewsletter *NewsletterSubscription `gorm:"foreignKey:UserID" json:"subscribedNewsletter,omitempty"`
}

type Category struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"      json:"id"`
	Name string `gorm:"uniqueIndex;size:255;not null" json:"name"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:255;not null;index"  json:"name"`
	Description string    `                                json:"description"`
	Price       float64   `gorm:"not null"                 json:"price"`
	Image       string    `                                json:"image"`
	Stock       int       `gorm:"not null;default:0"       json:"stock"`
	CategoryID  uint      `gorm:"index;not null"           json:"categoryId"`
	CreatedAt   time.Time `                                json:"createdAt"`

	Category *Category `json:"category,omitempty"`
}

// Bought and Wishlist rows are unique per (user, product).
type Bought struct {
	ID        uint `gorm:"primaryKey;autoIncrement"                         json:"id"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_bought_user_product"     json:"userId"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_bought_user_product"     json:"productId"`
	Quantity  int  `gorm:"not null;default:1"                               json:"quantity"`

	User    *User    `json:"user,omitempty"`
	Product *Product `json:"product,omitempty"`
}

type Wishlist struct {
	ID        uint `gorm:"primaryKey;autoIncrement"                       json:"id"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"userId"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"productId"`

	User    *User    `json:"user,omitempty"`
	Product *Product `json:"product,omitempty"`
}

type Order struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"index;not null"           json:"userId"`
	CreatedAt time.Time `                                json:"createdAt"`

	HasProducts []OrderedProduct `gorm:"foreignKey:OrderID" json:"hasProducts,omitempty"`
}

type OrderedProduct struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint `gorm:"index;not null"           json:"orderId"`
	ProductID uint `gorm:"not null"                 json:"productId"`
	Quantity  int  `gorm:"not null;default:1"       json:"quantity"`

	Product *Product `json:"product,omitempty"`
}

type NewsletterSubscription struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null"     json:"userId"`
	Email     string    `gorm:"size:255;not null"        json:"email"`
	CreatedAt time.Time `                                json:"createdAt"`
}

// All lists every model in migration order.
func All() []any {
	return []any{
		&User{},
		&Category{},
		&Product{},
		&Bought{},
		&Wishlist{},
		&Order{},
		&OrderedProduct{},
		&NewsletterSubscription{},
	}
}
