package models

// The views below shadow the omitempty relations of the embedded model so that
// loaded relations always serialize, as [] when empty.

// UserItems is a user with wishlist and bought items.
type UserItems struct {
	User
	WishlistItems []Wishlist `json:"wishlistItems"`
	BoughtItems   []Bought   `json:"boughtItems"`
}

func NewUserItems(u *User) *UserItems {
	if u == nil {
		return nil
	}
	return &UserItems{
		User:          *u,
		WishlistItems: nonNil(u.WishlistItems),
		BoughtItems:   nonNil(u.BoughtItems),
	}
}

type OrderDetail struct {
	Order
	HasProducts []OrderedProduct `json:"hasProducts"`
}

// UserDetail is a user with every relation; subscribedNewsletter is null when absent.
type UserDetail struct {
	User
	BoughtItems          []Bought                `json:"boughtItems"`
	SubscribedNewsletter *NewsletterSubscription `json:"subscribedNewsletter"`
	WishlistItems        []Wishlist              `json:"wishlistItems"`
	Orders               []OrderDetail           `json:"orders"`
}

func NewUserDetail(u *User) *UserDetail {
	if u == nil {
		return nil
	}
	orders := make([]OrderDetail, len(u.Orders))
	for i, o := range u.Orders {
		orders[i] = OrderDetail{Order: o, HasProducts: nonNil(o.HasProducts)}
	}
	return &UserDetail{
		User:                 *u,
		BoughtItems:          nonNil(u.BoughtItems),
		SubscribedNewsletter: u.SubscribedNewsletter,
		WishlistItems:        nonNil(u.WishlistItems),
		Orders:               orders,
	}
}

// CategoryProducts is a category with its products.
type CategoryProducts struct {
	Category
	Products []Product `json:"products"`
}

func NewCategoryProducts(c Category) CategoryProducts {
	return CategoryProducts{Category: c, Products: nonNil(c.Products)}
}

func CategoriesWithProducts(cs []Category) []CategoryProducts {
	out := make([]CategoryProducts, len(cs))
	for i, c := range cs {
		out[i] = NewCategoryProducts(c)
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
