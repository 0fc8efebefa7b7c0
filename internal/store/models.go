package store

import (
	"encoding/json"
	"time"
)

// Category is a top-level product grouping, seeded once and immutable.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Product belongs to a category by plain integer reference; no referential
// integrity is enforced. Monetary fields are integer paise.
type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	Description   string  `json:"description"`
	Price         int64   `json:"price"`
	OriginalPrice *int64  `json:"originalPrice"`
	ImageURL      string  `json:"imageUrl"`
	CategoryID    int     `json:"categoryId"`
	InStock       bool    `json:"inStock"`
	Featured      bool    `json:"featured"`
	Rating        float64 `json:"rating"`
	ReviewCount   int     `json:"reviewCount"`
}

// ProductDetail carries plant-care attributes; zero or one per product.
type ProductDetail struct {
	ID               int    `json:"id"`
	ProductID        int    `json:"productId"`
	Light            string `json:"light"`
	Water            string `json:"water"`
	Height           string `json:"height"`
	Temperature      string `json:"temperature"`
	CareInstructions string `json:"careInstructions"`
}

// Service is a static catalog entry for gardener services.
type Service struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// GardenerBooking is created by user action and later mutated in place to
// attach a rating and review. Rating/ReviewText stay null until reviewed.
type GardenerBooking struct {
	ID           int       `json:"id"`
	ServiceType  string    `json:"serviceType"`
	Date         string    `json:"date"`
	TimeSlot     string    `json:"timeSlot"`
	GardenSize   string    `json:"gardenSize"`
	Notes        string    `json:"notes"`
	ContactName  string    `json:"contactName"`
	ContactPhone string    `json:"contactPhone"`
	ContactEmail string    `json:"contactEmail"`
	Rating       *int      `json:"rating"`
	ReviewText   *string   `json:"reviewText"`
	CreatedAt    time.Time `json:"createdAt"`
	SessionID    string    `json:"sessionId"`
}

// CartItem is owned by a session. At most one item exists per
// (sessionId, productId) pair.
type CartItem struct {
	ID        int       `json:"id"`
	UserID    *int      `json:"userId"`
	SessionID string    `json:"sessionId"`
	ProductID int       `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

// PaymentMethod is a static catalog entry seeded at boot.
type PaymentMethod struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	Code                string `json:"code"`
	Icon                string `json:"icon"`
	Enabled             bool   `json:"enabled"`
	RequiresCardDetails bool   `json:"requiresCardDetails"`
	IsDigitalWallet     bool   `json:"isDigitalWallet"`
	IsCashOption        bool   `json:"isCashOption"`
	SortOrder           int    `json:"sortOrder"`
}

// Order is created from a snapshot of the cart. Addresses are stored as the
// raw JSON supplied by the client.
type Order struct {
	ID                int             `json:"id"`
	OrderNumber       string          `json:"orderNumber"`
	UserID            *int            `json:"userId"`
	SessionID         string          `json:"sessionId"`
	Status            string          `json:"status"`
	Subtotal          int64           `json:"subtotal"`
	Tax               int64           `json:"tax"`
	ShippingFee       int64           `json:"shippingFee"`
	Total             int64           `json:"total"`
	PaymentMethodCode string          `json:"paymentMethodCode"`
	ShippingAddress   json.RawMessage `json:"shippingAddress"`
	BillingAddress    json.RawMessage `json:"billingAddress"`
	PaymentStatus     string          `json:"paymentStatus"`
	Notes             string          `json:"notes"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// OrderItem snapshots a product's name, image and price at order time so
// historical orders survive later catalog edits.
type OrderItem struct {
	ID        int    `json:"id"`
	OrderID   int    `json:"orderId"`
	ProductID int    `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
	Name      string `json:"name"`
	ImageURL  string `json:"imageUrl"`
}

// CategoryInput is the creation payload for a Category.
type CategoryInput struct {
	Name string
	Slug string
}

// ProductInput is the creation payload for a Product.
type ProductInput struct {
	Name          string
	Slug          string
	Description   string
	Price         int64
	OriginalPrice *int64
	ImageURL      string
	CategoryID    int
	InStock       bool
	Featured      bool
	Rating        float64
	ReviewCount   int
}

// ProductDetailInput is the creation payload for a ProductDetail.
type ProductDetailInput struct {
	ProductID        int
	Light            string
	Water            string
	Height           string
	Temperature      string
	CareInstructions string
}

// ServiceInput is the creation payload for a Service.
type ServiceInput struct {
	Name        string
	Description string
	Icon        string
}

// BookingInput is the creation payload for a GardenerBooking.
type BookingInput struct {
	ServiceType  string
	Date         string
	TimeSlot     string
	GardenSize   string
	Notes        string
	ContactName  string
	ContactPhone string
	ContactEmail string
	SessionID    string
}

// CartItemInput is the creation payload for a CartItem. A zero Quantity is
// treated as 1.
type CartItemInput struct {
	UserID    *int
	SessionID string
	ProductID int
	Quantity  int
}

// PaymentMethodInput is the creation payload for a PaymentMethod.
type PaymentMethodInput struct {
	Name                string
	Code                string
	Icon                string
	Enabled             bool
	RequiresCardDetails bool
	IsDigitalWallet     bool
	IsCashOption        bool
	SortOrder           int
}

// OrderInput is the creation payload for an Order.
type OrderInput struct {
	OrderNumber       string
	UserID            *int
	SessionID         string
	Status            string
	Subtotal          int64
	Tax               int64
	ShippingFee       int64
	Total             int64
	PaymentMethodCode string
	ShippingAddress   json.RawMessage
	BillingAddress    json.RawMessage
	PaymentStatus     string
	Notes             string
}

// OrderItemInput is the creation payload for an OrderItem.
type OrderItemInput struct {
	OrderID   int
	ProductID int
	Quantity  int
	Price     int64
	Name      string
	ImageURL  string
}
