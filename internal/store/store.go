// Package store is the single-process, in-memory system of record for the
// storefront. It owns every entity collection and all identifier generation;
// no other component mutates application state. All state is discarded on
// process exit.
package store

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Store holds every entity collection behind one mutex. Identifiers are
// assigned per entity family from counters starting at 1 and are never
// recycled after deletion.
type Store struct {
	mu sync.Mutex

	categories     map[int]Category
	products       map[int]Product
	productDetails map[int]ProductDetail
	services       map[int]Service
	bookings       map[int]GardenerBooking
	cartItems      map[int]CartItem
	paymentMethods map[int]PaymentMethod
	orders         map[int]Order
	orderItems     map[int]OrderItem

	categoryBySlug map[string]int
	productBySlug  map[string]int

	nextCategoryID      int
	nextProductID       int
	nextProductDetailID int
	nextServiceID       int
	nextBookingID       int
	nextCartItemID      int
	nextPaymentMethodID int
	nextOrderID         int
	nextOrderItemID     int

	now func() time.Time
}

// New returns an empty store. Call Seed to load the catalog data.
func New() *Store {
	return &Store{
		categories:     map[int]Category{},
		products:       map[int]Product{},
		productDetails: map[int]ProductDetail{},
		services:       map[int]Service{},
		bookings:       map[int]GardenerBooking{},
		cartItems:      map[int]CartItem{},
		paymentMethods: map[int]PaymentMethod{},
		orders:         map[int]Order{},
		orderItems:     map[int]OrderItem{},

		categoryBySlug: map[string]int{},
		productBySlug:  map[string]int{},

		nextCategoryID:      1,
		nextProductID:       1,
		nextProductDetailID: 1,
		nextServiceID:       1,
		nextBookingID:       1,
		nextCartItemID:      1,
		nextPaymentMethodID: 1,
		nextOrderID:         1,
		nextOrderItemID:     1,

		now: time.Now,
	}
}

// Categories returns all categories in creation order.
func (s *Store) Categories() []Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CategoryBySlug resolves a category by exact slug match.
func (s *Store) CategoryBySlug(slug string) (Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.categoryBySlug[slug]
	if !ok {
		return Category{}, false
	}
	return s.categories[id], true
}

// CreateCategory inserts a category and indexes its slug.
func (s *Store) CreateCategory(input CategoryInput) Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	category := Category{
		ID:   s.nextCategoryID,
		Name: input.Name,
		Slug: input.Slug,
	}
	s.nextCategoryID++
	s.categories[category.ID] = category
	s.categoryBySlug[category.Slug] = category.ID
	return category
}

// Products returns all products in creation order.
func (s *Store) Products() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.productsLocked()
}

func (s *Store) productsLocked() []Product {
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ProductsByCategory returns the products referencing categoryID. A
// nonexistent category yields an empty slice; no existence check is made.
func (s *Store) ProductsByCategory(categoryID int) []Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []Product{}
	for _, p := range s.productsLocked() {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// ProductBySlug resolves a product by exact slug match.
func (s *Store) ProductBySlug(slug string) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.productBySlug[slug]
	if !ok {
		return Product{}, false
	}
	return s.products[id], true
}

// ProductByID resolves a product by identifier.
func (s *Store) ProductByID(id int) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	return p, ok
}

// FeaturedProducts returns products flagged as featured, in creation order.
func (s *Store) FeaturedProducts() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []Product{}
	for _, p := range s.productsLocked() {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// CreateProduct inserts a product and indexes its slug.
func (s *Store) CreateProduct(input ProductInput) Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := Product{
		ID:            s.nextProductID,
		Name:          input.Name,
		Slug:          input.Slug,
		Description:   input.Description,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		ImageURL:      input.ImageURL,
		CategoryID:    input.CategoryID,
		InStock:       input.InStock,
		Featured:      input.Featured,
		Rating:        input.Rating,
		ReviewCount:   input.ReviewCount,
	}
	s.nextProductID++
	s.products[product.ID] = product
	s.productBySlug[product.Slug] = product.ID
	return product
}

// UpdateProduct replaces an existing product record. Slug indexes are kept
// in sync. Returns false when the id is unknown.
func (s *Store) UpdateProduct(updated Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.products[updated.ID]
	if !ok {
		return false
	}
	if current.Slug != updated.Slug {
		delete(s.productBySlug, current.Slug)
		s.productBySlug[updated.Slug] = updated.ID
	}
	s.products[updated.ID] = updated
	return true
}

// DeleteProduct removes a product and its slug index entry. The identifier
// is never reused.
func (s *Store) DeleteProduct(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return false
	}
	delete(s.products, id)
	delete(s.productBySlug, p.Slug)
	return true
}

// ProductDetailByProduct scans for the detail record matching productID.
func (s *Store) ProductDetailByProduct(productID int) (ProductDetail, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.productDetails {
		if d.ProductID == productID {
			return d, true
		}
	}
	return ProductDetail{}, false
}

// CreateProductDetail inserts a product detail record.
func (s *Store) CreateProductDetail(input ProductDetailInput) ProductDetail {
	s.mu.Lock()
	defer s.mu.Unlock()

	detail := ProductDetail{
		ID:               s.nextProductDetailID,
		ProductID:        input.ProductID,
		Light:            input.Light,
		Water:            input.Water,
		Height:           input.Height,
		Temperature:      input.Temperature,
		CareInstructions: input.CareInstructions,
	}
	s.nextProductDetailID++
	s.productDetails[detail.ID] = detail
	return detail
}

// Services returns the service catalog in creation order.
func (s *Store) Services() []Service {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Service, 0, len(s.services))
	for _, svc := range s.services {
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CreateService inserts a service catalog entry.
func (s *Store) CreateService(input ServiceInput) Service {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc := Service{
		ID:          s.nextServiceID,
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
	}
	s.nextServiceID++
	s.services[svc.ID] = svc
	return svc
}

// Bookings returns every booking system-wide in creation order.
func (s *Store) Bookings() []GardenerBooking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]GardenerBooking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// BookingsBySession returns the bookings created under sessionID.
func (s *Store) BookingsBySession(sessionID string) []GardenerBooking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []GardenerBooking{}
	for _, b := range s.bookings {
		if b.SessionID == sessionID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CreateBooking inserts a booking with rating and review initialized to
// absent.
func (s *Store) CreateBooking(input BookingInput) GardenerBooking {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking := GardenerBooking{
		ID:           s.nextBookingID,
		ServiceType:  input.ServiceType,
		Date:         input.Date,
		TimeSlot:     input.TimeSlot,
		GardenSize:   input.GardenSize,
		Notes:        input.Notes,
		ContactName:  input.ContactName,
		ContactPhone: input.ContactPhone,
		ContactEmail: input.ContactEmail,
		CreatedAt:    s.now(),
		SessionID:    input.SessionID,
	}
	s.nextBookingID++
	s.bookings[booking.ID] = booking
	return booking
}

// UpdateBookingReview merges rating and review text into the booking. The
// store does not validate the rating range; that is the caller's contract.
func (s *Store) UpdateBookingReview(id, rating int, reviewText string) (GardenerBooking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return GardenerBooking{}, false
	}
	booking.Rating = &rating
	booking.ReviewText = &reviewText
	s.bookings[id] = booking
	return booking, true
}

// CartBySession returns the session's cart items in creation order.
func (s *Store) CartBySession(sessionID string) []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []CartItem{}
	for _, item := range s.cartItems {
		if item.SessionID == sessionID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AddCartItem adds a product to the session's cart. If the product is
// already present the existing row's quantity is incremented instead of a
// second row being created. The read-modify-write runs inside one critical
// section, so concurrent increments for the same product serialize.
func (s *Store) AddCartItem(input CartItemInput) CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	for id, item := range s.cartItems {
		if item.SessionID == input.SessionID && item.ProductID == input.ProductID {
			item.Quantity += quantity
			s.cartItems[id] = item
			return item
		}
	}

	item := CartItem{
		ID:        s.nextCartItemID,
		UserID:    input.UserID,
		SessionID: input.SessionID,
		ProductID: input.ProductID,
		Quantity:  quantity,
		CreatedAt: s.now(),
	}
	s.nextCartItemID++
	s.cartItems[item.ID] = item
	return item
}

// SetCartItemQuantity updates a cart item's quantity in place. A quantity of
// zero or below deletes the row and reports removed=true. ok=false means the
// id did not resolve.
func (s *Store) SetCartItemQuantity(id, quantity int) (item CartItem, removed bool, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok = s.cartItems[id]
	if !ok {
		return CartItem{}, false, false
	}
	if quantity <= 0 {
		delete(s.cartItems, id)
		return CartItem{}, true, true
	}
	item.Quantity = quantity
	s.cartItems[id] = item
	return item, false, true
}

// RemoveCartItem deletes one cart item; true when a record existed.
func (s *Store) RemoveCartItem(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cartItems[id]; !ok {
		return false
	}
	delete(s.cartItems, id)
	return true
}

// ClearCart removes every cart item owned by sessionID. Clearing an empty
// cart is not an error.
func (s *Store) ClearCart(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, item := range s.cartItems {
		if item.SessionID == sessionID {
			delete(s.cartItems, id)
		}
	}
}

// PaymentMethods returns the payment method catalog in creation order.
func (s *Store) PaymentMethods() []PaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]PaymentMethod, 0, len(s.paymentMethods))
	for _, m := range s.paymentMethods {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PaymentMethodByCode resolves a payment method by its unique code.
func (s *Store) PaymentMethodByCode(code string) (PaymentMethod, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.paymentMethods {
		if m.Code == code {
			return m, true
		}
	}
	return PaymentMethod{}, false
}

// CreatePaymentMethod inserts a payment method catalog entry.
func (s *Store) CreatePaymentMethod(input PaymentMethodInput) PaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()

	method := PaymentMethod{
		ID:                  s.nextPaymentMethodID,
		Name:                input.Name,
		Code:                input.Code,
		Icon:                input.Icon,
		Enabled:             input.Enabled,
		RequiresCardDetails: input.RequiresCardDetails,
		IsDigitalWallet:     input.IsDigitalWallet,
		IsCashOption:        input.IsCashOption,
		SortOrder:           input.SortOrder,
	}
	s.nextPaymentMethodID++
	s.paymentMethods[method.ID] = method
	return method
}

// CreateOrder inserts an order. The order number is kept unique: on
// collision a numeric suffix is appended.
func (s *Store) CreateOrder(input OrderInput) Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	orderNumber := input.OrderNumber
	for i := 2; s.orderNumberTakenLocked(orderNumber); i++ {
		orderNumber = fmt.Sprintf("%s-%d", input.OrderNumber, i)
	}

	now := s.now()
	order := Order{
		ID:                s.nextOrderID,
		OrderNumber:       orderNumber,
		UserID:            input.UserID,
		SessionID:         input.SessionID,
		Status:            input.Status,
		Subtotal:          input.Subtotal,
		Tax:               input.Tax,
		ShippingFee:       input.ShippingFee,
		Total:             input.Total,
		PaymentMethodCode: input.PaymentMethodCode,
		ShippingAddress:   input.ShippingAddress,
		BillingAddress:    input.BillingAddress,
		PaymentStatus:     input.PaymentStatus,
		Notes:             input.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	s.nextOrderID++
	s.orders[order.ID] = order
	return order
}

func (s *Store) orderNumberTakenLocked(orderNumber string) bool {
	for _, o := range s.orders {
		if o.OrderNumber == orderNumber {
			return true
		}
	}
	return false
}

// OrdersBySession returns the session's orders in creation order.
func (s *Store) OrdersBySession(sessionID string) []Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []Order{}
	for _, o := range s.orders {
		if o.SessionID == sessionID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// OrderByNumber resolves an order by its unique order number.
func (s *Store) OrderByNumber(orderNumber string) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.OrderNumber == orderNumber {
			return o, true
		}
	}
	return Order{}, false
}

// UpdateOrderStatus sets the order's status and refreshes UpdatedAt.
func (s *Store) UpdateOrderStatus(id int, status string) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return Order{}, false
	}
	order.Status = status
	order.UpdatedAt = s.now()
	s.orders[id] = order
	return order, true
}

// CreateOrderItem inserts an order line snapshot.
func (s *Store) CreateOrderItem(input OrderItemInput) OrderItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := OrderItem{
		ID:        s.nextOrderItemID,
		OrderID:   input.OrderID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Price:     input.Price,
		Name:      input.Name,
		ImageURL:  input.ImageURL,
	}
	s.nextOrderItemID++
	s.orderItems[item.ID] = item
	return item
}

// OrderItems returns the line items belonging to orderID in creation order.
func (s *Store) OrderItems(orderID int) []OrderItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []OrderItem{}
	for _, item := range s.orderItems {
		if item.OrderID == orderID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
