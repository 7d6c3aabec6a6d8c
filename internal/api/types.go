package api

// Role values used by the backend for account gating.
const (
	RoleCustomer   = "customer"
	RoleSeller     = "seller"
	RoleVeterinary = "veterinary"
	RoleAdmin      = "admin"
	RoleCoAdmin    = "co-admin"
)

// User mirrors the backend account profile.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// IsAdmin reports whether the user can reach the admin views.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleCoAdmin
}

// Pet describes an animal listed for adoption.
type Pet struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Species     string  `json:"species"`
	Breed       string  `json:"breed"`
	Age         int     `json:"age"`
	Gender      string  `json:"gender"`
	Description string  `json:"description"`
	AdoptionFee float64 `json:"adoptionFee"`
	Status      string  `json:"status"`
	SellerID    string  `json:"sellerId"`
	CreatedAt   string  `json:"createdAt"`
}

// Review is a customer review attached to a product.
type Review struct {
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"createdAt"`
}

// Product describes a supply item in the shop.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Rating      float64  `json:"rating"`
	Reviews     []Review `json:"reviews"`
	SellerID    string   `json:"sellerId"`
}

// CartLine is one product entry in the cart.
type CartLine struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Cart mirrors the backend cart payload. The server includes totals but the
// client always recomputes them from the lines (see internal/state).
type Cart struct {
	Items     []CartLine `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"itemCount"`
}

// OrderItem is one purchased line inside an order.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Order describes a placed order.
type Order struct {
	ID              string      `json:"id"`
	Items           []OrderItem `json:"items"`
	Total           float64     `json:"total"`
	Status          string      `json:"status"`
	ShippingAddress string      `json:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	CreatedAt       string      `json:"createdAt"`
}

// Appointment is a veterinary appointment booking.
type Appointment struct {
	ID        string `json:"id"`
	PetName   string `json:"petName"`
	OwnerID   string `json:"ownerId"`
	OwnerName string `json:"ownerName"`
	VetID     string `json:"vetId"`
	VetName   string `json:"vetName"`
	Date      string `json:"date"`
	Slot      string `json:"slot"`
	Reason    string `json:"reason"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

// Message is an entry in the user's inbox.
type Message struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}

// DashboardStats aggregates the counters shown on role dashboards.
type DashboardStats struct {
	Orders       int     `json:"orders"`
	Revenue      float64 `json:"revenue"`
	Users        int     `json:"users"`
	Pets         int     `json:"pets"`
	Products     int     `json:"products"`
	Appointments int     `json:"appointments"`
}
