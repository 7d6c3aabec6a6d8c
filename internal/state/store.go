package state

import (
	"sync"

	"github.com/pawhaven/pawdeck/internal/api"
	"github.com/pawhaven/pawdeck/internal/creds"
)

// Slice identifies one resource family's state container.
type Slice int

const (
	SliceAuth Slice = iota
	SliceCart
	SlicePets
	SliceProducts
	SliceOrders
	SliceAppointments
	SliceAdmin
	SliceMessages
	SliceDashboard
)

func (s Slice) String() string {
	switch s {
	case SliceAuth:
		return "auth"
	case SliceCart:
		return "cart"
	case SlicePets:
		return "pets"
	case SliceProducts:
		return "products"
	case SliceOrders:
		return "orders"
	case SliceAppointments:
		return "appointments"
	case SliceAdmin:
		return "admin"
	case SliceMessages:
		return "messages"
	case SliceDashboard:
		return "dashboard"
	default:
		return "unknown"
	}
}

// Store coordinates concurrent access to the nine slices. Operations are
// Store methods: they mark the slice pending, call the API outside the lock,
// and apply the fulfilled or rejected outcome when the response lands.
type Store struct {
	mu  sync.RWMutex
	api *api.Client

	auth         AuthSlice
	cart         CartSlice
	pets         PetsSlice
	products     ProductsSlice
	orders       OrdersSlice
	appointments AppointmentsSlice
	admin        AdminSlice
	messages     MessagesSlice
	dashboard    DashboardSlice
}

// New builds the Store, seeding the auth slice from the persisted session so
// a restarted client stays logged in.
func New(client *api.Client, session creds.Session) *Store {
	s := &Store{api: client}
	if session.LoggedIn() {
		s.auth.LoggedIn = true
		s.auth.User = api.User{
			ID:    session.User.ID,
			Name:  session.User.Name,
			Email: session.User.Email,
			Role:  session.User.Role,
		}
	}
	return s
}

// Snapshot is a consistent copy of every slice, safe to read without locks.
type Snapshot struct {
	Auth         AuthSlice
	Cart         CartSlice
	Pets         PetsSlice
	Products     ProductsSlice
	Orders       OrdersSlice
	Appointments AppointmentsSlice
	Admin        AdminSlice
	Messages     MessagesSlice
	Dashboard    DashboardSlice
}

// StatusOf returns the status of the named slice within the snapshot.
func (snap Snapshot) StatusOf(slice Slice) Status {
	switch slice {
	case SliceAuth:
		return snap.Auth.Status
	case SliceCart:
		return snap.Cart.Status
	case SlicePets:
		return snap.Pets.Status
	case SliceProducts:
		return snap.Products.Status
	case SliceOrders:
		return snap.Orders.Status
	case SliceAppointments:
		return snap.Appointments.Status
	case SliceAdmin:
		return snap.Admin.Status
	case SliceMessages:
		return snap.Messages.Status
	case SliceDashboard:
		return snap.Dashboard.Status
	default:
		return Status{}
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Auth:         s.auth,
		Cart:         s.cart.clone(),
		Pets:         s.pets.clone(),
		Products:     s.products.clone(),
		Orders:       s.orders.clone(),
		Appointments: s.appointments.clone(),
		Admin:        s.admin.clone(),
		Messages:     s.messages.clone(),
		Dashboard:    s.dashboard,
	}
}

// Reset clears the named slice's status flags and message, leaving its
// entity storage untouched. Idempotent when the status is already idle.
func (s *Store) Reset(slice Slice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st := s.status(slice); st != nil {
		st.reset()
	}
}

// begin marks an operation pending on the named slice.
func (s *Store) begin(slice Slice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st := s.status(slice); st != nil {
		st.start()
	}
}

// status returns the live status pointer for a slice; callers hold the lock.
func (s *Store) status(slice Slice) *Status {
	switch slice {
	case SliceAuth:
		return &s.auth.Status
	case SliceCart:
		return &s.cart.Status
	case SlicePets:
		return &s.pets.Status
	case SliceProducts:
		return &s.products.Status
	case SliceOrders:
		return &s.orders.Status
	case SliceAppointments:
		return &s.appointments.Status
	case SliceAdmin:
		return &s.admin.Status
	case SliceMessages:
		return &s.messages.Status
	case SliceDashboard:
		return &s.dashboard.Status
	default:
		return nil
	}
}

func cloneList[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
