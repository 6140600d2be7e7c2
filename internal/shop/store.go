package shop

// Store holds the whole service state in memory: three independent
// collections with sequential ids assigned per collection. Nothing is
// persisted; a restart starts empty.
//
// Handlers run on separate goroutines, so all access goes through
// View/Update. Update holds the exclusive lock for the duration of fn,
// which is what makes the order workflow's check-then-act span safe:
// a reader can never observe an appended order without its stock
// decrement, and two placements against the same product cannot
// interleave.

import "sync"

type Store struct {
	mu sync.RWMutex

	users    []User
	products []Product
	orders   []Order

	lastUserID    int64
	lastProductID int64
	lastOrderID   int64
}

func NewStore() *Store { return &Store{} }

// Tx is a handle to the store data, valid only inside View/Update.
type Tx struct {
	s *Store
}

// View runs fn under a shared read lock. fn must not mutate.
func (s *Store) View(fn func(tx *Tx)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&Tx{s: s})
}

// Update runs fn under the exclusive write lock. There is no rollback:
// fn must perform all checks before its first mutation and return an
// error only while the data is still untouched.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Tx{s: s})
}

func (tx *Tx) FindUserByID(id int64) (User, bool) {
	for _, u := range tx.s.users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

func (tx *Tx) FindUserByEmail(email string) (User, bool) {
	for _, u := range tx.s.users {
		if u.Email == email {
			return u, true
		}
	}
	return User{}, false
}

// AppendUser assigns the next user id and stores the record.
func (tx *Tx) AppendUser(u User) User {
	tx.s.lastUserID++
	u.ID = tx.s.lastUserID
	tx.s.users = append(tx.s.users, u)
	return u
}

func (tx *Tx) Users() []User {
	out := make([]User, len(tx.s.users))
	copy(out, tx.s.users)
	return out
}

func (tx *Tx) FindProductByID(id int64) (Product, bool) {
	for _, p := range tx.s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func (tx *Tx) AppendProduct(p Product) Product {
	tx.s.lastProductID++
	p.ID = tx.s.lastProductID
	tx.s.products = append(tx.s.products, p)
	return p
}

// SetProductStock overwrites the stock level unconditionally; the
// caller decides whether the new value is legal.
func (tx *Tx) SetProductStock(id int64, stock int) (Product, bool) {
	for i := range tx.s.products {
		if tx.s.products[i].ID == id {
			tx.s.products[i].Stock = stock
			return tx.s.products[i], true
		}
	}
	return Product{}, false
}

func (tx *Tx) Products() []Product {
	out := make([]Product, len(tx.s.products))
	copy(out, tx.s.products)
	return out
}

func (tx *Tx) FindOrderByID(id int64) (Order, bool) {
	for _, o := range tx.s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

func (tx *Tx) AppendOrder(o Order) Order {
	tx.s.lastOrderID++
	o.ID = tx.s.lastOrderID
	tx.s.orders = append(tx.s.orders, o)
	return o
}

func (tx *Tx) Orders() []Order {
	out := make([]Order, len(tx.s.orders))
	copy(out, tx.s.orders)
	return out
}

// Counts reports collection sizes for the health endpoint.
func (tx *Tx) Counts() (users, products, orders int) {
	return len(tx.s.users), len(tx.s.products), len(tx.s.orders)
}
