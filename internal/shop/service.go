package shop

import "time"

// Service owns the business operations over a Store. All mutations go
// through a single Update call so they execute as one critical
// section; reads take a consistent View.
type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) RegisterUser(name, email string) (User, error) {
	if err := ValidateUserInput(name, email); err != nil {
		return User{}, err
	}
	var created User
	err := s.store.Update(func(tx *Tx) error {
		if _, exists := tx.FindUserByEmail(email); exists {
			return &DuplicateError{Field: "email"}
		}
		created = tx.AppendUser(User{
			Name:      name,
			Email:     email,
			CreatedAt: time.Now().UTC(),
		})
		return nil
	})
	return created, err
}

func (s *Service) AddProduct(name string, price float64, stock int) (Product, error) {
	if err := ValidateProductInput(name, price, stock); err != nil {
		return Product{}, err
	}
	var created Product
	_ = s.store.Update(func(tx *Tx) error {
		created = tx.AppendProduct(Product{
			Name:      name,
			Price:     price,
			Stock:     stock,
			CreatedAt: time.Now().UTC(),
		})
		return nil
	})
	return created, nil
}

// PlaceOrder validates the request, resolves the user and product,
// checks stock, snapshots the price, then appends the order and
// decrements stock inside the same exclusive section. Checks run in a
// fixed order: user, then product, then stock. Any failure returns
// before the first mutation, so a failed placement changes nothing.
func (s *Service) PlaceOrder(userID, productID int64, quantity int) (Order, error) {
	if err := ValidateOrderInput(userID, productID, quantity); err != nil {
		return Order{}, err
	}
	var placed Order
	err := s.store.Update(func(tx *Tx) error {
		user, ok := tx.FindUserByID(userID)
		if !ok {
			return &NotFoundError{Entity: "user"}
		}
		product, ok := tx.FindProductByID(productID)
		if !ok {
			return &NotFoundError{Entity: "product"}
		}
		if product.Stock < quantity {
			return &InsufficientStockError{Available: product.Stock, Requested: quantity}
		}

		unitPrice := product.Price
		placed = tx.AppendOrder(Order{
			UserID:      user.ID,
			UserName:    user.Name,
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			Total:       unitPrice * float64(quantity),
			Status:      StatusPending,
			CreatedAt:   time.Now().UTC(),
		})
		tx.SetProductStock(product.ID, product.Stock-quantity)
		return nil
	})
	return placed, err
}

// SetProductStock overwrites a product's stock with an absolute value.
// Kept separate from order placement on purpose; it shares the same
// exclusive-access discipline so corrections cannot race a placement.
func (s *Service) SetProductStock(productID int64, stock int) (Product, error) {
	if err := ValidateStockLevel(stock); err != nil {
		return Product{}, err
	}
	var updated Product
	err := s.store.Update(func(tx *Tx) error {
		p, ok := tx.SetProductStock(productID, stock)
		if !ok {
			return &NotFoundError{Entity: "product"}
		}
		updated = p
		return nil
	})
	return updated, err
}

func (s *Service) User(id int64) (User, error) {
	var u User
	var ok bool
	s.store.View(func(tx *Tx) { u, ok = tx.FindUserByID(id) })
	if !ok {
		return User{}, &NotFoundError{Entity: "user"}
	}
	return u, nil
}

func (s *Service) Users() []User {
	var out []User
	s.store.View(func(tx *Tx) { out = tx.Users() })
	return out
}

func (s *Service) Product(id int64) (Product, error) {
	var p Product
	var ok bool
	s.store.View(func(tx *Tx) { p, ok = tx.FindProductByID(id) })
	if !ok {
		return Product{}, &NotFoundError{Entity: "product"}
	}
	return p, nil
}

func (s *Service) Products() []Product {
	var out []Product
	s.store.View(func(tx *Tx) { out = tx.Products() })
	return out
}

func (s *Service) Order(id int64) (Order, error) {
	var o Order
	var ok bool
	s.store.View(func(tx *Tx) { o, ok = tx.FindOrderByID(id) })
	if !ok {
		return Order{}, &NotFoundError{Entity: "order"}
	}
	return o, nil
}

func (s *Service) Orders() []Order {
	var out []Order
	s.store.View(func(tx *Tx) { out = tx.Orders() })
	return out
}

type Stats struct {
	Users    int `json:"users"`
	Products int `json:"products"`
	Orders   int `json:"orders"`
}

func (s *Service) Stats() Stats {
	var st Stats
	s.store.View(func(tx *Tx) {
		st.Users, st.Products, st.Orders = tx.Counts()
	})
	return st
}
