package shop

import "time"

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"createdAt"`
}

// Order is immutable once stored. UserName, ProductName and UnitPrice
// are snapshots taken at placement time; later edits to the user or
// product never change past orders.
type Order struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	UserName    string    `json:"userName"`
	ProductID   int64     `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice"`
	Total       float64   `json:"total"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Status string

// Orders are created PENDING and no further transitions are modeled.
const StatusPending Status = "PENDING"
