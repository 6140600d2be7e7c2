package shop

// Pure input predicates. Each returns nil or a *ValidationError with
// the specific reason; none of them touch the store.

func ValidateUserInput(name, email string) error {
	if name == "" || email == "" {
		return &ValidationError{Reason: "name and email are required"}
	}
	return nil
}

func ValidateProductInput(name string, price float64, stock int) error {
	if name == "" {
		return &ValidationError{Reason: "name, price and stock are required"}
	}
	if price < 0 {
		return &ValidationError{Reason: "price must not be negative"}
	}
	return ValidateStockLevel(stock)
}

func ValidateOrderInput(userID, productID int64, quantity int) error {
	if userID <= 0 || productID <= 0 {
		return &ValidationError{Reason: "userId, productId and quantity are required"}
	}
	if quantity <= 0 {
		return &ValidationError{Reason: "quantity must be positive"}
	}
	return nil
}

func ValidateStockLevel(stock int) error {
	if stock < 0 {
		return &ValidationError{Reason: "stock must not be negative"}
	}
	return nil
}
